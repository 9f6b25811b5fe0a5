package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventBus(t *testing.T) {
	bus := NewEventBus()
	ch, cancel := bus.Events()
	done := make(chan struct{})

	go func() {
		defer close(done)
		ev := <-ch
		assert.Equal(t, MixDone, ev.Kind)
		assert.Equal(t, 2, ev.Peers)
	}()

	bus.Emit(Event{
		Kind:  MixDone,
		Peers: 2,
	})
	<-done
	cancel()
}

func TestEventBus_CancelledSubscriberDoesNotBlockEmit(t *testing.T) {
	bus := NewEventBus()
	_, cancel := bus.Events()
	cancel()
	bus.Emit(Event{Kind: MixStarted})
}

func BenchmarkEventBus(b *testing.B) {
	bus := NewEventBus()
	ch, cancel := bus.Events()
	defer cancel()
	go func() {
		for range ch {
		}
	}()
	for i := 0; i < b.N; i++ {
		bus.Emit(Event{Kind: PushApplied})
	}
}
