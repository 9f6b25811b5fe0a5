package events

import (
	"sync/atomic"
	"time"
	"unsafe"

	"github.com/google/uuid"
	iradix "github.com/hashicorp/go-immutable-radix"
)

type EventKind int

const (
	MixStarted EventKind = iota
	MixDone
	MixFailed
	PushApplied
)

// Event describes one step of the mix lifecycle. Byte counters are only
// meaningful for MixDone, Err only for MixFailed.
type Event struct {
	Kind        EventKind
	Peers       int
	Elapsed     time.Duration
	PulledBytes int
	PushedBytes int
	Err         error
}

type subscription struct {
	ch   chan Event
	quit chan struct{}
}

type CancelFunc func()

type EventBus struct {
	state *iradix.Tree
}

func (e *EventBus) cas(old, new *iradix.Tree) bool {
	oldPtr := (*unsafe.Pointer)(unsafe.Pointer(&e.state))
	return atomic.CompareAndSwapPointer(oldPtr, unsafe.Pointer(old), unsafe.Pointer(new))
}
func (e *EventBus) Emit(ev Event) {
	e.state.Root().Walk(func(k []byte, v interface{}) bool {
		sub := v.(*subscription)
		select {
		case <-sub.quit:
		case sub.ch <- ev:
		}
		return false
	})
}
func (e *EventBus) Events() (chan Event, CancelFunc) {
	sub := &subscription{
		ch:   make(chan Event),
		quit: make(chan struct{}),
	}
	id := uuid.New().String()
	cancel := func() {
		for {
			old := e.state
			new, _, _ := old.Delete([]byte(id))
			if e.cas(old, new) {
				close(sub.quit)
				close(sub.ch)
				return
			}
		}
	}
	for {
		old := e.state
		new, _, _ := old.Insert([]byte(id), sub)
		if e.cas(old, new) {
			return sub.ch, cancel
		}
	}
}

func NewEventBus() *EventBus {
	return &EventBus{
		state: iradix.New(),
	}
}
