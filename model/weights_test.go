package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exchange runs the bilateral protocol between two models, the way the
// mixer drives it: a pulls from b, b pulls from a, both push.
func exchange(t *testing.T, a, b *Weights) {
	t.Helper()
	myArgs, err := a.GetArgument()
	require.NoError(t, err)
	herDiff, err := b.Pull(myArgs)
	require.NoError(t, err)
	herArgs, err := b.GetArgument()
	require.NoError(t, err)
	myDiff, err := a.Pull(herArgs)
	require.NoError(t, err)
	require.NoError(t, b.Push(myDiff))
	require.NoError(t, a.Push(herDiff))
}

func TestWeights(t *testing.T) {
	t.Run("observe accumulates gradients", func(t *testing.T) {
		w := NewWeights("n1")
		w.Observe("clicks", 0.5)
		w.Observe("clicks", 0.25)
		assert.Equal(t, 0.75, w.Weight("clicks"))
	})

	t.Run("bilateral exchange converges", func(t *testing.T) {
		a := NewWeights("n1")
		b := NewWeights("n2")
		a.Observe("clicks", 1.0)
		a.Observe("views", 2.0)
		b.Observe("clicks", 0.5)

		exchange(t, a, b)

		assert.Equal(t, a.Len(), b.Len())
		assert.Equal(t, 1.5, a.Weight("clicks"))
		assert.Equal(t, 1.5, b.Weight("clicks"))
		assert.Equal(t, 2.0, a.Weight("views"))
		assert.Equal(t, 2.0, b.Weight("views"))
	})

	t.Run("pull skips entries the requester already holds", func(t *testing.T) {
		a := NewWeights("n1")
		b := NewWeights("n2")
		a.Observe("clicks", 1.0)
		exchange(t, a, b)

		args, err := b.GetArgument()
		require.NoError(t, err)
		diff, err := a.Pull(args)
		require.NoError(t, err)
		// Nothing changed since the exchange, the diff carries no entry.
		assert.Empty(t, diff)
		before := b.Len()
		require.NoError(t, b.Push(diff))
		assert.Equal(t, before, b.Len())
	})

	t.Run("push ignores stale versions", func(t *testing.T) {
		a := NewWeights("n1")
		b := NewWeights("n2")
		a.Observe("clicks", 1.0)
		exchange(t, a, b)

		a.Observe("clicks", 1.0)
		exchange(t, a, b)
		assert.Equal(t, 2.0, b.Weight("clicks"))

		// Replaying the first, older exchange must not roll b back.
		stale := NewWeights("n1")
		stale.Observe("clicks", 1.0)
		args, err := NewWeights("probe").GetArgument()
		require.NoError(t, err)
		diff, err := stale.Pull(args)
		require.NoError(t, err)
		require.NoError(t, b.Push(diff))
		assert.Equal(t, 2.0, b.Weight("clicks"))
	})

	t.Run("push rejects malformed payloads", func(t *testing.T) {
		w := NewWeights("n1")
		require.Error(t, w.Push([]byte("not a protobuf payload")))
	})

	t.Run("snapshot and restore round trip", func(t *testing.T) {
		w := NewWeights("n1")
		w.Observe("clicks", 1.0)
		w.Observe("views", 2.5)
		payload, err := w.Snapshot()
		require.NoError(t, err)

		restored := NewWeights("n1")
		require.NoError(t, restored.Restore(payload))
		assert.Equal(t, w.Len(), restored.Len())
		assert.Equal(t, 1.0, restored.Weight("clicks"))
		assert.Equal(t, 2.5, restored.Weight("views"))
	})
}
