package mixer

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vx-labs/mix-engine/adapters/registry"
)

func TestMembershipView(t *testing.T) {
	nodes := []registry.NodeID{
		{Host: "10.0.0.1", Port: 4001},
		{Host: "10.0.0.2", Port: 4001},
	}
	reg := &fakeRegistry{nodes: nodes}
	view := NewMembershipView(reg, "recommender", "news")

	t.Run("starts empty", func(t *testing.T) {
		assert.Equal(t, 0, view.Size())
	})

	t.Run("refresh replaces the cache", func(t *testing.T) {
		count, err := view.Refresh()
		require.NoError(t, err)
		assert.Equal(t, 2, count)
		assert.Equal(t, nodes, view.Snapshot())
	})

	t.Run("snapshot is a copy", func(t *testing.T) {
		snapshot := view.Snapshot()
		snapshot[0].Host = "mutated"
		assert.Equal(t, "10.0.0.1", view.Snapshot()[0].Host)
	})

	t.Run("refresh failure keeps the previous cache", func(t *testing.T) {
		reg.mtx.Lock()
		reg.err = errors.New("registry unreachable")
		reg.mtx.Unlock()
		_, err := view.Refresh()
		require.Error(t, err)
		assert.Equal(t, 2, view.Size())
	})
}
