package mixer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vx-labs/mix-engine/adapters/registry"
)

func TestCandidateFilters(t *testing.T) {
	self := registry.NodeID{Host: "10.0.0.9", Port: 4001}
	peers := []registry.NodeID{
		{Host: "10.0.0.1", Port: 4001},
		self,
		{Host: "10.0.0.2", Port: 4001},
		{Host: "10.0.0.3", Port: 4001},
	}

	t.Run("all", func(t *testing.T) {
		assert.Equal(t, peers, FilterAll().Select(peers))
	})

	t.Run("exclude self", func(t *testing.T) {
		out := ExcludeSelf(self).Select(peers)
		assert.Equal(t, 3, len(out))
		for _, peer := range out {
			assert.NotEqual(t, self, peer)
		}
		assert.Equal(t, peers[0], out[0])
		assert.Equal(t, peers[2], out[1])
	})

	t.Run("random k keeps snapshot order", func(t *testing.T) {
		filter := RandomK(2)
		for i := 0; i < 20; i++ {
			out := filter.Select(peers)
			assert.Equal(t, 2, len(out))
			first, second := -1, -1
			for idx, peer := range peers {
				if peer == out[0] {
					first = idx
				}
				if peer == out[1] {
					second = idx
				}
			}
			assert.True(t, first >= 0 && second > first)
		}
	})

	t.Run("random k returns everything when the fleet is small", func(t *testing.T) {
		out := RandomK(10).Select(peers)
		assert.Equal(t, peers, out)
	})

	t.Run("chain", func(t *testing.T) {
		out := Chain(ExcludeSelf(self), RandomK(2)).Select(peers)
		assert.Equal(t, 2, len(out))
		for _, peer := range out {
			assert.NotEqual(t, self, peer)
		}
	})
}
