package static

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vx-labs/mix-engine/adapters/registry"
)

func TestStaticRegistry(t *testing.T) {
	t.Run("parses and returns the provided list", func(t *testing.T) {
		r, err := NewStaticRegistry([]string{"10.0.0.1:4000", "10.0.0.2:4000"})
		require.NoError(t, err)
		nodes, err := r.GetAllNodes("recommender", "news")
		require.NoError(t, err)
		require.Equal(t, 2, len(nodes))
		assert.Equal(t, registry.NodeID{Host: "10.0.0.1", Port: 4000}, nodes[0])
	})
	t.Run("snapshot is a copy", func(t *testing.T) {
		r, err := NewStaticRegistry([]string{"10.0.0.1:4000"})
		require.NoError(t, err)
		first, _ := r.GetAllNodes("recommender", "news")
		first[0].Host = "mutated"
		second, _ := r.GetAllNodes("recommender", "news")
		assert.Equal(t, "10.0.0.1", second[0].Host)
	})
	t.Run("rejects malformed addresses", func(t *testing.T) {
		_, err := NewStaticRegistry([]string{"not-an-address"})
		require.Error(t, err)
	})
}
