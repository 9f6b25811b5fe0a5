package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeerStore(t *testing.T) {
	store := newPeerStore()

	t.Run("upsert", func(t *testing.T) {
		err := store.upsert(peerRecord{
			ID:   "cb8f3900-4146-4499-a880-c01611a6d9ee",
			Kind: "recommender",
			Name: "news",
			Host: "10.0.0.1",
			Port: 4001,
		})
		require.NoError(t, err)
		err = store.upsert(peerRecord{
			ID:   "a2c51701-07b4-4123-9190-11f5b7a2d3c1",
			Kind: "recommender",
			Name: "news",
			Host: "10.0.0.2",
			Port: 4001,
		})
		require.NoError(t, err)
		err = store.upsert(peerRecord{
			ID:   "f12ab001-bc61-49d2-9811-c4ba05a1beef",
			Kind: "classifier",
			Name: "spam",
			Host: "10.0.0.3",
			Port: 4001,
		})
		require.NoError(t, err)
	})

	t.Run("list filters on kind and name", func(t *testing.T) {
		nodes, err := store.list("recommender", "news")
		require.NoError(t, err)
		assert.Equal(t, 2, len(nodes))

		nodes, err = store.list("classifier", "spam")
		require.NoError(t, err)
		assert.Equal(t, 1, len(nodes))
		assert.Equal(t, "10.0.0.3", nodes[0].Host)
	})

	t.Run("delete", func(t *testing.T) {
		err := store.delete("cb8f3900-4146-4499-a880-c01611a6d9ee")
		require.NoError(t, err)
		nodes, err := store.list("recommender", "news")
		require.NoError(t, err)
		assert.Equal(t, 1, len(nodes))
	})

	t.Run("delete of an unknown node is a no-op", func(t *testing.T) {
		require.NoError(t, store.delete("unknown"))
	})
}
