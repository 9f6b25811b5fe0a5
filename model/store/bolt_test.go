package store

import (
	"io/ioutil"
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*BoltStore, func()) {
	t.Helper()
	dir, err := ioutil.TempDir("", "mix-snapshots")
	require.NoError(t, err)
	store, err := New(Options{
		Path:   path.Join(dir, "db.bolt"),
		NoSync: true,
	})
	require.NoError(t, err)
	return store, func() {
		store.Close()
		os.RemoveAll(dir)
	}
}

func TestBoltStore(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()

	t.Run("save and load", func(t *testing.T) {
		require.NoError(t, store.Save("weights", []byte("payload")))
		payload, err := store.Load("weights")
		require.NoError(t, err)
		assert.Equal(t, []byte("payload"), payload)
	})

	t.Run("save replaces previous snapshot", func(t *testing.T) {
		require.NoError(t, store.Save("weights", []byte("newer")))
		payload, err := store.Load("weights")
		require.NoError(t, err)
		assert.Equal(t, []byte("newer"), payload)
	})

	t.Run("load of an unknown name fails", func(t *testing.T) {
		_, err := store.Load("unknown")
		assert.Equal(t, ErrSnapshotNotFound, err)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Delete("weights"))
		_, err := store.Load("weights")
		assert.Equal(t, ErrSnapshotNotFound, err)
	})
}
