package store

import (
	"os"

	"github.com/boltdb/bolt"
	"github.com/pkg/errors"
)

const (
	dbFileMode = os.FileMode(0600)
)

var (
	snapshotsBucket = []byte("snapshots")

	ErrSnapshotNotFound = errors.New("snapshot not found")
)

type Options struct {
	// Path is the file path to the BoltDB to use
	Path string

	// BoltOptions contains any specific BoltDB options you might
	// want to specify [e.g. open timeout]
	BoltOptions *bolt.Options

	// NoSync causes the database to skip fsync calls after each
	// write to the log. This is unsafe, so it should be used
	// with caution.
	NoSync bool
}

// BoltStore persists named model snapshots. mixd saves one when it
// shuts down and restores it at start.
type BoltStore struct {
	conn    *bolt.DB
	options Options
}

func New(options Options) (*BoltStore, error) {
	handle, err := bolt.Open(options.Path, dbFileMode, options.BoltOptions)
	if err != nil {
		return nil, err
	}
	handle.NoSync = options.NoSync

	store := &BoltStore{
		conn:    handle,
		options: options,
	}
	if err := store.initialize(); err != nil {
		store.Close()
		return nil, err
	}
	return store, nil
}

func (b *BoltStore) initialize() error {
	return b.conn.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(snapshotsBucket)
		return err
	})
}

// Close is used to gracefully close the DB connection.
func (b *BoltStore) Close() error {
	return b.conn.Close()
}

// Save stores a snapshot payload under the given name, replacing any
// previous one.
func (b *BoltStore) Save(name string, payload []byte) error {
	return b.conn.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(snapshotsBucket)
		return bucket.Put([]byte(name), payload)
	})
}

// Load returns the snapshot payload stored under the given name.
func (b *BoltStore) Load(name string) ([]byte, error) {
	var payload []byte
	err := b.conn.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(snapshotsBucket)
		data := bucket.Get([]byte(name))
		if data == nil {
			return ErrSnapshotNotFound
		}
		payload = append([]byte(nil), data...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payload, nil
}

// Delete removes a stored snapshot. Deleting an unknown name is a
// no-op.
func (b *BoltStore) Delete(name string) error {
	return b.conn.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(snapshotsBucket)
		return bucket.Delete([]byte(name))
	})
}
