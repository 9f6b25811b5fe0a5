package mesh

import (
	memdb "github.com/hashicorp/go-memdb"
	"github.com/vx-labs/mix-engine/adapters/registry"
)

const (
	table = "peers"
)

type peerRecord struct {
	ID   string
	Kind string
	Name string
	Host string
	Port int
}

type peerStore struct {
	db *memdb.MemDB
}

func newPeerStore() *peerStore {
	db, err := memdb.NewMemDB(&memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			table: {
				Name: table,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:         "id",
						Unique:       true,
						AllowMissing: false,
						Indexer: &memdb.StringFieldIndex{
							Field: "ID",
						},
					},
				},
			},
		},
	})
	if err != nil {
		panic(err)
	}
	return &peerStore{db: db}
}

func (s *peerStore) upsert(p peerRecord) error {
	tx := s.db.Txn(true)
	defer tx.Abort()
	if err := tx.Insert(table, &p); err != nil {
		return err
	}
	tx.Commit()
	return nil
}
func (s *peerStore) delete(id string) error {
	tx := s.db.Txn(true)
	defer tx.Abort()
	data, err := tx.First(table, "id", id)
	if err != nil {
		return err
	}
	if data == nil {
		return nil
	}
	if err := tx.Delete(table, data); err != nil {
		return err
	}
	tx.Commit()
	return nil
}
func (s *peerStore) list(kind, name string) ([]registry.NodeID, error) {
	tx := s.db.Txn(false)
	defer tx.Abort()
	iterator, err := tx.Get(table, "id")
	if err != nil {
		return nil, err
	}
	out := []registry.NodeID{}
	for {
		payload := iterator.Next()
		if payload == nil {
			return out, nil
		}
		p := payload.(*peerRecord)
		if p.Kind != kind || p.Name != name {
			continue
		}
		out = append(out, registry.NodeID{Host: p.Host, Port: p.Port})
	}
}
