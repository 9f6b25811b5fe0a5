package mesh

import (
	"bytes"
	"compress/zlib"
	"io"
	"io/ioutil"
	"os"
	"time"

	"github.com/hashicorp/memberlist"
	"github.com/pkg/errors"

	"github.com/gogo/protobuf/proto"
	"github.com/vx-labs/mix-engine/adapters/registry"
	"github.com/vx-labs/mix-engine/adapters/registry/mesh/pb"
	"go.uber.org/zap"
)

// Config describes the gossip listener.
type Config struct {
	BindAddress    string
	BindPort       int
	AdvertisedHost string
	AdvertisedPort int
}

// MeshRegistry resolves the learner fleet over a memberlist gossip
// layer: each node advertises the (type, name) pair it serves and its
// mix endpoint in its node metadata, and the local peer cache is kept
// current by membership events.
type MeshRegistry struct {
	id     string
	mlist  *memberlist.Memberlist
	logger *zap.Logger
	meta   []byte
	peers  *peerStore
}

func NewMeshRegistry(id string, logger *zap.Logger, config Config) (*MeshRegistry, error) {
	self := &MeshRegistry{
		id:     id,
		meta:   []byte{},
		logger: logger,
		peers:  newPeerStore(),
	}

	mlConfig := memberlist.DefaultLANConfig()
	mlConfig.AdvertiseAddr = config.AdvertisedHost
	mlConfig.AdvertisePort = config.AdvertisedPort
	mlConfig.BindAddr = config.BindAddress
	mlConfig.BindPort = config.BindPort
	mlConfig.Name = id
	mlConfig.Delegate = self
	mlConfig.Events = self
	if os.Getenv("ENABLE_MEMBERLIST_LOG") != "true" {
		mlConfig.LogOutput = ioutil.Discard
	}
	list, err := memberlist.Create(mlConfig)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create gossip layer")
	}
	self.mlist = list
	return self, nil
}

func (m *MeshRegistry) Join(hosts []string) error {
	if len(hosts) == 0 {
		return nil
	}
	count, err := m.mlist.Join(hosts)
	if err != nil {
		if count == 0 && m.mlist.NumMembers() == 1 {
			m.logger.Debug("failed to join gossip cluster", zap.Error(err))
			return err
		}
		m.logger.Warn("failed to join some hosts", zap.Error(err))
	}
	return nil
}

func (m *MeshRegistry) GetAllNodes(kind, name string) ([]registry.NodeID, error) {
	return m.peers.list(kind, name)
}

func (m *MeshRegistry) Register(kind, name string, self registry.NodeID) error {
	meta, err := proto.Marshal(&pb.NodeMeta{
		Kind: kind,
		Name: name,
		Host: self.Host,
		Port: int32(self.Port),
	})
	if err != nil {
		return errors.Wrap(err, "failed to encode node metadata")
	}
	m.meta = meta
	err = m.peers.upsert(peerRecord{
		ID:   m.id,
		Kind: kind,
		Name: name,
		Host: self.Host,
		Port: self.Port,
	})
	if err != nil {
		return err
	}
	return m.mlist.UpdateNode(5 * time.Second)
}
func (m *MeshRegistry) Unregister(kind, name string, self registry.NodeID) error {
	m.meta = []byte{}
	if err := m.peers.delete(m.id); err != nil {
		return err
	}
	return m.mlist.UpdateNode(5 * time.Second)
}
func (m *MeshRegistry) Shutdown() error {
	err := m.mlist.Leave(5 * time.Second)
	if err != nil {
		return err
	}
	return m.mlist.Shutdown()
}
func (m *MeshRegistry) MemberCount() int {
	if m.mlist == nil {
		return 1
	}
	return m.mlist.NumMembers()
}
func (m *MeshRegistry) Health() string {
	if m.MemberCount() == 1 {
		return "warning"
	}
	return "ok"
}

func (m *MeshRegistry) decodeMeta(b []byte) *pb.NodeMeta {
	if len(b) == 0 {
		return nil
	}
	r := bytes.NewBuffer(b)
	uncompressed, err := zlib.NewReader(r)
	if err != nil {
		m.logger.Warn("failed to decompress node metadata", zap.Error(err))
		return nil
	}
	out := bytes.NewBuffer(nil)
	_, err = io.Copy(out, uncompressed)
	if err != nil {
		m.logger.Warn("failed to read node metadata", zap.Error(err))
		return nil
	}
	meta := &pb.NodeMeta{}
	if err := proto.Unmarshal(out.Bytes(), meta); err != nil {
		m.logger.Warn("failed to decode node metadata", zap.Error(err))
		return nil
	}
	return meta
}

// NodeMeta implements memberlist.Delegate.
func (m *MeshRegistry) NodeMeta(limit int) []byte {
	if len(m.meta) == 0 {
		return nil
	}
	b := bytes.NewBuffer(nil)
	w := zlib.NewWriter(b)
	_, err := w.Write(m.meta)
	if err != nil {
		panic(err)
	}
	err = w.Close()
	if err != nil {
		panic(err)
	}
	return b.Bytes()
}
func (m *MeshRegistry) NotifyMsg(b []byte)                         {}
func (m *MeshRegistry) GetBroadcasts(overhead, limit int) [][]byte { return nil }
func (m *MeshRegistry) LocalState(join bool) []byte                { return nil }
func (m *MeshRegistry) MergeRemoteState(buf []byte, join bool)     {}
