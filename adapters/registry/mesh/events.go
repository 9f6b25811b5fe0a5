package mesh

import (
	"github.com/hashicorp/memberlist"
	"go.uber.org/zap"
)

// NotifyJoin is called if a peer joins the cluster.
func (m *MeshRegistry) NotifyJoin(n *memberlist.Node) {
	m.logger.Debug("node joined", zap.String("new_node_id", n.Name))
	m.upsertNode(n)
}

// NotifyLeave is called if a peer leaves the cluster.
func (m *MeshRegistry) NotifyLeave(n *memberlist.Node) {
	m.logger.Debug("node left", zap.String("left_node_id", n.Name))
	if n.Name == m.id {
		return
	}
	if err := m.peers.delete(n.Name); err != nil {
		m.logger.Warn("failed to evict left node", zap.String("left_node_id", n.Name), zap.Error(err))
	}
}

// NotifyUpdate is called if a cluster peer gets updated.
func (m *MeshRegistry) NotifyUpdate(n *memberlist.Node) {
	m.logger.Debug("node updated", zap.String("updated_node_id", n.Name))
	m.upsertNode(n)
}

func (m *MeshRegistry) upsertNode(n *memberlist.Node) {
	meta := m.decodeMeta(n.Meta)
	if meta == nil {
		return
	}
	err := m.peers.upsert(peerRecord{
		ID:   n.Name,
		Kind: meta.Kind,
		Name: meta.Name,
		Host: meta.Host,
		Port: int(meta.Port),
	})
	if err != nil {
		m.logger.Warn("failed to store node metadata", zap.String("node_id", n.Name), zap.Error(err))
	}
}
