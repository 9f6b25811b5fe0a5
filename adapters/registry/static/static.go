package static

import (
	"github.com/vx-labs/mix-engine/adapters/registry"
)

// StaticRegistry serves a fixed node list. Used by tests and by
// single-shard deployments that do not run a membership service.
type StaticRegistry struct {
	list []registry.NodeID
}

func NewStaticRegistry(list []string) (*StaticRegistry, error) {
	out := make([]registry.NodeID, len(list))
	for idx, addr := range list {
		node, err := registry.ParseNodeID(addr)
		if err != nil {
			return nil, err
		}
		out[idx] = node
	}
	return &StaticRegistry{list: out}, nil
}

func (c *StaticRegistry) GetAllNodes(kind, name string) ([]registry.NodeID, error) {
	out := make([]registry.NodeID, len(c.list))
	copy(out, c.list)
	return out, nil
}
func (c *StaticRegistry) Register(kind, name string, self registry.NodeID) error {
	return nil
}
func (c *StaticRegistry) Unregister(kind, name string, self registry.NodeID) error {
	return nil
}
func (c *StaticRegistry) Shutdown() error {
	return nil
}
