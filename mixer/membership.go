package mixer

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/vx-labs/mix-engine/adapters/registry"
)

// MembershipView caches the registry's answer for the (type, name)
// pair. The cache does not exclude the local node: candidate filters
// decide who gets contacted.
type MembershipView struct {
	registry registry.Registry
	kind     string
	name     string

	mtx     sync.Mutex
	servers []registry.NodeID
}

func NewMembershipView(reg registry.Registry, kind, name string) *MembershipView {
	return &MembershipView{
		registry: reg,
		kind:     kind,
		name:     name,
	}
}

// Refresh replaces the cached list with the registry's current view
// and returns the new member count.
func (v *MembershipView) Refresh() (int, error) {
	nodes, err := v.registry.GetAllNodes(v.kind, v.name)
	if err != nil {
		return 0, errors.Wrap(err, "failed to refresh cluster members")
	}
	v.mtx.Lock()
	defer v.mtx.Unlock()
	v.servers = nodes
	return len(v.servers), nil
}

// Snapshot returns a copy of the cached list.
func (v *MembershipView) Snapshot() []registry.NodeID {
	v.mtx.Lock()
	defer v.mtx.Unlock()
	out := make([]registry.NodeID, len(v.servers))
	copy(out, v.servers)
	return out
}

func (v *MembershipView) Size() int {
	v.mtx.Lock()
	defer v.mtx.Unlock()
	return len(v.servers)
}
