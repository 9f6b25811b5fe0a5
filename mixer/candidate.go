package mixer

import (
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/vx-labs/mix-engine/adapters/registry"
)

// CandidateFilter selects which peers get contacted during one mix
// cycle. Implementations must not mutate the snapshot and must keep
// the snapshot's order in their output.
type CandidateFilter interface {
	Select(peers []registry.NodeID) []registry.NodeID
}

type allPeers struct{}

func (allPeers) Select(peers []registry.NodeID) []registry.NodeID {
	return peers
}

// FilterAll keeps every peer, the local node included.
func FilterAll() CandidateFilter {
	return allPeers{}
}

type excludeSelf struct {
	self registry.NodeID
}

func (f excludeSelf) Select(peers []registry.NodeID) []registry.NodeID {
	out := make([]registry.NodeID, 0, len(peers))
	for _, peer := range peers {
		if peer == f.self {
			continue
		}
		out = append(out, peer)
	}
	return out
}

// ExcludeSelf drops the local node from the candidate list.
func ExcludeSelf(self registry.NodeID) CandidateFilter {
	return excludeSelf{self: self}
}

type randomK struct {
	k    int
	mtx  sync.Mutex
	rand *rand.Rand
}

func (f *randomK) Select(peers []registry.NodeID) []registry.NodeID {
	if f.k <= 0 || len(peers) <= f.k {
		return peers
	}
	f.mtx.Lock()
	chosen := f.rand.Perm(len(peers))[:f.k]
	f.mtx.Unlock()
	sort.Ints(chosen)
	out := make([]registry.NodeID, 0, f.k)
	for _, idx := range chosen {
		out = append(out, peers[idx])
	}
	return out
}

// RandomK picks at most k peers, keeping the snapshot's order. A k of
// zero or less keeps every peer.
func RandomK(k int) CandidateFilter {
	return &randomK{
		k:    k,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

type chain struct {
	filters []CandidateFilter
}

func (c chain) Select(peers []registry.NodeID) []registry.NodeID {
	out := peers
	for _, f := range c.filters {
		out = f.Select(out)
	}
	return out
}

// Chain applies filters left to right.
func Chain(filters ...CandidateFilter) CandidateFilter {
	return chain{filters: filters}
}
