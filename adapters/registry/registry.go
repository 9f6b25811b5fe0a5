package registry

import (
	"fmt"
	"net"
	"strconv"

	"github.com/pkg/errors"
)

// NodeID identifies one learner endpoint in the cluster.
type NodeID struct {
	Host string
	Port int
}

func (n NodeID) String() string {
	return fmt.Sprintf("%s:%d", n.Host, n.Port)
}

func ParseNodeID(addr string) (NodeID, error) {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return NodeID{}, errors.Wrapf(err, "invalid node address %q", addr)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return NodeID{}, errors.Wrapf(err, "invalid node port in %q", addr)
	}
	return NodeID{Host: host, Port: port}, nil
}

// Registry is the cluster membership service. GetAllNodes returns every
// live learner registered under the (type, name) pair, self included.
type Registry interface {
	GetAllNodes(kind, name string) ([]NodeID, error)
	Register(kind, name string, self NodeID) error
	Unregister(kind, name string, self NodeID) error
	Shutdown() error
}
