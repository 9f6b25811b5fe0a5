package mixer

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vx-labs/mix-engine/adapters/registry"
	"github.com/vx-labs/mix-engine/mixer/pb"
	"github.com/vx-labs/mix-engine/pool"
	grpc "google.golang.org/grpc"
)

// Communication issues the three exchange verbs against one peer.
// Transport errors, decode errors and remote failures all surface as a
// wrapped peer failure.
type Communication interface {
	Pull(peer registry.NodeID, argument []byte) ([]byte, error)
	GetPullArgument(peer registry.NodeID) ([]byte, error)
	Push(peer registry.NodeID, diff []byte) error
	Close()
}

type grpcCommunication struct {
	caller  *pool.Caller
	timeout time.Duration
}

// NewGRPCCommunication returns a Communication backed by pooled grpc
// connections, one per peer address. Every call is bounded by timeout.
func NewGRPCCommunication(timeout time.Duration) Communication {
	return &grpcCommunication{
		caller:  pool.NewCaller(),
		timeout: timeout,
	}
}

func (c *grpcCommunication) Pull(peer registry.NodeID, argument []byte) ([]byte, error) {
	var out []byte
	err := c.caller.Call(peer.String(), func(conn *grpc.ClientConn) error {
		ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
		defer cancel()
		diff, err := pb.NewClient(conn).Pull(ctx, argument)
		if err != nil {
			return err
		}
		out = diff
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "pull from peer %s failed", peer)
	}
	return out, nil
}

func (c *grpcCommunication) GetPullArgument(peer registry.NodeID) ([]byte, error) {
	var out []byte
	err := c.caller.Call(peer.String(), func(conn *grpc.ClientConn) error {
		ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
		defer cancel()
		argument, err := pb.NewClient(conn).GetPullArgument(ctx)
		if err != nil {
			return err
		}
		out = argument
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "get_pull_argument from peer %s failed", peer)
	}
	return out, nil
}

func (c *grpcCommunication) Push(peer registry.NodeID, diff []byte) error {
	err := c.caller.Call(peer.String(), func(conn *grpc.ClientConn) error {
		ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
		defer cancel()
		return pb.NewClient(conn).Push(ctx, diff)
	})
	if err != nil {
		return errors.Wrapf(err, "push to peer %s failed", peer)
	}
	return nil
}

func (c *grpcCommunication) Close() {
	c.caller.CancelAll()
}
