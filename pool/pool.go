package pool

import (
	grpc_prometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	grpc "google.golang.org/grpc"
)

type RPCJob func(*grpc.ClientConn) error

// Pool owns the single long lived connection to one remote address.
type Pool struct {
	address string
	conn    *grpc.ClientConn
}

func (a *Pool) Call(job RPCJob) error {
	return job(a.conn)
}
func (a *Pool) Cancel() {
	a.conn.Close()
}
func NewPool(addr string) (*Pool, error) {
	c := &Pool{
		address: addr,
	}
	conn, err := grpc.Dial(addr,
		grpc.WithStreamInterceptor(grpc_prometheus.StreamClientInterceptor),
		grpc.WithUnaryInterceptor(grpc_prometheus.UnaryClientInterceptor),
		grpc.WithInsecure(), grpc.WithAuthority(addr),
	)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	return c, nil
}
