package mixer

import (
	"context"
	"fmt"
	"net"

	grpc_prometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/vx-labs/mix-engine/mixer/pb"
	"github.com/vx-labs/mix-engine/network"
	"go.uber.org/zap"
	grpc "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Server exposes the mixer's four verbs to peers and operators.
type Server struct {
	mixer      *PushMixer
	logger     *zap.Logger
	grpcServer *grpc.Server
}

func NewServer(mixer *PushMixer, logger *zap.Logger) *Server {
	return &Server{
		mixer:  mixer,
		logger: logger,
	}
}

func (s *Server) Pull(ctx context.Context, input *pb.PullInput) (*pb.PullOutput, error) {
	diff, err := s.mixer.Pull(input.Argument)
	if err != nil {
		s.logger.Warn("inbound pull failed", zap.Error(err))
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &pb.PullOutput{Diff: diff}, nil
}
func (s *Server) GetPullArgument(ctx context.Context, input *pb.GetPullArgumentInput) (*pb.GetPullArgumentOutput, error) {
	argument, err := s.mixer.GetPullArgument()
	if err != nil {
		s.logger.Warn("inbound get_pull_argument failed", zap.Error(err))
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &pb.GetPullArgumentOutput{Argument: argument}, nil
}
func (s *Server) Push(ctx context.Context, input *pb.PushInput) (*pb.PushOutput, error) {
	if err := s.mixer.Push(input.Diff); err != nil {
		s.logger.Warn("inbound push failed", zap.Error(err))
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return &pb.PushOutput{}, nil
}
func (s *Server) DoMix(ctx context.Context, input *pb.DoMixInput) (*pb.DoMixOutput, error) {
	return &pb.DoMixOutput{Ok: s.mixer.DoMix()}, nil
}

// Serve starts the grpc listener on the given port and returns it, or
// nil when the listener could not be opened.
func (s *Server) Serve(port int) net.Listener {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		s.logger.Error("failed to open mix listener", zap.Int("bind_port", port), zap.Error(err))
		return nil
	}
	server := grpc.NewServer(
		network.GRPCServerOptions()...,
	)
	pb.RegisterMixServiceServer(server, s)
	grpc_prometheus.Register(server)
	s.grpcServer = server
	go server.Serve(listener)
	return listener
}

func (s *Server) Shutdown() {
	if s.grpcServer != nil {
		s.grpcServer.GracefulStop()
	}
}
