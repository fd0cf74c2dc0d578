package core

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/banshee-data/trackcore/internal/protocol"
	"github.com/banshee-data/trackcore/internal/protocol/pb"
)

// Service exposes an Orchestrator as the gRPC control service.
type Service struct {
	pb.UnimplementedControlServer
	o *Orchestrator
}

var _ pb.ControlServer = (*Service)(nil)

func NewService(o *Orchestrator) *Service {
	return &Service{o: o}
}

func (s *Service) GetState(ctx context.Context, _ *pb.Empty) (*pb.Experiment, error) {
	st, err := s.o.State(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	return protocol.ExperimentToProto(st), nil
}

func (s *Service) Command(ctx context.Context, req *pb.Command) (*pb.Empty, error) {
	cmd, err := protocol.CommandFromProto(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err := s.o.Command(ctx, cmd); err != nil {
		return nil, toStatus(err)
	}
	return &pb.Empty{}, nil
}

func (s *Service) AddImage(ctx context.Context, img *pb.Image) (*pb.Empty, error) {
	if err := s.o.AddImage(ctx, protocol.ImageFromProto(img)); err != nil {
		return nil, toStatus(err)
	}
	return &pb.Empty{}, nil
}

func (s *Service) Heartbeat(context.Context, *pb.Empty) (*pb.Empty, error) {
	if err := s.o.Heartbeat(); err != nil {
		return nil, toStatus(err)
	}
	return &pb.Empty{}, nil
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, ErrInvalidCommand):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, ErrShutdown):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
