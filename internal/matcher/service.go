package matcher

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/banshee-data/trackcore/internal/protocol"
	"github.com/banshee-data/trackcore/internal/protocol/pb"
)

// Local runs Match in process. The orchestrator uses it while no matcher
// component is connected.
type Local struct{}

func NewLocal() Local { return Local{} }

// Match validates the request and runs Match.
func (Local) Match(_ context.Context, req *protocol.MatchRequest) (*protocol.MatchResponse, error) {
	if req == nil || req.Features == nil {
		return nil, status.Error(codes.InvalidArgument, "features must be set")
	}
	return &protocol.MatchResponse{
		Entities: Match(req.FrameNumber, req.Entities, req.Features.Features),
	}, nil
}

// Service is the matcher exposed over gRPC. The orchestrator embeds it as
// the HungarianMatcher component.
type Service struct {
	pb.UnimplementedMatcherServer
	local Local
}

var _ pb.MatcherServer = (*Service)(nil)

// NewService returns a stateless matcher service.
func NewService() *Service {
	return &Service{}
}

func (s *Service) Match(ctx context.Context, req *pb.MatchRequest) (*pb.MatchResponse, error) {
	if req.GetFeatures() == nil {
		return nil, status.Error(codes.InvalidArgument, "features must be set")
	}
	resp, err := s.local.Match(ctx, protocol.MatchRequestFromProto(req))
	if err != nil {
		return nil, err
	}
	return protocol.MatchResponseToProto(resp), nil
}

// SetConfig accepts and ignores configuration; the matcher has none.
func (s *Service) SetConfig(context.Context, *pb.ConfigRequest) (*pb.Empty, error) {
	return &pb.Empty{}, nil
}
