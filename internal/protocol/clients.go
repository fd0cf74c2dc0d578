package protocol

import (
	"context"

	"google.golang.org/grpc"

	"github.com/banshee-data/trackcore/internal/protocol/pb"
)

// DetectRequest asks a detector for the features of one frame.
type DetectRequest struct {
	Image Image `json:"image"`
	Arena Arena `json:"arena"`
}

// DetectResponse carries the detected features and the detector skeleton.
type DetectResponse struct {
	Features Features  `json:"features"`
	Skeleton *Skeleton `json:"skeleton,omitempty"`
}

// MatchRequest asks a matcher to assign features to identities.
type MatchRequest struct {
	FrameNumber uint32    `json:"frame_number"`
	Entities    []Entity  `json:"entities"`
	Features    *Features `json:"features"`
}

// MatchResponse is the updated identity list.
type MatchResponse struct {
	Entities []Entity `json:"entities"`
}

// SaveTracksRequest hands finalized tracks to the recorder.
type SaveTracksRequest struct {
	Recording RecordingConfig `json:"recording"`
	Tracks    []TrackRecord   `json:"tracks"`
}

// DetectorClient calls a remote detector with domain types.
type DetectorClient struct{ rpc pb.DetectorClient }

func NewDetectorClient(cc grpc.ClientConnInterface) *DetectorClient {
	return &DetectorClient{rpc: pb.NewDetectorClient(cc)}
}

func (c *DetectorClient) Detect(ctx context.Context, req *DetectRequest) (*DetectResponse, error) {
	resp, err := c.rpc.Detect(ctx, DetectRequestToProto(req))
	if err != nil {
		return nil, err
	}
	return DetectResponseFromProto(resp), nil
}

func (c *DetectorClient) SetConfig(ctx context.Context, configJSON string) error {
	_, err := c.rpc.SetConfig(ctx, &pb.ConfigRequest{ConfigJson: configJSON})
	return err
}

// MatcherClient calls a remote matcher with domain types.
type MatcherClient struct{ rpc pb.MatcherClient }

func NewMatcherClient(cc grpc.ClientConnInterface) *MatcherClient {
	return &MatcherClient{rpc: pb.NewMatcherClient(cc)}
}

func (c *MatcherClient) Match(ctx context.Context, req *MatchRequest) (*MatchResponse, error) {
	resp, err := c.rpc.Match(ctx, MatchRequestToProto(req))
	if err != nil {
		return nil, err
	}
	return MatchResponseFromProto(resp), nil
}

func (c *MatcherClient) SetConfig(ctx context.Context, configJSON string) error {
	_, err := c.rpc.SetConfig(ctx, &pb.ConfigRequest{ConfigJson: configJSON})
	return err
}

// RecorderClient calls a remote recorder with domain types.
type RecorderClient struct{ rpc pb.RecorderClient }

func NewRecorderClient(cc grpc.ClientConnInterface) *RecorderClient {
	return &RecorderClient{rpc: pb.NewRecorderClient(cc)}
}

func (c *RecorderClient) SaveTracks(ctx context.Context, req *SaveTracksRequest) error {
	_, err := c.rpc.SaveTracks(ctx, SaveTracksRequestToProto(req))
	return err
}

func (c *RecorderClient) SetConfig(ctx context.Context, configJSON string) error {
	_, err := c.rpc.SetConfig(ctx, &pb.ConfigRequest{ConfigJson: configJSON})
	return err
}

// ControlClient calls the orchestrator.
type ControlClient struct{ rpc pb.ControlClient }

func NewControlClient(cc grpc.ClientConnInterface) *ControlClient {
	return &ControlClient{rpc: pb.NewControlClient(cc)}
}

func (c *ControlClient) GetState(ctx context.Context) (*Experiment, error) {
	resp, err := c.rpc.GetState(ctx, &pb.Empty{})
	if err != nil {
		return nil, err
	}
	st, err := ExperimentFromProto(resp)
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func (c *ControlClient) Command(ctx context.Context, cmd Command) error {
	msg, err := CommandToProto(cmd)
	if err != nil {
		return err
	}
	_, err = c.rpc.Command(ctx, msg)
	return err
}

func (c *ControlClient) AddImage(ctx context.Context, img Image) error {
	_, err := c.rpc.AddImage(ctx, ImageToProto(img))
	return err
}

func (c *ControlClient) Heartbeat(ctx context.Context) error {
	_, err := c.rpc.Heartbeat(ctx, &pb.Empty{})
	return err
}
