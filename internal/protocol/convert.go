package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/banshee-data/trackcore/internal/protocol/pb"
)

// ErrInvalidMessage is returned when a wire message cannot be represented
// as a domain value.
var ErrInvalidMessage = errors.New("protocol: invalid message")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidMessage}, args...)...)
}

func pointToProto(p Point) *pb.Point {
	return &pb.Point{X: finite(p.X), Y: finite(p.Y)}
}

// pointFromProto maps absent axes to NaN.
func pointFromProto(p *pb.Point) Point {
	out := NaNPoint()
	if p == nil {
		return out
	}
	if p.X != nil {
		out.X = *p.X
	}
	if p.Y != nil {
		out.Y = *p.Y
	}
	return out
}

func pointsToProto(ps []Point) []*pb.Point {
	if len(ps) == 0 {
		return nil
	}
	out := make([]*pb.Point, len(ps))
	for i, p := range ps {
		out[i] = pointToProto(p)
	}
	return out
}

func pointsFromProto(ps []*pb.Point) []Point {
	if len(ps) == 0 {
		return nil
	}
	out := make([]Point, len(ps))
	for i, p := range ps {
		out[i] = pointFromProto(p)
	}
	return out
}

func SkeletonToProto(s *Skeleton) *pb.Skeleton {
	if s == nil {
		return nil
	}
	out := &pb.Skeleton{
		Nodes:       append([]string(nil), s.Nodes...),
		CenterIndex: uint32(s.CenterIndex),
	}
	for _, e := range s.Edges {
		out.Edges = append(out.Edges, &pb.SkeletonEdge{Source: uint32(e[0]), Target: uint32(e[1])})
	}
	return out
}

func SkeletonFromProto(s *pb.Skeleton) *Skeleton {
	if s == nil {
		return nil
	}
	out := &Skeleton{
		Nodes:       append([]string(nil), s.GetNodes()...),
		CenterIndex: int(s.GetCenterIndex()),
	}
	for _, e := range s.GetEdges() {
		out.Edges = append(out.Edges, [2]int{int(e.GetSource()), int(e.GetTarget())})
	}
	return out
}

func FeatureToProto(f Feature) *pb.Feature {
	out := &pb.Feature{
		ImageNodes:  pointsToProto(f.ImageNodes),
		WorldNodes:  pointsToProto(f.WorldNodes),
		Score:       f.Score,
		OutOfBounds: f.OutOfBounds,
	}
	if f.EntityID != nil {
		id := *f.EntityID
		out.EntityId = &id
	}
	return out
}

func FeatureFromProto(f *pb.Feature) Feature {
	out := Feature{
		ImageNodes:  pointsFromProto(f.GetImageNodes()),
		WorldNodes:  pointsFromProto(f.GetWorldNodes()),
		Score:       f.GetScore(),
		OutOfBounds: f.GetOutOfBounds(),
	}
	if f != nil && f.EntityId != nil {
		id := *f.EntityId
		out.EntityID = &id
	}
	return out
}

func FeaturesToProto(f *Features) *pb.Features {
	if f == nil {
		return nil
	}
	out := &pb.Features{FrameNumber: f.FrameNumber, Skeleton: SkeletonToProto(f.Skeleton)}
	for _, ft := range f.Features {
		out.Features = append(out.Features, FeatureToProto(ft))
	}
	return out
}

func FeaturesFromProto(f *pb.Features) *Features {
	if f == nil {
		return nil
	}
	out := &Features{FrameNumber: f.GetFrameNumber(), Skeleton: SkeletonFromProto(f.GetSkeleton())}
	for _, ft := range f.GetFeatures() {
		out.Features = append(out.Features, FeatureFromProto(ft))
	}
	return out
}

func entitiesToProto(es []Entity) []*pb.Entity {
	var out []*pb.Entity
	for _, e := range es {
		pe := &pb.Entity{Id: e.ID, FrameNumber: e.FrameNumber}
		if e.Feature != nil {
			pe.Feature = FeatureToProto(*e.Feature)
		}
		out = append(out, pe)
	}
	return out
}

func entitiesFromProto(es []*pb.Entity) []Entity {
	var out []Entity
	for _, e := range es {
		de := Entity{ID: e.GetId(), FrameNumber: e.GetFrameNumber()}
		if e.GetFeature() != nil {
			f := FeatureFromProto(e.GetFeature())
			de.Feature = &f
		}
		out = append(out, de)
	}
	return out
}

func ImageToProto(img Image) *pb.Image {
	return &pb.Image{
		StreamId:    img.StreamID,
		FrameNumber: img.FrameNumber,
		ShmId:       img.ShmID,
		Width:       img.Width,
		Height:      img.Height,
		Channels:    img.Channels,
		TimestampNs: img.TimestampNs,
	}
}

func ImageFromProto(img *pb.Image) Image {
	return Image{
		StreamID:    img.GetStreamId(),
		FrameNumber: img.GetFrameNumber(),
		ShmID:       img.GetShmId(),
		Width:       img.GetWidth(),
		Height:      img.GetHeight(),
		Channels:    img.GetChannels(),
		TimestampNs: img.GetTimestampNs(),
	}
}

func ArenaToProto(a Arena) *pb.Arena {
	return &pb.Arena{
		WidthCm:              a.WidthCm,
		HeightCm:             a.HeightCm,
		RectificationCorners: pointsToProto(a.RectificationCorners),
		TrackingAreaCorners:  pointsToProto(a.TrackingAreaCorners),
	}
}

func ArenaFromProto(a *pb.Arena) Arena {
	return Arena{
		WidthCm:              a.GetWidthCm(),
		HeightCm:             a.GetHeightCm(),
		RectificationCorners: pointsFromProto(a.GetRectificationCorners()),
		TrackingAreaCorners:  pointsFromProto(a.GetTrackingAreaCorners()),
	}
}

func RecordingConfigToProto(c *RecordingConfig) *pb.RecordingConfig {
	if c == nil {
		return nil
	}
	return &pb.RecordingConfig{StreamId: c.StreamID, Path: c.Path, Fps: c.FPS, Width: c.Width, Height: c.Height}
}

func RecordingConfigFromProto(c *pb.RecordingConfig) *RecordingConfig {
	if c == nil {
		return nil
	}
	return &RecordingConfig{
		StreamID: c.GetStreamId(),
		Path:     c.GetPath(),
		FPS:      c.GetFps(),
		Width:    c.GetWidth(),
		Height:   c.GetHeight(),
	}
}

func ComponentConfigToProto(c ComponentConfig) *pb.ComponentConfig {
	out := &pb.ComponentConfig{
		Id:         c.ID,
		Services:   append([]string(nil), c.Services...),
		Address:    c.Address,
		ConfigJson: string(c.ConfigJSON),
	}
	if p := c.Process; p != nil {
		pp := &pb.ProcessConfig{Command: p.Command, Args: append([]string(nil), p.Args...), Dir: p.Dir}
		keys := make([]string, 0, len(p.Env))
		for k := range p.Env {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			pp.Env = append(pp.Env, k+"="+p.Env[k])
		}
		out.Process = pp
	}
	return out
}

func ComponentConfigFromProto(c *pb.ComponentConfig) (ComponentConfig, error) {
	out := ComponentConfig{
		ID:       c.GetId(),
		Services: append([]string(nil), c.GetServices()...),
		Address:  c.GetAddress(),
	}
	if raw := c.GetConfigJson(); raw != "" {
		if !json.Valid([]byte(raw)) {
			return ComponentConfig{}, invalidf("component %q: config_json is not valid JSON", out.ID)
		}
		out.ConfigJSON = json.RawMessage(raw)
	}
	if p := c.GetProcess(); p != nil {
		out.Process = &ProcessConfig{Command: p.GetCommand(), Args: append([]string(nil), p.GetArgs()...), Dir: p.GetDir()}
		for _, kv := range p.GetEnv() {
			k, v, ok := strings.Cut(kv, "=")
			if !ok || k == "" {
				return ComponentConfig{}, invalidf("component %q: env entry %q is not KEY=VALUE", out.ID, kv)
			}
			if out.Process.Env == nil {
				out.Process.Env = make(map[string]string)
			}
			out.Process.Env[k] = v
		}
	}
	return out, nil
}

func TrackToProto(t TrackRecord) *pb.Track {
	out := &pb.Track{EntityId: t.EntityID, Skeleton: SkeletonToProto(t.Skeleton)}
	for _, o := range t.Observations {
		out.Observations = append(out.Observations, &pb.Observation{
			FrameNumber: o.FrameNumber,
			Feature:     FeatureToProto(o.Feature),
		})
	}
	return out
}

func TrackFromProto(t *pb.Track) TrackRecord {
	out := TrackRecord{EntityID: t.GetEntityId(), Skeleton: SkeletonFromProto(t.GetSkeleton())}
	for _, o := range t.GetObservations() {
		out.Observations = append(out.Observations, Observation{
			FrameNumber: o.GetFrameNumber(),
			Feature:     FeatureFromProto(o.GetFeature()),
		})
	}
	return out
}

func ExperimentToProto(e Experiment) *pb.Experiment {
	out := &pb.Experiment{
		PlaybackState:   pb.PlaybackState(e.PlaybackState),
		RecordingState:  pb.RecordingState(e.RecordingState),
		TargetFps:       e.TargetFPS,
		RealtimeMode:    e.RealtimeMode,
		UndistortMode:   pb.UndistortMode(e.UndistortMode),
		Arena:           ArenaToProto(e.Arena),
		EntityIds:       append([]uint32(nil), e.EntityIDs...),
		LastFeatures:    FeaturesToProto(e.LastFeatures),
		LastEntities:    entitiesToProto(e.LastEntities),
		RecordingConfig: RecordingConfigToProto(e.RecordingConfig),
		Skeleton:        SkeletonToProto(e.Skeleton),
		Metrics: &pb.TrackingMetrics{
			DecodedFrames: e.Metrics.DecodedFrames,
			DroppedFrames: e.Metrics.DroppedFrames,
			TrackedFrames: e.Metrics.TrackedFrames,
			EncodedFrames: e.Metrics.EncodedFrames,
			DecodeErrors:  e.Metrics.DecodeErrors,
			TrackErrors:   e.Metrics.TrackErrors,
			EncodeErrors:  e.Metrics.EncodeErrors,
		},
	}
	if e.LastImage != nil {
		out.LastImage = ImageToProto(*e.LastImage)
	}
	if v := e.VideoInfo; v != nil {
		out.VideoInfo = &pb.VideoInfo{Path: v.Path, Width: v.Width, Height: v.Height, Fps: v.FPS, FrameCount: v.FrameCount}
	}
	for _, c := range e.Components {
		out.Components = append(out.Components, ComponentConfigToProto(c))
	}
	return out
}

func ExperimentFromProto(e *pb.Experiment) (Experiment, error) {
	out := Experiment{
		PlaybackState:   PlaybackState(e.GetPlaybackState()),
		RecordingState:  RecordingState(e.GetRecordingState()),
		TargetFPS:       e.GetTargetFps(),
		RealtimeMode:    e.GetRealtimeMode(),
		UndistortMode:   UndistortMode(e.GetUndistortMode()),
		Arena:           ArenaFromProto(e.GetArena()),
		EntityIDs:       append([]uint32(nil), e.GetEntityIds()...),
		LastFeatures:    FeaturesFromProto(e.GetLastFeatures()),
		LastEntities:    entitiesFromProto(e.GetLastEntities()),
		RecordingConfig: RecordingConfigFromProto(e.GetRecordingConfig()),
		Skeleton:        SkeletonFromProto(e.GetSkeleton()),
	}
	if m := e.GetMetrics(); m != nil {
		out.Metrics = TrackingMetrics{
			DecodedFrames: m.GetDecodedFrames(),
			DroppedFrames: m.GetDroppedFrames(),
			TrackedFrames: m.GetTrackedFrames(),
			EncodedFrames: m.GetEncodedFrames(),
			DecodeErrors:  m.GetDecodeErrors(),
			TrackErrors:   m.GetTrackErrors(),
			EncodeErrors:  m.GetEncodeErrors(),
		}
	}
	if e.GetLastImage() != nil {
		img := ImageFromProto(e.GetLastImage())
		out.LastImage = &img
	}
	if v := e.GetVideoInfo(); v != nil {
		out.VideoInfo = &VideoInfo{Path: v.GetPath(), Width: v.GetWidth(), Height: v.GetHeight(), FPS: v.GetFps(), FrameCount: v.GetFrameCount()}
	}
	for _, c := range e.GetComponents() {
		cfg, err := ComponentConfigFromProto(c)
		if err != nil {
			return Experiment{}, err
		}
		out.Components = append(out.Components, cfg)
	}
	return out, nil
}

// CommandToProto fails when the payload selected by Kind is missing.
func CommandToProto(c Command) (*pb.Command, error) {
	missing := func() (*pb.Command, error) { return nil, invalidf("command %s: missing payload", c.Kind) }
	switch c.Kind {
	case CmdSeek:
		if c.Frame == nil {
			return missing()
		}
		return &pb.Command{Kind: &pb.Command_Seek{Seek: *c.Frame}}, nil
	case CmdShutdown:
		return &pb.Command{Kind: &pb.Command_Shutdown{Shutdown: &pb.Empty{}}}, nil
	case CmdPlaybackState:
		if c.Playback == nil {
			return missing()
		}
		return &pb.Command{Kind: &pb.Command_PlaybackState{PlaybackState: pb.PlaybackState(*c.Playback)}}, nil
	case CmdRecordingState:
		if c.Recording == nil {
			return missing()
		}
		return &pb.Command{Kind: &pb.Command_RecordingState{RecordingState: &pb.RecordingCommand{
			State:  pb.RecordingState(*c.Recording),
			Config: RecordingConfigToProto(c.RecordingConfig),
		}}}, nil
	case CmdRealtimeMode:
		if c.Realtime == nil {
			return missing()
		}
		return &pb.Command{Kind: &pb.Command_RealtimeMode{RealtimeMode: *c.Realtime}}, nil
	case CmdUndistortMode:
		if c.Undistort == nil {
			return missing()
		}
		return &pb.Command{Kind: &pb.Command_UndistortMode{UndistortMode: pb.UndistortMode(*c.Undistort)}}, nil
	case CmdTargetFPS:
		if c.FPS == nil {
			return missing()
		}
		return &pb.Command{Kind: &pb.Command_TargetFps{TargetFps: *c.FPS}}, nil
	case CmdArena:
		if c.Arena == nil {
			return missing()
		}
		return &pb.Command{Kind: &pb.Command_Arena{Arena: ArenaToProto(*c.Arena)}}, nil
	case CmdAddEntity:
		return &pb.Command{Kind: &pb.Command_AddEntity{AddEntity: &pb.Empty{}}}, nil
	case CmdRemoveEntity:
		rm := &pb.RemoveEntityCommand{}
		if c.EntityID != nil {
			id := *c.EntityID
			rm.EntityId = &id
		}
		return &pb.Command{Kind: &pb.Command_RemoveEntity{RemoveEntity: rm}}, nil
	case CmdComponentConfig:
		if c.Component == nil {
			return missing()
		}
		return &pb.Command{Kind: &pb.Command_ComponentConfig{ComponentConfig: ComponentConfigToProto(*c.Component)}}, nil
	}
	return nil, invalidf("unknown command kind %q", c.Kind)
}

// CommandFromProto rejects an empty oneof and enum values outside the
// known range.
func CommandFromProto(c *pb.Command) (Command, error) {
	switch k := c.GetKind().(type) {
	case *pb.Command_Seek:
		return SeekCommand(k.Seek), nil
	case *pb.Command_Shutdown:
		return ShutdownCommand(), nil
	case *pb.Command_PlaybackState:
		if _, ok := pb.PlaybackState_name[int32(k.PlaybackState)]; !ok {
			return Command{}, invalidf("unknown playback state %d", k.PlaybackState)
		}
		return PlaybackCommand(PlaybackState(k.PlaybackState)), nil
	case *pb.Command_RecordingState:
		st := k.RecordingState.GetState()
		if _, ok := pb.RecordingState_name[int32(st)]; !ok {
			return Command{}, invalidf("unknown recording state %d", st)
		}
		return RecordingCommand(RecordingState(st), RecordingConfigFromProto(k.RecordingState.GetConfig())), nil
	case *pb.Command_RealtimeMode:
		return RealtimeCommand(k.RealtimeMode), nil
	case *pb.Command_UndistortMode:
		if _, ok := pb.UndistortMode_name[int32(k.UndistortMode)]; !ok {
			return Command{}, invalidf("unknown undistort mode %d", k.UndistortMode)
		}
		return UndistortCommand(UndistortMode(k.UndistortMode)), nil
	case *pb.Command_TargetFps:
		return TargetFPSCommand(k.TargetFps), nil
	case *pb.Command_Arena:
		return ArenaCommand(ArenaFromProto(k.Arena)), nil
	case *pb.Command_AddEntity:
		return AddEntityCommand(), nil
	case *pb.Command_RemoveEntity:
		var id *uint32
		if k.RemoveEntity != nil && k.RemoveEntity.EntityId != nil {
			v := *k.RemoveEntity.EntityId
			id = &v
		}
		return RemoveEntityCommand(id), nil
	case *pb.Command_ComponentConfig:
		cfg, err := ComponentConfigFromProto(k.ComponentConfig)
		if err != nil {
			return Command{}, err
		}
		return ComponentConfigCommand(cfg), nil
	}
	return Command{}, invalidf("command has no kind")
}

func DetectRequestToProto(r *DetectRequest) *pb.DetectRequest {
	return &pb.DetectRequest{Image: ImageToProto(r.Image), Arena: ArenaToProto(r.Arena)}
}

func DetectRequestFromProto(r *pb.DetectRequest) *DetectRequest {
	return &DetectRequest{Image: ImageFromProto(r.GetImage()), Arena: ArenaFromProto(r.GetArena())}
}

func DetectResponseToProto(r *DetectResponse) *pb.DetectResponse {
	return &pb.DetectResponse{Features: FeaturesToProto(&r.Features), Skeleton: SkeletonToProto(r.Skeleton)}
}

func DetectResponseFromProto(r *pb.DetectResponse) *DetectResponse {
	out := &DetectResponse{Skeleton: SkeletonFromProto(r.GetSkeleton())}
	if f := FeaturesFromProto(r.GetFeatures()); f != nil {
		out.Features = *f
	}
	return out
}

func MatchRequestToProto(r *MatchRequest) *pb.MatchRequest {
	return &pb.MatchRequest{
		FrameNumber: r.FrameNumber,
		Entities:    entitiesToProto(r.Entities),
		Features:    FeaturesToProto(r.Features),
	}
}

func MatchRequestFromProto(r *pb.MatchRequest) *MatchRequest {
	return &MatchRequest{
		FrameNumber: r.GetFrameNumber(),
		Entities:    entitiesFromProto(r.GetEntities()),
		Features:    FeaturesFromProto(r.GetFeatures()),
	}
}

func MatchResponseToProto(r *MatchResponse) *pb.MatchResponse {
	return &pb.MatchResponse{Entities: entitiesToProto(r.Entities)}
}

func MatchResponseFromProto(r *pb.MatchResponse) *MatchResponse {
	return &MatchResponse{Entities: entitiesFromProto(r.GetEntities())}
}

func SaveTracksRequestToProto(r *SaveTracksRequest) *pb.SaveTracksRequest {
	out := &pb.SaveTracksRequest{Recording: RecordingConfigToProto(&r.Recording)}
	for _, t := range r.Tracks {
		out.Tracks = append(out.Tracks, TrackToProto(t))
	}
	return out
}

func SaveTracksRequestFromProto(r *pb.SaveTracksRequest) *SaveTracksRequest {
	out := &SaveTracksRequest{}
	if c := RecordingConfigFromProto(r.GetRecording()); c != nil {
		out.Recording = *c
	}
	for _, t := range r.GetTracks() {
		out.Tracks = append(out.Tracks, TrackFromProto(t))
	}
	return out
}

// finite maps NaN and infinities to an absent value.
func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
