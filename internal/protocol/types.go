package protocol

import (
	"encoding/json"
	"fmt"
	"math"
)

// PlaybackState is the frame source state.
type PlaybackState int

const (
	Paused PlaybackState = iota
	Playing
	EndOfStream
)

var playbackNames = []string{"paused", "playing", "eos"}

func (s PlaybackState) String() string { return enumName(playbackNames, int(s)) }

func (s PlaybackState) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *PlaybackState) UnmarshalText(b []byte) error {
	return parseEnum(playbackNames, "playback state", b, (*int)(s))
}

// RecordingState is the lifecycle of one recording.
type RecordingState int

const (
	RecordingInitial RecordingState = iota
	Recording
	RecordingFinished
	RecordingReplay
)

var recordingNames = []string{"initial", "recording", "finished", "replay"}

func (s RecordingState) String() string { return enumName(recordingNames, int(s)) }

func (s RecordingState) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *RecordingState) UnmarshalText(b []byte) error {
	return parseEnum(recordingNames, "recording state", b, (*int)(s))
}

// UndistortMode selects where lens undistortion is applied.
type UndistortMode int

const (
	UndistortNone UndistortMode = iota
	// UndistortImage undistorts whole frames in the frame source.
	UndistortImage
	// UndistortPoses undistorts only detected node coordinates.
	UndistortPoses
)

var undistortNames = []string{"none", "image", "poses"}

func (m UndistortMode) String() string { return enumName(undistortNames, int(m)) }

func (m UndistortMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *UndistortMode) UnmarshalText(b []byte) error {
	return parseEnum(undistortNames, "undistort mode", b, (*int)(m))
}

// ServiceType is the capability a component declares.
type ServiceType string

const (
	ServiceDetector ServiceType = "detector"
	ServiceMatcher  ServiceType = "matcher"
	ServiceRecorder ServiceType = "recorder"
)

// ParseServiceType accepts the lower-case capability names used in
// configuration files.
func ParseServiceType(s string) (ServiceType, error) {
	switch t := ServiceType(s); t {
	case ServiceDetector, ServiceMatcher, ServiceRecorder:
		return t, nil
	}
	return "", fmt.Errorf("unknown service type %q", s)
}

func enumName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("unknown(%d)", i)
	}
	return names[i]
}

func parseEnum(names []string, what string, b []byte, dst *int) error {
	for i, n := range names {
		if n == string(b) {
			*dst = i
			return nil
		}
	}
	return fmt.Errorf("unknown %s %q", what, b)
}

// Point is a 2D coordinate. Either axis may be NaN when a transform has no
// defined result; NaN travels as JSON null and as an absent
// protobuf field.
type Point struct {
	X float64
	Y float64
}

// NaNPoint returns a point with both axes NaN.
func NaNPoint() Point { return Point{X: math.NaN(), Y: math.NaN()} }

// IsNaN reports whether either axis is NaN.
func (p Point) IsNaN() bool { return math.IsNaN(p.X) || math.IsNaN(p.Y) }

type wirePoint struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(wirePoint{X: finite(p.X), Y: finite(p.Y)})
}

func (p *Point) UnmarshalJSON(b []byte) error {
	var w wirePoint
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	p.X, p.Y = math.NaN(), math.NaN()
	if w.X != nil {
		p.X = *w.X
	}
	if w.Y != nil {
		p.Y = *w.Y
	}
	return nil
}

// Skeleton is the node topology shared by every feature of a detector.
type Skeleton struct {
	Nodes       []string `json:"nodes"`
	Edges       [][2]int `json:"edges,omitempty"`
	CenterIndex int      `json:"center_index"`
}

// Feature is one detected instance in one frame.
type Feature struct {
	ImageNodes  []Point `json:"image_nodes"`
	WorldNodes  []Point `json:"world_nodes,omitempty"`
	Score       float64 `json:"score"`
	EntityID    *uint32 `json:"entity_id,omitempty"`
	OutOfBounds bool    `json:"out_of_bounds"`
}

// Clone returns a deep copy.
func (f *Feature) Clone() *Feature {
	if f == nil {
		return nil
	}
	c := *f
	c.ImageNodes = append([]Point(nil), f.ImageNodes...)
	if f.WorldNodes != nil {
		c.WorldNodes = append([]Point(nil), f.WorldNodes...)
	}
	if f.EntityID != nil {
		id := *f.EntityID
		c.EntityID = &id
	}
	return &c
}

// Features is the detector output for one frame.
type Features struct {
	FrameNumber uint32    `json:"frame_number"`
	Features    []Feature `json:"features"`
	Skeleton    *Skeleton `json:"skeleton,omitempty"`
}

// Entity is a tracked identity as of FrameNumber, its last successful match.
type Entity struct {
	ID          uint32   `json:"id"`
	FrameNumber uint32   `json:"frame_number"`
	Feature     *Feature `json:"feature,omitempty"`
}

// Observation is one matched pose of an identity.
type Observation struct {
	FrameNumber uint32  `json:"frame_number"`
	Feature     Feature `json:"feature"`
}

// TrackRecord is the finalized history of one identity, pushed to the
// recorder when a recording finishes.
type TrackRecord struct {
	EntityID     uint32        `json:"entity_id"`
	Skeleton     *Skeleton     `json:"skeleton,omitempty"`
	Observations []Observation `json:"observations"`
}

// Image describes a frame whose pixels live in a shared memory segment.
type Image struct {
	StreamID    string `json:"stream_id"`
	FrameNumber uint32 `json:"frame_number"`
	ShmID       string `json:"shm_id"`
	Width       uint32 `json:"width"`
	Height      uint32 `json:"height"`
	Channels    uint32 `json:"channels"`
	TimestampNs int64  `json:"timestamp_ns,omitempty"`
}

// ByteLength is the payload size of a tightly packed frame.
func (i Image) ByteLength() int {
	return int(i.Width) * int(i.Height) * int(i.Channels)
}

// Arena is the physical tracking area. Rectification corners are given in
// pixels, clockwise from top-left; the tracking area is a pixel polygon.
type Arena struct {
	WidthCm              float64 `json:"width_cm" yaml:"width_cm"`
	HeightCm             float64 `json:"height_cm" yaml:"height_cm"`
	RectificationCorners []Point `json:"rectification_corners" yaml:"-"`
	TrackingAreaCorners  []Point `json:"tracking_area_corners" yaml:"-"`
}

// VideoInfo describes the open frame source.
type VideoInfo struct {
	Path       string  `json:"path"`
	Width      uint32  `json:"width"`
	Height     uint32  `json:"height"`
	FPS        float64 `json:"fps"`
	FrameCount uint32  `json:"frame_count"`
}

// RecordingConfig selects the stream to record and where to write it.
type RecordingConfig struct {
	StreamID string  `json:"stream_id" yaml:"stream_id"`
	Path     string  `json:"path" yaml:"path"`
	FPS      float64 `json:"fps" yaml:"fps"`
	Width    uint32  `json:"width" yaml:"width"`
	Height   uint32  `json:"height" yaml:"height"`
}

// ProcessConfig launches a component as a child process.
type ProcessConfig struct {
	Command string            `json:"command" yaml:"command"`
	Args    []string          `json:"args,omitempty" yaml:"args"`
	Env     map[string]string `json:"env,omitempty" yaml:"env"`
	Dir     string            `json:"dir,omitempty" yaml:"dir"`
}

// ComponentConfig describes one worker component.
type ComponentConfig struct {
	ID         string          `json:"id" yaml:"id"`
	Services   []string        `json:"services" yaml:"services"`
	Address    string          `json:"address,omitempty" yaml:"address"`
	ConfigJSON json.RawMessage `json:"config_json,omitempty" yaml:"-"`
	Process    *ProcessConfig  `json:"process,omitempty" yaml:"process"`
}

// TrackingMetrics are counters surfaced through the experiment state.
type TrackingMetrics struct {
	DecodedFrames uint64 `json:"decoded_frames"`
	DroppedFrames uint64 `json:"dropped_frames"`
	TrackedFrames uint64 `json:"tracked_frames"`
	EncodedFrames uint64 `json:"encoded_frames"`
	DecodeErrors  uint64 `json:"decode_errors"`
	TrackErrors   uint64 `json:"track_errors"`
	EncodeErrors  uint64 `json:"encode_errors"`
}

// Experiment is a snapshot of the orchestrator state.
type Experiment struct {
	PlaybackState   PlaybackState     `json:"playback_state"`
	RecordingState  RecordingState    `json:"recording_state"`
	TargetFPS       float64           `json:"target_fps"`
	RealtimeMode    bool              `json:"realtime_mode"`
	UndistortMode   UndistortMode     `json:"undistort_mode"`
	Arena           Arena             `json:"arena"`
	EntityIDs       []uint32          `json:"entity_ids"`
	LastImage       *Image            `json:"last_image,omitempty"`
	LastFeatures    *Features         `json:"last_features,omitempty"`
	LastEntities    []Entity          `json:"last_entities,omitempty"`
	VideoInfo       *VideoInfo        `json:"video_info,omitempty"`
	RecordingConfig *RecordingConfig  `json:"recording_config,omitempty"`
	Skeleton        *Skeleton         `json:"skeleton,omitempty"`
	Components      []ComponentConfig `json:"components,omitempty"`
	Metrics         TrackingMetrics   `json:"metrics"`
}
