package pipeline

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/banshee-data/trackcore/internal/arena"
	"github.com/banshee-data/trackcore/internal/protocol"
	"github.com/banshee-data/trackcore/internal/timeutil"
)

// ErrDetectorUnavailable means no detector is connected. Callers skip the
// frame without counting an error.
var ErrDetectorUnavailable = errors.New("pipeline: detector unavailable")

// Detector finds features in a frame.
type Detector interface {
	Detect(ctx context.Context, req *protocol.DetectRequest) (*protocol.DetectResponse, error)
}

// Matcher assigns features to identities.
type Matcher interface {
	Match(ctx context.Context, req *protocol.MatchRequest) (*protocol.MatchResponse, error)
}

// Undistorter removes lens distortion from a pixel position.
type Undistorter interface {
	UndistortPoint(p protocol.Point) protocol.Point
}

// DetectorFunc adapts a function to Detector.
type DetectorFunc func(ctx context.Context, req *protocol.DetectRequest) (*protocol.DetectResponse, error)

func (f DetectorFunc) Detect(ctx context.Context, req *protocol.DetectRequest) (*protocol.DetectResponse, error) {
	return f(ctx, req)
}

// MatcherFunc adapts a function to Matcher.
type MatcherFunc func(ctx context.Context, req *protocol.MatchRequest) (*protocol.MatchResponse, error)

func (f MatcherFunc) Match(ctx context.Context, req *protocol.MatchRequest) (*protocol.MatchResponse, error) {
	return f(ctx, req)
}

// Request is the input of one step.
type Request struct {
	Image    protocol.Image
	Geometry *arena.Geometry
	// Entities are the previous identities, see Identities.
	Entities      []protocol.Entity
	UndistortMode protocol.UndistortMode
	Undistorter   Undistorter
}

// Result is the output of one successful step.
type Result struct {
	FrameNumber uint32
	Features    protocol.Features
	Skeleton    *protocol.Skeleton
	Entities    []protocol.Entity
	Latency     time.Duration
}

// Step calls a detector and a matcher. Matcher may be nil only if the
// caller never runs Track; the orchestrator always supplies one.
type Step struct {
	Detector Detector
	Matcher  Matcher
	// Clock measures Result.Latency. Nil means the wall clock.
	Clock timeutil.Clock
}

// Track runs detection, rectification and matching for one frame. Any
// failure fails the whole step; nothing is retried.
func (s Step) Track(ctx context.Context, req Request) (*Result, error) {
	if isNil(s.Detector) {
		return nil, ErrDetectorUnavailable
	}
	if isNil(s.Matcher) {
		return nil, errors.New("pipeline: no matcher")
	}
	clock := s.Clock
	if clock == nil {
		clock = timeutil.RealClock{}
	}
	start := clock.Now()
	frame := req.Image.FrameNumber

	det, err := s.Detector.Detect(ctx, &protocol.DetectRequest{Image: req.Image, Arena: req.Geometry.Arena()})
	if err != nil {
		return nil, fmt.Errorf("detect frame %d: %w", frame, err)
	}
	features := det.Features
	features.FrameNumber = frame
	skeleton := det.Skeleton
	if skeleton == nil {
		skeleton = features.Skeleton
	}
	features.Skeleton = skeleton

	Rectify(&features, req.Geometry, req.UndistortMode, req.Undistorter)

	matched, err := s.Matcher.Match(ctx, &protocol.MatchRequest{
		FrameNumber: frame,
		Entities:    req.Entities,
		Features:    &features,
	})
	if err != nil {
		return nil, fmt.Errorf("match frame %d: %w", frame, err)
	}

	return &Result{
		FrameNumber: frame,
		Features:    features,
		Skeleton:    skeleton,
		Entities:    matched.Entities,
		Latency:     clock.Since(start),
	}, nil
}

// Rectify fills WorldNodes and OutOfBounds for every feature. Nodes
// without a world position stay in the feature as NaN. Only the skeleton's
// centre node is tested against the tracking area, and not when it is NaN.
func Rectify(features *protocol.Features, g *arena.Geometry, mode protocol.UndistortMode, u Undistorter) {
	undistort := mode == protocol.UndistortPoses && !isNil(u)
	center := -1
	if features.Skeleton != nil {
		center = features.Skeleton.CenterIndex
	}

	for i := range features.Features {
		f := &features.Features[i]
		world := make([]protocol.Point, len(f.ImageNodes))
		for j, p := range f.ImageNodes {
			if undistort && !p.IsNaN() {
				p = u.UndistortPoint(p)
			}
			world[j] = g.Transform(p)
		}
		if g.Rectified() {
			f.WorldNodes = world
		} else {
			f.WorldNodes = nil
		}

		f.OutOfBounds = false
		if center >= 0 && center < len(world) {
			f.OutOfBounds = g.OutOfBounds(world[center])
		}
	}
}

// Identities builds the matcher input from the tracked identity ids, in
// order. An identity with a previous entity reuses it; a new identity
// starts at frame 0 with no feature.
func Identities(ids []uint32, last []protocol.Entity) []protocol.Entity {
	byID := make(map[uint32]protocol.Entity, len(last))
	for _, e := range last {
		byID[e.ID] = e
	}
	out := make([]protocol.Entity, 0, len(ids))
	for _, id := range ids {
		if e, ok := byID[id]; ok {
			out = append(out, e)
			continue
		}
		out = append(out, protocol.Entity{ID: id})
	}
	return out
}

// isNil reports whether an interface is nil or holds a nil pointer.
func isNil(i interface{}) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}
