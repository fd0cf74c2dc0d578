package core

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/banshee-data/trackcore/internal/arena"
	"github.com/banshee-data/trackcore/internal/component"
	"github.com/banshee-data/trackcore/internal/matcher"
	"github.com/banshee-data/trackcore/internal/monitoring"
	"github.com/banshee-data/trackcore/internal/pipeline"
	"github.com/banshee-data/trackcore/internal/protocol"
	"github.com/banshee-data/trackcore/internal/source"
	"github.com/banshee-data/trackcore/internal/timeutil"
	"github.com/banshee-data/trackcore/internal/track"
)

var (
	// ErrInvalidCommand wraps every command validation failure.
	ErrInvalidCommand = errors.New("invalid command")
	// ErrShutdown is returned once the orchestrator has stopped.
	ErrShutdown = errors.New("orchestrator shut down")
)

const (
	DefaultTargetFPS       = 30.0
	DefaultStatsInterval   = 5 * time.Second
	DefaultRecorderTimeout = 10 * time.Second
	DefaultArenaSizeCm     = 100
)

// Options configure an Orchestrator. Only Source is required.
type Options struct {
	Source      source.Source
	SinkFactory source.SinkFactory
	Registry    *component.Registry
	Components  []protocol.ComponentConfig

	Arena           *protocol.Arena
	TargetFPS       float64
	Realtime        bool
	Entities        int
	RecordingConfig *protocol.RecordingConfig
	Undistorter     pipeline.Undistorter
	// CopyFrame reads a private copy of a recorded frame that arrived
	// without one. It defaults to source.CopyFrame.
	CopyFrame func(protocol.Image) ([]byte, error)

	// Detector replaces the registry's detector when set.
	Detector pipeline.Detector
	// LocalMatcher is used while no matcher component is connected.
	LocalMatcher pipeline.Matcher

	Clock           timeutil.Clock
	Metrics         *monitoring.Metrics
	Logger          *zap.Logger
	StatsInterval   time.Duration
	RecorderTimeout time.Duration
}

type commandReq struct {
	cmd   protocol.Command
	reply chan error
}

type imageReq struct {
	img   protocol.Image
	reply chan error
}

// Orchestrator runs the reactor loop. Create it with New and start it
// with Run.
type Orchestrator struct {
	opts    Options
	log     *zap.Logger
	metrics *monitoring.Metrics
	reg     *component.Registry

	commands   chan commandReq
	queries    chan chan protocol.Experiment
	images     chan imageReq
	decodeDone chan decodeResult
	trackDone  chan trackResult
	encodeDone chan encodeResult
	done       chan struct{}

	// sourceMu serialises Next and Close on the frame source. An aborted
	// decode may still be inside Next when its successor starts.
	sourceMu sync.Mutex

	// Everything below is owned by the Run goroutine.
	runCtx        context.Context
	state         protocol.Experiment
	geometry      *arena.Geometry
	tracks        *track.Store
	entityCounter uint32
	generation    uint64
	decode        *task
	track         *task
	encode        *task
	untracked     *protocol.Image
	encodeQueue   []encodeJob
	sink          source.Sink
	sourceClosed  bool
	ticker        timeutil.Ticker
}

// New validates opts and builds the initial experiment state.
func New(opts Options) (*Orchestrator, error) {
	if opts.Source == nil {
		return nil, errors.New("core: frame source is required")
	}
	if opts.TargetFPS == 0 {
		opts.TargetFPS = DefaultTargetFPS
	}
	if !validFPS(opts.TargetFPS) {
		return nil, fmt.Errorf("core: target fps must be > 0, got %g", opts.TargetFPS)
	}
	if opts.Clock == nil {
		opts.Clock = timeutil.RealClock{}
	}
	if opts.Metrics == nil {
		opts.Metrics = monitoring.NewMetrics()
	}
	if opts.Logger == nil {
		opts.Logger = monitoring.L()
	}
	if opts.StatsInterval <= 0 {
		opts.StatsInterval = DefaultStatsInterval
	}
	if opts.RecorderTimeout <= 0 {
		opts.RecorderTimeout = DefaultRecorderTimeout
	}
	if opts.CopyFrame == nil {
		opts.CopyFrame = source.CopyFrame
	}
	if opts.LocalMatcher == nil {
		opts.LocalMatcher = matcher.NewLocal()
	}
	if opts.Registry == nil {
		opts.Registry = component.NewRegistry(component.Options{Metrics: opts.Metrics})
	}

	a := protocol.Arena{WidthCm: DefaultArenaSizeCm, HeightCm: DefaultArenaSizeCm}
	if opts.Arena != nil {
		a = *opts.Arena
	}
	geometry, err := arena.New(a)
	if err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}

	info := opts.Source.Info()
	o := &Orchestrator{
		opts:       opts,
		log:        opts.Logger.Named("core"),
		metrics:    opts.Metrics,
		reg:        opts.Registry,
		commands:   make(chan commandReq),
		queries:    make(chan chan protocol.Experiment),
		images:     make(chan imageReq),
		decodeDone: make(chan decodeResult),
		trackDone:  make(chan trackResult),
		encodeDone: make(chan encodeResult),
		done:       make(chan struct{}),
		geometry:   geometry,
		tracks:     track.NewStore(),
		state: protocol.Experiment{
			PlaybackState:   protocol.Paused,
			RecordingState:  protocol.RecordingInitial,
			TargetFPS:       opts.TargetFPS,
			RealtimeMode:    opts.Realtime,
			UndistortMode:   protocol.UndistortNone,
			Arena:           a,
			VideoInfo:       &info,
			RecordingConfig: opts.RecordingConfig,
		},
	}
	for i := 0; i < opts.Entities; i++ {
		o.addEntity()
	}
	return o, nil
}

func validFPS(fps float64) bool {
	return fps > 0 && !math.IsInf(fps, 0) && !math.IsNaN(fps)
}

func framePeriod(fps float64) time.Duration {
	return time.Duration(float64(time.Second) / fps)
}

// Command applies cmd and returns its validation result.
func (o *Orchestrator) Command(ctx context.Context, cmd protocol.Command) error {
	req := commandReq{cmd: cmd, reply: make(chan error, 1)}
	select {
	case o.commands <- req:
	case <-o.done:
		return ErrShutdown
	case <-ctx.Done():
		return ctx.Err()
	}
	return awaitReply(ctx, req.reply, o.done)
}

// State returns a snapshot of the experiment.
func (o *Orchestrator) State(ctx context.Context) (protocol.Experiment, error) {
	reply := make(chan protocol.Experiment, 1)
	select {
	case o.queries <- reply:
	case <-o.done:
		return protocol.Experiment{}, ErrShutdown
	case <-ctx.Done():
		return protocol.Experiment{}, ctx.Err()
	}
	select {
	case s := <-reply:
		return s, nil
	case <-ctx.Done():
		return protocol.Experiment{}, ctx.Err()
	}
}

// AddImage injects a frame produced outside the frame source. It is
// tracked and recorded like a decoded frame.
func (o *Orchestrator) AddImage(ctx context.Context, img protocol.Image) error {
	req := imageReq{img: img, reply: make(chan error, 1)}
	select {
	case o.images <- req:
	case <-o.done:
		return ErrShutdown
	case <-ctx.Done():
		return ctx.Err()
	}
	return awaitReply(ctx, req.reply, o.done)
}

// Heartbeat reports whether the loop is still running.
func (o *Orchestrator) Heartbeat() error {
	select {
	case <-o.done:
		return ErrShutdown
	default:
		return nil
	}
}

// Done is closed when Run has returned.
func (o *Orchestrator) Done() <-chan struct{} { return o.done }

// Metrics returns the metrics the orchestrator reports to.
func (o *Orchestrator) Metrics() *monitoring.Metrics { return o.metrics }

func awaitReply(ctx context.Context, reply <-chan error, done <-chan struct{}) error {
	select {
	case err := <-reply:
		return err
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		// The reply is sent before the loop exits.
		select {
		case err := <-reply:
			return err
		default:
			return ErrShutdown
		}
	}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidCommand, fmt.Sprintf(format, args...))
}

// snapshot copies the state for another goroutine. Pointed-to features
// and images are replaced, never modified, by the loop and can be shared.
func (o *Orchestrator) snapshot() protocol.Experiment {
	s := o.state
	s.EntityIDs = append([]uint32(nil), o.state.EntityIDs...)
	s.LastEntities = append([]protocol.Entity(nil), o.state.LastEntities...)
	s.Components = append([]protocol.ComponentConfig(nil), o.state.Components...)
	s.Arena.RectificationCorners = append([]protocol.Point(nil), o.state.Arena.RectificationCorners...)
	s.Arena.TrackingAreaCorners = append([]protocol.Point(nil), o.state.Arena.TrackingAreaCorners...)
	return s
}
