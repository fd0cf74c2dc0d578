package core

import (
	"context"
	"errors"
	"math"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/banshee-data/trackcore/internal/component"
	"github.com/banshee-data/trackcore/internal/monitoring"
	"github.com/banshee-data/trackcore/internal/protocol"
	"github.com/banshee-data/trackcore/internal/protocol/pb"
	"github.com/banshee-data/trackcore/internal/source"
	"github.com/banshee-data/trackcore/internal/timeutil"
)

func init() {
	monitoring.Use(zap.NewNop())
}

const waitFor = 3 * time.Second

type harness struct {
	t      *testing.T
	o      *Orchestrator
	clock  *timeutil.MockClock
	src    *fakeSource
	det    *fakeDetector
	sink   *fakeSink
	copies atomic.Int32
	runErr chan error
}

func newHarness(t *testing.T, opts Options) *harness {
	t.Helper()
	h := &harness{
		t:      t,
		clock:  timeutil.NewMockClock(time.Unix(1700000000, 0)),
		runErr: make(chan error, 1),
	}
	if opts.Source == nil {
		opts.Source = &fakeSource{}
	}
	h.src = opts.Source.(*fakeSource)
	if d, ok := opts.Detector.(*fakeDetector); ok {
		h.det = d
	}
	opts.Clock = h.clock
	if opts.Metrics == nil {
		opts.Metrics = monitoring.NewMetrics()
	}
	opts.Logger = zap.NewNop()
	if opts.CopyFrame == nil {
		opts.CopyFrame = func(img protocol.Image) ([]byte, error) {
			h.copies.Add(1)
			return make([]byte, img.ByteLength()), nil
		}
	}
	if opts.SinkFactory == nil {
		h.sink = &fakeSink{}
		opts.SinkFactory = func(protocol.RecordingConfig) (source.Sink, error) { return h.sink, nil }
	}

	o, err := New(opts)
	require.NoError(t, err)
	h.o = o

	ctx, cancel := context.WithCancel(context.Background())
	go func() { h.runErr <- o.Run(ctx) }()
	t.Cleanup(func() {
		if h.src.gate != nil {
			h.src.gate.open()
		}
		if h.det != nil {
			h.det.openAll()
		}
		cancel()
		select {
		case <-o.Done():
		case <-time.After(waitFor):
			t.Error("orchestrator did not stop")
		}
	})

	require.Eventually(t, func() bool { return len(h.clock.Tickers()) >= 2 }, waitFor, time.Millisecond)
	return h
}

// tick fires the pacing ticker and waits until the loop has taken it.
func (h *harness) tick() {
	h.t.Helper()
	tk := h.clock.Tickers()[0]
	tk.Trigger(h.clock.Now())
	require.Eventually(h.t, func() bool { return len(tk.C()) == 0 }, waitFor, time.Millisecond)
}

func (h *harness) cmd(c protocol.Command) error {
	ctx, cancel := context.WithTimeout(context.Background(), waitFor)
	defer cancel()
	return h.o.Command(ctx, c)
}

func (h *harness) state() protocol.Experiment {
	h.t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), waitFor)
	defer cancel()
	s, err := h.o.State(ctx)
	require.NoError(h.t, err)
	return s
}

func (h *harness) waitState(msg string, cond func(protocol.Experiment) bool) {
	h.t.Helper()
	require.Eventually(h.t, func() bool { return cond(h.state()) }, waitFor, 2*time.Millisecond, msg)
}

func (h *harness) waitFrame(frame uint32) {
	h.t.Helper()
	h.waitState("last image", func(s protocol.Experiment) bool {
		return s.LastImage != nil && s.LastImage.FrameNumber == frame
	})
}

func (h *harness) play() {
	h.t.Helper()
	require.NoError(h.t, h.cmd(protocol.PlaybackCommand(protocol.Playing)))
}

func TestNew_Defaults(t *testing.T) {
	o, err := New(Options{Source: &fakeSource{}, Logger: zap.NewNop(), Entities: 2})
	require.NoError(t, err)
	s := o.snapshot()
	assert.Equal(t, protocol.Paused, s.PlaybackState)
	assert.Equal(t, protocol.RecordingInitial, s.RecordingState)
	assert.Equal(t, DefaultTargetFPS, s.TargetFPS)
	assert.Equal(t, float64(DefaultArenaSizeCm), s.Arena.WidthCm)
	assert.Equal(t, []uint32{1, 2}, s.EntityIDs)
	require.NotNil(t, s.VideoInfo)
	assert.Equal(t, "fake://", s.VideoInfo.Path)

	_, err = New(Options{})
	assert.Error(t, err)
	_, err = New(Options{Source: &fakeSource{}, TargetFPS: -1})
	assert.Error(t, err)
}

func TestRealtimeSkipsFramesDecodedDuringTracking(t *testing.T) {
	det := &fakeDetector{gated: true}
	h := newHarness(t, Options{Detector: det, Realtime: true, Entities: 1})
	h.play()

	h.tick()
	require.Eventually(t, func() bool { return len(det.Frames()) == 1 }, waitFor, time.Millisecond)
	h.tick()
	h.waitFrame(1)
	h.tick()
	h.waitFrame(2)

	det.release(0)
	require.Eventually(t, func() bool { return len(det.Frames()) == 2 }, waitFor, time.Millisecond)
	assert.Equal(t, []uint32{0, 2}, det.Frames())

	det.release(2)
	h.waitState("frame 2 tracked", func(s protocol.Experiment) bool {
		return s.LastFeatures != nil && s.LastFeatures.FrameNumber == 2
	})
	s := h.state()
	assert.Equal(t, uint64(3), s.Metrics.DecodedFrames)
	assert.Equal(t, uint64(2), s.Metrics.TrackedFrames)
	require.Len(t, s.LastEntities, 1)
	assert.Equal(t, uint32(2), s.LastEntities[0].FrameNumber)
	require.NotNil(t, s.Skeleton)
	assert.Equal(t, []string{"centre"}, s.Skeleton.Nodes)
}

func TestNonRealtimeWaitsForTracking(t *testing.T) {
	det := &fakeDetector{gated: true}
	h := newHarness(t, Options{Detector: det, Realtime: false, Entities: 1})
	h.play()

	h.tick()
	require.Eventually(t, func() bool { return len(det.Frames()) == 1 }, waitFor, time.Millisecond)

	h.tick()
	h.waitState("dropped tick", func(s protocol.Experiment) bool { return s.Metrics.DroppedFrames == 1 })
	assert.Equal(t, 1, h.src.Calls())
	assert.Equal(t, 1.0, testutil.ToFloat64(h.o.Metrics().FramesDropped))

	det.release(0)
	h.waitState("frame 0 tracked", func(s protocol.Experiment) bool { return s.Metrics.TrackedFrames == 1 })
	h.tick()
	h.waitFrame(1)
}

func TestPausedTickDecodesNothing(t *testing.T) {
	h := newHarness(t, Options{})
	h.tick()
	h.tick()
	s := h.state()
	assert.Zero(t, h.src.Calls())
	assert.Zero(t, s.Metrics.DroppedFrames)
	assert.Nil(t, s.LastImage)
}

func TestSeekDiscardsLateResults(t *testing.T) {
	src := &fakeSource{gate: newGate()}
	det := &fakeDetector{gated: true}
	h := newHarness(t, Options{Source: src, Detector: det, Realtime: true, Entities: 1})
	stale := func(stage string) float64 {
		return testutil.ToFloat64(h.o.Metrics().StaleResults.WithLabelValues(stage))
	}

	h.play()
	h.tick()
	require.Eventually(t, func() bool { return src.Calls() == 1 }, waitFor, time.Millisecond)

	// The blocked decode is cancelled; the seek target is decoded instead.
	require.NoError(t, h.cmd(protocol.SeekCommand(10)))
	src.gate.release()
	h.waitFrame(10)
	require.Eventually(t, func() bool { return stale("decode") == 1 }, waitFor, time.Millisecond)
	require.Eventually(t, func() bool { return len(det.Frames()) == 1 }, waitFor, time.Millisecond)

	// Tracking of frame 10 ignores cancellation and finishes after the seek.
	require.NoError(t, h.cmd(protocol.SeekCommand(20)))
	src.gate.release()
	h.waitFrame(20)
	require.Eventually(t, func() bool { return len(det.Frames()) == 2 }, waitFor, time.Millisecond)

	det.release(10)
	require.Eventually(t, func() bool { return stale("track") == 1 }, waitFor, time.Millisecond)
	assert.Nil(t, h.state().LastFeatures)

	det.release(20)
	h.waitState("frame 20 tracked", func(s protocol.Experiment) bool {
		return s.LastFeatures != nil && s.LastFeatures.FrameNumber == 20
	})
	assert.Equal(t, []uint32{10, 20}, src.Seeks())
	assert.Equal(t, uint64(1), h.state().Metrics.TrackedFrames)
}

func TestSeekBeyondEndRejected(t *testing.T) {
	h := newHarness(t, Options{Source: &fakeSource{frames: 5}})
	assert.ErrorIs(t, h.cmd(protocol.SeekCommand(5)), ErrInvalidCommand)
	require.NoError(t, h.cmd(protocol.SeekCommand(4)))
	h.waitFrame(4)
}

func TestTargetFPS(t *testing.T) {
	h := newHarness(t, Options{})
	for _, fps := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		assert.ErrorIs(t, h.cmd(protocol.TargetFPSCommand(fps)), ErrInvalidCommand, "fps %v", fps)
	}
	assert.ErrorIs(t, h.cmd(protocol.Command{Kind: protocol.CmdTargetFPS}), ErrInvalidCommand)
	assert.Equal(t, DefaultTargetFPS, h.state().TargetFPS)

	require.NoError(t, h.cmd(protocol.TargetFPSCommand(50)))
	assert.Equal(t, 50.0, h.state().TargetFPS)
	assert.Equal(t, 20*time.Millisecond, h.clock.Tickers()[0].Interval())
}

func TestEndOfStream(t *testing.T) {
	h := newHarness(t, Options{Source: &fakeSource{frames: 1}})
	h.play()
	h.tick()
	h.waitFrame(0)
	h.tick()
	h.waitState("eos", func(s protocol.Experiment) bool { return s.PlaybackState == protocol.EndOfStream })
	assert.False(t, h.src.Closed())
	assert.Zero(t, h.state().Metrics.DecodeErrors)

	// Ticks at end of stream do nothing.
	h.tick()
	assert.Equal(t, 2, h.src.Calls())

	require.NoError(t, h.cmd(protocol.SeekCommand(0)))
	assert.Equal(t, protocol.Paused, h.state().PlaybackState)
}

func TestDecodeFailureClosesSource(t *testing.T) {
	h := newHarness(t, Options{Source: &fakeSource{err: errors.New("corrupt stream")}})
	h.play()
	h.tick()
	h.waitState("eos", func(s protocol.Experiment) bool { return s.PlaybackState == protocol.EndOfStream })
	assert.True(t, h.src.Closed())
	assert.Equal(t, uint64(1), h.state().Metrics.DecodeErrors)
	assert.Equal(t, 1.0, testutil.ToFloat64(h.o.Metrics().DecodeErrors))

	assert.ErrorIs(t, h.cmd(protocol.PlaybackCommand(protocol.Playing)), ErrInvalidCommand)
	assert.ErrorIs(t, h.cmd(protocol.SeekCommand(0)), ErrInvalidCommand)
}

func TestEntities(t *testing.T) {
	h := newHarness(t, Options{Entities: 1})
	require.NoError(t, h.cmd(protocol.AddEntityCommand()))
	require.NoError(t, h.cmd(protocol.AddEntityCommand()))
	assert.Equal(t, []uint32{1, 2, 3}, h.state().EntityIDs)

	two := uint32(2)
	require.NoError(t, h.cmd(protocol.RemoveEntityCommand(&two)))
	assert.Equal(t, []uint32{1, 3}, h.state().EntityIDs)
	assert.ErrorIs(t, h.cmd(protocol.RemoveEntityCommand(&two)), ErrInvalidCommand)

	require.NoError(t, h.cmd(protocol.RemoveEntityCommand(nil)))
	assert.Equal(t, []uint32{1}, h.state().EntityIDs)

	// Ids are never reused.
	require.NoError(t, h.cmd(protocol.AddEntityCommand()))
	assert.Equal(t, []uint32{1, 4}, h.state().EntityIDs)

	require.NoError(t, h.cmd(protocol.RemoveEntityCommand(nil)))
	require.NoError(t, h.cmd(protocol.RemoveEntityCommand(nil)))
	assert.ErrorIs(t, h.cmd(protocol.RemoveEntityCommand(nil)), ErrInvalidCommand)
}

func TestSnapshotIsIsolated(t *testing.T) {
	h := newHarness(t, Options{Entities: 2})
	s := h.state()
	s.EntityIDs[0] = 99
	assert.Equal(t, []uint32{1, 2}, h.state().EntityIDs)
}

func TestCommandValidation(t *testing.T) {
	h := newHarness(t, Options{})

	assert.ErrorIs(t, h.cmd(protocol.UndistortCommand(protocol.UndistortPoses)), ErrInvalidCommand)
	assert.ErrorIs(t, h.cmd(protocol.Command{Kind: "teleport"}), ErrInvalidCommand)
	assert.ErrorIs(t, h.cmd(protocol.Command{Kind: protocol.CmdSeek}), ErrInvalidCommand)
	assert.ErrorIs(t, h.cmd(protocol.ArenaCommand(protocol.Arena{
		WidthCm: 10, HeightCm: 10,
		TrackingAreaCorners: []protocol.Point{{X: 0, Y: 0}, {X: 1, Y: 1}},
	})), ErrInvalidCommand)
	assert.ErrorIs(t, h.cmd(protocol.ComponentConfigCommand(protocol.ComponentConfig{ID: "nobody"})), ErrInvalidCommand)
	assert.ErrorIs(t, h.cmd(protocol.RecordingCommand(protocol.Recording, nil)), ErrInvalidCommand)
	assert.Equal(t, protocol.RecordingInitial, h.state().RecordingState)

	require.NoError(t, h.cmd(protocol.RealtimeCommand(true)))
	assert.True(t, h.state().RealtimeMode)

	a := protocol.Arena{WidthCm: 200, HeightCm: 100}
	require.NoError(t, h.cmd(protocol.ArenaCommand(a)))
	assert.Equal(t, 200.0, h.state().Arena.WidthCm)
}

func TestUndistortModeWithCalibration(t *testing.T) {
	h := newHarness(t, Options{Undistorter: identityUndistorter{}})
	require.NoError(t, h.cmd(protocol.UndistortCommand(protocol.UndistortImage)))
	assert.Equal(t, protocol.UndistortImage, h.state().UndistortMode)
}

func TestAddImage(t *testing.T) {
	det := &fakeDetector{}
	h := newHarness(t, Options{Detector: det, Entities: 1})
	ctx := context.Background()

	assert.ErrorIs(t, h.o.AddImage(ctx, protocol.Image{StreamID: "ext"}), ErrInvalidCommand)
	require.NoError(t, h.o.AddImage(ctx, protocol.Image{StreamID: "ext", FrameNumber: 7, Width: 2, Height: 2, Channels: 1}))
	h.waitState("external image tracked", func(s protocol.Experiment) bool {
		return s.LastFeatures != nil && s.LastFeatures.FrameNumber == 7
	})
	assert.Equal(t, "ext", h.state().LastImage.StreamID)
	assert.Zero(t, h.src.Calls())
}

func serveRecorder(t *testing.T, rec *fakeRecorder) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	srv := grpc.NewServer()
	pb.RegisterRecorderServer(srv, rec)
	go func() { _ = srv.Serve(l) }()
	t.Cleanup(srv.Stop)
	return l.Addr().String()
}

func TestRecordingSavesTracks(t *testing.T) {
	rec := &fakeRecorder{}
	metrics := monitoring.NewMetrics()
	reg := component.NewRegistry(component.Options{
		Connect: component.ConnectOptions{RetryInterval: 20 * time.Millisecond, Deadline: 2 * time.Second},
		Metrics: metrics,
	})
	h := newHarness(t, Options{
		Detector: &fakeDetector{},
		Entities: 1,
		Metrics:  metrics,
		Registry: reg,
		Components: []protocol.ComponentConfig{
			{ID: "rec", Services: []string{"recorder"}, Address: serveRecorder(t, rec)},
		},
	})
	require.Eventually(t, func() bool { return testutil.ToFloat64(metrics.Connections) == 1 }, waitFor, 5*time.Millisecond)
	require.Len(t, h.state().Components, 1)

	cfg := &protocol.RecordingConfig{StreamID: "cam", Path: "session.raw", FPS: 30, Width: 4, Height: 4}
	require.NoError(t, h.cmd(protocol.RecordingCommand(protocol.Recording, cfg)))
	assert.Equal(t, protocol.Recording, h.state().RecordingState)

	h.play()
	for i := uint32(0); i < 3; i++ {
		h.tick()
		h.waitState("frame tracked", func(s protocol.Experiment) bool { return s.Metrics.TrackedFrames == uint64(i+1) })
	}
	h.waitState("frames encoded", func(s protocol.Experiment) bool { return s.Metrics.EncodedFrames == 3 })

	require.NoError(t, h.cmd(protocol.RecordingCommand(protocol.RecordingFinished, nil)))
	s := h.state()
	assert.Equal(t, protocol.RecordingFinished, s.RecordingState)
	assert.Nil(t, s.RecordingConfig)

	require.Eventually(t, func() bool { return len(rec.Saved()) == 1 }, waitFor, 5*time.Millisecond)
	assert.Equal(t, 1, h.sink.Closed())
	assert.Equal(t, []uint32{0, 1, 2}, h.sink.Frames())
	assert.Equal(t, 3, h.sink.Payloads())

	saved := rec.Saved()[0]
	assert.Equal(t, "session.raw", saved.Recording.Path)
	require.Len(t, saved.Tracks, 1)
	assert.Equal(t, uint32(1), saved.Tracks[0].EntityID)
	require.Len(t, saved.Tracks[0].Observations, 3)
	for i, obs := range saved.Tracks[0].Observations {
		assert.Equal(t, uint32(i), obs.FrameNumber)
	}
}

func TestTracksMergedOutsideRecording(t *testing.T) {
	h := newHarness(t, Options{Detector: &fakeDetector{}, Entities: 1})
	h.play()
	for i := uint32(0); i < 3; i++ {
		h.tick()
		h.waitState("frame tracked", func(s protocol.Experiment) bool { return s.Metrics.TrackedFrames == uint64(i+1) })
	}
	assert.Equal(t, protocol.RecordingInitial, h.state().RecordingState)

	require.NoError(t, h.cmd(protocol.ShutdownCommand()))
	require.NoError(t, <-h.runErr)
	tr, ok := h.o.tracks.Get(1)
	require.True(t, ok)
	require.Len(t, tr.Observations, 3)
	for i, obs := range tr.Observations {
		assert.Equal(t, uint32(i), obs.FrameNumber)
	}
}

func TestRecordingRebasesTrackFrames(t *testing.T) {
	rec := &fakeRecorder{}
	metrics := monitoring.NewMetrics()
	reg := component.NewRegistry(component.Options{
		Connect: component.ConnectOptions{RetryInterval: 20 * time.Millisecond, Deadline: 2 * time.Second},
		Metrics: metrics,
	})
	h := newHarness(t, Options{
		Detector: &fakeDetector{},
		Entities: 1,
		Metrics:  metrics,
		Registry: reg,
		Components: []protocol.ComponentConfig{
			{ID: "rec", Services: []string{"recorder"}, Address: serveRecorder(t, rec)},
		},
	})
	require.Eventually(t, func() bool { return testutil.ToFloat64(metrics.Connections) == 1 }, waitFor, 5*time.Millisecond)

	require.NoError(t, h.cmd(protocol.SeekCommand(10)))
	h.waitState("frame tracked", func(s protocol.Experiment) bool { return s.Metrics.TrackedFrames == 1 })
	require.Equal(t, uint32(10), h.state().LastImage.FrameNumber)

	cfg := &protocol.RecordingConfig{StreamID: "cam", Path: "later.raw"}
	require.NoError(t, h.cmd(protocol.RecordingCommand(protocol.Recording, cfg)))
	h.play()
	for i := uint64(2); i <= 3; i++ {
		h.tick()
		h.waitState("frame tracked", func(s protocol.Experiment) bool { return s.Metrics.TrackedFrames == i })
	}
	require.NoError(t, h.cmd(protocol.RecordingCommand(protocol.RecordingFinished, nil)))

	require.Eventually(t, func() bool { return len(rec.Saved()) == 1 }, waitFor, 5*time.Millisecond)
	assert.Equal(t, []uint32{11, 12}, h.sink.Frames())
	tracks := rec.Saved()[0].Tracks
	require.Len(t, tracks, 1)
	var frames []uint32
	for _, obs := range tracks[0].Observations {
		frames = append(frames, obs.FrameNumber)
	}
	assert.Equal(t, []uint32{0, 1}, frames)
}

// A decode already running when the recording starts was not asked for a
// private copy; the frame must not reach the sink as a bare segment name.
func TestRecordingCopiesFrameDecodedBeforeStart(t *testing.T) {
	src := &fakeSource{gate: newGate()}
	h := newHarness(t, Options{Source: src})
	h.play()
	h.tick()
	require.Eventually(t, func() bool { return src.Calls() == 1 }, waitFor, time.Millisecond)

	cfg := &protocol.RecordingConfig{StreamID: "cam", Path: "x.raw"}
	require.NoError(t, h.cmd(protocol.RecordingCommand(protocol.Recording, cfg)))
	src.gate.release()
	h.waitState("frame encoded", func(s protocol.Experiment) bool { return s.Metrics.EncodedFrames == 1 })

	assert.Equal(t, []uint32{0}, h.sink.Frames())
	assert.Equal(t, 1, h.sink.Payloads())
	assert.Equal(t, int32(1), h.copies.Load())

	h.tick()
	require.Eventually(t, func() bool { return src.Calls() == 2 }, waitFor, time.Millisecond)
	src.gate.release()
	h.waitState("frame encoded", func(s protocol.Experiment) bool { return s.Metrics.EncodedFrames == 2 })
	assert.Equal(t, 2, h.sink.Payloads())
	assert.Equal(t, int32(1), h.copies.Load(), "decode asked for its own copy")
}

func TestRecordingSkipsFrameThatCannotBeCopied(t *testing.T) {
	h := newHarness(t, Options{CopyFrame: func(protocol.Image) ([]byte, error) { return nil, errors.New("segment gone") }})
	cfg := &protocol.RecordingConfig{StreamID: "ext", Path: "x.raw"}
	require.NoError(t, h.cmd(protocol.RecordingCommand(protocol.Recording, cfg)))
	require.NoError(t, h.o.AddImage(context.Background(), protocol.Image{StreamID: "ext", Width: 2, Height: 2, Channels: 1}))

	h.waitState("encode error", func(s protocol.Experiment) bool { return s.Metrics.EncodeErrors == 1 })
	assert.Empty(t, h.sink.Frames())
}

func TestRecordingIgnoresOtherStreams(t *testing.T) {
	h := newHarness(t, Options{})
	cfg := &protocol.RecordingConfig{StreamID: "other", Path: "x.raw"}
	require.NoError(t, h.cmd(protocol.RecordingCommand(protocol.Recording, cfg)))
	h.play()
	h.tick()
	h.waitFrame(0)
	require.NoError(t, h.cmd(protocol.RecordingCommand(protocol.RecordingInitial, nil)))
	require.Eventually(t, func() bool { return h.sink.Closed() == 1 }, waitFor, time.Millisecond)
	assert.Empty(t, h.sink.Frames())
	assert.Equal(t, protocol.RecordingInitial, h.state().RecordingState)
}

func TestShutdownFinalisesRecording(t *testing.T) {
	h := newHarness(t, Options{})
	cfg := &protocol.RecordingConfig{StreamID: "cam", Path: "x.raw"}
	require.NoError(t, h.cmd(protocol.RecordingCommand(protocol.Recording, cfg)))
	h.play()
	h.tick()
	h.waitFrame(0)

	require.NoError(t, h.cmd(protocol.ShutdownCommand()))
	select {
	case err := <-h.runErr:
		require.NoError(t, err)
	case <-time.After(waitFor):
		t.Fatal("Run did not return")
	}
	assert.Equal(t, 1, h.sink.Closed())
	assert.Equal(t, []uint32{0}, h.sink.Frames())
	assert.True(t, h.src.Closed())

	assert.ErrorIs(t, h.cmd(protocol.AddEntityCommand()), ErrShutdown)
	assert.ErrorIs(t, h.o.Heartbeat(), ErrShutdown)
	_, err := h.o.State(context.Background())
	assert.ErrorIs(t, err, ErrShutdown)
}

type stuckSink struct{ release chan struct{} }

func (s stuckSink) AddFrame(protocol.Image, []byte) error {
	<-s.release
	return nil
}

func (s stuckSink) Close() error { return nil }

func TestShutdownAbandonsStuckEncoder(t *testing.T) {
	sink := stuckSink{release: make(chan struct{})}
	defer close(sink.release)
	h := newHarness(t, Options{
		RecorderTimeout: time.Minute,
		SinkFactory:     func(protocol.RecordingConfig) (source.Sink, error) { return sink, nil },
	})
	cfg := &protocol.RecordingConfig{StreamID: "cam", Path: "x.raw"}
	require.NoError(t, h.cmd(protocol.RecordingCommand(protocol.Recording, cfg)))
	h.play()
	h.tick()
	h.waitFrame(0)

	go func() { _ = h.o.Command(context.Background(), protocol.ShutdownCommand()) }()
	require.Eventually(t, func() bool {
		h.clock.Advance(30 * time.Second)
		select {
		case err := <-h.runErr:
			require.NoError(t, err)
			return true
		default:
			return false
		}
	}, waitFor, 5*time.Millisecond)
	assert.True(t, h.src.Closed())
}

func TestContextCancelStopsRun(t *testing.T) {
	o, err := New(Options{Source: &fakeSource{}, Logger: zap.NewNop(), Clock: timeutil.NewMockClock(time.Now())})
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- o.Run(ctx) }()
	require.NoError(t, o.Heartbeat())
	cancel()
	select {
	case err := <-errc:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(waitFor):
		t.Fatal("Run did not return")
	}
}

// Ticks arrive faster than any stage can finish; no stage may ever run
// twice at once and recorded frames stay in decode order.
func TestStagesNeverOverlap(t *testing.T) {
	src := &fakeSource{delay: 2 * time.Millisecond}
	det := &fakeDetector{delay: 3 * time.Millisecond}
	h := newHarness(t, Options{Source: src, Detector: det, Realtime: true, Entities: 2})
	h.sink.delay = 4 * time.Millisecond

	require.NoError(t, h.cmd(protocol.RecordingCommand(protocol.Recording, &protocol.RecordingConfig{StreamID: "cam", Path: "x.raw"})))
	h.play()
	tk := h.clock.Tickers()[0]
	for i := 0; i < 150; i++ {
		tk.Trigger(h.clock.Now())
		jitter(time.Millisecond)
		if i%25 == 0 {
			require.NoError(t, h.cmd(protocol.AddEntityCommand()))
		}
	}
	require.NoError(t, h.cmd(protocol.PlaybackCommand(protocol.Paused)))
	require.NoError(t, h.cmd(protocol.RecordingCommand(protocol.RecordingFinished, nil)))
	require.Eventually(t, func() bool { return h.sink.Closed() == 1 }, waitFor, 5*time.Millisecond)

	assert.Equal(t, int32(1), src.conc.max.Load())
	assert.Equal(t, int32(1), det.conc.max.Load())
	assert.Equal(t, int32(1), h.sink.conc.max.Load())

	frames := h.sink.Frames()
	require.NotEmpty(t, frames)
	for i := 1; i < len(frames); i++ {
		assert.Less(t, frames[i-1], frames[i])
	}
	s := h.state()
	assert.Equal(t, uint64(len(frames)), s.Metrics.EncodedFrames)
	assert.Positive(t, s.Metrics.TrackedFrames)
}
