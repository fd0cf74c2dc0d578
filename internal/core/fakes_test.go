package core

import (
	"context"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/banshee-data/trackcore/internal/protocol"
	"github.com/banshee-data/trackcore/internal/protocol/pb"
	"github.com/banshee-data/trackcore/internal/source"
)

// gate blocks waiters until released. open releases everyone, forever.
type gate struct {
	ch   chan struct{}
	once sync.Once
}

func newGate() *gate { return &gate{ch: make(chan struct{})} }

func (g *gate) release() { g.ch <- struct{}{} }

func (g *gate) open() { g.once.Do(func() { close(g.ch) }) }

func (g *gate) wait(ctx context.Context, ignoreCtx bool) error {
	if ignoreCtx {
		<-g.ch
		return nil
	}
	select {
	case <-g.ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// concurrency tracks the largest number of simultaneous callers.
type concurrency struct {
	cur, max atomic.Int32
}

func (c *concurrency) enter() {
	n := c.cur.Add(1)
	for {
		m := c.max.Load()
		if n <= m || c.max.CompareAndSwap(m, n) {
			return
		}
	}
}

func (c *concurrency) exit() { c.cur.Add(-1) }

func jitter(max time.Duration) {
	if max > 0 {
		time.Sleep(time.Duration(rand.Int63n(int64(max))))
	}
}

type fakeSource struct {
	gate   *gate
	err    error
	frames uint32
	delay  time.Duration

	mu     sync.Mutex
	next   uint32
	calls  int
	seeks  []uint32
	closed bool
	conc   concurrency
}

func (s *fakeSource) Info() protocol.VideoInfo {
	return protocol.VideoInfo{Path: "fake://", Width: 4, Height: 4, FPS: 30, FrameCount: s.frames}
}

func (s *fakeSource) Next(ctx context.Context, req source.DecodeRequest) (source.Frame, error) {
	s.conc.enter()
	defer s.conc.exit()

	s.mu.Lock()
	s.calls++
	if req.Seek != nil {
		s.seeks = append(s.seeks, *req.Seek)
		s.next = *req.Seek
	}
	frame := s.next
	s.next++
	s.mu.Unlock()

	if s.gate != nil {
		if err := s.gate.wait(ctx, false); err != nil {
			return source.Frame{}, err
		}
	}
	jitter(s.delay)
	if s.err != nil {
		return source.Frame{}, s.err
	}
	if s.frames > 0 && frame >= s.frames {
		return source.Frame{}, source.ErrEndOfStream
	}
	f := source.Frame{Image: protocol.Image{
		StreamID: "cam", FrameNumber: frame, ShmID: "trackcore-test", Width: 4, Height: 4, Channels: 1,
	}}
	if req.CopyPayload {
		f.Payload = make([]byte, 16)
	}
	return f, nil
}

func (s *fakeSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *fakeSource) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func (s *fakeSource) Seeks() []uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]uint32(nil), s.seeks...)
}

func (s *fakeSource) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// fakeDetector returns one feature per frame at x = frame number. When
// gated, each frame waits until release(frame) and ignores cancellation.
type fakeDetector struct {
	gated bool
	delay time.Duration

	mu     sync.Mutex
	frames []uint32
	gates  map[uint32]*gate
	opened bool
	conc   concurrency
}

func (d *fakeDetector) gateFor(frame uint32) *gate {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.gates == nil {
		d.gates = make(map[uint32]*gate)
	}
	g, ok := d.gates[frame]
	if !ok {
		g = newGate()
		if d.opened {
			g.open()
		}
		d.gates[frame] = g
	}
	return g
}

func (d *fakeDetector) release(frame uint32) { d.gateFor(frame).open() }

func (d *fakeDetector) openAll() {
	d.mu.Lock()
	d.opened = true
	gates := make([]*gate, 0, len(d.gates))
	for _, g := range d.gates {
		gates = append(gates, g)
	}
	d.mu.Unlock()
	for _, g := range gates {
		g.open()
	}
}

func (d *fakeDetector) Detect(ctx context.Context, req *protocol.DetectRequest) (*protocol.DetectResponse, error) {
	d.conc.enter()
	defer d.conc.exit()

	frame := req.Image.FrameNumber
	d.mu.Lock()
	d.frames = append(d.frames, frame)
	d.mu.Unlock()

	if d.gated {
		_ = d.gateFor(frame).wait(ctx, true)
	}
	jitter(d.delay)

	skeleton := &protocol.Skeleton{Nodes: []string{"centre"}, CenterIndex: 0}
	return &protocol.DetectResponse{
		Features: protocol.Features{Features: []protocol.Feature{{
			ImageNodes: []protocol.Point{{X: float64(frame), Y: 1}},
			Score:      1,
		}}},
		Skeleton: skeleton,
	}, nil
}

func (d *fakeDetector) Frames() []uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]uint32(nil), d.frames...)
}

type fakeSink struct {
	delay time.Duration

	mu       sync.Mutex
	frames   []uint32
	payloads int
	closed   int
	conc     concurrency
}

func (s *fakeSink) AddFrame(img protocol.Image, payload []byte) error {
	s.conc.enter()
	defer s.conc.exit()
	jitter(s.delay)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames = append(s.frames, img.FrameNumber)
	if payload != nil {
		s.payloads++
	}
	return nil
}

func (s *fakeSink) Close() error {
	s.conc.enter()
	defer s.conc.exit()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed++
	return nil
}

func (s *fakeSink) Frames() []uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]uint32(nil), s.frames...)
}

func (s *fakeSink) Payloads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.payloads
}

func (s *fakeSink) Closed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

type fakeRecorder struct {
	pb.UnimplementedRecorderServer

	mu    sync.Mutex
	saved []protocol.SaveTracksRequest
}

func (r *fakeRecorder) SaveTracks(_ context.Context, req *pb.SaveTracksRequest) (*pb.Empty, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saved = append(r.saved, *protocol.SaveTracksRequestFromProto(req))
	return &pb.Empty{}, nil
}

func (r *fakeRecorder) SetConfig(context.Context, *pb.ConfigRequest) (*pb.Empty, error) {
	return &pb.Empty{}, nil
}

func (r *fakeRecorder) Saved() []protocol.SaveTracksRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]protocol.SaveTracksRequest(nil), r.saved...)
}

type identityUndistorter struct{}

func (identityUndistorter) UndistortPoint(p protocol.Point) protocol.Point { return p }
