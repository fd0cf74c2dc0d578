package component

import (
	"context"
	"encoding/json"
	"net"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"

	"github.com/banshee-data/trackcore/internal/monitoring"
	"github.com/banshee-data/trackcore/internal/protocol"
	"github.com/banshee-data/trackcore/internal/protocol/pb"
	"github.com/banshee-data/trackcore/internal/timeutil"
)

func init() {
	monitoring.Use(zap.NewNop())
}

var fast = ConnectOptions{RetryInterval: 20 * time.Millisecond, Deadline: 200 * time.Millisecond}

func deadAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

type fakeRecorder struct {
	pb.UnimplementedRecorderServer

	mu      sync.Mutex
	configs []string
	saved   []protocol.SaveTracksRequest
}

func (f *fakeRecorder) SaveTracks(_ context.Context, req *pb.SaveTracksRequest) (*pb.Empty, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved = append(f.saved, *protocol.SaveTracksRequestFromProto(req))
	return &pb.Empty{}, nil
}

func (f *fakeRecorder) SetConfig(_ context.Context, req *pb.ConfigRequest) (*pb.Empty, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.configs = append(f.configs, req.GetConfigJson())
	return &pb.Empty{}, nil
}

func (f *fakeRecorder) Configs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.configs...)
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

func poll(t *testing.T, r *Registry) bool {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	ok, err := r.PollPendingConnections(ctx)
	require.NoError(t, err)
	return ok
}

func TestConnect_TimesOutWithoutListener(t *testing.T) {
	start := time.Now()
	_, err := Connect(context.Background(), deadAddress(t), fast)
	assert.ErrorIs(t, err, ErrConnectTimeout)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestConnect_DeadlineFollowsClock(t *testing.T) {
	clock := timeutil.NewMockClock(time.Unix(1700000000, 0))
	addr := deadAddress(t)
	errc := make(chan error, 1)
	go func() {
		_, err := Connect(context.Background(), addr, ConnectOptions{RetryInterval: 20 * time.Millisecond, Deadline: time.Hour, Clock: clock})
		errc <- err
	}()

	// Retries wait on the clock, so only advancing it past the hour ends them.
	var err error
	require.Eventually(t, func() bool {
		clock.Advance(10 * time.Minute)
		select {
		case err = <-errc:
			return true
		default:
			return false
		}
	}, 5*time.Second, 10*time.Millisecond)
	assert.ErrorIs(t, err, ErrConnectTimeout)
}

func TestConnect_RetriesUntilListenerAppears(t *testing.T) {
	addr := deadAddress(t)
	go func() {
		time.Sleep(100 * time.Millisecond)
		l, err := net.Listen("tcp", addr)
		if err != nil {
			return
		}
		srv := grpc.NewServer()
		pb.RegisterRecorderServer(srv, &fakeRecorder{})
		t.Cleanup(srv.Stop)
		_ = srv.Serve(l)
	}()

	conn, err := Connect(context.Background(), addr, ConnectOptions{RetryInterval: 30 * time.Millisecond, Deadline: 3 * time.Second})
	require.NoError(t, err)
	defer conn.Close()
	assert.Equal(t, connectivity.Ready, conn.GetState())
}

func TestConnect_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Connect(ctx, deadAddress(t), fast)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRegistry_FailedConnectionLeavesCapabilityAbsent(t *testing.T) {
	m := monitoring.NewMetrics()
	r := NewRegistry(Options{Connect: fast, Metrics: m})
	defer r.StopComponents()

	require.NoError(t, r.StartComponents(context.Background(), []protocol.ComponentConfig{
		{ID: "rec", Services: []string{"recorder"}, Address: deadAddress(t)},
	}))
	assert.True(t, r.HasPending())
	assert.False(t, poll(t, r))
	assert.False(t, r.HasPending())

	_, ok := r.Recorder()
	assert.False(t, ok)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ConnectFailures))
}

func TestRegistry_EmbeddedMatcher(t *testing.T) {
	port, err := NewPortFinder(31000).Next()
	require.NoError(t, err)
	r := NewRegistry(Options{Connect: fast, PortRangeStart: port})
	defer r.StopComponents()

	require.NoError(t, r.StartComponents(context.Background(), []protocol.ComponentConfig{
		{ID: HungarianMatcherID, Services: []string{"matcher"}},
	}))
	require.True(t, poll(t, r))

	cfg, ok := r.Lookup(HungarianMatcherID)
	require.True(t, ok)
	assert.Equal(t, "127.0.0.1:"+strconv.Itoa(port), cfg.Address)

	client, ok := r.Matcher()
	require.True(t, ok)
	resp, err := client.Match(context.Background(), &protocol.MatchRequest{
		FrameNumber: 2,
		Entities:    []protocol.Entity{{ID: 1}},
		Features:    &protocol.Features{Features: []protocol.Feature{{Score: 1, ImageNodes: []protocol.Point{{X: 1, Y: 1}}}}},
	})
	require.NoError(t, err)
	require.Len(t, resp.Entities, 1)
	assert.Equal(t, uint32(2), resp.Entities[0].FrameNumber)
	assert.Equal(t, []protocol.ServiceType{protocol.ServiceMatcher}, r.Connected())
}

func TestRegistry_UnknownComponentWithoutAddress(t *testing.T) {
	r := NewRegistry(Options{Connect: fast})
	defer r.StopComponents()

	err := r.StartComponents(context.Background(), []protocol.ComponentConfig{{ID: "Mystery", Services: []string{"detector"}}})
	assert.ErrorIs(t, err, ErrUnknownComponent)

	err = r.StartComponents(context.Background(), []protocol.ComponentConfig{{ID: "x", Services: []string{"observer"}, Address: "127.0.0.1:1"}})
	assert.Error(t, err)
}

func TestRegistry_ReplacementClosesStaleConnection(t *testing.T) {
	first, second := &fakeRecorder{}, &fakeRecorder{}
	r := NewRegistry(Options{Connect: fast})
	defer r.StopComponents()

	require.NoError(t, r.StartComponents(context.Background(), []protocol.ComponentConfig{
		{ID: "rec-a", Services: []string{"recorder"}, Address: serveRecorder(t, first)},
	}))
	require.True(t, poll(t, r))
	stale := r.connections[protocol.ServiceRecorder]

	require.NoError(t, r.StartComponents(context.Background(), []protocol.ComponentConfig{
		{ID: "rec-b", Services: []string{"recorder"}, Address: serveRecorder(t, second)},
	}))
	require.True(t, poll(t, r))

	assert.Equal(t, "rec-b", r.connections[protocol.ServiceRecorder].ComponentID)
	assert.Equal(t, connectivity.Shutdown, stale.conn.GetState())
}

func TestRegistry_PollsMostRecentFirst(t *testing.T) {
	r := NewRegistry(Options{Connect: fast})
	defer r.StopComponents()

	rec := &fakeRecorder{}
	require.NoError(t, r.StartComponents(context.Background(), []protocol.ComponentConfig{
		{ID: "dead", Services: []string{"detector"}, Address: deadAddress(t)},
		{ID: "rec", Services: []string{"recorder"}, Address: serveRecorder(t, rec)},
	}))

	require.True(t, poll(t, r), "the recorder was queued last")
	_, ok := r.Recorder()
	assert.True(t, ok)
	_, ok = r.Detector()
	assert.False(t, ok)
	assert.True(t, r.HasPending())
}

func TestRegistry_SetConfig(t *testing.T) {
	rec := &fakeRecorder{}
	r := NewRegistry(Options{Connect: fast})
	defer r.StopComponents()

	initial := json.RawMessage(`{"fps":10}`)
	require.NoError(t, r.StartComponents(context.Background(), []protocol.ComponentConfig{
		{ID: "rec", Services: []string{"recorder"}, Address: serveRecorder(t, rec), ConfigJSON: initial},
		{ID: "ghost", Services: []string{"detector"}, Address: deadAddress(t)},
	}))

	err := r.SetConfig(context.Background(), protocol.ComponentConfig{ID: "rec"})
	assert.ErrorIs(t, err, ErrNotConnected, "nothing resolved yet")

	for r.HasPending() {
		poll(t, r)
	}
	assert.Equal(t, []string{`{"fps":10}`}, rec.Configs(), "configuration is pushed on connect")

	require.NoError(t, r.SetConfig(context.Background(), protocol.ComponentConfig{ID: "rec", ConfigJSON: json.RawMessage(`{"fps":20}`)}))
	assert.Equal(t, []string{`{"fps":10}`, `{"fps":20}`}, rec.Configs())
	cfg, _ := r.Lookup("rec")
	assert.JSONEq(t, `{"fps":20}`, string(cfg.ConfigJSON))

	assert.ErrorIs(t, r.SetConfig(context.Background(), protocol.ComponentConfig{ID: "nope"}), ErrUnknownComponent)
	assert.ErrorIs(t, r.SetConfig(context.Background(), protocol.ComponentConfig{ID: "ghost"}), ErrNotConnected)
}

func TestClient_WrongVariantPanics(t *testing.T) {
	c, err := newClient(protocol.ServiceRecorder, nil)
	require.NoError(t, err)
	assert.NotNil(t, c.Recorder())
	assert.Panics(t, func() { c.Detector() })
	assert.Panics(t, func() { c.Matcher() })
}

func TestRegistry_ChildProcessStopped(t *testing.T) {
	r := NewRegistry(Options{Connect: ConnectOptions{RetryInterval: 10 * time.Millisecond, Deadline: 50 * time.Millisecond}, Metrics: monitoring.NewMetrics()})

	require.NoError(t, r.StartComponents(context.Background(), []protocol.ComponentConfig{
		{ID: "sleeper", Services: []string{"detector"}, Process: &protocol.ProcessConfig{Command: "sleep 30"}},
	}))
	require.Len(t, r.processes, 1)
	p := r.processes[0]
	assert.True(t, p.running())
	r.SampleProcesses()

	r.StopComponents()
	assert.False(t, p.running())
	assert.False(t, r.HasPending())

	r.StopComponents()
}

func TestPortFinder_SkipsBoundPorts(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	busy := l.Addr().(*net.TCPAddr).Port

	f := NewPortFinder(busy)
	got, err := f.Next()
	require.NoError(t, err)
	assert.Greater(t, got, busy)

	again, err := f.Next()
	require.NoError(t, err)
	assert.Greater(t, again, got)
}
