package component

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/banshee-data/trackcore/internal/monitoring"
	"github.com/banshee-data/trackcore/internal/protocol"
)

var (
	// ErrNotConnected is returned when a component has no live connection.
	ErrNotConnected = errors.New("component: not connected")
	// ErrUnknownComponent is returned for ids that were never configured.
	ErrUnknownComponent = errors.New("component: unknown component")
)

// Options configure a Registry.
type Options struct {
	Connect        ConnectOptions
	PortRangeStart int
	// ConfigTimeout bounds the SetConfig push made after connecting.
	ConfigTimeout time.Duration
	Metrics       *monitoring.Metrics
}

// Pending is one background connection attempt.
type Pending struct {
	ComponentID string
	Service     protocol.ServiceType
	Address     string

	done   chan Result
	cancel context.CancelFunc
}

// Done delivers the outcome exactly once.
func (p *Pending) Done() <-chan Result { return p.done }

// Result is the outcome of a Pending.
type Result struct {
	Pending *Pending
	Conn    *Connection
	Err     error
}

// Registry owns component processes and connections. It is not safe for
// concurrent use.
type Registry struct {
	opts    Options
	ports   *PortFinder
	configs []protocol.ComponentConfig

	processes   []*childProcess
	servers     []*embeddedServer
	connections map[protocol.ServiceType]*Connection
	pending     []*Pending
}

// NewRegistry returns an empty registry.
func NewRegistry(opts Options) *Registry {
	if opts.PortRangeStart <= 0 {
		opts.PortRangeStart = 29000
	}
	if opts.ConfigTimeout <= 0 {
		opts.ConfigTimeout = 5 * time.Second
	}
	return &Registry{
		opts:        opts,
		ports:       NewPortFinder(opts.PortRangeStart),
		connections: make(map[protocol.ServiceType]*Connection),
	}
}

// StartComponents launches child-process and embedded components, then
// queues one connection attempt per declared service. It does not wait
// for any connection. Components after a failing one are not started.
func (r *Registry) StartComponents(ctx context.Context, configs []protocol.ComponentConfig) error {
	for _, cfg := range configs {
		services := make([]protocol.ServiceType, 0, len(cfg.Services))
		for _, s := range cfg.Services {
			st, err := protocol.ParseServiceType(s)
			if err != nil {
				return fmt.Errorf("component %s: %w", cfg.ID, err)
			}
			services = append(services, st)
		}

		external := cfg.Address != ""
		address := cfg.Address
		if !external {
			port, err := r.ports.Next()
			if err != nil {
				return err
			}
			address = net.JoinHostPort("127.0.0.1", strconv.Itoa(port))
			cfg.Address = address
		}

		switch {
		case cfg.Process != nil:
			p, err := startProcess(cfg.ID, cfg.Process, address)
			if err != nil {
				return err
			}
			r.processes = append(r.processes, p)
		case isEmbedded(cfg.ID):
			s, err := startEmbedded(cfg.ID, address)
			if err != nil {
				return err
			}
			r.servers = append(r.servers, s)
		case !external:
			return fmt.Errorf("%w: %s has no process, address or built-in implementation", ErrUnknownComponent, cfg.ID)
		}

		r.configs = append(r.configs, cfg)
		for _, st := range services {
			r.pending = append(r.pending, r.connectAsync(ctx, cfg, st))
		}
		monitoring.L().Info("component started",
			zap.String("component", cfg.ID), zap.String("address", address), zap.Strings("services", cfg.Services))
	}
	return nil
}

func (r *Registry) connectAsync(ctx context.Context, cfg protocol.ComponentConfig, st protocol.ServiceType) *Pending {
	ctx, cancel := context.WithCancel(ctx)
	p := &Pending{
		ComponentID: cfg.ID,
		Service:     st,
		Address:     cfg.Address,
		done:        make(chan Result, 1),
		cancel:      cancel,
	}
	opts := r.opts
	go func() {
		res := Result{Pending: p}
		res.Conn, res.Err = dialComponent(ctx, cfg, st, opts)
		p.done <- res
	}()
	return p
}

func dialComponent(ctx context.Context, cfg protocol.ComponentConfig, st protocol.ServiceType, opts Options) (*Connection, error) {
	conn, err := Connect(ctx, cfg.Address, opts.Connect)
	if err != nil {
		return nil, err
	}
	client, err := newClient(st, conn)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	if len(cfg.ConfigJSON) > 0 {
		cctx, cancel := context.WithTimeout(ctx, opts.ConfigTimeout)
		err := client.setConfig(cctx, string(cfg.ConfigJSON))
		cancel()
		if err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("component %s: initial config: %w", cfg.ID, err)
		}
	}
	return &Connection{ComponentID: cfg.ID, Service: st, Address: cfg.Address, conn: conn, client: client}, nil
}

// NextPending returns the channel of the most recently queued attempt, or
// nil when nothing is pending. A nil channel never becomes ready in a
// select.
func (r *Registry) NextPending() <-chan Result {
	if len(r.pending) == 0 {
		return nil
	}
	return r.pending[len(r.pending)-1].done
}

// HasPending reports whether any attempt is outstanding.
func (r *Registry) HasPending() bool { return len(r.pending) > 0 }

// Resolve applies a finished attempt. A successful connection replaces and
// closes any previous connection with the same capability. A failed one
// is logged and dropped. Results of attempts the registry no longer
// tracks are closed and ignored.
func (r *Registry) Resolve(res Result) bool {
	idx := -1
	for i, p := range r.pending {
		if p == res.Pending {
			idx = i
			break
		}
	}
	if idx < 0 {
		_ = res.Conn.Close()
		return false
	}
	r.pending = append(r.pending[:idx], r.pending[idx+1:]...)
	res.Pending.cancel()

	if res.Err != nil {
		monitoring.L().Error("component connection failed",
			zap.String("component", res.Pending.ComponentID),
			zap.String("service", string(res.Pending.Service)),
			zap.String("address", res.Pending.Address),
			zap.Error(res.Err))
		if m := r.opts.Metrics; m != nil {
			m.ConnectFailures.Inc()
		}
		return false
	}

	if old, ok := r.connections[res.Conn.Service]; ok {
		_ = old.Close()
	}
	r.connections[res.Conn.Service] = res.Conn
	if m := r.opts.Metrics; m != nil {
		m.Connections.Set(float64(len(r.connections)))
	}
	monitoring.L().Info("component connected",
		zap.String("component", res.Conn.ComponentID),
		zap.String("service", string(res.Conn.Service)),
		zap.String("address", res.Conn.Address))
	return true
}

// PollPendingConnections waits for the most recently queued attempt and
// applies it. It returns false when nothing was pending or the attempt
// failed.
func (r *Registry) PollPendingConnections(ctx context.Context) (bool, error) {
	ch := r.NextPending()
	if ch == nil {
		return false, nil
	}
	select {
	case res := <-ch:
		return r.Resolve(res), nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// Lookup returns the configuration of a started component.
func (r *Registry) Lookup(id string) (protocol.ComponentConfig, bool) {
	for _, c := range r.configs {
		if c.ID == id {
			return c, true
		}
	}
	return protocol.ComponentConfig{}, false
}

// Configs returns the started component configurations.
func (r *Registry) Configs() []protocol.ComponentConfig {
	return append([]protocol.ComponentConfig(nil), r.configs...)
}

// PrepareConfig checks that cfg.ID has a live connection and records the
// new configuration. The returned function performs the RPCs and may run
// on another goroutine.
func (r *Registry) PrepareConfig(cfg protocol.ComponentConfig) (func(context.Context) error, error) {
	idx := -1
	for i, c := range r.configs {
		if c.ID == cfg.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownComponent, cfg.ID)
	}
	var clients []Client
	for _, c := range r.connections {
		if c.ComponentID == cfg.ID {
			clients = append(clients, c.client)
		}
	}
	if len(clients) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNotConnected, cfg.ID)
	}
	r.configs[idx].ConfigJSON = cfg.ConfigJSON
	payload := string(cfg.ConfigJSON)

	return func(ctx context.Context) error {
		var errs []error
		for _, c := range clients {
			if err := c.setConfig(ctx, payload); err != nil {
				errs = append(errs, fmt.Errorf("component %s %s: set config: %w", cfg.ID, c.Service(), err))
			}
		}
		return errors.Join(errs...)
	}, nil
}

// SetConfig pushes configuration to a connected component and waits for
// it to be applied.
func (r *Registry) SetConfig(ctx context.Context, cfg protocol.ComponentConfig) error {
	push, err := r.PrepareConfig(cfg)
	if err != nil {
		return err
	}
	return push(ctx)
}

func (r *Registry) lookupClient(st protocol.ServiceType) (Client, bool) {
	c, ok := r.connections[st]
	if !ok {
		return Client{}, false
	}
	return c.client, true
}

// Detector returns the connected detector client.
func (r *Registry) Detector() (*protocol.DetectorClient, bool) {
	c, ok := r.lookupClient(protocol.ServiceDetector)
	if !ok {
		return nil, false
	}
	return c.Detector(), true
}

// Matcher returns the connected matcher client.
func (r *Registry) Matcher() (*protocol.MatcherClient, bool) {
	c, ok := r.lookupClient(protocol.ServiceMatcher)
	if !ok {
		return nil, false
	}
	return c.Matcher(), true
}

// Recorder returns the connected recorder client.
func (r *Registry) Recorder() (*protocol.RecorderClient, bool) {
	c, ok := r.lookupClient(protocol.ServiceRecorder)
	if !ok {
		return nil, false
	}
	return c.Recorder(), true
}

// Connected lists the live capabilities.
func (r *Registry) Connected() []protocol.ServiceType {
	var out []protocol.ServiceType
	for _, st := range []protocol.ServiceType{protocol.ServiceDetector, protocol.ServiceMatcher, protocol.ServiceRecorder} {
		if _, ok := r.connections[st]; ok {
			out = append(out, st)
		}
	}
	return out
}

// SampleProcesses records resource usage of child processes.
func (r *Registry) SampleProcesses() {
	for _, p := range r.processes {
		p.sample(r.opts.Metrics)
	}
}

// StopComponents cancels pending attempts, closes connections, stops
// embedded servers and kills child processes. It is idempotent.
func (r *Registry) StopComponents() {
	for _, p := range r.pending {
		p.cancel()
		go func(p *Pending) {
			if res := <-p.done; res.Conn != nil {
				_ = res.Conn.Close()
			}
		}(p)
	}
	r.pending = nil

	for st, c := range r.connections {
		_ = c.Close()
		delete(r.connections, st)
	}
	for _, s := range r.servers {
		s.stop()
	}
	r.servers = nil
	for _, p := range r.processes {
		p.stop()
	}
	r.processes = nil
	if m := r.opts.Metrics; m != nil {
		m.Connections.Set(0)
	}
}
