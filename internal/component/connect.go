package component

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/banshee-data/trackcore/internal/timeutil"
)

// ErrConnectTimeout is returned when no connection could be made before
// the connect deadline.
var ErrConnectTimeout = errors.New("component: connection timed out")

const (
	DefaultRetryInterval = time.Second
	DefaultDeadline      = 10 * time.Second
)

// ConnectOptions bound the connection retry loop.
type ConnectOptions struct {
	RetryInterval time.Duration
	Deadline      time.Duration
	DialOptions   []grpc.DialOption
	// Clock paces the retries and measures the deadline. Each attempt is
	// still bounded by a real-time context.
	Clock timeutil.Clock
}

func (o ConnectOptions) clock() timeutil.Clock {
	if o.Clock == nil {
		return timeutil.RealClock{}
	}
	return o.Clock
}

func (o ConnectOptions) interval() time.Duration {
	if o.RetryInterval <= 0 {
		return DefaultRetryInterval
	}
	return o.RetryInterval
}

func (o ConnectOptions) deadline() time.Duration {
	if o.Deadline <= 0 {
		return DefaultDeadline
	}
	return o.Deadline
}

// Connect dials address until the connection is ready, retrying every
// RetryInterval until Deadline has passed. This absorbs the race between
// starting a component process and it listening.
func Connect(ctx context.Context, address string, opts ConnectOptions) (*grpc.ClientConn, error) {
	clock := opts.clock()
	interval := opts.interval()
	deadline := clock.Now().Add(opts.deadline())

	var lastErr error
	for {
		remaining := deadline.Sub(clock.Now())
		if remaining <= 0 {
			break
		}
		attemptCtx, cancel := context.WithTimeout(ctx, min(interval, remaining))
		conn, err := dialReady(attemptCtx, address, opts.DialOptions)
		cancel()
		if err == nil {
			return conn, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		wait := deadline.Sub(clock.Now())
		if wait <= 0 {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-clock.After(min(interval, wait)):
		}
	}
	return nil, fmt.Errorf("%w: %s: %v", ErrConnectTimeout, address, lastErr)
}

// dialReady makes one connection attempt and waits for it to become ready.
func dialReady(ctx context.Context, address string, extra []grpc.DialOption) (*grpc.ClientConn, error) {
	opts := append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, extra...)
	conn, err := grpc.NewClient(address, opts...)
	if err != nil {
		return nil, err
	}
	conn.Connect()
	for {
		s := conn.GetState()
		switch s {
		case connectivity.Ready:
			return conn, nil
		case connectivity.TransientFailure, connectivity.Shutdown:
			_ = conn.Close()
			return nil, fmt.Errorf("dial %s: %s", address, s)
		}
		if !conn.WaitForStateChange(ctx, s) {
			_ = conn.Close()
			return nil, ctx.Err()
		}
	}
}
