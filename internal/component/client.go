package component

import (
	"context"
	"fmt"

	"google.golang.org/grpc"

	"github.com/banshee-data/trackcore/internal/protocol"
)

// Client is a typed gRPC client for one capability. The variant is fixed
// when the connection is made; asking for another variant panics.
type Client struct {
	service  protocol.ServiceType
	detector *protocol.DetectorClient
	matcher  *protocol.MatcherClient
	recorder *protocol.RecorderClient
}

func newClient(st protocol.ServiceType, cc grpc.ClientConnInterface) (Client, error) {
	c := Client{service: st}
	switch st {
	case protocol.ServiceDetector:
		c.detector = protocol.NewDetectorClient(cc)
	case protocol.ServiceMatcher:
		c.matcher = protocol.NewMatcherClient(cc)
	case protocol.ServiceRecorder:
		c.recorder = protocol.NewRecorderClient(cc)
	default:
		return Client{}, fmt.Errorf("component: unknown service %q", st)
	}
	return c, nil
}

// Service is the capability of the client.
func (c Client) Service() protocol.ServiceType { return c.service }

func (c Client) Detector() *protocol.DetectorClient {
	c.must(protocol.ServiceDetector)
	return c.detector
}

func (c Client) Matcher() *protocol.MatcherClient {
	c.must(protocol.ServiceMatcher)
	return c.matcher
}

func (c Client) Recorder() *protocol.RecorderClient {
	c.must(protocol.ServiceRecorder)
	return c.recorder
}

func (c Client) must(st protocol.ServiceType) {
	if c.service != st {
		panic(fmt.Sprintf("component: %s client requested from %s connection", st, c.service))
	}
}

func (c Client) setConfig(ctx context.Context, configJSON string) error {
	switch c.service {
	case protocol.ServiceDetector:
		return c.detector.SetConfig(ctx, configJSON)
	case protocol.ServiceMatcher:
		return c.matcher.SetConfig(ctx, configJSON)
	case protocol.ServiceRecorder:
		return c.recorder.SetConfig(ctx, configJSON)
	}
	return nil
}

// Connection is a live client of one component capability.
type Connection struct {
	ComponentID string
	Service     protocol.ServiceType
	Address     string

	conn   *grpc.ClientConn
	client Client
}

// Client returns the typed client.
func (c *Connection) Client() Client { return c.client }

// Close releases the underlying gRPC connection.
func (c *Connection) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}
	return c.conn.Close()
}
