package component

import (
	"fmt"
	"net"

	"google.golang.org/grpc"

	"github.com/banshee-data/trackcore/internal/matcher"
	"github.com/banshee-data/trackcore/internal/monitoring"
	"github.com/banshee-data/trackcore/internal/protocol/pb"
)

// HungarianMatcherID names the matcher served from inside this process.
const HungarianMatcherID = "HungarianMatcher"

// embeddedServer serves a built-in component on its configured address.
type embeddedServer struct {
	id  string
	srv *grpc.Server
	lis net.Listener
}

func isEmbedded(id string) bool {
	return id == HungarianMatcherID
}

func startEmbedded(id, address string) (*embeddedServer, error) {
	srv := grpc.NewServer()
	switch id {
	case HungarianMatcherID:
		pb.RegisterMatcherServer(srv, matcher.NewService())
	default:
		return nil, fmt.Errorf("component: unknown embedded component %q", id)
	}

	lis, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("component %s: listen %s: %w", id, address, err)
	}
	go func() {
		if err := srv.Serve(lis); err != nil {
			monitoring.S().Warnw("embedded component stopped", "component", id, "error", err)
		}
	}()
	return &embeddedServer{id: id, srv: srv, lis: lis}, nil
}

func (e *embeddedServer) stop() {
	e.srv.Stop()
}
