// Package source provides the frame sources the orchestrator decodes from
// and the sinks it records to. Codecs live outside this module; the
// implementations here move raw frames only.
package source

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/banshee-data/trackcore/internal/protocol"
	"github.com/banshee-data/trackcore/internal/shm"
)

// ErrEndOfStream is returned by Next when the source has no more frames.
var ErrEndOfStream = errors.New("source: end of stream")

// DecodeRequest controls one Next call.
type DecodeRequest struct {
	// Seek positions the source at this frame before decoding.
	Seek *uint32
	// CopyPayload asks for a private copy of the pixels in Frame.Payload,
	// for consumers that outlive the shared segment.
	CopyPayload bool
	// Undistort asks the source to undistort the whole frame.
	Undistort bool
}

// Frame is one decoded frame. The pixels are in the shared segment named
// by Image.ShmID.
type Frame struct {
	Image   protocol.Image
	Payload []byte
}

// Source produces frames. Next is never called concurrently.
type Source interface {
	Info() protocol.VideoInfo
	Next(ctx context.Context, req DecodeRequest) (Frame, error)
	Close() error
}

// Open returns the source for uri. Frames are written into pool.
func Open(uri string, pool *shm.Pool) (Source, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("source: parse %q: %w", uri, err)
	}
	switch u.Scheme {
	case "synthetic":
		return NewSyntheticFromURL(u, pool)
	default:
		return nil, fmt.Errorf("source: unsupported scheme %q", u.Scheme)
	}
}
