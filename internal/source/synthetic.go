package source

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"time"

	"github.com/banshee-data/trackcore/internal/protocol"
	"github.com/banshee-data/trackcore/internal/shm"
)

// Synthetic renders grey frames with bright blobs moving on circles. It
// stands in for a camera in demos and tests; its frames have no lens
// distortion, so undistortion requests are ignored.
type Synthetic struct {
	pool *shm.Pool
	next uint32

	StreamID    string
	Width       int
	Height      int
	Channels    int
	FrameCount  uint32 // 0 means endless
	FPS         float64
	BlobCount   int
	BlobRadius  int     // pixels
	OrbitRadius float64 // pixels
	// RadPerFrame is the angular speed of each blob.
	RadPerFrame float64
}

// NewSynthetic returns a 640x480 single channel source.
func NewSynthetic(pool *shm.Pool) *Synthetic {
	return &Synthetic{
		pool:        pool,
		StreamID:    "synthetic",
		Width:       640,
		Height:      480,
		Channels:    1,
		FPS:         30,
		BlobCount:   3,
		BlobRadius:  8,
		OrbitRadius: 150,
		RadPerFrame: 0.05,
	}
}

// NewSyntheticFromURL reads width, height, channels, frames, fps, blobs
// and stream from the query string.
func NewSyntheticFromURL(u *url.URL, pool *shm.Pool) (*Synthetic, error) {
	s := NewSynthetic(pool)
	q := u.Query()
	ints := map[string]*int{"width": &s.Width, "height": &s.Height, "channels": &s.Channels, "blobs": &s.BlobCount}
	for key, dst := range ints {
		if v := q.Get(key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("source: invalid %s %q", key, v)
			}
			*dst = n
		}
	}
	if v := q.Get("frames"); v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("source: invalid frames %q", v)
		}
		s.FrameCount = uint32(n)
	}
	if v := q.Get("fps"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			return nil, fmt.Errorf("source: invalid fps %q", v)
		}
		s.FPS = f
	}
	if v := q.Get("stream"); v != "" {
		s.StreamID = v
	}
	if s.Width == 0 || s.Height == 0 || s.Channels == 0 {
		return nil, fmt.Errorf("source: empty frame size %dx%dx%d", s.Width, s.Height, s.Channels)
	}
	return s, nil
}

// Info describes the stream.
func (s *Synthetic) Info() protocol.VideoInfo {
	return protocol.VideoInfo{
		Path:       "synthetic://" + s.StreamID,
		Width:      uint32(s.Width),
		Height:     uint32(s.Height),
		FPS:        s.FPS,
		FrameCount: s.FrameCount,
	}
}

// Next renders the next frame into a pool segment.
func (s *Synthetic) Next(ctx context.Context, req DecodeRequest) (Frame, error) {
	if err := ctx.Err(); err != nil {
		return Frame{}, err
	}
	if req.Seek != nil {
		s.next = *req.Seek
	}
	if s.FrameCount > 0 && s.next >= s.FrameCount {
		return Frame{}, ErrEndOfStream
	}

	frame := s.next
	size := s.Width * s.Height * s.Channels
	seg, err := s.pool.Acquire(size)
	if err != nil {
		return Frame{}, fmt.Errorf("source: frame %d: %w", frame, err)
	}
	buf, err := seg.Writable()
	if err != nil {
		return Frame{}, err
	}
	s.render(buf, frame)
	s.next++

	out := Frame{Image: protocol.Image{
		StreamID:    s.StreamID,
		FrameNumber: frame,
		ShmID:       seg.Handle(),
		Width:       uint32(s.Width),
		Height:      uint32(s.Height),
		Channels:    uint32(s.Channels),
		TimestampNs: int64(float64(frame) / s.FPS * float64(time.Second)),
	}}
	if req.CopyPayload {
		out.Payload = append([]byte(nil), buf...)
	}
	return out, nil
}

// BlobCenter is the pixel position of blob i in frame.
func (s *Synthetic) BlobCenter(i int, frame uint32) protocol.Point {
	base := float64(i) * 2 * math.Pi / float64(max(s.BlobCount, 1))
	angle := base + float64(frame)*s.RadPerFrame
	return protocol.Point{
		X: float64(s.Width)/2 + s.OrbitRadius*math.Cos(angle),
		Y: float64(s.Height)/2 + s.OrbitRadius*math.Sin(angle),
	}
}

func (s *Synthetic) render(buf []byte, frame uint32) {
	for i := range buf {
		buf[i] = 32
	}
	r := s.BlobRadius
	for b := 0; b < s.BlobCount; b++ {
		c := s.BlobCenter(b, frame)
		cx, cy := int(c.X), int(c.Y)
		for y := max(cy-r, 0); y < min(cy+r, s.Height); y++ {
			for x := max(cx-r, 0); x < min(cx+r, s.Width); x++ {
				if (x-cx)*(x-cx)+(y-cy)*(y-cy) > r*r {
					continue
				}
				off := (y*s.Width + x) * s.Channels
				for ch := 0; ch < s.Channels; ch++ {
					buf[off+ch] = 255
				}
			}
		}
	}
}

// Close releases nothing; the pool belongs to the caller.
func (s *Synthetic) Close() error { return nil }
