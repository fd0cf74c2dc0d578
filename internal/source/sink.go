package source

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"

	"github.com/banshee-data/trackcore/internal/fsutil"
	"github.com/banshee-data/trackcore/internal/protocol"
	"github.com/banshee-data/trackcore/internal/security"
	"github.com/banshee-data/trackcore/internal/shm"
)

// Sink consumes recorded frames in order.
type Sink interface {
	AddFrame(img protocol.Image, payload []byte) error
	Close() error
}

// SinkFactory opens a sink for a recording.
type SinkFactory func(cfg protocol.RecordingConfig) (Sink, error)

// RawFileSinks returns a factory that creates raw sinks under dir.
// Relative recording paths are joined onto dir; paths that resolve
// outside it are rejected. Missing directories are created.
func RawFileSinks(fsys fsutil.FileSystem, dir string) SinkFactory {
	return func(cfg protocol.RecordingConfig) (Sink, error) {
		path, err := security.ResolveWithin(dir, cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("sink: recording path %q: %w", cfg.Path, err)
		}
		if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("sink: %w", err)
		}
		s, err := NewRawFileSink(fsys, path, cfg)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
}

// RawFileSink appends tightly packed frames to a file.
type RawFileSink struct {
	cfg    protocol.RecordingConfig
	f      io.WriteCloser
	w      *bufio.Writer
	frames int
}

// NewRawFileSink creates path, truncating an existing file.
func NewRawFileSink(fsys fsutil.FileSystem, path string, cfg protocol.RecordingConfig) (*RawFileSink, error) {
	if path == "" {
		return nil, fmt.Errorf("sink: recording path is empty")
	}
	f, err := fsys.Create(path)
	if err != nil {
		return nil, fmt.Errorf("sink: create %s: %w", path, err)
	}
	return &RawFileSink{cfg: cfg, f: f, w: bufio.NewWriterSize(f, 1<<20)}, nil
}

// AddFrame writes payload, or reads the frame from shared memory when no
// payload is given.
func (s *RawFileSink) AddFrame(img protocol.Image, payload []byte) error {
	if s.cfg.Width != 0 && s.cfg.Height != 0 && (img.Width != s.cfg.Width || img.Height != s.cfg.Height) {
		return fmt.Errorf("sink: frame %d is %dx%d, recording is %dx%d",
			img.FrameNumber, img.Width, img.Height, s.cfg.Width, s.cfg.Height)
	}
	if payload == nil {
		b, err := CopyFrame(img)
		if err != nil {
			return fmt.Errorf("sink: %w", err)
		}
		payload = b
	}
	if want := img.ByteLength(); want > 0 && len(payload) < want {
		return fmt.Errorf("sink: frame %d has %d bytes, want %d", img.FrameNumber, len(payload), want)
	} else if want > 0 {
		payload = payload[:want]
	}
	if _, err := s.w.Write(payload); err != nil {
		return fmt.Errorf("sink: write frame %d: %w", img.FrameNumber, err)
	}
	s.frames++
	return nil
}

// CopyFrame returns a private copy of the pixels of img, read from the
// shared segment named by img.ShmID.
func CopyFrame(img protocol.Image) ([]byte, error) {
	seg, err := shm.Open(img.ShmID)
	if err != nil {
		return nil, fmt.Errorf("frame %d: %w", img.FrameNumber, err)
	}
	defer seg.Close()
	b := seg.Bytes()
	if want := img.ByteLength(); want > 0 && len(b) > want {
		b = b[:want]
	}
	return append([]byte(nil), b...), nil
}

// Frames is the number of frames written.
func (s *RawFileSink) Frames() int { return s.frames }

// Close flushes and closes the file.
func (s *RawFileSink) Close() error {
	if s.f == nil {
		return nil
	}
	err := s.w.Flush()
	if cerr := s.f.Close(); err == nil {
		err = cerr
	}
	s.f = nil
	return err
}
