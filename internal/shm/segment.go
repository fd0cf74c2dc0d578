// Package shm moves frame payloads between processes through named shared
// memory segments.
//
// The process that creates a segment owns it: only the owner may write to
// it and only the owner unlinks it. Any other process holding the handle
// maps it read-only.
package shm

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sys/unix"
)

const handlePrefix = "trackcore-"

var (
	// ErrNotOwner is returned when a reader asks for a writable view.
	ErrNotOwner = errors.New("shm: segment is read-only for non-owners")
	// ErrClosed is returned by operations on a released segment.
	ErrClosed = errors.New("shm: segment closed")
	// ErrBadHandle is returned for handles that cannot name a segment.
	ErrBadHandle = errors.New("shm: invalid handle")
)

// Dir is where segments are created. It defaults to /dev/shm and falls back
// to the OS temp directory where that does not exist.
var Dir = defaultDir()

func defaultDir() string {
	if fi, err := os.Stat("/dev/shm"); err == nil && fi.IsDir() {
		return "/dev/shm"
	}
	return os.TempDir()
}

// Segment is one mapped shared memory region.
type Segment struct {
	mu     sync.Mutex
	handle string
	path   string
	data   []byte
	owner  bool
	closed bool
}

// Create allocates and maps a new segment of exactly size bytes. The
// caller owns it.
func Create(size int) (*Segment, error) {
	if size <= 0 {
		return nil, fmt.Errorf("shm: invalid segment size %d", size)
	}
	handle := handlePrefix + uuid.NewString()
	path := filepath.Join(Dir, handle)

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, fmt.Errorf("shm: create %s: %w", handle, err)
	}
	defer f.Close()

	if err := f.Truncate(int64(size)); err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("shm: size %s: %w", handle, err)
	}
	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("shm: map %s: %w", handle, err)
	}
	return &Segment{handle: handle, path: path, data: data, owner: true}, nil
}

// Open maps an existing segment read-only.
func Open(handle string) (*Segment, error) {
	if !strings.HasPrefix(handle, handlePrefix) || strings.ContainsAny(handle, `/\`) {
		return nil, fmt.Errorf("%w: %q", ErrBadHandle, handle)
	}
	path := filepath.Join(Dir, handle)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("shm: open %s: %w", handle, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("shm: stat %s: %w", handle, err)
	}
	if fi.Size() == 0 {
		return nil, fmt.Errorf("%w: %q is empty", ErrBadHandle, handle)
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(fi.Size()), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("shm: map %s: %w", handle, err)
	}
	return &Segment{handle: handle, path: path, data: data}, nil
}

// Handle is the name other processes pass to Open.
func (s *Segment) Handle() string { return s.handle }

// Len is the segment size in bytes.
func (s *Segment) Len() int { return len(s.data) }

// Owner reports whether this process created the segment.
func (s *Segment) Owner() bool { return s.owner }

// Bytes returns the mapped memory. Readers must not write to it; the
// mapping is PROT_READ and a write faults.
func (s *Segment) Bytes() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	return s.data
}

// Writable returns the mapped memory for writing.
func (s *Segment) Writable() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case s.closed:
		return nil, ErrClosed
	case !s.owner:
		return nil, ErrNotOwner
	}
	return s.data, nil
}

// Close unmaps the segment. The owner also removes the name, so later
// Opens fail; existing reader mappings stay valid until they close.
func (s *Segment) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	err := unix.Munmap(s.data)
	s.data = nil
	if s.owner {
		if rmErr := os.Remove(s.path); rmErr != nil && !os.IsNotExist(rmErr) && err == nil {
			err = rmErr
		}
	}
	if err != nil {
		return fmt.Errorf("shm: release %s: %w", s.handle, err)
	}
	return nil
}
