package shm

import (
	"errors"
	"sync"
)

// PoolCapacity bounds the pool to the current and the previous frame.
const PoolCapacity = 2

// Pool recycles owned segments for a stream of equally sized frames.
type Pool struct {
	mu       sync.Mutex
	segments []*Segment
	closed   bool
}

// NewPool returns an empty pool.
func NewPool() *Pool {
	return &Pool{}
}

// Acquire returns a writable segment of exactly size bytes. When the pool
// is full the oldest segment is reused if its size matches and released
// otherwise. A failed allocation leaves the pool usable.
func (p *Pool) Acquire(size int) (*Segment, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil, ErrClosed
	}

	if len(p.segments) >= PoolCapacity {
		oldest := p.segments[0]
		p.segments = p.segments[1:]
		if oldest.Len() == size {
			p.segments = append(p.segments, oldest)
			return oldest, nil
		}
		if err := oldest.Close(); err != nil {
			return nil, err
		}
	}

	seg, err := Create(size)
	if err != nil {
		return nil, err
	}
	p.segments = append(p.segments, seg)
	return seg, nil
}

// Len is the number of live segments.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.segments)
}

// Close releases every segment. It is safe to call more than once.
func (p *Pool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	var errs []error
	for _, s := range p.segments {
		errs = append(errs, s.Close())
	}
	p.segments = nil
	return errors.Join(errs...)
}
