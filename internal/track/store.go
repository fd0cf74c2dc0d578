// Package track keeps the per-identity observation history of a
// recording.
package track

import (
	"sort"

	"github.com/banshee-data/trackcore/internal/protocol"
)

// Track is the history of one identity. Observations are strictly
// increasing by frame number.
type Track struct {
	EntityID     uint32
	Skeleton     *protocol.Skeleton
	Observations []protocol.Observation
}

// Last returns the most recent observation.
func (t *Track) Last() (protocol.Observation, bool) {
	if len(t.Observations) == 0 {
		return protocol.Observation{}, false
	}
	return t.Observations[len(t.Observations)-1], true
}

// Store holds every Track of the current recording. Frame numbers are
// stored relative to the origin given to Reset, so the first frame of a
// recording is frame 0. It is not safe for concurrent use; the
// orchestrator owns it.
type Store struct {
	tracks   map[uint32]*Track
	skeleton *protocol.Skeleton
	origin   uint32
	rejected uint64
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{tracks: make(map[uint32]*Track)}
}

// SetSkeleton records the skeleton used for tracks created from now on.
// Existing tracks keep the skeleton they started with.
func (s *Store) SetSkeleton(sk *protocol.Skeleton) {
	if sk != nil {
		s.skeleton = sk
	}
}

// Insert appends an observation at a frame number already relative to the
// origin. An observation whose frame number is not
// greater than the track's last one is dropped and Insert returns false.
func (s *Store) Insert(id, frame uint32, f protocol.Feature) bool {
	t, ok := s.tracks[id]
	if !ok {
		t = &Track{EntityID: id, Skeleton: s.skeleton}
		s.tracks[id] = t
	}
	if last, ok := t.Last(); ok && frame <= last.FrameNumber {
		s.rejected++
		return false
	}
	if t.Skeleton == nil {
		t.Skeleton = s.skeleton
	}
	t.Observations = append(t.Observations, protocol.Observation{FrameNumber: frame, Feature: *f.Clone()})
	return true
}

// Merge inserts the entities that were matched at source frame. Entities
// carrying an older frame number were not seen and are skipped, and so is
// a frame before the origin. It returns the number of observations stored.
func (s *Store) Merge(frame uint32, entities []protocol.Entity) int {
	if frame < s.origin {
		return 0
	}
	n := 0
	for _, e := range entities {
		if e.Feature == nil || e.FrameNumber != frame {
			continue
		}
		if s.Insert(e.ID, frame-s.origin, *e.Feature) {
			n++
		}
	}
	return n
}

// Get returns the track of id.
func (s *Store) Get(id uint32) (*Track, bool) {
	t, ok := s.tracks[id]
	return t, ok
}

// Len is the number of tracks.
func (s *Store) Len() int { return len(s.tracks) }

// Rejected counts observations dropped by the monotonicity rule.
func (s *Store) Rejected() uint64 { return s.rejected }

// Reset drops every track and makes origin frame 0 of the next history.
func (s *Store) Reset(origin uint32) {
	s.tracks = make(map[uint32]*Track)
	s.origin = origin
	s.rejected = 0
}

// Origin is the source frame stored as frame 0.
func (s *Store) Origin() uint32 { return s.origin }

// Records returns a copy of every track, ordered by identity.
func (s *Store) Records() []protocol.TrackRecord {
	ids := make([]uint32, 0, len(s.tracks))
	for id := range s.tracks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]protocol.TrackRecord, 0, len(ids))
	for _, id := range ids {
		t := s.tracks[id]
		out = append(out, protocol.TrackRecord{
			EntityID:     id,
			Skeleton:     t.Skeleton,
			Observations: append([]protocol.Observation(nil), t.Observations...),
		})
	}
	return out
}
