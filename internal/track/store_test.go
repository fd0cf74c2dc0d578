package track

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/trackcore/internal/protocol"
)

func frames(t *Track) []uint32 {
	var out []uint32
	for _, o := range t.Observations {
		out = append(out, o.FrameNumber)
	}
	return out
}

func TestInsert_Monotonic(t *testing.T) {
	s := NewStore()
	f := protocol.Feature{Score: 1}

	assert.True(t, s.Insert(1, 3, f))
	assert.True(t, s.Insert(1, 7, f))
	assert.False(t, s.Insert(1, 7, f), "duplicate frame")
	assert.False(t, s.Insert(1, 5, f), "out of order frame")
	assert.True(t, s.Insert(1, 9, f))

	tr, ok := s.Get(1)
	require.True(t, ok)
	assert.Equal(t, []uint32{3, 7, 9}, frames(tr))
	assert.Equal(t, uint64(2), s.Rejected())
}

func TestInsert_IdentitiesIndependent(t *testing.T) {
	s := NewStore()
	f := protocol.Feature{}
	require.True(t, s.Insert(1, 10, f))
	assert.True(t, s.Insert(2, 4, f))
	assert.Equal(t, 2, s.Len())
}

func TestMerge_SkipsUnseenEntities(t *testing.T) {
	s := NewStore()
	sk := &protocol.Skeleton{Nodes: []string{"head", "tail"}}
	s.SetSkeleton(sk)

	n := s.Merge(5, []protocol.Entity{
		{ID: 1, FrameNumber: 5, Feature: &protocol.Feature{Score: 0.5}},
		{ID: 2, FrameNumber: 3, Feature: &protocol.Feature{Score: 0.4}},
		{ID: 3, FrameNumber: 5},
	})
	assert.Equal(t, 1, n)

	recs := s.Records()
	require.Len(t, recs, 1)
	assert.Equal(t, uint32(1), recs[0].EntityID)
	assert.Same(t, sk, recs[0].Skeleton)
}

func TestInsert_CopiesFeature(t *testing.T) {
	s := NewStore()
	f := protocol.Feature{ImageNodes: []protocol.Point{{X: 1, Y: 1}}}
	s.Insert(1, 1, f)
	f.ImageNodes[0].X = 99

	tr, _ := s.Get(1)
	assert.Equal(t, 1.0, tr.Observations[0].Feature.ImageNodes[0].X)
}

func TestRecords_SortedAndReset(t *testing.T) {
	s := NewStore()
	s.Insert(3, 1, protocol.Feature{})
	s.Insert(1, 1, protocol.Feature{})
	s.Insert(2, 1, protocol.Feature{})

	var ids []uint32
	for _, r := range s.Records() {
		ids = append(ids, r.EntityID)
	}
	assert.Equal(t, []uint32{1, 2, 3}, ids)

	s.Reset(0)
	assert.Zero(t, s.Len())
	assert.Empty(t, s.Records())
}

func TestMerge_RebasesToOrigin(t *testing.T) {
	s := NewStore()
	matched := func(frame uint32) []protocol.Entity {
		return []protocol.Entity{{ID: 1, FrameNumber: frame, Feature: &protocol.Feature{Score: 1}}}
	}
	assert.Equal(t, 1, s.Merge(40, matched(40)))

	s.Reset(100)
	assert.Equal(t, uint32(100), s.Origin())
	assert.Zero(t, s.Merge(99, matched(99)), "before the origin")
	assert.Equal(t, 1, s.Merge(100, matched(100)))
	assert.Equal(t, 1, s.Merge(103, matched(103)))

	tr, ok := s.Get(1)
	require.True(t, ok)
	assert.Equal(t, []uint32{0, 3}, frames(tr))
}
