package matcher

import (
	"context"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/banshee-data/trackcore/internal/protocol"
	"github.com/banshee-data/trackcore/internal/protocol/pb"
)

func feat(score float64, pts ...float64) protocol.Feature {
	f := protocol.Feature{Score: score}
	for i := 0; i+1 < len(pts); i += 2 {
		f.ImageNodes = append(f.ImageNodes, protocol.Point{X: pts[i], Y: pts[i+1]})
	}
	return f
}

func entity(id, frame uint32, f *protocol.Feature) protocol.Entity {
	return protocol.Entity{ID: id, FrameNumber: frame, Feature: f}
}

func ptr[T any](v T) *T { return &v }

func TestCost_MeanSquaredDistance(t *testing.T) {
	a := feat(1, 0, 0, 2, 2)
	b := feat(1, 3, 4, 2, 2)
	assert.Equal(t, 12.5, Cost(&a, &b))
}

func TestCost_SkipsNaNPairs(t *testing.T) {
	a := feat(1, 0, 0, math.NaN(), 1)
	b := feat(1, 1, 0, 5, 5)
	assert.Equal(t, 1.0, Cost(&a, &b))
}

func TestCost_NoValidPairsIsNotZero(t *testing.T) {
	a := feat(1, math.NaN(), math.NaN())
	b := feat(1, 0, 0)
	assert.Equal(t, float64(NoComparisonCost), Cost(&a, &b))
	assert.Equal(t, float64(NoComparisonCost), Cost(&a, nil))
}

func TestCost_PrefersWorldNodes(t *testing.T) {
	a := feat(1, 0, 0)
	b := feat(1, 100, 100)
	a.WorldNodes = []protocol.Point{{X: 1, Y: 1}}
	b.WorldNodes = []protocol.Point{{X: 1, Y: 2}}
	assert.Equal(t, 1.0, Cost(&a, &b))
}

func TestMatch_ReidentifiesByDistance(t *testing.T) {
	prev := []protocol.Entity{
		entity(1, 5, ptr(feat(1, 0, 0))),
		entity(2, 5, ptr(feat(1, 10, 10))),
	}
	features := []protocol.Feature{
		feat(0.9, 11, 10),
		feat(0.8, 1, 0),
	}

	got := Match(6, prev, features)
	require.Len(t, got, 2)
	assert.Equal(t, uint32(1), got[0].ID)
	assert.Equal(t, 1.0, got[0].Feature.ImageNodes[0].X)
	assert.Equal(t, uint32(6), got[0].FrameNumber)
	assert.Equal(t, uint32(1), *got[0].Feature.EntityID)
	assert.Equal(t, 11.0, got[1].Feature.ImageNodes[0].X)
	assert.Equal(t, uint32(2), *got[1].Feature.EntityID)
}

func TestMatch_DiscardsLowestScores(t *testing.T) {
	prev := []protocol.Entity{entity(1, 0, nil), entity(2, 0, nil)}
	features := []protocol.Feature{
		feat(0.2, 0, 0),
		feat(0.9, 1, 1),
		feat(0.1, 2, 2),
		feat(0.7, 3, 3),
	}

	got := Match(3, prev, features)
	require.Len(t, got, 2)

	var scores []float64
	for _, e := range got {
		require.NotNil(t, e.Feature)
		scores = append(scores, e.Feature.Score)
	}
	assert.ElementsMatch(t, []float64{0.9, 0.7}, scores)
}

func TestMatch_NoTrackedIdentities(t *testing.T) {
	got := Match(1, nil, []protocol.Feature{feat(1, 0, 0), feat(1, 5, 5)})
	assert.Empty(t, got, "identities are never invented")
}

func TestMatch_UnassignedKeepsStoredFeature(t *testing.T) {
	old := feat(1, 50, 50)
	prev := []protocol.Entity{
		entity(1, 2, ptr(feat(1, 0, 0))),
		entity(2, 2, &old),
	}

	got := Match(3, prev, []protocol.Feature{feat(1, 1, 1)})
	require.Len(t, got, 2)
	assert.Equal(t, uint32(3), got[0].FrameNumber)
	assert.Equal(t, uint32(2), got[1].FrameNumber, "unmatched identity is not seen at this frame")
	if diff := cmp.Diff(&old, got[1].Feature); diff != "" {
		t.Errorf("stored feature changed (-want +got):\n%s", diff)
	}
}

func TestMatch_DoesNotMutateInputs(t *testing.T) {
	prev := []protocol.Entity{entity(1, 0, nil)}
	features := []protocol.Feature{feat(0.1, 0, 0), feat(0.5, 1, 1)}

	Match(1, prev, features)
	assert.Nil(t, prev[0].Feature)
	assert.Equal(t, 0.1, features[0].Score)
	assert.Nil(t, features[1].EntityID)
}

func TestLocal_RequiresFeatures(t *testing.T) {
	s := NewLocal()
	_, err := s.Match(context.Background(), &protocol.MatchRequest{FrameNumber: 1})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	resp, err := s.Match(context.Background(), &protocol.MatchRequest{
		FrameNumber: 4,
		Entities:    []protocol.Entity{entity(9, 0, nil)},
		Features:    &protocol.Features{FrameNumber: 4, Features: []protocol.Feature{feat(1, 2, 2)}},
	})
	require.NoError(t, err)
	require.Len(t, resp.Entities, 1)
	assert.Equal(t, uint32(4), resp.Entities[0].FrameNumber)
}

func TestService_Proto(t *testing.T) {
	s := NewService()
	_, err := s.Match(context.Background(), &pb.MatchRequest{FrameNumber: 1})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	x := 2.0
	resp, err := s.Match(context.Background(), &pb.MatchRequest{
		FrameNumber: 6,
		Entities:    []*pb.Entity{{Id: 3}},
		Features: &pb.Features{FrameNumber: 6, Features: []*pb.Feature{
			{Score: 1, ImageNodes: []*pb.Point{{X: &x}}},
		}},
	})
	require.NoError(t, err)
	require.Len(t, resp.GetEntities(), 1)
	got := resp.GetEntities()[0]
	assert.Equal(t, uint32(6), got.GetFrameNumber())
	require.NotNil(t, got.GetFeature())
	assert.Equal(t, uint32(3), got.GetFeature().GetEntityId())
	node := got.GetFeature().GetImageNodes()[0]
	assert.Equal(t, 2.0, node.GetX())
	assert.Nil(t, node.Y, "undefined axis stays absent")
}
