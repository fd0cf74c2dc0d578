// Package matcher re-identifies tracked entities frame to frame by solving
// a minimum-cost assignment between this frame's features and the
// previous frame's entities.
package matcher

import (
	"math"
	"sort"

	"github.com/banshee-data/trackcore/internal/protocol"
)

const (
	// NoComparisonCost is the cost of a pair with no comparable nodes,
	// including identities that have never been matched.
	NoComparisonCost = 1e12
	// PaddingCost fills the rows or columns that make the matrix square.
	// It exceeds every real or no-comparison cost.
	PaddingCost = 1e15
)

// Cost is the mean squared node distance between two features. World
// coordinates are compared when both features carry the same number of
// them, pixel coordinates otherwise. Node pairs with a NaN side are
// skipped; when none remain the pair costs NoComparisonCost.
func Cost(a, b *protocol.Feature) float64 {
	if a == nil || b == nil {
		return NoComparisonCost
	}
	an, bn := a.ImageNodes, b.ImageNodes
	if len(a.WorldNodes) > 0 && len(a.WorldNodes) == len(b.WorldNodes) {
		an, bn = a.WorldNodes, b.WorldNodes
	}

	var sum float64
	valid := 0
	for i := 0; i < min(len(an), len(bn)); i++ {
		if an[i].IsNaN() || bn[i].IsNaN() {
			continue
		}
		dx, dy := an[i].X-bn[i].X, an[i].Y-bn[i].Y
		sum += dx*dx + dy*dy
		valid++
	}
	if valid == 0 {
		return NoComparisonCost
	}
	mean := sum / float64(valid)
	if math.IsNaN(mean) || mean > NoComparisonCost {
		return NoComparisonCost
	}
	return mean
}

// Match assigns features to the previous entities. The result has one
// entry per previous entity, in the same order. Entities that receive a
// feature take frameNumber; the others keep their stored feature and
// frame number. Identities are never created or removed here.
//
// When there are more features than entities the lowest scoring features
// are discarded first; equal scores keep their detection order.
func Match(frameNumber uint32, previous []protocol.Entity, features []protocol.Feature) []protocol.Entity {
	out := make([]protocol.Entity, len(previous))
	for i, e := range previous {
		out[i] = protocol.Entity{ID: e.ID, FrameNumber: e.FrameNumber, Feature: e.Feature.Clone()}
	}

	kept := trim(features, len(previous))
	if len(kept) == 0 {
		return out
	}

	cost := make([][]float64, len(kept))
	for i := range kept {
		cost[i] = make([]float64, len(previous))
		for j := range previous {
			cost[i][j] = Cost(&kept[i], previous[j].Feature)
		}
	}

	for i, j := range Assign(cost, PaddingCost) {
		if j < 0 {
			continue
		}
		f := kept[i].Clone()
		id := out[j].ID
		f.EntityID = &id
		out[j].Feature = f
		out[j].FrameNumber = frameNumber
	}
	return out
}

// trim returns at most limit features, highest score first.
func trim(features []protocol.Feature, limit int) []protocol.Feature {
	kept := append([]protocol.Feature(nil), features...)
	if len(kept) <= limit {
		return kept
	}
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].Score > kept[j].Score })
	return kept[:limit]
}
