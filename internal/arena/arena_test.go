package arena

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/trackcore/internal/protocol"
)

func squareArena() protocol.Arena {
	return protocol.Arena{
		WidthCm:  200,
		HeightCm: 200,
		RectificationCorners: []protocol.Point{
			{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100},
		},
		TrackingAreaCorners: []protocol.Point{
			{X: 10, Y: 10}, {X: 90, Y: 10}, {X: 90, Y: 90}, {X: 10, Y: 90},
		},
	}
}

func assertPoint(t *testing.T, want, got protocol.Point) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-6)
	assert.InDelta(t, want.Y, got.Y, 1e-6)
}

func TestTransform_MapsCornersToArena(t *testing.T) {
	g, err := New(squareArena())
	require.NoError(t, err)
	require.True(t, g.Rectified())

	assertPoint(t, protocol.Point{X: -100, Y: 100}, g.Transform(protocol.Point{X: 0, Y: 0}))
	assertPoint(t, protocol.Point{X: 100, Y: -100}, g.Transform(protocol.Point{X: 100, Y: 100}))
	assertPoint(t, protocol.Point{X: 0, Y: 0}, g.Transform(protocol.Point{X: 50, Y: 50}))
}

func TestTransform_Perspective(t *testing.T) {
	a := protocol.Arena{
		WidthCm:  100,
		HeightCm: 50,
		RectificationCorners: []protocol.Point{
			{X: 20, Y: 10}, {X: 180, Y: 30}, {X: 170, Y: 120}, {X: 10, Y: 100},
		},
	}
	g, err := New(a)
	require.NoError(t, err)

	want := []protocol.Point{{X: -50, Y: 25}, {X: 50, Y: 25}, {X: 50, Y: -25}, {X: -50, Y: -25}}
	for i, c := range a.RectificationCorners {
		assertPoint(t, want[i], g.Transform(c))
	}
}

func TestTransform_NaNStaysNaN(t *testing.T) {
	g, err := New(squareArena())
	require.NoError(t, err)

	got := g.Transform(protocol.Point{X: math.NaN(), Y: 3})
	assert.True(t, got.IsNaN())
	assert.False(t, g.OutOfBounds(got))
}

func TestOutOfBounds(t *testing.T) {
	g, err := New(squareArena())
	require.NoError(t, err)

	assert.False(t, g.OutOfBounds(g.Transform(protocol.Point{X: 50, Y: 50})))
	assert.True(t, g.OutOfBounds(g.Transform(protocol.Point{X: 95, Y: 50})))
}

func TestNew_Unrectified(t *testing.T) {
	g, err := New(protocol.Arena{WidthCm: 100, HeightCm: 100})
	require.NoError(t, err)
	assert.False(t, g.Rectified())

	p := protocol.Point{X: 12, Y: 34}
	assert.Equal(t, p, g.Transform(p))
	assert.False(t, g.OutOfBounds(p))
}

func TestNew_Rejects(t *testing.T) {
	cases := map[string]protocol.Arena{
		"zero size":   {WidthCm: 0, HeightCm: 10},
		"two corners": {WidthCm: 10, HeightCm: 10, RectificationCorners: []protocol.Point{{}, {X: 1}}},
		"degenerate": {WidthCm: 10, HeightCm: 10, RectificationCorners: []protocol.Point{
			{X: 1, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 1},
		}},
		"short polygon": {WidthCm: 10, HeightCm: 10, TrackingAreaCorners: []protocol.Point{{}, {X: 1}}},
	}
	for name, a := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := New(a)
			assert.Error(t, err)
		})
	}
}

func TestContains_Concave(t *testing.T) {
	// L shape
	poly := []protocol.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 4}, {X: 0, Y: 4}}
	assert.True(t, Contains(poly, protocol.Point{X: 0.5, Y: 3}))
	assert.True(t, Contains(poly, protocol.Point{X: 3, Y: 0.5}))
	assert.False(t, Contains(poly, protocol.Point{X: 3, Y: 3}))
}
