// Package arena maps image pixels onto the physical tracking area.
//
// The rectification corners are four pixel positions, clockwise from the
// top-left, that map to the arena corners. World coordinates are in
// centimetres with the origin at the arena centre and y pointing up.
package arena

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/banshee-data/trackcore/internal/protocol"
)

// ErrDegenerate is returned when the corners do not define a homography.
var ErrDegenerate = errors.New("arena: rectification corners are degenerate")

// Geometry is the precomputed transform for one Arena. The zero value
// leaves coordinates unrectified and never reports out of bounds.
type Geometry struct {
	arena     protocol.Arena
	h         [9]float64
	rectified bool
	// area is the tracking polygon in the coordinate space of transformed
	// nodes: world when rectified, pixels otherwise.
	area []protocol.Point
}

// New validates the arena and computes its homography. An arena without
// rectification corners is accepted and left unrectified.
func New(a protocol.Arena) (*Geometry, error) {
	if a.WidthCm <= 0 || a.HeightCm <= 0 {
		return nil, fmt.Errorf("arena: size must be positive, got %gx%g cm", a.WidthCm, a.HeightCm)
	}
	g := &Geometry{arena: a}

	switch n := len(a.RectificationCorners); n {
	case 0:
	case 4:
		x, y := a.WidthCm/2, a.HeightCm/2
		dst := [4]protocol.Point{{X: -x, Y: y}, {X: x, Y: y}, {X: x, Y: -y}, {X: -x, Y: -y}}
		h, err := homography(a.RectificationCorners, dst[:])
		if err != nil {
			return nil, err
		}
		g.h = h
		g.rectified = true
	default:
		return nil, fmt.Errorf("arena: need 4 rectification corners, got %d", n)
	}

	if len(a.TrackingAreaCorners) > 0 && len(a.TrackingAreaCorners) < 3 {
		return nil, fmt.Errorf("arena: tracking area needs at least 3 corners, got %d", len(a.TrackingAreaCorners))
	}
	for _, p := range a.TrackingAreaCorners {
		q := g.Transform(p)
		if q.IsNaN() {
			return nil, fmt.Errorf("arena: tracking area corner %v has no world position", p)
		}
		g.area = append(g.area, q)
	}
	return g, nil
}

// Arena returns the configuration the geometry was built from.
func (g *Geometry) Arena() protocol.Arena {
	if g == nil {
		return protocol.Arena{}
	}
	return g.arena
}

// Rectified reports whether Transform maps into world coordinates.
func (g *Geometry) Rectified() bool { return g != nil && g.rectified }

// Transform maps a pixel to world coordinates. A NaN input, or a point on
// the homography's line at infinity, yields NaN.
func (g *Geometry) Transform(p protocol.Point) protocol.Point {
	if p.IsNaN() {
		return protocol.NaNPoint()
	}
	if !g.Rectified() {
		return p
	}
	h := &g.h
	w := h[6]*p.X + h[7]*p.Y + h[8]
	if w == 0 || math.IsNaN(w) {
		return protocol.NaNPoint()
	}
	return protocol.Point{
		X: (h[0]*p.X + h[1]*p.Y + h[2]) / w,
		Y: (h[3]*p.X + h[4]*p.Y + h[5]) / w,
	}
}

// OutOfBounds reports whether a transformed point lies outside the
// tracking area. Without a tracking area nothing is out of bounds.
func (g *Geometry) OutOfBounds(p protocol.Point) bool {
	if g == nil || len(g.area) == 0 || p.IsNaN() {
		return false
	}
	return !Contains(g.area, p)
}

// Contains is an even-odd point-in-polygon test.
func Contains(poly []protocol.Point, p protocol.Point) bool {
	inside := false
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}

// homography solves for H with h33 = 1 mapping src[i] onto dst[i].
func homography(src, dst []protocol.Point) ([9]float64, error) {
	var out [9]float64
	a := mat.NewDense(8, 8, nil)
	b := mat.NewVecDense(8, nil)
	for i := 0; i < 4; i++ {
		x, y := src[i].X, src[i].Y
		u, v := dst[i].X, dst[i].Y
		if src[i].IsNaN() {
			return out, ErrDegenerate
		}
		a.SetRow(2*i, []float64{x, y, 1, 0, 0, 0, -x * u, -y * u})
		a.SetRow(2*i+1, []float64{0, 0, 0, x, y, 1, -x * v, -y * v})
		b.SetVec(2*i, u)
		b.SetVec(2*i+1, v)
	}

	var h mat.VecDense
	if err := h.SolveVec(a, b); err != nil {
		return out, fmt.Errorf("%w: %v", ErrDegenerate, err)
	}
	for i := 0; i < 8; i++ {
		out[i] = h.AtVec(i)
		if math.IsNaN(out[i]) || math.IsInf(out[i], 0) {
			return out, ErrDegenerate
		}
	}
	out[8] = 1
	return out, nil
}
