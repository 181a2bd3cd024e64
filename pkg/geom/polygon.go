// Package geom provides planar polygon math for building footprints:
// signed area, centroid, convexity and containment predicates. All
// functions are pure and operate on immutable point slices.
package geom

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// AreaEpsilon is the area (m²) below which a polygon is treated as
	// degenerate for centroid purposes.
	AreaEpsilon = 1e-6

	// CoincidentEpsilon is the distance (m) below which two consecutive
	// points are treated as the same point.
	CoincidentEpsilon = 1e-9
)

// Polygon is an ordered sequence of planar points in a local projected
// coordinate system (meters). The polygon is implicitly closed: there is
// an edge from the last point back to the first, and the first point must
// not be repeated at the end.
type Polygon []mgl64.Vec2

// SignedArea returns the polygon area via the shoelace formula.
// Positive means counter-clockwise winding. Degenerate polygons
// (collinear or repeated points) yield an area near zero.
func (p Polygon) SignedArea() float64 {
	n := len(p)
	if n < 3 {
		return 0
	}
	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += p[i].X()*p[j].Y() - p[j].X()*p[i].Y()
	}
	return area / 2
}

// Area returns the unsigned polygon area.
func (p Polygon) Area() float64 {
	return gomath.Abs(p.SignedArea())
}

// IsCCW reports whether the points wind counter-clockwise.
func (p Polygon) IsCCW() bool {
	return p.SignedArea() >= 0
}

// Orientation returns +1 for counter-clockwise winding and -1 for
// clockwise. A zero-area polygon is treated as counter-clockwise so
// downstream sign corrections stay deterministic.
func (p Polygon) Orientation() float64 {
	if p.SignedArea() < 0 {
		return -1
	}
	return 1
}

// Centroid returns the polygon centroid. When the area is below
// AreaEpsilon the standard formula would divide by near zero, so the
// arithmetic mean of the points is returned instead; the result is
// always finite for non-empty input.
func (p Polygon) Centroid() mgl64.Vec2 {
	n := len(p)
	if n == 0 {
		return mgl64.Vec2{}
	}

	area := p.SignedArea()
	if gomath.Abs(area) < AreaEpsilon {
		var sum mgl64.Vec2
		for _, pt := range p {
			sum = sum.Add(pt)
		}
		return sum.Mul(1 / float64(n))
	}

	var cx, cy float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := p[i].X()*p[j].Y() - p[j].X()*p[i].Y()
		cx += (p[i].X() + p[j].X()) * cross
		cy += (p[i].Y() + p[j].Y()) * cross
	}
	scale := 1 / (6 * area)
	return mgl64.Vec2{cx * scale, cy * scale}
}

// Reversed returns a fresh copy of the polygon with the point order
// reversed. The receiver is not modified.
func (p Polygon) Reversed() Polygon {
	out := make(Polygon, len(p))
	for i, pt := range p {
		out[len(p)-1-i] = pt
	}
	return out
}

// CleanFootprint prepares a raw point list for the pipeline: it strips an
// explicit closing point equal to the first and collapses consecutive
// near-coincident points. The input slice is not modified.
func CleanFootprint(pts []mgl64.Vec2) Polygon {
	if len(pts) == 0 {
		return nil
	}

	out := make(Polygon, 0, len(pts))
	for _, pt := range pts {
		if len(out) > 0 && pt.Sub(out[len(out)-1]).Len() < CoincidentEpsilon {
			continue
		}
		out = append(out, pt)
	}

	// Drop an explicit closing duplicate.
	if len(out) > 1 && out[len(out)-1].Sub(out[0]).Len() < CoincidentEpsilon {
		out = out[:len(out)-1]
	}
	return out
}
