// Package triangulate decomposes simple, hole-free polygons into
// triangle index lists using ear clipping, with a triangle-fan fallback
// so a mesh can always be produced for three or more points.
package triangulate

import (
	"github.com/Faultbox/footprint3d/pkg/geom"
)

// Triangle holds three indices into the source polygon's point slice.
type Triangle [3]int

// Triangulate converts a polygon into triangles covering it exactly once,
// with winding consistent with the polygon's orientation. The returned
// indices refer to the input point slice, which is never modified.
//
// The degraded flag is true when ear clipping could not complete (a
// non-simple or numerically degenerate polygon) and the triangle-fan
// fallback was used; the result is then structurally valid but only
// geometrically correct for convex inputs. Fewer than three points is
// the single hard failure and yields a nil list.
func Triangulate(poly geom.Polygon) (tris []Triangle, degraded bool) {
	if len(poly) < 3 {
		return nil, false
	}

	tris = earClip(poly)
	if len(tris) == len(poly)-2 {
		return tris, false
	}
	return fan(len(poly)), true
}

// earClip runs the ear-clipping loop over a bookkeeping index ring. It
// returns the emitted triangles; the caller decides success by comparing
// the count against n-2.
func earClip(poly geom.Polygon) []Triangle {
	n := len(poly)

	// Normalize traversal to counter-clockwise by reversing the index
	// ring, never the points themselves.
	remaining := make([]int, n)
	if poly.IsCCW() {
		for i := range remaining {
			remaining[i] = i
		}
	} else {
		for i := range remaining {
			remaining[i] = n - 1 - i
		}
	}

	tris := make([]Triangle, 0, n-2)

	// Each successful scan removes one vertex, so n-2 scans suffice for a
	// well-behaved polygon; the 2n bound guards against malformed input.
	for guard := 0; guard < 2*n && len(remaining) > 2; guard++ {
		clipped := false
		for i := range remaining {
			prev := remaining[(i+len(remaining)-1)%len(remaining)]
			cur := remaining[i]
			next := remaining[(i+1)%len(remaining)]

			if !isEar(poly, remaining, prev, cur, next) {
				continue
			}

			tris = append(tris, Triangle{prev, cur, next})
			remaining = append(remaining[:i], remaining[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			break
		}
	}

	return tris
}

// isEar reports whether cur forms a clippable ear: convex, and its
// triangle contains no other remaining vertex.
func isEar(poly geom.Polygon, remaining []int, prev, cur, next int) bool {
	a, b, c := poly[prev], poly[cur], poly[next]

	// The ring is CCW after normalization.
	if !geom.IsConvexVertex(a, b, c, 1) {
		return false
	}

	for _, idx := range remaining {
		if idx == prev || idx == cur || idx == next {
			continue
		}
		if geom.PointInTriangle(poly[idx], a, b, c) {
			return false
		}
	}
	return true
}

// fan emits the triangle-fan triangulation (0, i, i+1). It always yields
// n-2 triangles; for non-convex polygons the result is a best-effort
// degraded cover rather than an exact one.
func fan(n int) []Triangle {
	tris := make([]Triangle, 0, n-2)
	for i := 1; i < n-1; i++ {
		tris = append(tris, Triangle{0, i, i + 1})
	}
	return tris
}
