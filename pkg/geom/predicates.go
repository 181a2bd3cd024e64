package geom

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl64"
)

// convexEpsilon tolerates near-collinear vertices in the convexity test
// without misclassifying them.
const convexEpsilon = 1e-12

// baryEpsilon is the negative tolerance on barycentric weights so points
// exactly on a triangle edge count as inside.
const baryEpsilon = -1e-9

// Cross2 returns the scalar 2D cross product a.X*b.Y - a.Y*b.X.
func Cross2(a, b mgl64.Vec2) float64 {
	return a.X()*b.Y() - a.Y()*b.X()
}

// IsConvexVertex reports whether cur is a convex vertex of a polygon with
// the given winding orientation (+1 counter-clockwise, -1 clockwise).
// Near-collinear vertices count as convex.
func IsConvexVertex(prev, cur, next mgl64.Vec2, orientation float64) bool {
	cross := Cross2(cur.Sub(prev), next.Sub(cur))
	return cross*orientation > -convexEpsilon
}

// PointInTriangle reports whether p lies inside (or on the boundary of)
// triangle abc, using barycentric coordinates. A degenerate triangle
// contains nothing.
func PointInTriangle(p, a, b, c mgl64.Vec2) bool {
	denom := (b.Y()-c.Y())*(a.X()-c.X()) + (c.X()-b.X())*(a.Y()-c.Y())
	if gomath.Abs(denom) < 1e-12 {
		return false
	}

	w0 := ((b.Y()-c.Y())*(p.X()-c.X()) + (c.X()-b.X())*(p.Y()-c.Y())) / denom
	w1 := ((c.Y()-a.Y())*(p.X()-c.X()) + (a.X()-c.X())*(p.Y()-c.Y())) / denom
	w2 := 1 - w0 - w1

	return w0 >= baryEpsilon && w1 >= baryEpsilon && w2 >= baryEpsilon
}
