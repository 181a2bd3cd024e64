package extrude

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/footprint3d/pkg/geom"
	"github.com/Faultbox/footprint3d/pkg/triangulate"
)

// Extrude builds a closed slab mesh from a footprint polygon. The top cap
// sits at z = +|thickness|/2 and the bottom cap at z = -|thickness|/2;
// side walls connect them unless the thickness is below SideEpsilon.
//
// The call is a pure single-pass transform: same inputs always produce
// the same mesh, and concurrent calls on different polygons are safe.
// The only error is a footprint with fewer than three points.
func Extrude(footprint geom.Polygon, params Params) (*Mesh, error) {
	if len(footprint) < 3 {
		return nil, ErrInsufficientPoints
	}

	tris, degraded := triangulate.Triangulate(footprint)
	if len(tris) == 0 {
		return nil, ErrInsufficientPoints
	}

	thickness := gomath.Abs(params.Thickness)
	half := float32(thickness / 2)
	up := mgl32.Vec3{0, 0, 1}
	down := mgl32.Vec3{0, 0, -1}
	su, sv := params.UVScale.X(), params.UVScale.Y()

	b := newBuilder(footprint, degraded)

	// Top cap: one vertex per footprint point, in footprint order, so
	// mesh indices coincide with polygon indices here.
	for _, pt := range footprint {
		b.addVertex(
			mgl32.Vec3{float32(pt.X()), float32(pt.Y()), half},
			up,
			mgl32.Vec2{float32(pt.X()) * su, float32(pt.Y()) * sv},
		)
	}
	for _, tri := range tris {
		b.addTriangle(uint32(tri[0]), uint32(tri[1]), uint32(tri[2]), up)
	}

	// Bottom cap: mirrored vertex set offset by the top vertex count,
	// with the source winding mirrored before the orientation check.
	base := uint32(len(footprint))
	for _, pt := range footprint {
		b.addVertex(
			mgl32.Vec3{float32(pt.X()), float32(pt.Y()), -half},
			down,
			mgl32.Vec2{float32(pt.X()) * su, float32(pt.Y()) * sv},
		)
	}
	for _, tri := range tris {
		b.addTriangle(base+uint32(tri[0]), base+uint32(tri[2]), base+uint32(tri[1]), down)
	}

	if thickness > SideEpsilon {
		b.addWalls(half, su, sv)
	}

	b.mesh.Bounds = computeBounds(b.mesh.Positions)
	return b.mesh, nil
}

// meshBuilder accumulates vertex and index buffers during one extrusion.
type meshBuilder struct {
	footprint geom.Polygon
	mesh      *Mesh
}

func newBuilder(footprint geom.Polygon, degraded bool) *meshBuilder {
	return &meshBuilder{
		footprint: footprint,
		mesh: &Mesh{
			Origin:   footprint.Centroid(),
			Degraded: degraded,
		},
	}
}

func (b *meshBuilder) addVertex(pos, normal mgl32.Vec3, uv mgl32.Vec2) uint32 {
	idx := uint32(len(b.mesh.Positions))
	b.mesh.Positions = append(b.mesh.Positions, pos)
	b.mesh.Normals = append(b.mesh.Normals, normal)
	b.mesh.TexCoords = append(b.mesh.TexCoords, uv)
	return idx
}

// addTriangle appends one triangle, swapping the second and third
// indices when the geometric normal opposes want. The same check covers
// top, bottom, and wall faces, so input winding quirks never leak into
// the output.
func (b *meshBuilder) addTriangle(i0, i1, i2 uint32, want mgl32.Vec3) {
	pos := b.mesh.Positions
	e1 := pos[i1].Sub(pos[i0])
	e2 := pos[i2].Sub(pos[i0])
	if e1.Cross(e2).Dot(want) < 0 {
		i1, i2 = i2, i1
	}
	b.mesh.Indices = append(b.mesh.Indices, i0, i1, i2)
}

// addWalls emits one quad per footprint edge: four fresh vertices
// sharing an outward normal, two triangles. Near-zero-length edges are
// skipped.
func (b *meshBuilder) addWalls(half, su, sv float32) {
	n := len(b.footprint)
	orientation := b.footprint.Orientation()

	for i := 0; i < n; i++ {
		start := b.footprint[i]
		end := b.footprint[(i+1)%n]

		edge := end.Sub(start)
		length := edge.Len()
		if length < SideEpsilon {
			continue
		}

		// Outward normal: edge direction rotated 90° in plane, with the
		// polygon orientation deciding which side is outside.
		dir := edge.Mul(1 / length)
		outward := mgl64.Vec2{dir.Y(), -dir.X()}.Mul(orientation)
		normal := mgl32.Vec3{float32(outward.X()), float32(outward.Y()), 0}

		// Per-quad parametrization: u runs along the edge, v across the
		// thickness; neighbouring quads do not share texture space.
		uEnd := float32(length) * su
		vTop := 2 * half * sv

		topStart := b.addVertex(
			mgl32.Vec3{float32(start.X()), float32(start.Y()), half},
			normal, mgl32.Vec2{0, vTop})
		bottomStart := b.addVertex(
			mgl32.Vec3{float32(start.X()), float32(start.Y()), -half},
			normal, mgl32.Vec2{0, 0})
		topEnd := b.addVertex(
			mgl32.Vec3{float32(end.X()), float32(end.Y()), half},
			normal, mgl32.Vec2{uEnd, vTop})
		bottomEnd := b.addVertex(
			mgl32.Vec3{float32(end.X()), float32(end.Y()), -half},
			normal, mgl32.Vec2{uEnd, 0})

		b.addTriangle(topStart, bottomStart, topEnd, normal)
		b.addTriangle(topEnd, bottomStart, bottomEnd, normal)
	}
}

// computeBounds scans the final vertex set; bounds are not tracked
// incrementally during construction.
func computeBounds(positions []mgl32.Vec3) Bounds {
	if len(positions) == 0 {
		return Bounds{}
	}

	b := Bounds{Min: positions[0], Max: positions[0]}
	for _, p := range positions[1:] {
		for axis := 0; axis < 3; axis++ {
			if p[axis] < b.Min[axis] {
				b.Min[axis] = p[axis]
			}
			if p[axis] > b.Max[axis] {
				b.Max[axis] = p[axis]
			}
		}
	}
	return b
}
