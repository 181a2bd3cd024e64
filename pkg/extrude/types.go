// Package extrude turns a planar building footprint and a thickness into
// a closed slab mesh: top cap, bottom cap, and side walls, with
// per-face normals, texture coordinates, and a flat triangle index
// buffer ready for upload by a rendering collaborator.
package extrude

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// SideEpsilon is the thickness (m) below which side walls are omitted,
// and the edge length below which a wall quad is skipped as degenerate.
const SideEpsilon = 1e-6

// ErrInsufficientPoints is returned when the footprint has fewer than
// three points and no mesh can be built.
var ErrInsufficientPoints = errors.New("extrude: footprint needs at least 3 points")

// Params controls a single extrusion.
type Params struct {
	// Thickness is the slab thickness in meters, applied symmetrically
	// above and below the z=0 reference plane. The absolute value is
	// used; below SideEpsilon the side walls are omitted.
	Thickness float64

	// UVScale multiplies planar coordinates for cap texture coordinates
	// and the edge/thickness parametrization for wall quads.
	UVScale mgl32.Vec2
}

// DefaultParams returns the parameters used by the CLI when nothing else
// is configured: a 3 m slab with unit UV scale.
func DefaultParams() Params {
	return Params{Thickness: 3, UVScale: mgl32.Vec2{1, 1}}
}

// Bounds is an axis-aligned bounding box over the final vertex set, for
// downstream culling.
type Bounds struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// Mesh holds the extrusion output. The buffers are parallel: one normal
// and one texture coordinate per position, and Indices references the
// vertex arrays in triples. The caller owns the mesh after return; the
// extruder keeps no reference to it.
type Mesh struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	TexCoords []mgl32.Vec2
	Indices   []uint32

	// Bounds covers all vertices.
	Bounds Bounds

	// Origin is the footprint centroid in the input plane. It is the
	// reference point an external collaborator georeferences when
	// placing the mesh; the extruder itself knows nothing about
	// geographic coordinates.
	Origin mgl64.Vec2

	// Degraded is true when triangulation fell back to a triangle fan.
	// The mesh is still valid; callers may log this as a warning.
	Degraded bool
}

// VertexCount returns the number of vertices in the buffers.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of triangles in the index buffer.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}
