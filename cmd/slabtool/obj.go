package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/Faultbox/footprint3d/pkg/extrude"
)

// writeOBJ dumps a mesh as Wavefront OBJ for offline inspection. The
// buffers are parallel, so every face references the same index for
// position, texture coordinate, and normal.
func writeOBJ(path string, mesh *extrude.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "# slabtool extruded footprint\n")
	fmt.Fprintf(w, "# origin %.6f %.6f\n", mesh.Origin.X(), mesh.Origin.Y())

	for _, p := range mesh.Positions {
		fmt.Fprintf(w, "v %.6f %.6f %.6f\n", p.X(), p.Y(), p.Z())
	}
	for _, uv := range mesh.TexCoords {
		fmt.Fprintf(w, "vt %.6f %.6f\n", uv.X(), uv.Y())
	}
	for _, n := range mesh.Normals {
		fmt.Fprintf(w, "vn %.6f %.6f %.6f\n", n.X(), n.Y(), n.Z())
	}

	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		a := mesh.Indices[i] + 1
		b := mesh.Indices[i+1] + 1
		c := mesh.Indices[i+2] + 1
		fmt.Fprintf(w, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
	}

	return w.Flush()
}
