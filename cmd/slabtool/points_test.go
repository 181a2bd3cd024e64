package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/footprint3d/pkg/extrude"
	"github.com/Faultbox/footprint3d/pkg/geom"
	"github.com/go-gl/mathgl/mgl64"
)

func writeTempPoints(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "footprint.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write points file: %v", err)
	}
	return path
}

func TestReadPoints(t *testing.T) {
	path := writeTempPoints(t, `
# unit square, mixed separators
0 0
1,0
1	1
0; 1
`)

	pts, err := readPoints(path)
	if err != nil {
		t.Fatalf("readPoints() error: %v", err)
	}

	want := []mgl64.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	if len(pts) != len(want) {
		t.Fatalf("got %d points, want %d", len(pts), len(want))
	}
	for i := range want {
		if pts[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, pts[i], want[i])
		}
	}
}

func TestReadPointsTrailingComment(t *testing.T) {
	path := writeTempPoints(t, "3.5 -2.25 # south-east corner\n")
	pts, err := readPoints(path)
	if err != nil {
		t.Fatalf("readPoints() error: %v", err)
	}
	if len(pts) != 1 || pts[0] != (mgl64.Vec2{3.5, -2.25}) {
		t.Errorf("got %v, want [{3.5 -2.25}]", pts)
	}
}

func TestReadPointsBadLine(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing coordinate", "1 2\n3\n"},
		{"too many fields", "1 2 3\n"},
		{"not a number", "1 east\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempPoints(t, tt.content)
			if _, err := readPoints(path); err == nil {
				t.Error("expected parse error, got nil")
			}
		})
	}
}

func TestReadPointsMissingFile(t *testing.T) {
	if _, err := readPoints("/nonexistent/footprint.txt"); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}

func TestWriteOBJ(t *testing.T) {
	mesh, err := extrude.Extrude(
		geom.Polygon{{0, 0}, {2, 0}, {2, 2}, {0, 2}},
		extrude.DefaultParams(),
	)
	if err != nil {
		t.Fatalf("Extrude() error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out.obj")
	if err := writeOBJ(path, mesh); err != nil {
		t.Fatalf("writeOBJ() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read OBJ: %v", err)
	}
	content := string(data)

	counts := map[string]int{}
	for _, line := range strings.Split(content, "\n") {
		fields := strings.Fields(line)
		if len(fields) > 0 {
			counts[fields[0]]++
		}
	}

	if counts["v"] != mesh.VertexCount() {
		t.Errorf("OBJ has %d positions, want %d", counts["v"], mesh.VertexCount())
	}
	if counts["vn"] != mesh.VertexCount() {
		t.Errorf("OBJ has %d normals, want %d", counts["vn"], mesh.VertexCount())
	}
	if counts["vt"] != mesh.VertexCount() {
		t.Errorf("OBJ has %d texture coords, want %d", counts["vt"], mesh.VertexCount())
	}
	if counts["f"] != mesh.TriangleCount() {
		t.Errorf("OBJ has %d faces, want %d", counts["f"], mesh.TriangleCount())
	}
}
