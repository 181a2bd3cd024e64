// slabtool is a CLI utility for inspecting building footprints and
// extruding them into slab meshes.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/footprint3d/internal/config"
	"github.com/Faultbox/footprint3d/internal/logger"
	"github.com/Faultbox/footprint3d/pkg/extrude"
	"github.com/Faultbox/footprint3d/pkg/geom"
	"github.com/Faultbox/footprint3d/pkg/triangulate"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	switch args[0] {
	case "info":
		cmdInfo(args[1:])
	case "mesh":
		cmdMesh(cfg, args[1:])
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[0])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`slabtool - building footprint extrusion utility

Usage:
  slabtool [flags] <command> [arguments]

Commands:
  info <points-file>             Report footprint geometry and triangulation
  mesh <points-file> [out.obj]   Extrude the footprint and write an OBJ mesh

Flags:
  -config path       Config file (default: ./slabtool.yaml)
  -debug             Enable debug logging
  -thickness meters  Slab thickness
  -uv-scale factor   Uniform UV scale
  -out dir           Output directory for generated meshes

Point files hold one "x y" or "x,y" pair per line (meters, projected
planar coordinates); lines starting with # are ignored.

Examples:
  slabtool info footprint.txt
  slabtool -thickness 12 mesh footprint.txt building.obj`)
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: slabtool info <points-file>")
		os.Exit(1)
	}

	footprint, err := loadFootprint(args[0])
	if err != nil {
		logger.Error("failed to load footprint", zap.Error(err))
		os.Exit(1)
	}

	tris, degraded := triangulate.Triangulate(footprint)
	centroid := footprint.Centroid()

	winding := "counter-clockwise"
	if !footprint.IsCCW() {
		winding = "clockwise"
	}
	quality := "ear clipping"
	if degraded {
		quality = "fan fallback (non-simple or degenerate footprint)"
	}

	fmt.Printf("File:          %s\n", args[0])
	fmt.Printf("Points:        %d\n", len(footprint))
	fmt.Printf("Area:          %.3f m²\n", footprint.Area())
	fmt.Printf("Winding:       %s\n", winding)
	fmt.Printf("Centroid:      (%.3f, %.3f)\n", centroid.X(), centroid.Y())
	fmt.Printf("Triangles:     %d\n", len(tris))
	fmt.Printf("Triangulation: %s\n", quality)
}

func cmdMesh(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: slabtool mesh <points-file> [out.obj]")
		os.Exit(1)
	}

	footprint, err := loadFootprint(args[0])
	if err != nil {
		logger.Error("failed to load footprint", zap.Error(err))
		os.Exit(1)
	}

	params := extrude.Params{
		Thickness: cfg.Extrude.Thickness,
		UVScale:   mgl32.Vec2{float32(cfg.Extrude.UVScaleU), float32(cfg.Extrude.UVScaleV)},
	}

	mesh, err := extrude.Extrude(footprint, params)
	if err != nil {
		logger.Error("extrusion failed", zap.Error(err))
		os.Exit(1)
	}
	if mesh.Degraded {
		logger.Warn("triangulation degraded to fan fallback",
			zap.String("file", args[0]),
			zap.Int("points", len(footprint)))
	}

	outPath := objPath(cfg, args)
	if err := writeOBJ(outPath, mesh); err != nil {
		logger.Error("failed to write mesh", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("mesh written",
		zap.String("path", outPath),
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("triangles", mesh.TriangleCount()),
		zap.Float64("origin_x", mesh.Origin.X()),
		zap.Float64("origin_y", mesh.Origin.Y()))
}

// objPath picks the output path: explicit argument, or the input base
// name with an .obj extension in the configured output directory.
func objPath(cfg *config.Config, args []string) string {
	if len(args) >= 2 {
		return args[1]
	}
	base := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
	return filepath.Join(cfg.Output.Dir, base+".obj")
}

// loadFootprint parses and cleans a point file. Cleanup (closing
// duplicate, coincident points) happens here at the tool boundary; the
// geometry pipeline expects already-clean input.
func loadFootprint(path string) (geom.Polygon, error) {
	pts, err := readPoints(path)
	if err != nil {
		return nil, err
	}

	footprint := geom.CleanFootprint(pts)
	if dropped := len(pts) - len(footprint); dropped > 0 {
		logger.Debug("dropped redundant points", zap.Int("count", dropped))
	}
	return footprint, nil
}
