// Package terrain builds renderable meshes from height fields.
package terrain

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// ShadingMode selects how vertex normals are computed.
type ShadingMode int

// Shading modes.
const (
	ShadingSmooth ShadingMode = iota // Sum of adjacent face normals
	ShadingFlat                      // Per-vertex height gradient
)

// String returns the shading mode name.
func (m ShadingMode) String() string {
	switch m {
	case ShadingSmooth:
		return "smooth"
	case ShadingFlat:
		return "flat"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// ParseShadingMode returns the shading mode with the given name (case-insensitive).
func ParseShadingMode(name string) (ShadingMode, error) {
	switch strings.ToLower(name) {
	case "smooth":
		return ShadingSmooth, nil
	case "flat":
		return ShadingFlat, nil
	default:
		return 0, fmt.Errorf("unknown shading mode %q", name)
	}
}

// Vertex represents a terrain mesh vertex.
type Vertex struct {
	Position mgl32.Vec3
	Color    RGB
	Normal   mgl32.Vec3 // Unit length
}

// Mesh holds vertex and index buffers ready for upload.
// Vertices are indexed as row*width + col.
type Mesh struct {
	Vertices []Vertex
	// LineIndices holds vertex index pairs, one undirected edge per pair.
	LineIndices []uint32
	// TriangleIndices holds vertex index triples with consistent winding.
	TriangleIndices []uint32
	Bounds          Bounds
}

// LineCount returns the number of wireframe edges.
func (m *Mesh) LineCount() int {
	return len(m.LineIndices) / 2
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.TriangleIndices) / 3
}

// Empty reports whether the mesh has no vertices.
func (m *Mesh) Empty() bool {
	return len(m.Vertices) == 0
}

// Bounds holds the axis-aligned bounding box of the mesh.
type Bounds struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// Center returns the midpoint of the box.
func (b Bounds) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the extent of the box along each axis.
func (b Bounds) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// MeshOptions controls mesh generation.
type MeshOptions struct {
	HeightScale float32     // Multiplier applied to sample values (Y axis)
	Shading     ShadingMode // Normal computation strategy
	Scheme      ColorScheme // Height to color mapping
	// UseFileColors colors vertices from the field's explicit colors
	// instead of Scheme. Ignored when the field has none.
	UseFileColors bool
}

// DefaultMeshOptions returns options for a unit-scale, smooth-shaded terrain mesh.
func DefaultMeshOptions() MeshOptions {
	return MeshOptions{
		HeightScale: 1.0,
		Shading:     ShadingSmooth,
		Scheme:      SchemeTerrain,
	}
}
