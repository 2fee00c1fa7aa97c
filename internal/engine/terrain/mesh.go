package terrain

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/lrle/pkg/formats"
)

// heightRangeEpsilon is the smallest height range treated as non-flat.
const heightRangeEpsilon = 1.1920929e-07

// faceEpsilon is the cross product length below which a triangle is degenerate.
const faceEpsilon = 1e-12

var up = mgl32.Vec3{0, 1, 0}

// Generate builds a mesh from a height field.
//
// The mesh is centered on the origin in X and Z. A field with no rows or
// columns, or one that fails HeightField.Validate, produces an empty mesh.
// A nil opts uses DefaultMeshOptions.
// Generate does not retain field or opts.
func Generate(field *formats.HeightField, opts *MeshOptions) *Mesh {
	if opts == nil {
		defaults := DefaultMeshOptions()
		opts = &defaults
	}

	mesh := &Mesh{}
	if field == nil || field.Width == 0 || field.Height == 0 || field.Validate() != nil {
		return mesh
	}

	width := field.Width
	height := field.Height

	minH, maxH := field.HeightBounds()
	heightRange := maxH - minH
	if heightRange < heightRangeEpsilon {
		heightRange = 1.0
	}

	// Center the mesh at origin for orbital camera
	offsetX := float32(width-1) / 2
	offsetZ := float32(height-1) / 2

	useFileColors := opts.UseFileColors && field.HasColors()

	mesh.Vertices = make([]Vertex, 0, width*height)
	for z := range height {
		for x := range width {
			h := field.Samples[z][x]

			var color RGB
			if useFileColors {
				color = RGBFromPacked(field.Colors[z][x])
			} else {
				color = HeightToColor((h-minH)/heightRange, opts.Scheme)
			}

			mesh.Vertices = append(mesh.Vertices, Vertex{
				Position: mgl32.Vec3{float32(x) - offsetX, h * opts.HeightScale, float32(z) - offsetZ},
				Color:    color,
			})
		}
	}

	switch opts.Shading {
	case ShadingFlat:
		gradientNormals(mesh.Vertices, width, height)
	default:
		smoothNormals(mesh.Vertices, width, height)
	}

	mesh.LineIndices = wireframeIndices(width, height)
	mesh.TriangleIndices = triangleIndices(width, height)
	mesh.Bounds = computeBounds(mesh.Vertices)

	return mesh
}

// smoothNormals sums the face normals of every triangle touching a vertex,
// then normalizes each sum once all quads have been visited.
func smoothNormals(vertices []Vertex, width, height int) {
	acc := make([]mgl32.Vec3, len(vertices))

	for z := 0; z < height-1; z++ {
		for x := 0; x < width-1; x++ {
			topLeft := z*width + x
			topRight := topLeft + 1
			bottomLeft := topLeft + width
			bottomRight := bottomLeft + 1

			accumulateFace(acc, vertices, topLeft, bottomLeft, topRight)
			accumulateFace(acc, vertices, topRight, bottomLeft, bottomRight)
		}
	}

	for i := range vertices {
		n := normalize(acc[i])
		// Terrain normals always face up; a height field has no overhangs.
		if n.Y() < 0 {
			n = n.Mul(-1)
		}
		vertices[i].Normal = n
	}
}

func accumulateFace(acc []mgl32.Vec3, vertices []Vertex, a, b, c int) {
	n := faceNormal(vertices[a].Position, vertices[b].Position, vertices[c].Position)
	acc[a] = acc[a].Add(n)
	acc[b] = acc[b].Add(n)
	acc[c] = acc[c].Add(n)
}

// faceNormal returns the unit normal of triangle (a, b, c), or zero when the
// triangle is degenerate.
func faceNormal(a, b, c mgl32.Vec3) mgl32.Vec3 {
	n := b.Sub(a).Cross(c.Sub(a))
	l := n.Len()
	if l*l < faceEpsilon {
		return mgl32.Vec3{}
	}
	return n.Mul(1 / l)
}

// gradientNormals derives each normal from the height slope at the vertex:
// central differences inside the grid, one-sided at the edges.
func gradientNormals(vertices []Vertex, width, height int) {
	y := func(x, z int) float32 {
		return vertices[z*width+x].Position.Y()
	}

	for z := range height {
		for x := range width {
			var dx, dz float32
			switch {
			case width == 1:
				dx = 0
			case x == 0:
				dx = y(1, z) - y(0, z)
			case x == width-1:
				dx = y(x, z) - y(x-1, z)
			default:
				dx = (y(x+1, z) - y(x-1, z)) / 2
			}

			switch {
			case height == 1:
				dz = 0
			case z == 0:
				dz = y(x, 1) - y(x, 0)
			case z == height-1:
				dz = y(x, z) - y(x, z-1)
			default:
				dz = (y(x, z+1) - y(x, z-1)) / 2
			}

			vertices[z*width+x].Normal = normalize(mgl32.Vec3{-dx, 1, -dz})
		}
	}
}

// wireframeIndices returns horizontal edges for every row followed by
// vertical edges for every column.
func wireframeIndices(width, height int) []uint32 {
	indices := make([]uint32, 0, 2*(height*(width-1)+width*(height-1)))

	// Horizontal lines (along X axis)
	for z := range height {
		for x := 0; x < width-1; x++ {
			i := uint32(z*width + x)
			indices = append(indices, i, i+1)
		}
	}

	// Vertical lines (along Z axis)
	for z := 0; z < height-1; z++ {
		for x := range width {
			i := uint32(z*width + x)
			indices = append(indices, i, i+uint32(width))
		}
	}

	return indices
}

// triangleIndices returns two triangles per quad:
// (top-left, bottom-left, top-right) and (top-right, bottom-left, bottom-right).
func triangleIndices(width, height int) []uint32 {
	indices := make([]uint32, 0, 6*(width-1)*(height-1))

	for z := 0; z < height-1; z++ {
		for x := 0; x < width-1; x++ {
			topLeft := uint32(z*width + x)
			topRight := topLeft + 1
			bottomLeft := topLeft + uint32(width)
			bottomRight := bottomLeft + 1

			indices = append(indices,
				topLeft, bottomLeft, topRight,
				topRight, bottomLeft, bottomRight,
			)
		}
	}

	return indices
}

func computeBounds(vertices []Vertex) Bounds {
	if len(vertices) == 0 {
		return Bounds{}
	}

	b := Bounds{Min: vertices[0].Position, Max: vertices[0].Position}
	for _, v := range vertices[1:] {
		for i := 0; i < 3; i++ {
			if v.Position[i] < b.Min[i] {
				b.Min[i] = v.Position[i]
			}
			if v.Position[i] > b.Max[i] {
				b.Max[i] = v.Position[i]
			}
		}
	}
	return b
}

// normalize returns v scaled to unit length, or straight up when v is too
// short to carry a direction.
func normalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l < 0.0001 {
		return up
	}
	return v.Mul(1 / l)
}
