package picking

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/lrle/internal/engine/terrain"
)

const (
	// marchStep is the ray marching step in grid units.
	marchStep = 0.25
	// refineSteps is the number of bisection steps after a crossing is found.
	refineSteps = 10
	// boundsSlack pads the mesh bounds so flat meshes have volume.
	boundsSlack = 1e-3
	// minDirection is the shortest ray direction that still has a heading.
	minDirection = 1e-6
)

// Hit describes where a ray meets the terrain surface.
type Hit struct {
	Point    mgl32.Vec3 // World-space intersection
	Row, Col int        // Nearest grid sample
	Distance float32    // Distance from the ray origin
}

// PickTerrain finds the first point where r crosses the surface of mesh,
// a grid mesh of width x height vertices as built by terrain.Generate.
// The surface between samples is interpolated bilinearly.
func PickTerrain(r Ray, mesh *terrain.Mesh, width, height int) (Hit, bool) {
	if mesh == nil || width <= 0 || height <= 0 || len(mesh.Vertices) != width*height {
		return Hit{}, false
	}
	if !finite(r.Origin) || !finite(r.Direction) || r.Direction.Len() < minDirection {
		return Hit{}, false
	}

	bounds := mesh.Bounds
	pad := mgl32.Vec3{boundsSlack, boundsSlack, boundsSlack}
	bounds.Min = bounds.Min.Sub(pad)
	bounds.Max = bounds.Max.Add(pad)

	tNear, tFar, ok := r.IntersectBounds(bounds)
	if !ok || tFar >= gomath.MaxFloat32 {
		return Hit{}, false
	}
	if tNear < 0 {
		tNear = 0
	}

	grid := surface{mesh: mesh, width: width, height: height, origin: mesh.Vertices[0].Position}

	above := func(t float32) (bool, bool) {
		p := r.At(t)
		y, inside := grid.heightAt(p.X(), p.Z())
		return p.Y() > y, inside
	}

	prev := tNear
	prevAbove, _ := above(prev)
	if !prevAbove {
		return grid.hit(r, prev), true
	}

	for t := tNear + marchStep; ; t += marchStep {
		if t > tFar {
			t = tFar
		}
		isAbove, inside := above(t)
		if inside && !isAbove {
			// Bisect between the last point above and this one
			lo, hi := prev, t
			for i := 0; i < refineSteps; i++ {
				mid := (lo + hi) / 2
				if a, _ := above(mid); a {
					lo = mid
				} else {
					hi = mid
				}
			}
			return grid.hit(r, hi), true
		}
		if t >= tFar {
			return Hit{}, false
		}
		prev = t
	}
}

type surface struct {
	mesh          *terrain.Mesh
	width, height int
	origin        mgl32.Vec3 // Position of vertex (0, 0)
}

// heightAt returns the interpolated surface height at world (x, z) and
// whether the point lies over the grid.
func (s surface) heightAt(x, z float32) (float32, bool) {
	col := x - s.origin.X()
	row := z - s.origin.Z()
	// NaN coordinates fall outside
	if !(col >= 0 && row >= 0 && col <= float32(s.width-1) && row <= float32(s.height-1)) {
		return float32(-gomath.MaxFloat32), false
	}

	c0, r0 := int(col), int(row)
	c1, r1 := min(c0+1, s.width-1), min(r0+1, s.height-1)
	fc, fr := col-float32(c0), row-float32(r0)

	y := func(r, c int) float32 {
		return s.mesh.Vertices[r*s.width+c].Position.Y()
	}

	top := y(r0, c0) + (y(r0, c1)-y(r0, c0))*fc
	bottom := y(r1, c0) + (y(r1, c1)-y(r1, c0))*fc
	return top + (bottom-top)*fr, true
}

func (s surface) hit(r Ray, t float32) Hit {
	p := r.At(t)
	col := int(gomath.Round(float64(p.X() - s.origin.X())))
	row := int(gomath.Round(float64(p.Z() - s.origin.Z())))
	return Hit{
		Point:    p,
		Row:      max(0, min(row, s.height-1)),
		Col:      max(0, min(col, s.width-1)),
		Distance: t,
	}
}

func finite(v mgl32.Vec3) bool {
	for _, c := range v {
		if gomath.IsNaN(float64(c)) || gomath.IsInf(float64(c), 0) {
			return false
		}
	}
	return true
}
