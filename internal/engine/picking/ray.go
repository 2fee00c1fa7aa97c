// Package picking provides ray casting against terrain meshes.
package picking

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/lrle/internal/engine/terrain"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3 // Normalized direction
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// ScreenToRay converts screen coordinates to a world-space ray.
// screenX, screenY are pixel coordinates with the origin at the top left,
// viewportW/H are viewport dimensions.
// invViewProj is the inverse of the view-projection matrix.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj mgl32.Mat4) Ray {
	// Convert screen coords to normalized device coords (-1 to 1)
	ndcX := 2.0*screenX/viewportW - 1.0
	ndcY := 1.0 - 2.0*screenY/viewportH // Flip Y

	nearWorld := unproject(invViewProj, mgl32.Vec4{ndcX, ndcY, -1.0, 1.0})
	farWorld := unproject(invViewProj, mgl32.Vec4{ndcX, ndcY, 1.0, 1.0})

	dir := farWorld.Sub(nearWorld)
	if l := dir.Len(); l > 0 {
		dir = dir.Mul(1 / l)
	}

	return Ray{Origin: nearWorld, Direction: dir}
}

func unproject(invViewProj mgl32.Mat4, ndc mgl32.Vec4) mgl32.Vec3 {
	p := invViewProj.Mul4x1(ndc)
	// Perspective divide
	if p[3] != 0 {
		return mgl32.Vec3{p[0] / p[3], p[1] / p[3], p[2] / p[3]}
	}
	return p.Vec3()
}

// IntersectPlaneY intersects a ray with a horizontal plane at the given Y level.
// Returns the intersection point (X, Z) and whether the intersection is valid.
func (r Ray) IntersectPlaneY(planeY float32) (x, z float32, ok bool) {
	if gomath.Abs(float64(r.Direction.Y())) < 0.001 {
		return 0, 0, false // Ray parallel to plane
	}

	t := (planeY - r.Origin.Y()) / r.Direction.Y()
	if t < 0 {
		return 0, 0, false // Intersection behind ray origin
	}

	p := r.At(t)
	return p.X(), p.Z(), true
}

// IntersectBounds tests the ray against an axis-aligned box using the slab
// method. Returns entry and exit distances; tNear is negative when the ray
// starts inside the box.
func (r Ray) IntersectBounds(b terrain.Bounds) (tNear, tFar float32, hit bool) {
	tNear = float32(-gomath.MaxFloat32)
	tFar = float32(gomath.MaxFloat32)

	for axis := 0; axis < 3; axis++ {
		o, d := r.Origin[axis], r.Direction[axis]
		if d == 0 {
			if o < b.Min[axis] || o > b.Max[axis] {
				return 0, 0, false
			}
			continue
		}

		t1 := (b.Min[axis] - o) / d
		t2 := (b.Max[axis] - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tNear {
			tNear = t1
		}
		if t2 < tFar {
			tFar = t2
		}
	}

	if tFar < tNear || tFar < 0 {
		return 0, 0, false
	}
	return tNear, tFar, true
}
