package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 0.001
}

func TestNewOrbitCamera(t *testing.T) {
	c := NewOrbitCamera()
	if c.Distance != 50 {
		t.Errorf("expected distance 50, got %f", c.Distance)
	}
	if c.Target != (mgl32.Vec3{}) {
		t.Errorf("expected target at origin, got %v", c.Target)
	}
	if c.FOV != 60 {
		t.Errorf("expected fov 60, got %f", c.FOV)
	}
	if c.Projection != Perspective {
		t.Errorf("expected perspective, got %s", c.Projection)
	}
	if !(c.Near > 0 && c.Near < c.Far) {
		t.Errorf("expected 0 < near < far, got %f, %f", c.Near, c.Far)
	}
}

func TestPosition(t *testing.T) {
	tests := []struct {
		name      string
		azimuth   float32
		elevation float32
		target    mgl32.Vec3
		want      mgl32.Vec3
	}{
		{"zero angles", 0, 0, mgl32.Vec3{}, mgl32.Vec3{0, 0, 10}},
		{"azimuth 90", math.Pi / 2, 0, mgl32.Vec3{}, mgl32.Vec3{10, 0, 0}},
		{"azimuth 180", math.Pi, 0, mgl32.Vec3{}, mgl32.Vec3{0, 0, -10}},
		{"elevation 90", 0, math.Pi / 2, mgl32.Vec3{}, mgl32.Vec3{0, 10, 0}},
		{"offset target", 0, 0, mgl32.Vec3{5, 0, 0}, mgl32.Vec3{5, 0, 10}},
		{"offset target up", 0, 0, mgl32.Vec3{0, 3, -2}, mgl32.Vec3{0, 3, 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewOrbitCamera()
			c.Distance = 10
			c.Azimuth = tt.azimuth
			c.Elevation = tt.elevation
			c.Target = tt.target

			got := c.Position()
			if !approx(got.X(), tt.want.X()) || !approx(got.Y(), tt.want.Y()) || !approx(got.Z(), tt.want.Z()) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPositionDistanceFromTarget(t *testing.T) {
	c := NewOrbitCamera()
	c.Target = mgl32.Vec3{3, -2, 7}
	c.Distance = 42
	c.Azimuth = 2.3
	c.Elevation = -0.7

	if d := c.Position().Sub(c.Target).Len(); !approx(d, 42) {
		t.Errorf("expected distance 42, got %f", d)
	}
}

func TestViewMatrixMapsTargetToForward(t *testing.T) {
	c := NewOrbitCamera()
	c.Distance = 10
	c.Azimuth = 0.4
	c.Elevation = 0.3

	view := c.ViewMatrix()

	// Eye maps to the origin of view space
	eye := mgl32.TransformCoordinate(c.Position(), view)
	if eye.Len() > 0.001 {
		t.Errorf("eye should map to origin, got %v", eye)
	}

	// Target lies on -Z at the orbit distance (right-handed)
	target := mgl32.TransformCoordinate(c.Target, view)
	if !approx(target.X(), 0) || !approx(target.Y(), 0) || !approx(target.Z(), -10) {
		t.Errorf("target should map to (0,0,-10), got %v", target)
	}
}

func TestPerspectiveProjection(t *testing.T) {
	c := NewOrbitCamera()
	c.FOV = 90
	proj := c.ProjectionMatrix(2)

	// f = 1/tan(45deg) = 1
	if !approx(proj.At(1, 1), 1) {
		t.Errorf("expected f=1, got %f", proj.At(1, 1))
	}
	if !approx(proj.At(0, 0), 0.5) {
		t.Errorf("expected f/aspect=0.5, got %f", proj.At(0, 0))
	}
	if !approx(proj.At(3, 2), -1) {
		t.Errorf("expected perspective divide term -1, got %f", proj.At(3, 2))
	}
}

func TestOrthographicProjection(t *testing.T) {
	c := NewOrbitCamera()
	c.Projection = Orthographic
	c.Distance = 20
	proj := c.ProjectionMatrix(1.5)

	// half height 10, half width 15
	want := mgl32.Ortho(-15, 15, -10, 10, c.Near, c.Far)
	if !proj.ApproxEqual(want) {
		t.Errorf("got %v, want %v", proj, want)
	}

	// A point at the top-right edge of the box maps to NDC (1, 1)
	p := mgl32.TransformCoordinate(mgl32.Vec3{15, 10, -c.Near - 1}, proj)
	if !approx(p.X(), 1) || !approx(p.Y(), 1) {
		t.Errorf("expected edge at NDC (1,1), got %v", p)
	}
	if proj.At(3, 3) != 1 {
		t.Error("orthographic matrix should not have perspective divide")
	}
}

func TestViewProjectionMatrix(t *testing.T) {
	for _, mode := range []ProjectionMode{Perspective, Orthographic} {
		c := NewOrbitCamera()
		c.Projection = mode

		vp := c.ViewProjectionMatrix(16.0 / 9.0)
		want := c.ProjectionMatrix(16.0 / 9.0).Mul4(c.ViewMatrix())
		if !vp.ApproxEqual(want) {
			t.Errorf("%s: view-projection should equal projection * view", mode)
		}
		if math.Abs(float64(vp.Det())) < 1e-6 {
			t.Errorf("%s: view-projection should be non-singular", mode)
		}

		// Target projects to the center of the screen
		center := mgl32.TransformCoordinate(c.Target, vp)
		if !approx(center.X(), 0) || !approx(center.Y(), 0) {
			t.Errorf("%s: target should project to screen center, got %v", mode, center)
		}
	}
}

func TestSetIsometric(t *testing.T) {
	c := NewOrbitCamera()
	c.SetIsometric()

	if c.Projection != Orthographic {
		t.Errorf("expected orthographic, got %s", c.Projection)
	}
	if !approx(mgl32.RadToDeg(c.Azimuth), 45) {
		t.Errorf("expected azimuth 45, got %f", mgl32.RadToDeg(c.Azimuth))
	}
	if !approx(mgl32.RadToDeg(c.Elevation), 35.264) {
		t.Errorf("expected elevation 35.264, got %f", mgl32.RadToDeg(c.Elevation))
	}
}

func TestToggleProjection(t *testing.T) {
	c := NewOrbitCamera()
	c.ToggleProjection()
	if c.Projection != Orthographic {
		t.Error("expected orthographic after first toggle")
	}
	c.ToggleProjection()
	if c.Projection != Perspective {
		t.Error("expected perspective after second toggle")
	}
}

func TestReset(t *testing.T) {
	c := NewOrbitCamera()
	c.Distance = 300
	c.Azimuth = 2
	c.Target = mgl32.Vec3{1, 2, 3}
	c.SetIsometric()

	c.Reset()
	if *c != *NewOrbitCamera() {
		t.Errorf("expected defaults after reset, got %+v", *c)
	}
}

func TestFitToBounds(t *testing.T) {
	c := NewOrbitCamera()
	c.FitToBounds(mgl32.Vec3{-10, 0, -4}, mgl32.Vec3{10, 6, 4})

	if c.Target != (mgl32.Vec3{0, 3, 0}) {
		t.Errorf("expected target (0,3,0), got %v", c.Target)
	}
	if c.Distance != 30 {
		t.Errorf("expected distance 30, got %f", c.Distance)
	}

	c.FitToBounds(mgl32.Vec3{}, mgl32.Vec3{})
	if c.Distance != 1 {
		t.Errorf("expected minimum distance 1, got %f", c.Distance)
	}
}

func TestParseProjectionMode(t *testing.T) {
	tests := map[string]ProjectionMode{
		"perspective":  Perspective,
		"Orthographic": Orthographic,
		"ortho":        Orthographic,
	}
	for name, want := range tests {
		got, err := ParseProjectionMode(name)
		if err != nil || got != want {
			t.Errorf("ParseProjectionMode(%q): got %v, %v", name, got, err)
		}
	}
	if _, err := ParseProjectionMode("fisheye"); err == nil {
		t.Error("expected error for unknown mode")
	}
}
