package input

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/lrle/internal/engine/camera"
)

func TestStateDefault(t *testing.T) {
	var s State
	if s.IsRotating() || s.IsPanning() {
		t.Error("idle state should neither rotate nor pan")
	}
}

func TestRotationAndPanDetection(t *testing.T) {
	tests := []struct {
		name             string
		left, mid, shift bool
		rotating         bool
		panning          bool
	}{
		{"left", true, false, false, true, false},
		{"shift left", true, false, true, false, true},
		{"middle", false, true, false, false, true},
		{"shift only", false, false, true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := State{LeftPressed: tt.left, MiddlePressed: tt.mid, ShiftPressed: tt.shift}
			if s.IsRotating() != tt.rotating {
				t.Errorf("IsRotating: got %v, want %v", s.IsRotating(), tt.rotating)
			}
			if s.IsPanning() != tt.panning {
				t.Errorf("IsPanning: got %v, want %v", s.IsPanning(), tt.panning)
			}
		})
	}
}

func TestHandleMouseButton(t *testing.T) {
	c := NewController()

	c.HandleMouseButton(ButtonLeft, true)
	if !c.State.LeftPressed {
		t.Error("expected left pressed")
	}
	c.HandleMouseButton(ButtonLeft, false)
	if c.State.LeftPressed {
		t.Error("expected left released")
	}

	c.HandleMouseButton(ButtonRight, true)
	if !c.State.RightPressed {
		t.Error("expected right pressed")
	}
}

func TestFirstMoveDoesNotRotate(t *testing.T) {
	c := NewController()
	cam := camera.NewOrbitCamera()
	before := *cam

	c.HandleMouseButton(ButtonLeft, true)
	if c.HandleMouseMove(100, 100, cam) {
		t.Error("first move has no delta and should not update")
	}
	if *cam != before {
		t.Error("camera changed on first move")
	}
}

func TestRotate(t *testing.T) {
	c := NewController()
	cam := camera.NewOrbitCamera()
	cam.Azimuth = 0
	cam.Elevation = 0

	c.HandleMouseButton(ButtonLeft, true)
	c.HandleMouseMove(0, 0, cam)
	if !c.HandleMouseMove(10, 20, cam) {
		t.Fatal("expected camera update")
	}

	if math.Abs(float64(cam.Azimuth+0.05)) > 1e-6 {
		t.Errorf("expected azimuth -0.05, got %f", cam.Azimuth)
	}
	if math.Abs(float64(cam.Elevation-0.1)) > 1e-6 {
		t.Errorf("expected elevation 0.1, got %f", cam.Elevation)
	}
}

func TestElevationLimits(t *testing.T) {
	c := NewController()
	cam := camera.NewOrbitCamera()
	cam.Elevation = 0

	c.State.LeftPressed = true
	c.State.HasLastPos = true
	c.HandleMouseMove(0, 1000, cam)
	if cam.Elevation != c.Config.MaxElevation {
		t.Errorf("expected elevation clamped to max, got %f", cam.Elevation)
	}

	c.State.LastX, c.State.LastY = 0, 0
	c.HandleMouseMove(0, -2000, cam)
	if cam.Elevation != c.Config.MinElevation {
		t.Errorf("expected elevation clamped to min, got %f", cam.Elevation)
	}
}

func TestZoomLimits(t *testing.T) {
	c := NewController()
	cam := camera.NewOrbitCamera()

	for range 100 {
		c.HandleScroll(1, cam)
	}
	if cam.Distance != c.Config.MinDistance {
		t.Errorf("expected distance clamped to %f, got %f", c.Config.MinDistance, cam.Distance)
	}

	for range 100 {
		c.HandleScroll(-1, cam)
	}
	if cam.Distance != c.Config.MaxDistance {
		t.Errorf("expected distance clamped to %f, got %f", c.Config.MaxDistance, cam.Distance)
	}
}

func TestZoomStep(t *testing.T) {
	c := NewController()
	cam := camera.NewOrbitCamera()
	cam.Distance = 100

	c.HandleScroll(1, cam)
	if math.Abs(float64(cam.Distance-90)) > 1e-4 {
		t.Errorf("expected distance 90, got %f", cam.Distance)
	}
}

func TestPanMovesTargetInViewPlane(t *testing.T) {
	c := NewController()
	cam := camera.NewOrbitCamera()
	cam.Azimuth = 0
	cam.Elevation = 0
	cam.Distance = 100

	c.HandleKey(KeyShift, true, cam)
	c.HandleMouseButton(ButtonLeft, true)
	c.HandleMouseMove(0, 0, cam)
	if !c.HandleMouseMove(10, 0, cam) {
		t.Fatal("expected camera update")
	}

	// Eye on +Z looking down -Z, so screen right is +X.
	// scale = 100 * 0.1 * 0.01 = 0.1: dragging 10px right moves the target 1 unit left.
	want := mgl32.Vec3{-1, 0, 0}
	if !cam.Target.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("expected target %v, got %v", want, cam.Target)
	}

	// Orbit parameters are unchanged by panning
	if cam.Azimuth != 0 || cam.Elevation != 0 || cam.Distance != 100 {
		t.Error("pan should only move the target")
	}
}

func TestPanVertical(t *testing.T) {
	c := NewController()
	cam := camera.NewOrbitCamera()
	cam.Azimuth = 0
	cam.Elevation = 0
	cam.Distance = 100

	c.Pan(cam, 0, 10)
	if !cam.Target.ApproxEqualThreshold(mgl32.Vec3{0, 1, 0}, 1e-5) {
		t.Errorf("expected target (0,1,0), got %v", cam.Target)
	}
}

func TestPanLookingStraightDown(t *testing.T) {
	c := NewController()
	cam := camera.NewOrbitCamera()
	cam.Elevation = math.Pi / 2
	cam.Distance = 100

	c.Pan(cam, 10, 10)
	for i := 0; i < 3; i++ {
		if math.IsNaN(float64(cam.Target[i])) {
			t.Fatalf("target became NaN: %v", cam.Target)
		}
	}
}

func TestHandleKey(t *testing.T) {
	c := NewController()
	cam := camera.NewOrbitCamera()

	cam.Distance = 100
	cam.Azimuth = 1.5
	if !c.HandleKey(KeyReset, true, cam) {
		t.Error("reset should report an update")
	}
	if cam.Distance != 50 {
		t.Errorf("expected distance reset to 50, got %f", cam.Distance)
	}

	if !c.HandleKey(KeyIsometric, true, cam) {
		t.Error("isometric should report an update")
	}
	if cam.Projection != camera.Orthographic || cam.Azimuth != camera.IsometricAzimuth {
		t.Error("expected isometric preset")
	}

	if !c.HandleKey(KeyProjection, true, cam) || cam.Projection != camera.Perspective {
		t.Error("expected projection toggled back to perspective")
	}

	if c.HandleKey(KeyReset, false, cam) {
		t.Error("key release should not update the camera")
	}

	c.HandleKey(KeyShift, true, cam)
	if !c.State.ShiftPressed {
		t.Error("expected shift pressed")
	}
	c.HandleKey(KeyShift, false, cam)
	if c.State.ShiftPressed {
		t.Error("expected shift released")
	}
}
