// Package input translates pointer and keyboard input into orbit camera motion.
//
// The controller is independent of any windowing library: the event loop
// decodes its native events and calls the Handle methods.
package input

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/lrle/internal/engine/camera"
)

// Button identifies a mouse button.
type Button int

// Mouse buttons.
const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
)

// Key identifies a key the controller reacts to.
type Key int

// Keys.
const (
	KeyShift      Key = iota // Modifier: turns left drag into pan
	KeyReset                 // Restore camera defaults
	KeyIsometric             // Isometric preset
	KeyProjection            // Toggle perspective / orthographic
)

// Config holds sensitivities and the bounds the controller enforces.
type Config struct {
	RotateSensitivity float32 // Radians per pixel
	PanSensitivity    float32 // Units per pixel, scaled by distance
	ZoomSensitivity   float32 // Distance fraction per scroll unit
	MinDistance       float32
	MaxDistance       float32
	MinElevation      float32 // Radians
	MaxElevation      float32 // Radians
}

// DefaultConfig returns the default controller settings.
func DefaultConfig() Config {
	return Config{
		RotateSensitivity: 0.005,
		PanSensitivity:    0.1,
		ZoomSensitivity:   0.1,
		MinDistance:       1.0,
		MaxDistance:       500.0,
		MinElevation:      -gomath.Pi/2 + 0.1,
		MaxElevation:      gomath.Pi/2 - 0.1,
	}
}

// State tracks held buttons and the last pointer position.
type State struct {
	LeftPressed   bool
	MiddlePressed bool
	RightPressed  bool
	ShiftPressed  bool

	HasLastPos   bool
	LastX, LastY float32
}

// IsRotating reports whether a drag should rotate (left drag without shift).
func (s *State) IsRotating() bool {
	return s.LeftPressed && !s.ShiftPressed
}

// IsPanning reports whether a drag should pan (middle drag or shift+left drag).
func (s *State) IsPanning() bool {
	return s.MiddlePressed || (s.LeftPressed && s.ShiftPressed)
}

// Controller applies input to an orbit camera.
type Controller struct {
	Config Config
	State  State
}

// NewController creates a controller with default settings.
func NewController() *Controller {
	return &Controller{Config: DefaultConfig()}
}

// HandleMouseButton records a button press or release.
func (c *Controller) HandleMouseButton(button Button, pressed bool) {
	switch button {
	case ButtonLeft:
		c.State.LeftPressed = pressed
	case ButtonMiddle:
		c.State.MiddlePressed = pressed
	case ButtonRight:
		c.State.RightPressed = pressed
	}
}

// HandleKey processes a key press or release.
// Returns true if the camera was changed.
func (c *Controller) HandleKey(key Key, pressed bool, cam *camera.OrbitCamera) bool {
	switch key {
	case KeyShift:
		c.State.ShiftPressed = pressed
		return false
	}

	if !pressed {
		return false
	}

	switch key {
	case KeyReset:
		cam.Reset()
	case KeyIsometric:
		cam.SetIsometric()
	case KeyProjection:
		cam.ToggleProjection()
	default:
		return false
	}
	return true
}

// HandleMouseMove processes pointer motion to absolute position (x, y).
// Returns true if the camera was changed.
func (c *Controller) HandleMouseMove(x, y float32, cam *camera.OrbitCamera) bool {
	updated := false

	if c.State.HasLastPos {
		dx := x - c.State.LastX
		dy := y - c.State.LastY

		if c.State.IsRotating() {
			c.Rotate(cam, dx, dy)
			updated = true
		} else if c.State.IsPanning() {
			c.Pan(cam, dx, dy)
			updated = true
		}
	}

	c.State.LastX, c.State.LastY = x, y
	c.State.HasLastPos = true
	return updated
}

// HandleScroll zooms by a scroll amount in lines (positive = zoom in).
func (c *Controller) HandleScroll(amount float32, cam *camera.OrbitCamera) {
	c.Zoom(cam, amount)
}

// Rotate orbits the camera by a pointer delta and clamps elevation.
func (c *Controller) Rotate(cam *camera.OrbitCamera, dx, dy float32) {
	cam.Azimuth -= dx * c.Config.RotateSensitivity
	cam.Elevation += dy * c.Config.RotateSensitivity

	// Clamp elevation to avoid gimbal lock
	cam.Elevation = clampf(cam.Elevation, c.Config.MinElevation, c.Config.MaxElevation)
}

// Pan moves the camera target in the view plane by a pointer delta.
// Pan speed scales with distance.
func (c *Controller) Pan(cam *camera.OrbitCamera, dx, dy float32) {
	forward := cam.Target.Sub(cam.Position())
	if forward.Len() == 0 {
		return
	}
	forward = forward.Normalize()

	right := forward.Cross(mgl32.Vec3{0, 1, 0})
	if right.Len() < 1e-6 {
		// Looking straight down: pan in the azimuth plane
		az := float64(cam.Azimuth)
		right = mgl32.Vec3{float32(gomath.Cos(az)), 0, float32(-gomath.Sin(az))}
	}
	right = right.Normalize()
	up := right.Cross(forward).Normalize()

	scale := cam.Distance * c.Config.PanSensitivity * 0.01

	cam.Target = cam.Target.Sub(right.Mul(dx * scale))
	cam.Target = cam.Target.Add(up.Mul(dy * scale))
}

// Zoom scales the camera distance exponentially and clamps it.
func (c *Controller) Zoom(cam *camera.OrbitCamera, amount float32) {
	factor := 1 - amount*c.Config.ZoomSensitivity
	cam.Distance *= factor
	cam.Distance = clampf(cam.Distance, c.Config.MinDistance, c.Config.MaxDistance)
}

func clampf(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
