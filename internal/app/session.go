// Package app ties the loader, mesh generator, camera and input controller
// into one viewer session.
package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/lrle/internal/config"
	"github.com/Faultbox/lrle/internal/engine/camera"
	"github.com/Faultbox/lrle/internal/engine/input"
	"github.com/Faultbox/lrle/internal/engine/picking"
	"github.com/Faultbox/lrle/internal/engine/terrain"
	"github.com/Faultbox/lrle/internal/logger"
	"github.com/Faultbox/lrle/pkg/formats"
)

// ErrNoField is returned by operations that need a loaded height field.
var ErrNoField = errors.New("no height field loaded")

// Session owns the current field, mesh options, mesh, camera and controller.
// Any option change regenerates the whole mesh; there is no partial update.
// A Session is not safe for concurrent use.
type Session struct {
	field *formats.HeightField
	opts  terrain.MeshOptions
	mesh  *terrain.Mesh

	camera     *camera.OrbitCamera
	controller *input.Controller

	fitToTerrain bool
	log          *zap.Logger
}

// Frame is everything a renderer needs to draw one frame.
type Frame struct {
	ViewProjection mgl32.Mat4
	CameraPosition mgl32.Vec3
	Projection     camera.ProjectionMode
	Mesh           *terrain.Mesh
}

// PickResult is a terrain hit together with the sample it landed on.
type PickResult struct {
	picking.Hit
	Sample float32 // Unscaled source height
	Color  uint32  // Packed file color, white when the field has none
}

// Stats summarizes the loaded field and its mesh.
type Stats struct {
	Width, Height int
	MinHeight     float32
	MaxHeight     float32
	HasColors     bool
	Vertices      int
	Lines         int
	Triangles     int
	Shading       terrain.ShadingMode
	Scheme        string
	Bounds        terrain.Bounds
}

// NewSession creates a session configured by cfg. A nil cfg uses config.Default().
func NewSession(cfg *config.Config) *Session {
	if cfg == nil {
		cfg = config.Default()
	}

	controller := input.NewController()
	controller.Config = cfg.InputConfig()

	return &Session{
		opts:         cfg.MeshOptions(),
		mesh:         &terrain.Mesh{},
		camera:       cfg.OrbitCamera(),
		controller:   controller,
		fitToTerrain: cfg.Camera.FitToTerrain,
		log:          logger.Named("session"),
	}
}

// Load parses an FDF file and makes it the current field.
// On error the previous field and mesh are kept.
func (s *Session) Load(path string) error {
	start := time.Now()
	field, err := formats.ParseFDFFile(path)
	if err != nil {
		s.log.Warn("load failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("loading %s: %w", path, err)
	}

	s.log.Info("height field loaded",
		zap.String("path", path),
		zap.Int("width", field.Width),
		zap.Int("height", field.Height),
		zap.Bool("colors", field.HasColors()),
		zap.Duration("elapsed", time.Since(start)))

	return s.SetField(field)
}

// SetField replaces the current field, rebuilds the mesh and, when
// fit_to_terrain is enabled, refits the camera. A field that is nil or not
// rectangular is rejected and the previous state is kept.
func (s *Session) SetField(field *formats.HeightField) error {
	if field == nil {
		return ErrNoField
	}
	if err := field.Validate(); err != nil {
		s.log.Warn("field rejected", zap.Error(err))
		return err
	}

	s.field = field
	s.rebuild()

	if s.fitToTerrain && !s.mesh.Empty() {
		s.camera.FitToBounds(s.mesh.Bounds.Min, s.mesh.Bounds.Max)
		s.log.Debug("camera fitted",
			zap.Float32("distance", s.camera.Distance),
			zap.Float32s("target", s.camera.Target[:]))
	}
	return nil
}

// Field returns the current field, or nil.
func (s *Session) Field() *formats.HeightField {
	return s.field
}

// Mesh returns the current mesh. It is empty until a field is set.
func (s *Session) Mesh() *terrain.Mesh {
	return s.mesh
}

// Options returns the current mesh options.
func (s *Session) Options() terrain.MeshOptions {
	return s.opts
}

// Camera returns the session camera.
func (s *Session) Camera() *camera.OrbitCamera {
	return s.camera
}

// Controller returns the input controller driving the camera.
func (s *Session) Controller() *input.Controller {
	return s.controller
}

// SetHeightScale changes the vertical scale and rebuilds the mesh.
func (s *Session) SetHeightScale(scale float32) {
	s.opts.HeightScale = scale
	s.rebuild()
}

// SetShading changes the normal computation and rebuilds the mesh.
func (s *Session) SetShading(mode terrain.ShadingMode) {
	s.opts.Shading = mode
	s.rebuild()
}

// SetColorScheme changes the color scheme and rebuilds the mesh.
func (s *Session) SetColorScheme(scheme terrain.ColorScheme) {
	s.opts.Scheme = scheme
	s.rebuild()
}

// SetUseFileColors toggles per-sample file colors and rebuilds the mesh.
func (s *Session) SetUseFileColors(use bool) {
	s.opts.UseFileColors = use
	s.rebuild()
}

// Frame returns the view-projection matrix for a viewport of the given
// aspect ratio (width / height) together with the current mesh.
func (s *Session) Frame(aspect float32) Frame {
	return Frame{
		ViewProjection: s.camera.ViewProjectionMatrix(aspect),
		CameraPosition: s.camera.Position(),
		Projection:     s.camera.Projection,
		Mesh:           s.mesh,
	}
}

// Pick casts a ray through the pixel (x, y) of a viewport of the given size
// and returns the terrain point under it, with the source sample height.
func (s *Session) Pick(x, y, viewportW, viewportH float32) (PickResult, bool) {
	if s.field == nil || viewportW <= 0 || viewportH <= 0 {
		return PickResult{}, false
	}

	inv := s.camera.ViewProjectionMatrix(viewportW / viewportH).Inv()
	ray := picking.ScreenToRay(x, y, viewportW, viewportH, inv)

	hit, ok := picking.PickTerrain(ray, s.mesh, s.field.Width, s.field.Height)
	if !ok {
		return PickResult{}, false
	}
	return PickResult{
		Hit:    hit,
		Sample: s.field.At(hit.Row, hit.Col),
		Color:  s.field.ColorAt(hit.Row, hit.Col),
	}, true
}

// Stats summarizes the current field and mesh.
func (s *Session) Stats() (Stats, error) {
	if s.field == nil {
		return Stats{}, ErrNoField
	}

	minH, maxH := s.field.HeightBounds()
	scheme := "terrain"
	if s.opts.Scheme != nil {
		scheme = s.opts.Scheme.String()
	}

	return Stats{
		Width:     s.field.Width,
		Height:    s.field.Height,
		MinHeight: minH,
		MaxHeight: maxH,
		HasColors: s.field.HasColors(),
		Vertices:  len(s.mesh.Vertices),
		Lines:     s.mesh.LineCount(),
		Triangles: s.mesh.TriangleCount(),
		Shading:   s.opts.Shading,
		Scheme:    scheme,
		Bounds:    s.mesh.Bounds,
	}, nil
}

func (s *Session) rebuild() {
	if s.field == nil {
		return
	}

	start := time.Now()
	s.mesh = terrain.Generate(s.field, &s.opts)

	s.log.Debug("mesh rebuilt",
		zap.Int("vertices", len(s.mesh.Vertices)),
		zap.Int("lines", s.mesh.LineCount()),
		zap.Int("triangles", s.mesh.TriangleCount()),
		zap.Stringer("shading", s.opts.Shading),
		zap.Float32("height_scale", s.opts.HeightScale),
		zap.Duration("elapsed", time.Since(start)))
}
