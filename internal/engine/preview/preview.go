// Package preview renders top-down color-map images of terrain meshes.
package preview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"github.com/Faultbox/lrle/internal/engine/lighting"
	"github.com/Faultbox/lrle/internal/engine/terrain"
)

// Preview errors.
var (
	ErrEmptyMesh         = errors.New("mesh has no vertices")
	ErrSizeMismatch      = errors.New("mesh vertex count does not match grid size")
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

// Options controls preview rendering.
type Options struct {
	Scale  int          // Output pixels per sample (>= 1)
	Shaded bool         // Apply sun lighting using mesh normals
	Smooth bool         // Catmull-Rom upscaling instead of nearest neighbor
	Sun    lighting.Sun // Light used when Shaded is set
}

// DefaultOptions returns shaded, nearest-neighbor previews at 4x scale.
func DefaultOptions() Options {
	return Options{
		Scale:  4,
		Shaded: true,
		Sun:    lighting.DefaultSun(),
	}
}

// Render draws one pixel per mesh vertex, row 0 at the top, then upscales.
// width and height are the grid dimensions the mesh was generated from.
func Render(mesh *terrain.Mesh, width, height int, opts *Options) (*image.RGBA, error) {
	if opts == nil {
		defaults := DefaultOptions()
		opts = &defaults
	}
	if mesh == nil || mesh.Empty() {
		return nil, ErrEmptyMesh
	}
	if len(mesh.Vertices) != width*height {
		return nil, fmt.Errorf("%w: %d vertices for %dx%d", ErrSizeMismatch, len(mesh.Vertices), width, height)
	}

	src := image.NewRGBA(image.Rect(0, 0, width, height))
	for i, v := range mesh.Vertices {
		c := v.Color
		if opts.Shaded {
			k := opts.Sun.Intensity(v.Normal)
			c = terrain.RGB{c[0] * k, c[1] * k, c[2] * k}
		}
		src.SetRGBA(i%width, i/width, toRGBA(c))
	}

	scale := opts.Scale
	if scale <= 1 {
		return src, nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, width*scale, height*scale))
	var scaler draw.Scaler = draw.NearestNeighbor
	if opts.Smooth {
		scaler = draw.CatmullRom
	}
	scaler.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	return dst, nil
}

// Save writes img to path, choosing PNG or BMP from the file extension.
// Parent directories are created as needed.
func Save(img image.Image, path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".png" && ext != ".bmp" {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	switch ext {
	case ".bmp":
		if err := bmp.Encode(file, img); err != nil {
			return fmt.Errorf("encoding BMP: %w", err)
		}
	default:
		if err := png.Encode(file, img); err != nil {
			return fmt.Errorf("encoding PNG: %w", err)
		}
	}

	return file.Close()
}

func toRGBA(c terrain.RGB) color.RGBA {
	return color.RGBA{
		R: channel(c[0]),
		G: channel(c[1]),
		B: channel(c[2]),
		A: 255,
	}
}

func channel(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
