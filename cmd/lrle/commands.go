package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/lrle/internal/app"
	"github.com/Faultbox/lrle/internal/config"
	"github.com/Faultbox/lrle/internal/engine/preview"
)

// openSession creates a session from cfg and loads path into it.
func openSession(cfg *config.Config, path string) (*app.Session, error) {
	s := app.NewSession(cfg)
	if err := s.Load(path); err != nil {
		return nil, err
	}
	if config.Isometric() {
		s.Camera().SetIsometric()
	}
	return s, nil
}

func cmdInfo(cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: lrle info <file.fdf>")
	}

	s, err := openSession(cfg, args[0])
	if err != nil {
		return err
	}

	stats, err := s.Stats()
	if err != nil {
		return err
	}

	fmt.Printf("File:      %s\n", args[0])
	fmt.Printf("Grid:      %d x %d\n", stats.Width, stats.Height)
	fmt.Printf("Heights:   %g .. %g\n", stats.MinHeight, stats.MaxHeight)
	fmt.Printf("Colors:    %v\n", stats.HasColors)
	fmt.Println()
	fmt.Printf("Vertices:  %d\n", stats.Vertices)
	fmt.Printf("Lines:     %d\n", stats.Lines)
	fmt.Printf("Triangles: %d\n", stats.Triangles)
	fmt.Printf("Shading:   %s\n", stats.Shading)
	fmt.Printf("Scheme:    %s\n", stats.Scheme)
	fmt.Printf("Bounds:    %s .. %s\n", formatVec(stats.Bounds.Min), formatVec(stats.Bounds.Max))
	return nil
}

func cmdMesh(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("mesh", flag.ExitOnError)
	limit := fs.Int("n", 8, "Number of vertices to print (0 = all)")
	fs.Parse(args)

	if fs.NArg() < 1 {
		return fmt.Errorf("usage: lrle mesh [-n N] <file.fdf>")
	}

	s, err := openSession(cfg, fs.Arg(0))
	if err != nil {
		return err
	}

	mesh := s.Mesh()
	fmt.Printf("Vertices:  %d\n", len(mesh.Vertices))
	fmt.Printf("Lines:     %d (%d indices)\n", mesh.LineCount(), len(mesh.LineIndices))
	fmt.Printf("Triangles: %d (%d indices)\n", mesh.TriangleCount(), len(mesh.TriangleIndices))
	fmt.Println()

	n := len(mesh.Vertices)
	if *limit > 0 && *limit < n {
		n = *limit
	}

	fmt.Printf("%-6s %-28s %-22s %s\n", "Index", "Position", "Color", "Normal")
	for i, v := range mesh.Vertices[:n] {
		color := fmt.Sprintf("(%.3f, %.3f, %.3f)", v.Color[0], v.Color[1], v.Color[2])
		fmt.Printf("%-6d %-28s %-22s %s\n", i, formatVec(v.Position), color, formatVec(v.Normal))
	}
	if n < len(mesh.Vertices) {
		fmt.Printf("... and %d more\n", len(mesh.Vertices)-n)
	}
	return nil
}

func cmdCamera(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("camera", flag.ExitOnError)
	aspect := fs.Float64("aspect", 16.0/9.0, "Viewport aspect ratio (width / height)")
	fs.Parse(args)

	var s *app.Session
	if fs.NArg() > 0 {
		var err error
		if s, err = openSession(cfg, fs.Arg(0)); err != nil {
			return err
		}
	} else {
		s = app.NewSession(cfg)
		if config.Isometric() {
			s.Camera().SetIsometric()
		}
	}

	cam := s.Camera()
	frame := s.Frame(float32(*aspect))

	fmt.Printf("Projection: %s\n", cam.Projection)
	fmt.Printf("Distance:   %.3f\n", cam.Distance)
	fmt.Printf("Azimuth:    %.2f deg\n", mgl32.RadToDeg(cam.Azimuth))
	fmt.Printf("Elevation:  %.2f deg\n", mgl32.RadToDeg(cam.Elevation))
	fmt.Printf("Target:     %s\n", formatVec(cam.Target))
	fmt.Printf("Position:   %s\n", formatVec(frame.CameraPosition))
	fmt.Println()
	printMatrix("View", cam.ViewMatrix())
	printMatrix("Projection", cam.ProjectionMatrix(float32(*aspect)))
	printMatrix("View-Projection", frame.ViewProjection)
	return nil
}

func cmdPick(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("pick", flag.ExitOnError)
	size := fs.String("size", "1280x720", "Viewport size (WxH)")
	fs.Parse(args)

	if fs.NArg() < 3 {
		return fmt.Errorf("usage: lrle pick [-size WxH] <file.fdf> <x> <y>")
	}

	w, h, err := parseSize(*size)
	if err != nil {
		return err
	}
	x, err := strconv.ParseFloat(fs.Arg(1), 32)
	if err != nil {
		return fmt.Errorf("invalid x %q: %w", fs.Arg(1), err)
	}
	y, err := strconv.ParseFloat(fs.Arg(2), 32)
	if err != nil {
		return fmt.Errorf("invalid y %q: %w", fs.Arg(2), err)
	}

	s, err := openSession(cfg, fs.Arg(0))
	if err != nil {
		return err
	}

	res, ok := s.Pick(float32(x), float32(y), w, h)
	if !ok {
		fmt.Println("No terrain under cursor")
		return nil
	}

	fmt.Printf("Sample:   row %d, col %d\n", res.Row, res.Col)
	fmt.Printf("Height:   %g\n", res.Sample)
	fmt.Printf("Color:    0x%06X\n", res.Color)
	fmt.Printf("Point:    %s\n", formatVec(res.Point))
	fmt.Printf("Distance: %.3f\n", res.Distance)
	return nil
}

func cmdPreview(cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: lrle preview <file.fdf> <out.png|out.bmp>")
	}

	s, err := openSession(cfg, args[0])
	if err != nil {
		return err
	}

	field := s.Field()
	opts := cfg.PreviewOptions()
	img, err := preview.Render(s.Mesh(), field.Width, field.Height, &opts)
	if err != nil {
		return err
	}

	if err := preview.Save(img, args[1]); err != nil {
		return err
	}

	b := img.Bounds()
	fmt.Printf("Wrote %s (%dx%d)\n", args[1], b.Dx(), b.Dy())
	return nil
}

func cmdConfig(cfg *config.Config, args []string) error {
	if len(args) < 1 {
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", filepath.Join(config.ConfigDir(), "config.yaml"))
		return nil
	}

	if err := cfg.SaveTo(args[0]); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", args[0])
	return nil
}

// parseSize parses "WxH".
func parseSize(s string) (w, h float32, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q, want WxH", s)
	}
	wv, err1 := strconv.ParseFloat(ws, 32)
	hv, err2 := strconv.ParseFloat(hs, 32)
	if err1 != nil || err2 != nil || wv <= 0 || hv <= 0 {
		return 0, 0, fmt.Errorf("invalid size %q, want WxH", s)
	}
	return float32(wv), float32(hv), nil
}

func formatVec(v mgl32.Vec3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v[0], v[1], v[2])
}

func printMatrix(name string, m mgl32.Mat4) {
	fmt.Fprintf(os.Stdout, "%s:\n", name)
	for i := 0; i < 4; i++ {
		row := m.Row(i)
		cells := make([]string, 4)
		for j := range cells {
			cells[j] = fmt.Sprintf("%9.4f", row[j])
		}
		fmt.Printf("  [%s]\n", strings.Join(cells, " "))
	}
}
