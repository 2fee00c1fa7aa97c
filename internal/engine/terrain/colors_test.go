package terrain

import (
	"math"
	"testing"
)

func TestHeightToColor_Terrain(t *testing.T) {
	low := HeightToColor(0, SchemeTerrain)
	if low[2] <= low[0] || low[2] <= low[1] {
		t.Errorf("low terrain should be bluish, got %v", low)
	}

	mid := HeightToColor(0.5, SchemeTerrain)
	if mid[1] <= mid[0] {
		t.Errorf("mid terrain should be greenish, got %v", mid)
	}

	high := HeightToColor(1, SchemeTerrain)
	for i, c := range high {
		if c < 0.9 {
			t.Errorf("high terrain channel %d should be near 1.0, got %f", i, c)
		}
	}
}

func TestHeightToColor_TerrainFirstSegment(t *testing.T) {
	// s = t / 0.3 maps to (0, 0.5s, 0.8+0.2s)
	got := HeightToColor(0.15, SchemeTerrain)
	want := RGB{0, 0.25, 0.9}
	if !approxRGB(got, want, 1e-5) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestHeightToColor_Heatmap(t *testing.T) {
	tests := []struct {
		t    float32
		want RGB
	}{
		{0, RGB{0, 0, 1}},
		{0.25, RGB{0, 1, 1}},
		{0.5, RGB{0, 1, 0}},
		{0.75, RGB{1, 1, 0}},
		{1, RGB{1, 0, 0}},
	}

	for _, tt := range tests {
		got := HeightToColor(tt.t, SchemeHeatmap)
		if !approxRGB(got, tt.want, 1e-5) {
			t.Errorf("heatmap(%f): got %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestHeightToColor_Monochrome(t *testing.T) {
	low := HeightToColor(0, SchemeMonochrome)
	if !approxRGB(low, RGB{0.1, 0.1, 0.1}, 1e-6) {
		t.Errorf("low monochrome: got %v", low)
	}

	high := HeightToColor(1, SchemeMonochrome)
	if !approxRGB(high, RGB{1, 1, 1}, 1e-6) {
		t.Errorf("high monochrome: got %v", high)
	}

	mid := HeightToColor(0.5, SchemeMonochrome)
	if mid[0] != mid[1] || mid[0] != mid[2] {
		t.Errorf("monochrome should be grayscale, got %v", mid)
	}
}

func TestHeightToColor_CustomGradient(t *testing.T) {
	g := CustomGradient{
		Low:  RGB{0, 0, 0},
		Mid:  RGB{1, 0, 0},
		High: RGB{1, 1, 1},
	}

	if got := HeightToColor(0, g); !approxRGB(got, g.Low, 1e-6) {
		t.Errorf("t=0: got %v, want %v", got, g.Low)
	}
	if got := HeightToColor(0.5, g); !approxRGB(got, g.Mid, 1e-6) {
		t.Errorf("t=0.5: got %v, want %v", got, g.Mid)
	}
	if got := HeightToColor(1, g); !approxRGB(got, g.High, 1e-6) {
		t.Errorf("t=1: got %v, want %v", got, g.High)
	}
	if got := HeightToColor(0.25, g); !approxRGB(got, RGB{0.5, 0, 0}, 1e-6) {
		t.Errorf("t=0.25: got %v", got)
	}
}

func TestHeightToColor_Clamps(t *testing.T) {
	schemes := []ColorScheme{
		SchemeTerrain,
		SchemeHeatmap,
		SchemeMonochrome,
		CustomGradient{Low: RGB{0.2, 0.3, 0.4}, Mid: RGB{0.5, 0.5, 0.5}, High: RGB{0.9, 0.8, 0.7}},
	}
	inputs := []float32{-10, -0.5, 0, 0.3, 0.99, 1, 1.5, 100}

	for _, s := range schemes {
		for _, in := range inputs {
			got := HeightToColor(in, s)
			want := HeightToColor(clampf(in, 0, 1), s)
			if got != want {
				t.Errorf("%s(%f): got %v, want clamped %v", s, in, got, want)
			}
		}
	}
}

func TestHeightToColor_Continuous(t *testing.T) {
	tests := []struct {
		scheme     ColorScheme
		boundaries []float32
	}{
		{SchemeTerrain, []float32{0.3, 0.5, 0.8}},
		{SchemeHeatmap, []float32{0.25, 0.5, 0.75}},
		{CustomGradient{Low: RGB{0, 0, 1}, Mid: RGB{0, 1, 0}, High: RGB{1, 0, 0}}, []float32{0.5}},
	}

	const delta = 1e-4
	for _, tt := range tests {
		for _, b := range tt.boundaries {
			before := HeightToColor(b-delta, tt.scheme)
			at := HeightToColor(b, tt.scheme)
			if !approxRGB(before, at, 0.01) {
				t.Errorf("%s discontinuous at %f: %v vs %v", tt.scheme, b, before, at)
			}
		}
	}
}

func TestHeightToColor_InRange(t *testing.T) {
	for _, s := range []ColorScheme{SchemeTerrain, SchemeHeatmap, SchemeMonochrome} {
		for i := 0; i <= 100; i++ {
			c := HeightToColor(float32(i)/100, s)
			for ch, v := range c {
				if v < -1e-6 || v > 1+1e-6 {
					t.Errorf("%s(%d%%) channel %d out of range: %f", s, i, ch, v)
				}
			}
		}
	}
}

func TestHeightToColor_CustomGradientPointer(t *testing.T) {
	g := &CustomGradient{
		Low:  RGB{0, 0, 0},
		Mid:  RGB{0, 0, 1},
		High: RGB{0, 1, 0},
	}

	for _, v := range []float32{0, 0.3, 0.5, 0.8, 1} {
		if got, want := HeightToColor(v, g), HeightToColor(v, *g); got != want {
			t.Errorf("t=%v: pointer gave %v, value gave %v", v, got, want)
		}
	}

	var nilGradient *CustomGradient
	if HeightToColor(0.4, nilGradient) != HeightToColor(0.4, SchemeTerrain) {
		t.Error("nil gradient pointer should use terrain gradient")
	}
}

func TestHeightToColor_NilScheme(t *testing.T) {
	if HeightToColor(0.4, nil) != HeightToColor(0.4, SchemeTerrain) {
		t.Error("nil scheme should use terrain gradient")
	}
}

func TestParseColorScheme(t *testing.T) {
	for _, name := range SchemeNames {
		s, err := ParseColorScheme(name)
		if err != nil {
			t.Fatalf("ParseColorScheme(%q) failed: %v", name, err)
		}
		if s.String() != name {
			t.Errorf("expected %s, got %s", name, s)
		}
	}

	if s, err := ParseColorScheme("HeatMap"); err != nil || s != SchemeHeatmap {
		t.Errorf("expected case-insensitive match, got %v, %v", s, err)
	}

	if _, err := ParseColorScheme("rainbow"); err == nil {
		t.Error("expected error for unknown scheme")
	}
}

func TestRGBFromPacked(t *testing.T) {
	got := RGBFromPacked(0xFF8000)
	want := RGB{1, 128.0 / 255.0, 0}
	if !approxRGB(got, want, 1e-6) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func approxRGB(a, b RGB, eps float64) bool {
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > eps {
			return false
		}
	}
	return true
}
