package formats

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/Faultbox/lrle/pkg/encoding"
)

// DefaultColor is the packed color given to samples without an explicit color.
const DefaultColor uint32 = 0xFFFFFF

// maxColor is the largest packed 24-bit RGB value.
const maxColor uint32 = 0xFFFFFF

// FDF format errors.
var (
	ErrEmptyFile    = errors.New("file is empty")
	ErrRaggedGrid   = errors.New("height field is not rectangular")
	ErrColorGridDim = errors.New("color grid does not match sample grid")
)

// FileNotFoundError is returned when the source file cannot be opened or read.
type FileNotFoundError struct {
	Path string
	Err  error
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("cannot open file: %s", e.Path)
}

func (e *FileNotFoundError) Unwrap() error {
	return e.Err
}

// ParseError reports a malformed height or color token.
// Line is 1-indexed and counts blank lines.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d: %s", e.Line, e.Message)
}

// InconsistentRowError reports a row whose token count differs from the first row.
// Row is the 1-indexed line number of the offending row.
type InconsistentRowError struct {
	Row      int
	Actual   int
	Expected int
}

func (e *InconsistentRowError) Error() string {
	return fmt.Sprintf("row %d has %d values, expected %d", e.Row, e.Actual, e.Expected)
}

// HeightField is a grid of height samples parsed from an FDF file.
// Coordinates: columns run along X, rows along Z, samples are Y.
type HeightField struct {
	Width   int         // Number of columns
	Height  int         // Number of rows
	Samples [][]float32 // Indexed as Samples[row][col]
	Colors  [][]uint32  // Packed 0xRRGGBB, nil unless the source had explicit colors
}

// NewHeightField builds a field from row-major samples.
// Width and Height are derived from the first row and the row count.
// Every row must have Width samples and colors, when non-nil, must match
// that shape; Validate checks this. ParseFDF always yields a valid field.
func NewHeightField(samples [][]float32, colors [][]uint32) *HeightField {
	width := 0
	if len(samples) > 0 {
		width = len(samples[0])
	}
	return &HeightField{
		Width:   width,
		Height:  len(samples),
		Samples: samples,
		Colors:  colors,
	}
}

// Validate checks that the sample grid is rectangular and that the color
// grid, if any, has the same dimensions.
func (f *HeightField) Validate() error {
	if len(f.Samples) != f.Height {
		return fmt.Errorf("%w: %d rows, expected %d", ErrRaggedGrid, len(f.Samples), f.Height)
	}
	for i, row := range f.Samples {
		if len(row) != f.Width {
			return fmt.Errorf("%w: row %d has %d samples, expected %d", ErrRaggedGrid, i+1, len(row), f.Width)
		}
	}

	if f.Colors == nil {
		return nil
	}
	if len(f.Colors) != f.Height {
		return fmt.Errorf("%w: %d color rows, expected %d", ErrColorGridDim, len(f.Colors), f.Height)
	}
	for i, row := range f.Colors {
		if len(row) != f.Width {
			return fmt.Errorf("%w: color row %d has %d entries, expected %d", ErrColorGridDim, i+1, len(row), f.Width)
		}
	}
	return nil
}

// HasColors reports whether the field carries explicit per-sample colors.
func (f *HeightField) HasColors() bool {
	return f.Colors != nil
}

// At returns the sample at (row, col). Out of range reads return 0.
func (f *HeightField) At(row, col int) float32 {
	if row < 0 || col < 0 || row >= f.Height || col >= f.Width {
		return 0
	}
	return f.Samples[row][col]
}

// ColorAt returns the packed color at (row, col), or DefaultColor when the
// field has no colors or the position is out of range.
func (f *HeightField) ColorAt(row, col int) uint32 {
	if f.Colors == nil || row < 0 || col < 0 || row >= f.Height || col >= f.Width {
		return DefaultColor
	}
	return f.Colors[row][col]
}

// HeightBounds returns the minimum and maximum sample values.
// Returns (0, 0) for an empty field.
func (f *HeightField) HeightBounds() (min, max float32) {
	if f.Width == 0 || f.Height == 0 {
		return 0, 0
	}

	min = f.Samples[0][0]
	max = f.Samples[0][0]
	for _, row := range f.Samples {
		for _, h := range row {
			if h < min {
				min = h
			}
			if h > max {
				max = h
			}
		}
	}
	return min, max
}

// ParseFDF parses FDF text into a HeightField.
//
// Each non-blank line is one row of whitespace-separated tokens. A token is
// either a height or "height,RRGGBB" with an optional 0x/0X prefix. Parsing
// stops at the first error and no partial field is returned.
func ParseFDF(content string) (*HeightField, error) {
	var samples [][]float32
	var colors [][]uint32
	hasColor := false
	expectedWidth := -1

	for i, line := range strings.Split(content, "\n") {
		lineNum := i + 1
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		rowHeights := make([]float32, 0, len(fields))
		rowColors := make([]uint32, 0, len(fields))

		for _, token := range fields {
			h, c, explicit, err := parseToken(token, lineNum)
			if err != nil {
				return nil, err
			}
			rowHeights = append(rowHeights, h)
			rowColors = append(rowColors, c)
			if explicit {
				hasColor = true
			}
		}

		if expectedWidth < 0 {
			expectedWidth = len(rowHeights)
		} else if len(rowHeights) != expectedWidth {
			return nil, &InconsistentRowError{
				Row:      lineNum,
				Actual:   len(rowHeights),
				Expected: expectedWidth,
			}
		}

		samples = append(samples, rowHeights)
		colors = append(colors, rowColors)
	}

	if len(samples) == 0 {
		return nil, ErrEmptyFile
	}

	if !hasColor {
		colors = nil
	}
	return NewHeightField(samples, colors), nil
}

// parseToken parses "height" or "height,color".
// explicit is true when the token carried a color.
func parseToken(token string, line int) (height float32, color uint32, explicit bool, err error) {
	heightStr, colorStr, hasColor := strings.Cut(token, ",")

	height, err = parseHeight(heightStr, line)
	if err != nil {
		return 0, 0, false, err
	}
	if !hasColor {
		return height, DefaultColor, false, nil
	}

	color, err = parseColor(colorStr, line)
	if err != nil {
		return 0, 0, false, err
	}
	return height, color, true, nil
}

func parseHeight(s string, line int) (float32, error) {
	// ParseFloat also takes Go literal forms; heights are plain decimals.
	digits := strings.TrimLeft(s, "+-")
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") || strings.Contains(s, "_") {
		return 0, &ParseError{Line: line, Message: fmt.Sprintf("expected number, got '%s'", s)}
	}

	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, &ParseError{Line: line, Message: fmt.Sprintf("expected number, got '%s'", s)}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ParseError{Line: line, Message: fmt.Sprintf("non-finite height '%s'", s)}
	}
	return float32(v), nil
}

func parseColor(s string, line int) (uint32, error) {
	hex := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if hex == "" {
		return 0, &ParseError{Line: line, Message: fmt.Sprintf("invalid color format '%s'", s)}
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || uint32(v) > maxColor {
		return 0, &ParseError{Line: line, Message: fmt.Sprintf("invalid color format '%s'", s)}
	}
	return uint32(v), nil
}

// ParseFDFFile reads and parses an FDF file from disk.
// The file is read in full before parsing; UTF-8 and UTF-16 files with a
// byte order mark are accepted.
func ParseFDFFile(path string) (*HeightField, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileNotFoundError{Path: path, Err: err}
	}

	content, err := encoding.DecodeText(data)
	if err != nil {
		return nil, &ParseError{Line: 1, Message: err.Error()}
	}
	return ParseFDF(content)
}

// FormatFDF renders a field back to FDF text, one row per line.
// Colors are written as "height,0xRRGGBB" only when the field has them.
func FormatFDF(f *HeightField) string {
	var b strings.Builder
	for row := 0; row < f.Height; row++ {
		for col := 0; col < f.Width; col++ {
			if col > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.FormatFloat(float64(f.Samples[row][col]), 'g', -1, 32))
			if f.Colors != nil {
				fmt.Fprintf(&b, ",0x%06X", f.Colors[row][col])
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
