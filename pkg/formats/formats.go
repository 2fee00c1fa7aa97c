// Package formats provides parsers for height-field source files.
package formats

// Note: FDF (whitespace-separated height grid with optional colors) is implemented in fdf.go
