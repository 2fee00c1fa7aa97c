// Package encoding provides text decoding utilities for height-field source files.
package encoding

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// HasBOM reports whether data starts with a UTF-8 or UTF-16 byte order mark.
func HasBOM(data []byte) bool {
	return bytes.HasPrefix(data, bomUTF8) ||
		bytes.HasPrefix(data, bomUTF16LE) ||
		bytes.HasPrefix(data, bomUTF16BE)
}

// DecodeText converts raw file bytes to a UTF-8 string.
// A leading BOM selects UTF-8 or UTF-16 (either byte order) and is stripped.
// Data without a BOM is taken as UTF-8 unchanged.
func DecodeText(data []byte) (string, error) {
	if !HasBOM(data) {
		return string(data), nil
	}

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	result, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return "", fmt.Errorf("decoding text: %w", err)
	}
	return string(result), nil
}

// EncodeUTF16 encodes s as little-endian UTF-16 with a BOM.
// Used to produce files for editors that default to UTF-16.
func EncodeUTF16(s string) ([]byte, error) {
	encoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	result, _, err := transform.Bytes(encoder, []byte(s))
	if err != nil {
		return nil, fmt.Errorf("encoding text: %w", err)
	}
	return result, nil
}
