// SPDX-License-Identifier: MIT

package converters

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/matrixnexus/matrix"
)

// Format names an encoding for a whole grid.
type Format string

// Supported formats.
const (
	TextFormat Format = "text"
	JSONFormat Format = "json"
	YAMLFormat Format = "yaml"
)

// ErrUnknownFormat is returned for a format name or file extension with no codec.
var ErrUnknownFormat = errors.New("converters: unknown format")

// ParseFormat accepts "text", "txt", "json", "yaml" and "yml" (case-insensitive).
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "text", "txt":
		return TextFormat, nil
	case "json":
		return JSONFormat, nil
	case "yaml", "yml":
		return YAMLFormat, nil
	}

	return "", fmt.Errorf("%w %q", ErrUnknownFormat, name)
}

// FormatForPath picks a format from a file extension; unknown or missing
// extensions fall back to JSON, the export default.
func FormatForPath(path string) Format {
	f, err := ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return JSONFormat
	}

	return f
}

// Encode writes g to w in format f. decimals only affects TextFormat.
func Encode(w io.Writer, f Format, g matrix.Grid, decimals int) error {
	switch f {
	case TextFormat:
		_, err := io.WriteString(w, FormatText(g, decimals))
		return err
	case JSONFormat:
		return WriteJSON(w, g)
	case YAMLFormat:
		return WriteYAML(w, g)
	}

	return fmt.Errorf("%w %q", ErrUnknownFormat, string(f))
}

// Decode reads a grid in format f.
func Decode(f Format, data []byte) (matrix.Grid, error) {
	switch f {
	case TextFormat:
		return ParseText(string(data))
	case JSONFormat:
		return UnmarshalJSON(data)
	case YAMLFormat:
		return UnmarshalYAML(data)
	}

	return nil, fmt.Errorf("%w %q", ErrUnknownFormat, string(f))
}
