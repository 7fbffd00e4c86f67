// Package export writes scenes to files: SVG as text, PNG through the gg
// rasterizer.
package export

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/san-kum/gaugekit/internal/scene"
)

var ErrUnknownFormat = errors.New("export: unknown format")

type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

func Formats() []Format {
	return []Format{FormatSVG, FormatPNG}
}

// ParseFormat is case-insensitive and accepts a leading dot.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "."))
	switch f {
	case FormatSVG, FormatPNG:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatFromPath infers the format from a file extension, or returns
// fallback when the path has none.
func FormatFromPath(path string, fallback Format) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return fallback, nil
	}
	return ParseFormat(ext)
}

// Write encodes s in format. widthPx only applies to PNG.
func Write(w io.Writer, format Format, s *scene.Scene, widthPx int) error {
	switch format {
	case FormatSVG:
		return WriteSVG(w, s)
	case FormatPNG:
		return PNG(w, s, widthPx)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}
