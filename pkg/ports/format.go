package ports

import (
	"fmt"
	"strings"
)

// ImageFormat specifies the image container used for both input and output.
type ImageFormat int

const (
	FormatGIF ImageFormat = iota
	FormatJPG
	FormatPNG
	FormatJPEG
)

// String returns the canonical lowercase extension of the format.
func (f ImageFormat) String() string {
	switch f {
	case FormatGIF:
		return "gif"
	case FormatJPG:
		return "jpg"
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	default:
		return "unknown"
	}
}

// Animated reports whether the format goes through the frame decoder.
func (f ImageFormat) Animated() bool {
	return f == FormatGIF
}

// OutputFilename returns the name the result is delivered under.
func (f ImageFormat) OutputFilename() string {
	return "meme." + f.String()
}

// ParseImageFormat maps an extension (without the dot) to a format.
// Matching is case-insensitive.
func ParseImageFormat(ext string) (ImageFormat, bool) {
	switch strings.ToLower(ext) {
	case "gif":
		return FormatGIF, true
	case "jpg":
		return FormatJPG, true
	case "png":
		return FormatPNG, true
	case "jpeg":
		return FormatJPEG, true
	default:
		return 0, false
	}
}

// ResolveFormat picks the format from the extension after the last dot of
// filename. Content is never inspected.
func ResolveFormat(filename string) (ImageFormat, error) {
	i := strings.LastIndex(filename, ".")
	if i < 0 {
		return 0, fmt.Errorf("%w: %q has no extension", ErrUnsupportedFormat, filename)
	}
	f, ok := ParseImageFormat(filename[i+1:])
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filename[i+1:])
	}
	return f, nil
}
