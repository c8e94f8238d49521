package ports

import "errors"

var (
	// ErrUnsupportedFormat is returned when a filename has no extension or an
	// extension other than gif, jpg, png or jpeg.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrCorruptAnimation is returned when an animated stream cannot be parsed
	// or a frame lacks its delay and disposal metadata.
	ErrCorruptAnimation = errors.New("animation is corrupted or lacks frame metadata")

	// ErrDecode is returned when a still image cannot be read.
	ErrDecode = errors.New("decode failed")

	// ErrEncode is returned when the output cannot be written.
	ErrEncode = errors.New("encode failed")
)
