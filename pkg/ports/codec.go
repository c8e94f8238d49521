// Package ports defines the domain types and interfaces shared by the
// caption pipeline and its adapters.
package ports

import (
	"image"
	"io"
)

// FrameDecoder turns an animated stream into fully composited frames.
type FrameDecoder interface {
	// DecodeFrames decodes every frame of data in stream order.
	// It returns ErrCorruptAnimation if the stream or any frame metadata is
	// unusable; no partial result is returned.
	DecodeFrames(data []byte) ([]Frame, error)
}

// SequenceEncoder writes frames as a looping animation.
type SequenceEncoder interface {
	// EncodeSequence writes frames to w and returns the delay applied to
	// every frame.
	EncodeSequence(w io.Writer, frames []Frame) (int, error)
}

// StillCodec reads and writes single raster images.
type StillCodec interface {
	// Decode reads data into an RGBA image with a zero origin.
	Decode(data []byte, format ImageFormat) (*image.RGBA, error)

	// Encode writes img to w in the given format.
	Encode(w io.Writer, img image.Image, format ImageFormat) error
}
