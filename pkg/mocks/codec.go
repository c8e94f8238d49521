package mocks

import (
	"image"
	"io"

	"github.com/user/memegen/pkg/ports"
)

// FrameDecoder is a mock implementation of ports.FrameDecoder.
type FrameDecoder struct {
	DecodeFramesFunc func(data []byte) ([]ports.Frame, error)

	// Recorded calls for verification
	DecodeFramesCalls int
}

func (m *FrameDecoder) DecodeFrames(data []byte) ([]ports.Frame, error) {
	m.DecodeFramesCalls++
	if m.DecodeFramesFunc != nil {
		return m.DecodeFramesFunc(data)
	}
	// Two blank 4x4 frames
	frames := make([]ports.Frame, 2)
	for i := range frames {
		img := image.NewRGBA(image.Rect(0, 0, 4, 4))
		frames[i] = ports.Frame{Image: img, Delay: 10, Bounds: img.Bounds()}
	}
	return frames, nil
}

var _ ports.FrameDecoder = (*FrameDecoder)(nil)

// SequenceEncoder is a mock implementation of ports.SequenceEncoder.
type SequenceEncoder struct {
	EncodeSequenceFunc func(w io.Writer, frames []ports.Frame) (int, error)

	// Recorded calls for verification
	EncodeSequenceCalls int
	EncodedFrames       []ports.Frame
}

func (m *SequenceEncoder) EncodeSequence(w io.Writer, frames []ports.Frame) (int, error) {
	m.EncodeSequenceCalls++
	m.EncodedFrames = frames
	if m.EncodeSequenceFunc != nil {
		return m.EncodeSequenceFunc(w, frames)
	}
	// GIF trailer only
	_, err := w.Write([]byte("GIF89a;"))
	return 100, err
}

var _ ports.SequenceEncoder = (*SequenceEncoder)(nil)

// StillCodec is a mock implementation of ports.StillCodec.
type StillCodec struct {
	DecodeFunc func(data []byte, format ports.ImageFormat) (*image.RGBA, error)
	EncodeFunc func(w io.Writer, img image.Image, format ports.ImageFormat) error

	// Recorded calls for verification
	DecodeCalls []ports.ImageFormat
	EncodeCalls []ports.ImageFormat
}

func (m *StillCodec) Decode(data []byte, format ports.ImageFormat) (*image.RGBA, error) {
	m.DecodeCalls = append(m.DecodeCalls, format)
	if m.DecodeFunc != nil {
		return m.DecodeFunc(data, format)
	}
	return image.NewRGBA(image.Rect(0, 0, 8, 6)), nil
}

func (m *StillCodec) Encode(w io.Writer, img image.Image, format ports.ImageFormat) error {
	m.EncodeCalls = append(m.EncodeCalls, format)
	if m.EncodeFunc != nil {
		return m.EncodeFunc(w, img, format)
	}
	_, err := w.Write([]byte(format.String()))
	return err
}

var _ ports.StillCodec = (*StillCodec)(nil)
