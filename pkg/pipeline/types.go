package pipeline

import (
	"io"

	"github.com/user/memegen/pkg/ports"
)

// =============================================================================
// Decode Stage Types
// =============================================================================

// DecodeInput contains the uploaded bytes and their resolved format.
type DecodeInput struct {
	Data   []byte
	Format ports.ImageFormat
}

// DecodeResult contains the frames to caption.
// A still image yields exactly one frame with zero delay.
type DecodeResult struct {
	Frames []ports.Frame
	Width  int
	Height int
}

// =============================================================================
// Caption Stage Types
// =============================================================================

// CaptionInput contains frames and the text to draw on each of them.
type CaptionInput struct {
	Frames   []ports.Frame
	Captions ports.Captions
}

// CaptionResult contains the captioned frames, in input order.
type CaptionResult struct {
	Frames []ports.Frame
}

// =============================================================================
// Encode Stage Types
// =============================================================================

// EncodeInput contains frames to write and the destination.
type EncodeInput struct {
	Frames []ports.Frame
	Format ports.ImageFormat
	Output io.Writer
}

// EncodeResult contains encoding statistics.
type EncodeResult struct {
	Bytes      int64 // Bytes written to Output
	Delay      int   // Delay applied to every frame; 0 for still images
	FrameCount int
}
