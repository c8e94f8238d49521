package ports

import (
	"image"
)

// DebugSink abstracts debug output for intermediate results.
// It allows saving intermediate processing results for debugging purposes.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveRequestJSON saves the request description as JSON.
	SaveRequestJSON(data []byte) error

	// SaveSourceFrame saves a decoded frame before captions are drawn.
	SaveSourceFrame(index int, img image.Image) error

	// SaveCaptionedFrame saves a frame after captions are drawn.
	SaveCaptionedFrame(index int, img image.Image) error
}
