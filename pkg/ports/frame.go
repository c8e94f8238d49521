package ports

import "image"

// Disposal tells how the canvas is prepared for the next frame once the
// current one has been captured.
type Disposal int

const (
	// DisposalNone leaves the canvas as it is.
	DisposalNone Disposal = iota
	// DisposalBackground clears the frame rectangle to transparent.
	DisposalBackground
	// DisposalPrevious restores the canvas to the last frame that was not
	// itself marked DisposalPrevious.
	DisposalPrevious
)

// String returns the string representation of the disposal.
func (d Disposal) String() string {
	switch d {
	case DisposalNone:
		return "none"
	case DisposalBackground:
		return "background"
	case DisposalPrevious:
		return "previous"
	default:
		return "unknown"
	}
}

// Frame is a fully composited animation frame.
type Frame struct {
	Image    *image.RGBA     // Owned copy, never shared with the decoder canvas
	Delay    int             // Display delay in hundredths of a second, as stored
	Disposal Disposal        // Disposal read from the source frame
	Bounds   image.Rectangle // Rectangle of the source sub-image on the canvas
}
