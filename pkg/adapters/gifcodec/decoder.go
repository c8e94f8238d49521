// Package gifcodec reconstructs and writes animated GIF streams.
package gifcodec

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"

	"golang.org/x/image/draw"

	"github.com/user/memegen/pkg/ports"
)

// Decoder implements ports.FrameDecoder for GIF streams.
//
// Frames are reconstructed the way a player shows them: every sub-image is
// drawn over a single canvas, the canvas is captured, then the frame's
// disposal prepares the canvas for the next sub-image.
type Decoder struct{}

// NewDecoder creates a new Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// DecodeFrames decodes every frame of a GIF stream into composited frames.
func (d *Decoder) DecodeFrames(data []byte) ([]ports.Frame, error) {
	g, err := gif.DecodeAll(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ports.ErrCorruptAnimation, err)
	}
	if len(g.Image) == 0 {
		return nil, fmt.Errorf("%w: no frames", ports.ErrCorruptAnimation)
	}

	controls, err := frameControls(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ports.ErrCorruptAnimation, err)
	}
	if len(controls) != len(g.Image) {
		return nil, fmt.Errorf("%w: found %d image descriptors for %d frames",
			ports.ErrCorruptAnimation, len(controls), len(g.Image))
	}
	for i, ok := range controls {
		if !ok {
			return nil, fmt.Errorf("%w: frame %d has no graphic control extension", ports.ErrCorruptAnimation, i)
		}
	}

	// gif.DecodeAll rejects sub-images that leave the logical screen, so a
	// zero screen can only hold empty frames and the first sub-image size
	// would be zero as well.
	width, height := g.Config.Width, g.Config.Height

	var canvas *image.RGBA
	frames := make([]ports.Frame, 0, len(g.Image))

	for i, sub := range g.Image {
		if canvas == nil {
			canvas = image.NewRGBA(image.Rect(0, 0, width, height))
		}

		// Paletted bounds already carry the image descriptor offset.
		rect := sub.Bounds()
		draw.Draw(canvas, rect, sub, rect.Min, draw.Over)

		frames = append(frames, ports.Frame{
			Image:    cloneRGBA(canvas),
			Delay:    g.Delay[i],
			Disposal: disposalFromGIF(g.Disposal[i]),
			Bounds:   rect,
		})

		applyDisposal(canvas, frames)
	}

	return frames, nil
}

// applyDisposal prepares canvas for the next sub-image according to the
// disposal of the last captured frame.
func applyDisposal(canvas *image.RGBA, frames []ports.Frame) {
	last := frames[len(frames)-1]

	switch last.Disposal {
	case ports.DisposalNone:
	case ports.DisposalBackground:
		draw.Draw(canvas, last.Bounds, image.Transparent, image.Point{}, draw.Src)
	case ports.DisposalPrevious:
		if restore := restorePoint(frames[:len(frames)-1]); restore != nil {
			copy(canvas.Pix, restore.Pix)
		} else {
			// Nothing earlier to return to: back to the blank canvas the
			// first sub-image was drawn on.
			clearCanvas(canvas)
		}
	}
}

// restorePoint returns the image of the nearest frame, searching backwards,
// whose disposal is not DisposalPrevious.
func restorePoint(frames []ports.Frame) *image.RGBA {
	for i := len(frames) - 1; i >= 0; i-- {
		if frames[i].Disposal != ports.DisposalPrevious {
			return frames[i].Image
		}
	}
	return nil
}

// disposalFromGIF maps the GIF disposal code. 0 (unspecified) and the
// reserved codes 4-7 behave like "do not dispose".
func disposalFromGIF(code byte) ports.Disposal {
	switch code {
	case gif.DisposalBackground:
		return ports.DisposalBackground
	case gif.DisposalPrevious:
		return ports.DisposalPrevious
	default:
		return ports.DisposalNone
	}
}

// cloneRGBA returns a deep copy of img.
func cloneRGBA(img *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(img.Bounds())
	copy(dst.Pix, img.Pix)
	return dst
}

// clearCanvas fills the entire canvas with transparent (0,0,0,0).
func clearCanvas(canvas *image.RGBA) {
	clear(canvas.Pix)
}
