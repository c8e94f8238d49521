package gifcodec

import (
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"io"

	"golang.org/x/image/draw"

	"github.com/user/memegen/pkg/ports"
)

// Encoder implements ports.SequenceEncoder, writing frames as an infinitely
// looping GIF with a single delay.
type Encoder struct {
	palette color.Palette
}

// NewEncoder creates a new Encoder using the web-safe palette plus one
// transparent entry.
func NewEncoder() *Encoder {
	p := make(color.Palette, 0, len(palette.WebSafe)+1)
	p = append(p, color.Transparent)
	p = append(p, palette.WebSafe...)
	return &Encoder{palette: p}
}

// EncodeSequence writes frames to w in order. The delay of every output
// frame is NormalizeDelay of the first frame's delay; it is returned.
func (e *Encoder) EncodeSequence(w io.Writer, frames []ports.Frame) (int, error) {
	if len(frames) == 0 {
		return 0, fmt.Errorf("%w: no frames to encode", ports.ErrEncode)
	}

	delay := NormalizeDelay(frames[0].Delay)
	bounds := frames[0].Image.Bounds()

	out := &gif.GIF{
		Image:    make([]*image.Paletted, len(frames)),
		Delay:    make([]int, len(frames)),
		Disposal: make([]byte, len(frames)),
		Config: image.Config{
			Width:  bounds.Dx(),
			Height: bounds.Dy(),
		},
		LoopCount: 0, // loop forever
	}

	for i, f := range frames {
		out.Image[i] = e.quantize(f.Image)
		out.Delay[i] = delay
		// Each output frame is a full composite, so it replaces the
		// previous one instead of stacking on it.
		out.Disposal[i] = gif.DisposalBackground
	}

	if err := gif.EncodeAll(w, out); err != nil {
		return 0, fmt.Errorf("%w: %v", ports.ErrEncode, err)
	}
	return delay, nil
}

// quantize converts a frame to the encoder palette with Floyd-Steinberg
// error diffusion.
func (e *Encoder) quantize(src *image.RGBA) *image.Paletted {
	b := src.Bounds()
	dst := image.NewPaletted(b, e.palette)
	draw.FloydSteinberg.Draw(dst, b, src, b.Min)
	return dst
}
