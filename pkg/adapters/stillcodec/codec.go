// Package stillcodec reads and writes single-frame PNG and JPEG images.
package stillcodec

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/user/memegen/pkg/ports"
)

// Codec implements ports.StillCodec.
type Codec struct{}

// New creates a new Codec.
func New() *Codec {
	return &Codec{}
}

// Decode decodes data into an RGBA image whose bounds start at the origin.
// The container is detected from the content, so a PNG named .jpg still
// decodes; format only has to name a still format. A GIF body yields its
// first frame.
func (c *Codec) Decode(data []byte, format ports.ImageFormat) (*image.RGBA, error) {
	if format.Animated() {
		return nil, fmt.Errorf("%w: %s is not a still format", ports.ErrDecode, format)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ports.ErrDecode, format, err)
	}

	return toRGBA(img), nil
}

// Encode writes img to w in the given format.
func (c *Codec) Encode(w io.Writer, img image.Image, format ports.ImageFormat) error {
	var err error
	switch format {
	case ports.FormatJPG, ports.FormatJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: jpeg.DefaultQuality})
	case ports.FormatPNG:
		err = png.Encode(w, img)
	default:
		return fmt.Errorf("%w: %s is not a still format", ports.ErrEncode, format)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ports.ErrEncode, format, err)
	}
	return nil
}

// toRGBA copies img into a new RGBA image with a zero origin.
func toRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// Ensure Codec implements ports.StillCodec
var _ ports.StillCodec = (*Codec)(nil)
