package gifcodec

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"testing"
)

var (
	transparent = color.RGBA{}
	red         = color.RGBA{R: 255, A: 255}
	green       = color.RGBA{G: 255, A: 255}
	blue        = color.RGBA{B: 255, A: 255}
	white       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// testPalette starts with a transparent entry so that image/gif writes a
// graphic control extension for every frame.
var testPalette = color.Palette{transparent, red, green, blue, white}

// opaquePalette has no transparent entry; with zero delay and disposal the
// encoder omits the graphic control extension.
var opaquePalette = color.Palette{red, green, blue, white}

type testFrame struct {
	rect     image.Rectangle
	color    color.Color
	delay    int
	disposal byte
	palette  color.Palette
}

func paletted(rect image.Rectangle, p color.Palette, c color.Color) *image.Paletted {
	img := image.NewPaletted(rect, p)
	idx := uint8(p.Index(c))
	for i := range img.Pix {
		img.Pix[i] = idx
	}
	return img
}

func encodeGIF(t *testing.T, width, height int, frames []testFrame) []byte {
	t.Helper()

	g := &gif.GIF{Config: image.Config{Width: width, Height: height}}
	for _, f := range frames {
		p := f.palette
		if p == nil {
			p = testPalette
		}
		g.Image = append(g.Image, paletted(f.rect, p, f.color))
		g.Delay = append(g.Delay, f.delay)
		g.Disposal = append(g.Disposal, f.disposal)
	}

	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, g); err != nil {
		t.Fatalf("failed to encode fixture: %v", err)
	}
	return buf.Bytes()
}

func assertPixel(t *testing.T, img *image.RGBA, x, y int, want color.RGBA) {
	t.Helper()
	if got := img.RGBAAt(x, y); got != want {
		t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
	}
}
