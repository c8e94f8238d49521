// Package ggcaptioner draws meme captions using the gg library.
package ggcaptioner

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/math/fixed"

	"github.com/user/memegen/pkg/ports"
)

// DefaultFontSize is the size captions are drawn at when they fit the frame.
const DefaultFontSize = 40.0

// Placement describes where a caption is drawn.
// X and Y are the origin of the text baseline.
type Placement struct {
	Size    float64
	X       float64
	Y       float64
	Width   float64 // Advance width at Size
	Ascent  float64
	Descent float64
}

// LineHeight returns the height of the caption band.
func (p Placement) LineHeight() float64 {
	return p.Ascent + p.Descent
}

// Engine implements ports.Captioner with an embedded bold font.
// The parsed font is shared read-only; faces are created per call, so an
// Engine can be used from several goroutines.
type Engine struct {
	font  *truetype.Font
	color color.Color
}

// New creates a new Engine using Go Bold.
func New() (*Engine, error) {
	f, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Engine{font: f, color: color.White}, nil
}

// Render draws every non-blank caption onto dst.
func (e *Engine) Render(dst *image.RGBA, captions ports.Captions) {
	list := captions.List()
	if len(list) == 0 {
		return
	}

	b := dst.Bounds()
	dc := gg.NewContextForRGBA(dst)
	dc.SetColor(e.color)

	for _, caption := range list {
		p := e.Layout(caption.Text, caption.Position, b.Dx(), b.Dy())
		face := e.face(p.Size)
		dc.SetFontFace(face)
		dc.DrawString(caption.Text, p.X, p.Y)
		face.Close()
	}
}

// FontSize returns the size text is drawn at on a width x height frame.
// Text whose ink box fits at DefaultFontSize keeps it; otherwise the size
// is scaled by the tighter of the two dimensions.
func (e *Engine) FontSize(text string, width, height int) float64 {
	expectedW, expectedH := e.InkBounds(text, DefaultFontSize)
	w, h := float64(width), float64(height)

	if w >= expectedW && h >= expectedH {
		return DefaultFontSize
	}
	return math.Min(DefaultFontSize*w/expectedW, DefaultFontSize*h/expectedH)
}

// Layout computes the placement of text at pos on a width x height frame.
func (e *Engine) Layout(text string, pos ports.Position, width, height int) Placement {
	size := e.FontSize(text, width, height)

	face := e.face(size)
	defer face.Close()

	metrics := face.Metrics()
	p := Placement{
		Size:    size,
		Width:   toFloat(font.MeasureString(face, text)),
		Ascent:  toFloat(metrics.Ascent),
		Descent: toFloat(metrics.Descent),
	}

	p.X = (float64(width) - p.Width) / 2
	switch pos {
	case ports.PositionBottom:
		p.Y = float64(height) - p.LineHeight() + p.Ascent
	default:
		p.Y = p.Ascent
	}
	return p
}

// InkBounds returns the size of the glyph outline bounding box of text.
func (e *Engine) InkBounds(text string, size float64) (w, h float64) {
	face := e.face(size)
	defer face.Close()

	bounds, _ := font.BoundString(face, text)
	return toFloat(bounds.Max.X - bounds.Min.X), toFloat(bounds.Max.Y - bounds.Min.Y)
}

func (e *Engine) face(size float64) font.Face {
	return truetype.NewFace(e.font, &truetype.Options{Size: size})
}

func toFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// Ensure Engine implements ports.Captioner
var _ ports.Captioner = (*Engine)(nil)
