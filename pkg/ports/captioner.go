package ports

import (
	"image"
	"strings"
)

// Position specifies where a caption is placed.
type Position int

const (
	PositionTop Position = iota
	PositionBottom
)

// Caption is a piece of text bound to a position.
type Caption struct {
	Text     string
	Position Position
}

// Blank reports whether the caption has nothing to draw.
func (c Caption) Blank() bool {
	return strings.TrimSpace(c.Text) == ""
}

// Captions holds the top and bottom text of a meme. Either may be empty.
type Captions struct {
	Top    string
	Bottom string
}

// List returns the captions in drawing order, blank ones excluded.
func (c Captions) List() []Caption {
	var out []Caption
	for _, caption := range []Caption{
		{Text: c.Top, Position: PositionTop},
		{Text: c.Bottom, Position: PositionBottom},
	} {
		if !caption.Blank() {
			out = append(out, caption)
		}
	}
	return out
}

// Captioner draws captions onto a raster frame.
type Captioner interface {
	// Render fits each non-blank caption to the frame and draws it in place.
	Render(dst *image.RGBA, captions Captions)
}
