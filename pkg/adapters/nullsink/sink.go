// Package nullsink provides a no-op debug sink implementation.
package nullsink

import (
	"image"

	"github.com/user/memegen/pkg/ports"
)

// Sink is a no-op implementation of ports.DebugSink.
// It discards all debug output.
type Sink struct{}

// New creates a new NullSink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false as this sink discards all output.
func (s *Sink) Enabled() bool {
	return false
}

// SaveRequestJSON does nothing.
func (s *Sink) SaveRequestJSON(data []byte) error {
	return nil
}

// SaveSourceFrame does nothing.
func (s *Sink) SaveSourceFrame(index int, img image.Image) error {
	return nil
}

// SaveCaptionedFrame does nothing.
func (s *Sink) SaveCaptionedFrame(index int, img image.Image) error {
	return nil
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
