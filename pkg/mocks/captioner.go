package mocks

import (
	"image"
	"sync"

	"github.com/user/memegen/pkg/ports"
)

// Captioner is a mock implementation of ports.Captioner.
type Captioner struct {
	mu sync.Mutex

	RenderFunc func(dst *image.RGBA, captions ports.Captions)

	// Recorded calls for verification
	RenderCalls []RenderCall
}

// RenderCall records a call to Render.
type RenderCall struct {
	Image    *image.RGBA
	Captions ports.Captions
}

func (m *Captioner) Render(dst *image.RGBA, captions ports.Captions) {
	m.mu.Lock()
	m.RenderCalls = append(m.RenderCalls, RenderCall{Image: dst, Captions: captions})
	m.mu.Unlock()

	if m.RenderFunc != nil {
		m.RenderFunc(dst, captions)
	}
}

var _ ports.Captioner = (*Captioner)(nil)
