package mocks

import (
	"image"
	"sync"

	"github.com/user/memegen/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	mu sync.RWMutex

	enabled bool

	RequestJSON     []byte
	SourceFrames    map[int]image.Image
	CaptionedFrames map[int]image.Image
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{
		enabled:         enabled,
		SourceFrames:    make(map[int]image.Image),
		CaptionedFrames: make(map[int]image.Image),
	}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveRequestJSON(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RequestJSON = data
	return nil
}

func (m *DebugSink) SaveSourceFrame(index int, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SourceFrames[index] = img
	return nil
}

func (m *DebugSink) SaveCaptionedFrame(index int, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CaptionedFrames[index] = img
	return nil
}

var _ ports.DebugSink = (*DebugSink)(nil)
