// Package summarizer provides summary reports for captioning results.
package summarizer

import "time"

// Summary contains everything known about one captioning run.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Input image
	Input InputInfo

	// Caption text
	Captions CaptionInfo

	// Output image
	Output OutputInfo
}

// InputInfo describes the source image.
type InputInfo struct {
	Path string
	Size int64
}

// CaptionInfo holds the requested captions.
type CaptionInfo struct {
	Top    string
	Bottom string
}

// OutputInfo describes the produced image.
type OutputInfo struct {
	Path       string
	Format     string
	FrameCount int
	Width      int
	Height     int
	Delay      int // Hundredths of a second, 0 for still images
	Size       int64
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithInput sets input information.
func (b *Builder) WithInput(path string, size int64) *Builder {
	b.summary.Input = InputInfo{Path: path, Size: size}
	return b
}

// WithCaptions sets the caption text.
func (b *Builder) WithCaptions(top, bottom string) *Builder {
	b.summary.Captions = CaptionInfo{Top: top, Bottom: bottom}
	return b
}

// WithOutput sets output information.
func (b *Builder) WithOutput(output OutputInfo) *Builder {
	b.summary.Output = output
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
