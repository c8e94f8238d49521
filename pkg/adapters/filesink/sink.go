// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"bytes"
	"fmt"
	"image"
	"path/filepath"

	"github.com/user/memegen/pkg/ports"
)

// Sink saves debug output to files under a base directory:
//
//	request.json
//	frames/source/frame-0000.png
//	frames/captioned/frame-0000.png
type Sink struct {
	baseDir string
	fs      ports.FileSystem
	codec   ports.StillCodec
}

// New creates a new FileSink. Frames are written as PNG through codec.
func New(baseDir string, fs ports.FileSystem, codec ports.StillCodec) *Sink {
	return &Sink{
		baseDir: baseDir,
		fs:      fs,
		codec:   codec,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveRequestJSON saves the request description as JSON.
func (s *Sink) SaveRequestJSON(data []byte) error {
	path := filepath.Join(s.baseDir, "request.json")
	return s.fs.WriteFile(path, data)
}

// SaveSourceFrame saves a decoded frame.
func (s *Sink) SaveSourceFrame(index int, img image.Image) error {
	return s.saveFrame("source", index, img)
}

// SaveCaptionedFrame saves a frame after captions were drawn.
func (s *Sink) SaveCaptionedFrame(index int, img image.Image) error {
	return s.saveFrame("captioned", index, img)
}

func (s *Sink) saveFrame(kind string, index int, img image.Image) error {
	dir := filepath.Join(s.baseDir, "frames", kind)
	if err := s.fs.MkdirAll(dir); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := s.codec.Encode(&buf, img, ports.FormatPNG); err != nil {
		return fmt.Errorf("encode %s frame: %w", kind, err)
	}

	path := filepath.Join(dir, fmt.Sprintf("frame-%04d.png", index))
	return s.fs.WriteFile(path, buf.Bytes())
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
