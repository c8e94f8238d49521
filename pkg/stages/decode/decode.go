// Package decode implements the image decoding stage.
package decode

import (
	"context"
	"fmt"

	"github.com/user/memegen/pkg/pipeline"
	"github.com/user/memegen/pkg/ports"
)

// Stage turns uploaded bytes into frames, choosing the animated or still
// codec by format.
type Stage struct {
	frames ports.FrameDecoder
	still  ports.StillCodec
	sink   ports.DebugSink
	logger ports.Logger
}

// NewStage creates a new decode stage.
func NewStage(frames ports.FrameDecoder, still ports.StillCodec, sink ports.DebugSink, logger ports.Logger) *Stage {
	return &Stage{
		frames: frames,
		still:  still,
		sink:   sink,
		logger: logger.WithComponent("decode"),
	}
}

// Execute decodes the input into one or more frames.
func (s *Stage) Execute(ctx context.Context, input pipeline.DecodeInput) (pipeline.DecodeResult, error) {
	result := pipeline.DecodeResult{}

	if input.Format.Animated() {
		frames, err := s.frames.DecodeFrames(input.Data)
		if err != nil {
			return result, err
		}
		result.Frames = frames
	} else {
		img, err := s.still.Decode(input.Data, input.Format)
		if err != nil {
			return result, err
		}
		result.Frames = []ports.Frame{{Image: img, Bounds: img.Bounds()}}
	}

	if len(result.Frames) == 0 {
		return result, fmt.Errorf("%w: no frames", ports.ErrDecode)
	}

	bounds := result.Frames[0].Image.Bounds()
	result.Width = bounds.Dx()
	result.Height = bounds.Dy()

	s.logger.Debug("Decoded %d %s frame(s) at %dx%d", len(result.Frames), input.Format, result.Width, result.Height)

	if s.sink.Enabled() {
		for i, frame := range result.Frames {
			if err := s.sink.SaveSourceFrame(i, frame.Image); err != nil {
				s.logger.Warn("Failed to save source frame %d: %v", i, err)
			}
		}
	}

	return result, nil
}
