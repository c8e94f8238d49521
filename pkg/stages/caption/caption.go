// Package caption implements the caption drawing stage.
package caption

import (
	"context"

	"github.com/user/memegen/pkg/pipeline"
	"github.com/user/memegen/pkg/ports"
)

// Stage draws the same captions onto every frame, one frame at a time.
type Stage struct {
	captioner ports.Captioner
	sink      ports.DebugSink
	logger    ports.Logger
}

// NewStage creates a new caption stage.
func NewStage(captioner ports.Captioner, sink ports.DebugSink, logger ports.Logger) *Stage {
	return &Stage{
		captioner: captioner,
		sink:      sink,
		logger:    logger.WithComponent("caption"),
	}
}

// Execute draws the captions in place and returns the same frames.
func (s *Stage) Execute(ctx context.Context, input pipeline.CaptionInput) (pipeline.CaptionResult, error) {
	if len(input.Captions.List()) == 0 {
		s.logger.Debug("No captions to draw")
		return pipeline.CaptionResult{Frames: input.Frames}, nil
	}

	s.logger.Debug("Captioning %d frames", len(input.Frames))

	for i, frame := range input.Frames {
		s.captioner.Render(frame.Image, input.Captions)

		if s.sink.Enabled() {
			if err := s.sink.SaveCaptionedFrame(i, frame.Image); err != nil {
				s.logger.Warn("Failed to save captioned frame %d: %v", i, err)
			}
		}
	}

	return pipeline.CaptionResult{Frames: input.Frames}, nil
}
