// Package encode implements the output encoding stage.
package encode

import (
	"context"
	"fmt"
	"io"

	"github.com/user/memegen/pkg/pipeline"
	"github.com/user/memegen/pkg/ports"
)

// Stage writes captioned frames in the requested format.
type Stage struct {
	sequence ports.SequenceEncoder
	still    ports.StillCodec
	logger   ports.Logger
}

// NewStage creates a new encode stage.
func NewStage(sequence ports.SequenceEncoder, still ports.StillCodec, logger ports.Logger) *Stage {
	return &Stage{
		sequence: sequence,
		still:    still,
		logger:   logger.WithComponent("encode"),
	}
}

// Execute encodes all frames to input.Output.
func (s *Stage) Execute(ctx context.Context, input pipeline.EncodeInput) (pipeline.EncodeResult, error) {
	result := pipeline.EncodeResult{}

	if len(input.Frames) == 0 {
		return result, fmt.Errorf("%w: no frames to encode", ports.ErrEncode)
	}

	w := &countingWriter{w: input.Output}

	if input.Format.Animated() {
		delay, err := s.sequence.EncodeSequence(w, input.Frames)
		if err != nil {
			return result, err
		}
		result.Delay = delay
		result.FrameCount = len(input.Frames)
	} else {
		if err := s.still.Encode(w, input.Frames[0].Image, input.Format); err != nil {
			return result, err
		}
		result.FrameCount = 1
	}

	result.Bytes = w.n
	s.logger.Debug("Encoded %d frame(s) as %s: %d bytes", result.FrameCount, input.Format, result.Bytes)

	return result, nil
}

// countingWriter counts the bytes passed through to w.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
