// Package orchestrator dispatches a caption request through the pipeline
// stages.
package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/user/memegen/pkg/pipeline"
	"github.com/user/memegen/pkg/ports"
)

// Request is a single caption job.
type Request struct {
	Filename string         // Original file name; only the extension is used
	Data     []byte         // Uploaded image bytes
	Captions ports.Captions // Top and bottom text, either may be empty
	Output   io.Writer      // Destination of the encoded result
}

// Result describes the image written to Request.Output.
type Result struct {
	Format     ports.ImageFormat
	Filename   string // Name to deliver the result under, e.g. meme.gif
	FrameCount int
	Width      int
	Height     int
	Delay      int // Uniform frame delay of an animated result
	Bytes      int64
}

// requestInfo is the debug description of a request.
type requestInfo struct {
	Filename string `json:"filename"`
	Format   string `json:"format"`
	Size     int    `json:"size"`
	Top      string `json:"top"`
	Bottom   string `json:"bottom"`
}

// Orchestrator coordinates the execution of the decode, caption and encode
// stages. It holds no per-request state and may be shared between
// goroutines when its stages can.
type Orchestrator struct {
	decodeStage  pipeline.Stage[pipeline.DecodeInput, pipeline.DecodeResult]
	captionStage pipeline.Stage[pipeline.CaptionInput, pipeline.CaptionResult]
	encodeStage  pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult]
	sink         ports.DebugSink
	logger       ports.Logger
}

// New creates a new Orchestrator.
func New(
	decodeStage pipeline.Stage[pipeline.DecodeInput, pipeline.DecodeResult],
	captionStage pipeline.Stage[pipeline.CaptionInput, pipeline.CaptionResult],
	encodeStage pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult],
	sink ports.DebugSink,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		decodeStage:  decodeStage,
		captionStage: captionStage,
		encodeStage:  encodeStage,
		sink:         sink,
		logger:       logger,
	}
}

// Process resolves the request format and runs it through every stage.
// Any failure aborts the request; the caller decides what to do with
// whatever was already written to Output.
func (o *Orchestrator) Process(ctx context.Context, req Request) (Result, error) {
	format, err := ports.ResolveFormat(req.Filename)
	if err != nil {
		o.logger.Warn("Rejected %s: %v", req.Filename, err)
		return Result{}, err
	}

	o.logger.Info("Captioning %s as %s (%d bytes)", req.Filename, format, len(req.Data))

	if o.sink.Enabled() {
		info := requestInfo{
			Filename: req.Filename,
			Format:   format.String(),
			Size:     len(req.Data),
			Top:      req.Captions.Top,
			Bottom:   req.Captions.Bottom,
		}
		if data, err := json.MarshalIndent(info, "", "  "); err == nil {
			o.sink.SaveRequestJSON(data)
		}
	}

	// 1. Decode
	decoded, err := o.decodeStage.Execute(ctx, pipeline.DecodeInput{
		Data:   req.Data,
		Format: format,
	})
	if err != nil {
		o.logger.Error("Failed to decode %s: %v", req.Filename, err)
		return Result{}, fmt.Errorf("decode stage: %w", err)
	}
	o.logger.Info("Decoded %d frame(s) at %dx%d", len(decoded.Frames), decoded.Width, decoded.Height)

	// 2. Caption
	captioned, err := o.captionStage.Execute(ctx, pipeline.CaptionInput{
		Frames:   decoded.Frames,
		Captions: req.Captions,
	})
	if err != nil {
		o.logger.Error("Failed to draw captions: %v", err)
		return Result{}, fmt.Errorf("caption stage: %w", err)
	}

	// 3. Encode
	encoded, err := o.encodeStage.Execute(ctx, pipeline.EncodeInput{
		Frames: captioned.Frames,
		Format: format,
		Output: req.Output,
	})
	if err != nil {
		o.logger.Error("Failed to encode %s: %v", format, err)
		return Result{}, fmt.Errorf("encode stage: %w", err)
	}
	o.logger.Info("Encoded %s: %d bytes", format.OutputFilename(), encoded.Bytes)

	return Result{
		Format:     format,
		Filename:   format.OutputFilename(),
		FrameCount: encoded.FrameCount,
		Width:      decoded.Width,
		Height:     decoded.Height,
		Delay:      encoded.Delay,
		Bytes:      encoded.Bytes,
	}, nil
}
