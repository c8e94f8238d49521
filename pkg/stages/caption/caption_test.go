package caption

import (
	"context"
	"image"
	"testing"

	"github.com/user/memegen/pkg/adapters/logger"
	"github.com/user/memegen/pkg/mocks"
	"github.com/user/memegen/pkg/pipeline"
	"github.com/user/memegen/pkg/ports"
)

func testFrames(n int) []ports.Frame {
	frames := make([]ports.Frame, n)
	for i := range frames {
		frames[i] = ports.Frame{Image: image.NewRGBA(image.Rect(0, 0, 10, 10)), Delay: i}
	}
	return frames
}

func TestStage_Execute(t *testing.T) {
	captioner := &mocks.Captioner{}
	sink := mocks.NewDebugSink(true)
	stage := NewStage(captioner, sink, logger.NewNoop())

	frames := testFrames(3)
	captions := ports.Captions{Top: "TOP", Bottom: "BOTTOM"}

	result, err := stage.Execute(context.Background(), pipeline.CaptionInput{
		Frames:   frames,
		Captions: captions,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(captioner.RenderCalls) != 3 {
		t.Fatalf("expected 3 Render calls, got %d", len(captioner.RenderCalls))
	}
	for i, call := range captioner.RenderCalls {
		if call.Image != frames[i].Image {
			t.Errorf("call %d: expected frame %d to be captioned in order", i, i)
		}
		if call.Captions != captions {
			t.Errorf("call %d: expected captions %+v, got %+v", i, captions, call.Captions)
		}
	}

	if len(result.Frames) != 3 {
		t.Fatalf("expected 3 frames, got %d", len(result.Frames))
	}
	for i, f := range result.Frames {
		if f.Delay != i {
			t.Errorf("frame %d: expected delay %d to be kept, got %d", i, i, f.Delay)
		}
	}

	if len(sink.CaptionedFrames) != 3 {
		t.Errorf("expected 3 captioned frames saved, got %d", len(sink.CaptionedFrames))
	}
}

func TestStage_Execute_BlankCaptionsSkipRender(t *testing.T) {
	captioner := &mocks.Captioner{}
	stage := NewStage(captioner, mocks.NewDebugSink(false), logger.NewNoop())

	result, err := stage.Execute(context.Background(), pipeline.CaptionInput{
		Frames:   testFrames(2),
		Captions: ports.Captions{Top: "  ", Bottom: ""},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(captioner.RenderCalls) != 0 {
		t.Errorf("expected no Render calls, got %d", len(captioner.RenderCalls))
	}
	if len(result.Frames) != 2 {
		t.Errorf("expected frames to pass through, got %d", len(result.Frames))
	}
}
