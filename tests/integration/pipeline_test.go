// Package integration contains integration tests for the memegen pipeline.
package integration

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/user/memegen/pkg/adapters/filesink"
	"github.com/user/memegen/pkg/adapters/ggcaptioner"
	"github.com/user/memegen/pkg/adapters/gifcodec"
	"github.com/user/memegen/pkg/adapters/logger"
	"github.com/user/memegen/pkg/adapters/nullsink"
	"github.com/user/memegen/pkg/adapters/osfilesystem"
	"github.com/user/memegen/pkg/adapters/stillcodec"
	"github.com/user/memegen/pkg/orchestrator"
	"github.com/user/memegen/pkg/ports"
	"github.com/user/memegen/pkg/stages/caption"
	"github.com/user/memegen/pkg/stages/decode"
	"github.com/user/memegen/pkg/stages/encode"
)

// newOrchestrator assembles the pipeline by hand so the sink can be chosen
// per test.
func newOrchestrator(t *testing.T, sink ports.DebugSink) *orchestrator.Orchestrator {
	t.Helper()

	captioner, err := ggcaptioner.New()
	if err != nil {
		t.Fatalf("ggcaptioner.New failed: %v", err)
	}
	still := stillcodec.New()
	log := logger.NewNoop()

	return orchestrator.New(
		decode.NewStage(gifcodec.NewDecoder(), still, sink, log),
		caption.NewStage(captioner, sink, log),
		encode.NewStage(gifcodec.NewEncoder(), still, log),
		sink,
		log,
	)
}

func opaqueImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode failed: %v", err)
	}
	return buf.Bytes()
}

// threeFrameGIF builds a 30x20 animation with delays [0,45,10] and
// disposals [none, background, none].
func threeFrameGIF(t *testing.T) []byte {
	t.Helper()

	p := color.Palette{color.RGBA{}, color.RGBA{R: 255, A: 255}, color.RGBA{B: 255, A: 255}}
	fill := func(r image.Rectangle, idx uint8) *image.Paletted {
		img := image.NewPaletted(r, p)
		for i := range img.Pix {
			img.Pix[i] = idx
		}
		return img
	}

	g := &gif.GIF{
		Image: []*image.Paletted{
			fill(image.Rect(0, 0, 30, 20), 1),
			fill(image.Rect(5, 5, 15, 15), 2),
			fill(image.Rect(20, 0, 30, 10), 2),
		},
		Delay:    []int{0, 45, 10},
		Disposal: []byte{gif.DisposalNone, gif.DisposalBackground, gif.DisposalNone},
		Config:   image.Config{Width: 30, Height: 20},
	}

	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, g); err != nil {
		t.Fatalf("gif.EncodeAll failed: %v", err)
	}
	return buf.Bytes()
}

// changedRows returns the first and last row where a and b differ.
func changedRows(a, b image.Image) (first, last int) {
	first, last = -1, -1
	bounds := a.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if color.RGBAModel.Convert(a.At(x, y)) != color.RGBAModel.Convert(b.At(x, y)) {
				if first < 0 {
					first = y
				}
				last = y
				break
			}
		}
	}
	return first, last
}

func TestStillTopCaptionBand(t *testing.T) {
	captioner, err := ggcaptioner.New()
	if err != nil {
		t.Fatalf("ggcaptioner.New failed: %v", err)
	}

	tests := []struct {
		name          string
		width, height int
	}{
		{"100x50", 100, 50},
		{"100x100", 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := opaqueImage(tt.width, tt.height, color.RGBA{R: 40, G: 90, B: 160, A: 255})

			var out bytes.Buffer
			result, err := newOrchestrator(t, nullsink.New()).Process(context.Background(), orchestrator.Request{
				Filename: "photo.png",
				Data:     encodePNG(t, src),
				Captions: ports.Captions{Top: "HELLO"},
				Output:   &out,
			})
			if err != nil {
				t.Fatalf("Process failed: %v", err)
			}

			if result.Format != ports.FormatPNG || result.Filename != "meme.png" {
				t.Errorf("expected meme.png, got %s (%s)", result.Filename, result.Format)
			}

			decoded, err := png.Decode(&out)
			if err != nil {
				t.Fatalf("output is not a PNG: %v", err)
			}
			if decoded.Bounds() != src.Bounds() {
				t.Fatalf("expected %v, got %v", src.Bounds(), decoded.Bounds())
			}

			first, last := changedRows(src, decoded)
			if first < 0 {
				t.Fatal("expected the caption to change pixels")
			}

			p := captioner.Layout("HELLO", ports.PositionTop, tt.width, tt.height)
			if limit := int(math.Ceil(p.LineHeight())); last > limit {
				t.Errorf("expected changes within the top band [0,%d], got last row %d", limit, last)
			}
			if tt.height >= 100 && last >= tt.height/2 {
				t.Errorf("expected changes in the top half, got last row %d", last)
			}
		})
	}
}

func TestStillKeepsFormat(t *testing.T) {
	src := opaqueImage(64, 48, color.RGBA{R: 200, G: 200, B: 200, A: 255})
	var in bytes.Buffer
	if err := jpeg.Encode(&in, src, nil); err != nil {
		t.Fatalf("jpeg.Encode failed: %v", err)
	}

	for _, name := range []string{"pic.jpg", "pic.JPEG"} {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			result, err := newOrchestrator(t, nullsink.New()).Process(context.Background(), orchestrator.Request{
				Filename: name,
				Data:     in.Bytes(),
				Captions: ports.Captions{Bottom: "BOTTOM TEXT"},
				Output:   &out,
			})
			if err != nil {
				t.Fatalf("Process failed: %v", err)
			}

			cfg, format, err := image.DecodeConfig(&out)
			if err != nil {
				t.Fatalf("output does not decode: %v", err)
			}
			if format != "jpeg" {
				t.Errorf("expected jpeg output, got %s", format)
			}
			if cfg.Width != 64 || cfg.Height != 48 {
				t.Errorf("expected 64x48, got %dx%d", cfg.Width, cfg.Height)
			}
			if result.FrameCount != 1 || result.Delay != 0 {
				t.Errorf("unexpected result %+v", result)
			}
		})
	}
}

func TestStillMisnamedContent(t *testing.T) {
	var gifData bytes.Buffer
	if err := gif.Encode(&gifData, opaqueImage(10, 10, color.RGBA{R: 255, A: 255}), nil); err != nil {
		t.Fatalf("gif.Encode failed: %v", err)
	}

	tests := []struct {
		filename string
		data     []byte
		output   string
		width    int
		height   int
	}{
		{"photo.jpg", encodePNG(t, opaqueImage(100, 50, color.RGBA{B: 120, A: 255})), "jpeg", 100, 50},
		{"x.png", gifData.Bytes(), "png", 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			var out bytes.Buffer
			result, err := newOrchestrator(t, nullsink.New()).Process(context.Background(), orchestrator.Request{
				Filename: tt.filename,
				Data:     tt.data,
				Captions: ports.Captions{Top: "HI"},
				Output:   &out,
			})
			if err != nil {
				t.Fatalf("Process failed: %v", err)
			}

			cfg, format, err := image.DecodeConfig(&out)
			if err != nil {
				t.Fatalf("output does not decode: %v", err)
			}
			if format != tt.output {
				t.Errorf("expected %s output, got %s", tt.output, format)
			}
			if cfg.Width != tt.width || cfg.Height != tt.height {
				t.Errorf("expected %dx%d, got %dx%d", tt.width, tt.height, cfg.Width, cfg.Height)
			}
			if result.FrameCount != 1 {
				t.Errorf("expected one frame, got %d", result.FrameCount)
			}
		})
	}
}

func TestAnimatedUniformDelay(t *testing.T) {
	var out bytes.Buffer
	result, err := newOrchestrator(t, nullsink.New()).Process(context.Background(), orchestrator.Request{
		Filename: "dance.gif",
		Data:     threeFrameGIF(t),
		Captions: ports.Captions{Top: "ME", Bottom: "ALSO ME"},
		Output:   &out,
	})
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	if result.Filename != "meme.gif" || result.FrameCount != 3 || result.Delay != 100 {
		t.Errorf("unexpected result %+v", result)
	}
	if result.Bytes != int64(out.Len()) {
		t.Errorf("expected %d bytes, got %d", out.Len(), result.Bytes)
	}

	g, err := gif.DecodeAll(&out)
	if err != nil {
		t.Fatalf("output is not a GIF: %v", err)
	}
	if len(g.Image) != 3 {
		t.Fatalf("expected 3 frames, got %d", len(g.Image))
	}
	for i, d := range g.Delay {
		if d != 100 {
			t.Errorf("frame %d: expected delay 100, got %d", i, d)
		}
	}
	if g.LoopCount != 0 {
		t.Errorf("expected infinite looping, got LoopCount %d", g.LoopCount)
	}
	if g.Config.Width != 30 || g.Config.Height != 20 {
		t.Errorf("expected 30x20, got %dx%d", g.Config.Width, g.Config.Height)
	}
}

func TestAnimatedRoundTrip(t *testing.T) {
	orch := newOrchestrator(t, nullsink.New())

	var first bytes.Buffer
	if _, err := orch.Process(context.Background(), orchestrator.Request{
		Filename: "a.gif",
		Data:     threeFrameGIF(t),
		Output:   &first,
	}); err != nil {
		t.Fatalf("first Process failed: %v", err)
	}

	var second bytes.Buffer
	result, err := orch.Process(context.Background(), orchestrator.Request{
		Filename: "b.gif",
		Data:     first.Bytes(),
		Output:   &second,
	})
	if err != nil {
		t.Fatalf("second Process failed: %v", err)
	}
	if result.FrameCount != 3 || result.Delay != 100 {
		t.Errorf("expected 3 frames at delay 100, got %+v", result)
	}
}

func TestErrors(t *testing.T) {
	orch := newOrchestrator(t, nullsink.New())

	tests := []struct {
		name     string
		filename string
		data     []byte
		want     error
	}{
		{"unsupported extension", "clip.webp", []byte("RIFF"), ports.ErrUnsupportedFormat},
		{"missing extension", "clip", []byte("GIF89a"), ports.ErrUnsupportedFormat},
		{"corrupt gif", "broken.gif", []byte("GIF89a\x01\x00"), ports.ErrCorruptAnimation},
		{"corrupt png", "broken.png", []byte("not a png"), ports.ErrDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			_, err := orch.Process(context.Background(), orchestrator.Request{
				Filename: tt.filename,
				Data:     tt.data,
				Captions: ports.Captions{Top: "X"},
				Output:   &out,
			})
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
			if out.Len() != 0 {
				t.Errorf("expected no output, got %d bytes", out.Len())
			}
		})
	}
}

func TestConcurrentRequests(t *testing.T) {
	orch := newOrchestrator(t, nullsink.New())
	data := threeFrameGIF(t)

	const n = 6
	outputs := make([][]byte, n)
	errs := make([]error, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var out bytes.Buffer
			_, errs[i] = orch.Process(context.Background(), orchestrator.Request{
				Filename: fmt.Sprintf("req-%d.gif", i),
				Data:     data,
				Captions: ports.Captions{Top: "SAME", Bottom: "TEXT"},
				Output:   &out,
			})
			outputs[i] = out.Bytes()
		}(i)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		if errs[i] != nil {
			t.Fatalf("request %d failed: %v", i, errs[i])
		}
		if !bytes.Equal(outputs[0], outputs[i]) {
			t.Errorf("request %d produced different output", i)
		}
	}
}

func TestOrchestratorWithDebugSink(t *testing.T) {
	tmpDir := t.TempDir()
	sink := filesink.New(tmpDir, osfilesystem.New(), stillcodec.New())

	var out bytes.Buffer
	if _, err := newOrchestrator(t, sink).Process(context.Background(), orchestrator.Request{
		Filename: "debug.gif",
		Data:     threeFrameGIF(t),
		Captions: ports.Captions{Top: "DEBUG"},
		Output:   &out,
	}); err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	expected := []string{
		"request.json",
		filepath.Join("frames", "source", "frame-0000.png"),
		filepath.Join("frames", "source", "frame-0002.png"),
		filepath.Join("frames", "captioned", "frame-0000.png"),
		filepath.Join("frames", "captioned", "frame-0002.png"),
	}
	for _, name := range expected {
		if _, err := os.Stat(filepath.Join(tmpDir, name)); err != nil {
			t.Errorf("expected %s in debug output: %v", name, err)
		}
	}
}
