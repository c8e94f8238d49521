package filesink

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"testing"

	"github.com/user/memegen/pkg/adapters/stillcodec"
	"github.com/user/memegen/pkg/mocks"
	"github.com/user/memegen/pkg/ports"
)

// testBaseDir is a platform-independent base directory for tests
var testBaseDir = filepath.Join("debug")

func TestSink_Enabled(t *testing.T) {
	sink := New(testBaseDir, mocks.NewFileSystem(), stillcodec.New())

	if !sink.Enabled() {
		t.Error("expected Enabled to return true")
	}
}

func TestSink_SaveRequestJSON(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs, stillcodec.New())

	data := []byte(`{"filename": "cat.gif"}`)
	if err := sink.SaveRequestJSON(data); err != nil {
		t.Fatalf("SaveRequestJSON failed: %v", err)
	}

	expectedPath := filepath.Join(testBaseDir, "request.json")
	saved, ok := fs.GetFile(expectedPath)
	if !ok {
		t.Fatalf("expected file to be saved at %s", expectedPath)
	}
	if string(saved) != string(data) {
		t.Errorf("expected %q, got %q", data, saved)
	}
}

func TestSink_SaveFrames(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs, stillcodec.New())
	img := image.NewRGBA(image.Rect(0, 0, 7, 5))

	if err := sink.SaveSourceFrame(3, img); err != nil {
		t.Fatalf("SaveSourceFrame failed: %v", err)
	}
	if err := sink.SaveCaptionedFrame(12, img); err != nil {
		t.Fatalf("SaveCaptionedFrame failed: %v", err)
	}

	for _, path := range []string{
		filepath.Join(testBaseDir, "frames", "source", "frame-0003.png"),
		filepath.Join(testBaseDir, "frames", "captioned", "frame-0012.png"),
	} {
		saved, ok := fs.GetFile(path)
		if !ok {
			t.Errorf("expected file to be saved at %s", path)
			continue
		}
		decoded, err := png.Decode(bytes.NewReader(saved))
		if err != nil {
			t.Errorf("%s is not a PNG: %v", path, err)
			continue
		}
		if decoded.Bounds().Dx() != 7 || decoded.Bounds().Dy() != 5 {
			t.Errorf("%s: expected 7x5, got %v", path, decoded.Bounds())
		}
	}
}

func TestSink_SaveFrameEncodeError(t *testing.T) {
	fs := mocks.NewFileSystem()
	codec := &mocks.StillCodec{
		EncodeFunc: func(w io.Writer, img image.Image, format ports.ImageFormat) error {
			return ports.ErrEncode
		},
	}
	sink := New(testBaseDir, fs, codec)

	err := sink.SaveSourceFrame(0, image.NewRGBA(image.Rect(0, 0, 1, 1)))
	if !errors.Is(err, ports.ErrEncode) {
		t.Errorf("expected ErrEncode, got %v", err)
	}
	if len(fs.GetAllFiles()) != 0 {
		t.Error("expected nothing to be written")
	}
}
