package ports

import (
	"errors"
	"testing"
)

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		filename string
		want     ImageFormat
	}{
		{"cat.gif", FormatGIF},
		{"cat.GIF", FormatGIF},
		{"photo.jpg", FormatJPG},
		{"photo.JpEg", FormatJPEG},
		{"shot.png", FormatPNG},
		{"archive.tar.png", FormatPNG},
		{".png", FormatPNG},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			got, err := ResolveFormat(tt.filename)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestResolveFormat_Unsupported(t *testing.T) {
	names := []string{"", "noextension", "image.bmp", "image.png.txt", "image.", "gif"}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			_, err := ResolveFormat(name)
			if !errors.Is(err, ErrUnsupportedFormat) {
				t.Errorf("expected ErrUnsupportedFormat, got %v", err)
			}
		})
	}
}

func TestImageFormat_Properties(t *testing.T) {
	if !FormatGIF.Animated() {
		t.Error("expected GIF to be animated")
	}
	for _, f := range []ImageFormat{FormatJPG, FormatPNG, FormatJPEG} {
		if f.Animated() {
			t.Errorf("expected %v to be static", f)
		}
	}

	if got := FormatJPEG.OutputFilename(); got != "meme.jpeg" {
		t.Errorf("expected meme.jpeg, got %s", got)
	}
	if got := FormatGIF.String(); got != "gif" {
		t.Errorf("expected gif, got %s", got)
	}
}

func TestCaptions_List(t *testing.T) {
	tests := []struct {
		name     string
		captions Captions
		want     []Caption
	}{
		{"both", Captions{Top: "a", Bottom: "b"}, []Caption{{"a", PositionTop}, {"b", PositionBottom}}},
		{"top only", Captions{Top: "a"}, []Caption{{"a", PositionTop}}},
		{"blank bottom", Captions{Top: "a", Bottom: " \t\n"}, []Caption{{"a", PositionTop}}},
		{"none", Captions{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.captions.List()
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d captions, got %d", len(tt.want), len(got))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("caption %d: expected %+v, got %+v", i, tt.want[i], got[i])
				}
			}
		})
	}
}
