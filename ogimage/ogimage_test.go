package ogimage

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"
)

func encodePNG(t *testing.T, w, h int) *bytes.Buffer {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return &buf
}

func TestProcessProducesCardSize(t *testing.T) {
	for _, size := range [][2]int{{2400, 1260}, {300, 300}, {100, 600}} {
		meta, data, err := Process(encodePNG(t, size[0], size[1]), "My Cover.PNG")
		if err != nil {
			t.Fatalf("Process(%v) failed: %v", size, err)
		}
		out, err := jpeg.Decode(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("decode output: %v", err)
		}
		if b := out.Bounds(); b.Dx() != Width || b.Dy() != Height {
			t.Errorf("output bounds = %v, want %dx%d", b, Width, Height)
		}
		if meta.Filename != "my-cover.jpg" {
			t.Errorf("Filename = %q, want %q", meta.Filename, "my-cover.jpg")
		}
		if meta.OriginalName != "My Cover.PNG" {
			t.Errorf("OriginalName = %q", meta.OriginalName)
		}
		if meta.Size != len(data) {
			t.Errorf("Size = %d, want %d", meta.Size, len(data))
		}
	}
}

func TestProcessRejectsNonImage(t *testing.T) {
	_, _, err := Process(strings.NewReader("not an image"), "x.png")
	if err == nil {
		t.Fatal("expected error for non-image input")
	}
}

func TestCropRect(t *testing.T) {
	tests := []struct {
		in   image.Rectangle
		want image.Rectangle
	}{
		{image.Rect(0, 0, 1200, 630), image.Rect(0, 0, 1200, 630)},
		{image.Rect(0, 0, 2000, 630), image.Rect(400, 0, 1600, 630)},
		{image.Rect(0, 0, 1200, 1000), image.Rect(0, 185, 1200, 815)},
	}
	for _, tt := range tests {
		if got := CropRect(tt.in); got != tt.want {
			t.Errorf("CropRect(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFilename(t *testing.T) {
	if got := Filename("!!!.gif"); got != "image.jpg" {
		t.Errorf("Filename = %q, want image.jpg", got)
	}
}
