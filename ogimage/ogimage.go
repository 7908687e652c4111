// Package ogimage prepares OpenGraph card images: it crops uploads to the
// 1.91:1 card ratio and scales them to 1200x630.
package ogimage

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/draw"

	"github.com/eringen/headmeta"
)

const (
	Width       = headmeta.DefaultImageWidth
	Height      = headmeta.DefaultImageHeight
	jpegQuality = 85
)

// Image describes a processed card image.
type Image struct {
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	Size         int    `json:"size"`
	UploadedAt   string `json:"uploadedAt"`
}

// Process decodes a JPEG, PNG or GIF from src, center-crops it to the card
// ratio, scales it to Width x Height and encodes it as JPEG.
func Process(src io.Reader, originalName string) (Image, []byte, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return Image{}, nil, fmt.Errorf("decode image: %w", err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, Width, Height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, CropRect(img.Bounds()), draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return Image{}, nil, fmt.Errorf("encode jpeg: %w", err)
	}

	return Image{
		Filename:     Filename(originalName),
		OriginalName: originalName,
		Width:        Width,
		Height:       Height,
		Size:         buf.Len(),
		UploadedAt:   time.Now().UTC().Format(time.RFC3339),
	}, buf.Bytes(), nil
}

// CropRect returns the largest centered rectangle inside b with the card
// aspect ratio.
func CropRect(b image.Rectangle) image.Rectangle {
	w, h := b.Dx(), b.Dy()
	// Compare w/h with Width/Height without floating point.
	if w*Height > h*Width {
		cw := h * Width / Height
		x0 := b.Min.X + (w-cw)/2
		return image.Rect(x0, b.Min.Y, x0+cw, b.Max.Y)
	}
	ch := w * Height / Width
	y0 := b.Min.Y + (h-ch)/2
	return image.Rect(b.Min.X, y0, b.Max.X, y0+ch)
}

// Filename converts an upload name to a slugged .jpg filename.
func Filename(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	slug := headmeta.Slugify(base)
	if slug == "" {
		slug = "image"
	}
	return slug + ".jpg"
}
