package texture

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestDecodePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, solid(4, 2, color.RGBA{10, 20, 30, 255})); err != nil {
		t.Fatal(err)
	}

	img, format, err := Decode(&buf, 0)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if format != "png" {
		t.Errorf("expected png, got %s", format)
	}
	if img.Width != 4 || img.Height != 2 {
		t.Errorf("expected 4x2, got %dx%d", img.Width, img.Height)
	}
	if err := img.Validate(); err != nil {
		t.Errorf("decoded image invalid: %v", err)
	}
	if img.Pix[0] != 10 || img.Pix[1] != 20 || img.Pix[2] != 30 || img.Pix[3] != 255 {
		t.Errorf("unexpected first pixel %v", img.Pix[:4])
	}
}

func TestDecodeBMP(t *testing.T) {
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, solid(3, 3, color.RGBA{200, 100, 50, 255})); err != nil {
		t.Fatal(err)
	}

	img, format, err := Decode(&buf, 0)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if format != "bmp" {
		t.Errorf("expected bmp, got %s", format)
	}
	if img.Width != 3 || img.Height != 3 || len(img.Pix) != 36 {
		t.Errorf("unexpected image %dx%d (%d bytes)", img.Width, img.Height, len(img.Pix))
	}
}

func TestDecodeDownscales(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, solid(400, 100, color.RGBA{255, 255, 255, 255})); err != nil {
		t.Fatal(err)
	}

	img, _, err := Decode(&buf, 128)
	if err != nil {
		t.Fatal(err)
	}
	if img.Width != 128 || img.Height != 32 {
		t.Errorf("expected 128x32, got %dx%d", img.Width, img.Height)
	}
}

func TestDecodeGarbage(t *testing.T) {
	_, _, err := Decode(bytes.NewReader([]byte("not an image")), 0)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, image.ErrFormat) {
		t.Errorf("expected image.ErrFormat, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "well.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, solid(8, 8, color.RGBA{1, 2, 3, 255})); err != nil {
		t.Fatal(err)
	}
	f.Close()

	img, err := Load(path, DefaultMaxSize)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if img.Width != 8 || img.Height != 8 {
		t.Errorf("expected 8x8, got %dx%d", img.Width, img.Height)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.png"), 0); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFromRGBAStraightAlpha(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Pix = []uint8{50, 25, 0, 128}

	out := FromRGBA(img)
	if out.Pix[0] != 99 || out.Pix[1] != 49 || out.Pix[3] != 128 {
		t.Errorf("expected un-premultiplied pixel, got %v", out.Pix)
	}
}

func TestFromRGBASubImage(t *testing.T) {
	big := solid(10, 10, color.RGBA{9, 9, 9, 255})
	sub := big.SubImage(image.Rect(2, 2, 5, 4)).(*image.RGBA)

	out := FromRGBA(sub)
	if out.Width != 3 || out.Height != 2 || len(out.Pix) != 24 {
		t.Errorf("unexpected sub image %dx%d (%d bytes)", out.Width, out.Height, len(out.Pix))
	}
}

func TestDefaultSpiral(t *testing.T) {
	img := DefaultSpiral()
	if err := img.Validate(); err != nil {
		t.Fatal(err)
	}
	if img.Width != 64 || img.Height != 64 {
		t.Errorf("expected 64x64, got %dx%d", img.Width, img.Height)
	}

	corner := img.Pix[3]
	center := img.Pix[(32*64+32)*4+3]
	if corner != 0 {
		t.Errorf("corner should be transparent, alpha %d", corner)
	}
	if center == 0 {
		t.Error("center should be visible")
	}
}
