// Package texture decodes images into the RGBA layout the renderer uploads,
// and generates the built-in spiral used for wells when no image is given.
package texture

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"

	"github.com/san-kum/gravwell/internal/render"
)

// DefaultMaxSize bounds the longest edge of a loaded texture.
const DefaultMaxSize = 512

var ErrEmptyImage = errors.New("texture: empty image")

// Decode reads a PNG, JPEG, GIF or BMP image and converts it to tightly
// packed RGBA. Images whose longest edge exceeds maxSize are scaled down,
// keeping the aspect ratio; maxSize <= 0 disables scaling.
func Decode(r io.Reader, maxSize int) (render.Image, string, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return render.Image{}, "", fmt.Errorf("texture: decode: %w", err)
	}
	b := src.Bounds()
	if b.Empty() {
		return render.Image{}, format, ErrEmptyImage
	}

	w, h := fit(b.Dx(), b.Dy(), maxSize)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		xdraw.Draw(dst, dst.Bounds(), src, b.Min, xdraw.Src)
	} else {
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	}

	return FromRGBA(dst), format, nil
}

// Load decodes the image file at path.
func Load(path string, maxSize int) (render.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return render.Image{}, fmt.Errorf("texture: %w", err)
	}
	defer f.Close()

	img, _, err := Decode(f, maxSize)
	if err != nil {
		return render.Image{}, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// FromRGBA copies img into a render.Image, dropping any row padding and
// converting from premultiplied to straight alpha for SRC_ALPHA blending.
func FromRGBA(img *image.RGBA) render.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	pix := make([]uint8, w*h*4)
	for y := 0; y < h; y++ {
		row := img.PixOffset(b.Min.X, b.Min.Y+y)
		copy(pix[y*w*4:(y+1)*w*4], img.Pix[row:row+w*4])
	}

	for i := 0; i < len(pix); i += 4 {
		a := uint32(pix[i+3])
		if a == 0 || a == 255 {
			continue
		}
		pix[i] = uint8(uint32(pix[i]) * 255 / a)
		pix[i+1] = uint8(uint32(pix[i+1]) * 255 / a)
		pix[i+2] = uint8(uint32(pix[i+2]) * 255 / a)
	}
	return render.Image{Width: w, Height: h, Pix: pix}
}

func fit(w, h, maxSize int) (int, int) {
	if maxSize <= 0 || (w <= maxSize && h <= maxSize) {
		return w, h
	}
	if w >= h {
		nh := h * maxSize / w
		if nh < 1 {
			nh = 1
		}
		return maxSize, nh
	}
	nw := w * maxSize / h
	if nw < 1 {
		nw = 1
	}
	return nw, maxSize
}
