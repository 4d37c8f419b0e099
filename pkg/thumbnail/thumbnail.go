// Package thumbnail renders fixed-size JPEG previews of images.
//
// The source is scaled down to fit inside a size×size square, keeping its
// aspect ratio, and pasted centered on a white canvas. Images that already
// fit are not enlarged.
package thumbnail

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"math"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Quality is the JPEG quality of generated thumbnails.
const Quality = 85

// ErrInvalidSize is returned for a non-positive size.
var ErrInvalidSize = errors.New("thumbnail: size must be positive")

// Make decodes an encoded image and returns its thumbnail as JPEG bytes.
// JPEG, PNG, GIF, BMP, TIFF and WebP sources are supported.
func Make(src []byte, size int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("thumbnail: decode image: %w", err)
	}
	return MakeImage(img, size)
}

// MakeImage renders the thumbnail of an already decoded image.
func MakeImage(img image.Image, size int) ([]byte, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	canvas := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	w, h := Fit(img.Bounds().Dx(), img.Bounds().Dy(), size)
	left := (size - w) / 2
	top := (size - h) / 2
	dst := image.Rect(left, top, left+w, top+h)
	draw.CatmullRom.Scale(canvas, dst, img, img.Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, canvas, &jpeg.Options{Quality: Quality}); err != nil {
		return nil, fmt.Errorf("thumbnail: encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// Fit returns the dimensions of a width×height image scaled down to fit in
// a size×size square. Dimensions that already fit are returned unchanged,
// and neither result is smaller than 1.
func Fit(width, height, size int) (int, int) {
	if width <= size && height <= size {
		return width, height
	}
	if width >= height {
		return size, max(1, int(math.Round(float64(height)*float64(size)/float64(width))))
	}
	return max(1, int(math.Round(float64(width)*float64(size)/float64(height)))), size
}

// Dimensions returns the pixel size of an encoded image without decoding
// its pixels.
func Dimensions(src []byte) (width, height int, format string, err error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(src))
	if err != nil {
		return 0, 0, "", fmt.Errorf("thumbnail: decode config: %w", err)
	}
	return cfg.Width, cfg.Height, format, nil
}
