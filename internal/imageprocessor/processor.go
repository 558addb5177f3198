package imageprocessor

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// Processor normalizes uploaded images.
type Processor struct {
	quality int // JPEG quality (1-100)
}

// NewProcessor creates an image processor with the given JPEG quality.
func NewProcessor(quality int) *Processor {
	if quality <= 0 || quality > 100 {
		quality = 80
	}
	return &Processor{quality: quality}
}

// ProcessSquare decodes an image, scales it to a size x size square and
// re-encodes it. format selects the output encoding ("jpeg", "jpg" or
// "png"); anything else keeps the source format.
func (p *Processor) ProcessSquare(reader io.Reader, size int, format string) (io.Reader, error) {
	img, imgFormat, err := image.Decode(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	resized := p.scale(img, size, size)

	if format == "" {
		format = imgFormat
	}

	var buf bytes.Buffer
	switch format {
	case "jpeg", "jpg":
		if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: p.quality}); err != nil {
			return nil, fmt.Errorf("failed to encode JPEG: %w", err)
		}
	case "png":
		if err := png.Encode(&buf, resized); err != nil {
			return nil, fmt.Errorf("failed to encode PNG: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported image format: %s", format)
	}

	return &buf, nil
}

// scale stretches img to exactly width x height.
func (p *Processor) scale(img image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}

// GetImageDimensions returns the dimensions of an image.
func GetImageDimensions(reader io.Reader) (width, height int, err error) {
	img, _, err := image.Decode(reader)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	return bounds.Dx(), bounds.Dy(), nil
}

// IsValidImage checks if the reader contains a decodable image.
func IsValidImage(reader io.Reader) bool {
	_, _, err := image.Decode(reader)
	return err == nil
}
