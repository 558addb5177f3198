package imageprocessor

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage(t *testing.T, width, height int) *bytes.Buffer {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 120, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

func TestProcessSquare_ResizesToExactSquare(t *testing.T) {
	t.Parallel()

	p := NewProcessor(80)
	out, err := p.ProcessSquare(testImage(t, 640, 480), 250, "jpeg")
	require.NoError(t, err)

	width, height, err := GetImageDimensions(out)
	require.NoError(t, err)
	assert.Equal(t, 250, width)
	assert.Equal(t, 250, height)
}

func TestProcessSquare_UpscalesSmallImages(t *testing.T) {
	t.Parallel()

	p := NewProcessor(80)
	out, err := p.ProcessSquare(testImage(t, 40, 60), 250, "png")
	require.NoError(t, err)

	width, height, err := GetImageDimensions(out)
	require.NoError(t, err)
	assert.Equal(t, 250, width)
	assert.Equal(t, 250, height)
}

func TestProcessSquare_RejectsGarbage(t *testing.T) {
	t.Parallel()

	p := NewProcessor(80)
	_, err := p.ProcessSquare(strings.NewReader("definitely not an image"), 250, "jpeg")
	assert.Error(t, err)
}

func TestIsValidImage(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidImage(testImage(t, 10, 10)))
	assert.False(t, IsValidImage(strings.NewReader("nope")))
}
