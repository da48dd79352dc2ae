package bgremove

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func encodeTestPNG(t *testing.T, img image.Image) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func sampleImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{255, 255, 255, 255})
	img.Set(1, 0, color.RGBA{0, 0, 0, 255})
	img.Set(0, 1, color.RGBA{230, 228, 225, 255})
	img.Set(1, 1, color.RGBA{120, 60, 30, 255})
	return img
}

func wantSample() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, Background)
	img.SetNRGBA(1, 0, color.NRGBA{0, 0, 0, 255})
	img.SetNRGBA(0, 1, Background)
	img.SetNRGBA(1, 1, color.NRGBA{120, 60, 30, 255})
	return img
}

func imagesEqual(a, b image.Image) bool {
	if !a.Bounds().Eq(b.Bounds()) {
		return false
	}

	return bytes.Equal(imageToNRGBA(a).Pix, imageToNRGBA(b).Pix)
}

func imageToNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	bounds := img.Bounds()
	out := image.NewNRGBA(bounds)
	draw.Draw(out, bounds, img, bounds.Min, draw.Src)
	return out
}

func TestRemoveBackgroundBytes(t *testing.T) {
	out, stats, err := RemoveBackgroundBytes(encodeTestPNG(t, sampleImage()))
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Background)

	got, format, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.True(t, imagesEqual(wantSample(), got), "output pixels differ from expected")
}

func TestRemoveBackgroundBytesBMP(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, sampleImage()))

	out, _, err := RemoveBackgroundBytes(buf.Bytes())
	require.NoError(t, err)

	got, _, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.True(t, imagesEqual(wantSample(), got))
}

func TestRemoveBackgroundBytesDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "garbage", data: []byte("definitely not an image")},
		{name: "truncated png", data: encodeTestPNG(t, sampleImage())[:20]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := RemoveBackgroundBytes(tt.data)
			require.Error(t, err)

			var decErr *DecodeError
			assert.True(t, errors.As(err, &decErr), "want DecodeError, got %T", err)
		})
	}
}

func TestRemoverCompressionLevelsAgree(t *testing.T) {
	data := encodeTestPNG(t, sampleImage())

	for _, c := range []Compression{CompressionDefault, CompressionFast, CompressionBest, CompressionNone} {
		out, _, err := NewRemover(c).RemoveBackgroundBytes(data)
		require.NoError(t, err)

		got, err := png.Decode(bytes.NewReader(out))
		require.NoError(t, err)
		assert.True(t, imagesEqual(wantSample(), got), "compression %d", c)
	}
}
