package bgremove

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	// Register common decoders: GIF, JPEG and PNG from the standard library,
	// BMP, TIFF and WebP via x/image, ICO via golang-ico.
	_ "github.com/biessek/golang-ico"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	_ "image/gif"
	_ "image/jpeg"
)

// Compression selects the PNG compression level used when encoding.
type Compression int

const (
	CompressionDefault Compression = iota
	CompressionFast
	CompressionBest
	CompressionNone
)

// ParseCompression maps a flag value to a Compression.
func ParseCompression(s string) (Compression, error) {
	switch s {
	case "", "default":
		return CompressionDefault, nil
	case "fast":
		return CompressionFast, nil
	case "best":
		return CompressionBest, nil
	case "none":
		return CompressionNone, nil
	}
	return CompressionDefault, fmt.Errorf("unknown compression %q", s)
}

func (c Compression) pngLevel() png.CompressionLevel {
	switch c {
	case CompressionFast:
		return png.BestSpeed
	case CompressionBest:
		return png.BestCompression
	case CompressionNone:
		return png.NoCompression
	}
	return png.DefaultCompression
}

// Decode reads an image from the reader, returning the decoded image and the
// detected format string ("png", "jpeg", "webp", etc.).
func Decode(r io.Reader) (image.Image, string, error) {
	return image.Decode(r)
}

// DecodeImageBytes decodes an in-memory image.
func DecodeImageBytes(data []byte) (image.Image, string, error) {
	if len(data) == 0 {
		return nil, "", &DecodeError{Op: "decode", Err: errEmptyInput}
	}

	img, format, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", &DecodeError{Op: "decode", Err: err}
	}
	return img, format, nil
}

// EncodePNG writes the provided image to the writer as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return encodePNG(w, img, CompressionDefault)
}

func encodePNG(w io.Writer, img image.Image, c Compression) error {
	enc := &png.Encoder{CompressionLevel: c.pngLevel()}
	return enc.Encode(w, img)
}
