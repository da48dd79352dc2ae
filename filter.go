package bgremove

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// Threshold is the per-channel brightness a pixel must exceed on red, green
// and blue to be classified as background.
const Threshold = 220

// Background is the color every background pixel is replaced with.
var Background = color.NRGBA{R: 255, G: 255, B: 255, A: 0}

// Remover applies the whiteness filter and encodes results as PNG.
type Remover struct {
	compression Compression
}

// NewRemover constructs a Remover using the given PNG compression level.
func NewRemover(c Compression) *Remover {
	return &Remover{compression: c}
}

var defaultRemover = NewRemover(CompressionDefault)

// IsBackground reports whether a pixel satisfies the whiteness predicate.
// Alpha is not considered.
func IsBackground(c color.NRGBA) bool {
	return isWhite(c.R, c.G, c.B)
}

func isWhite(r, g, b uint8) bool {
	return r > Threshold && g > Threshold && b > Threshold
}

// RemoveBackground applies the default remover to the provided image.
func RemoveBackground(img image.Image) (*image.NRGBA, error) {
	return defaultRemover.RemoveBackground(img)
}

// RemoveBackground returns a new non-premultiplied copy of img in which every
// background pixel is replaced with transparent white. The source image is
// never modified.
func (r *Remover) RemoveBackground(img image.Image) (*image.NRGBA, error) {
	out, _, err := r.process(img)
	return out, err
}

// process converts img once, gathers its statistics and applies the filter.
func (r *Remover) process(img image.Image) (*image.NRGBA, Stats, error) {
	if img == nil {
		return nil, Stats{}, errors.New("nil image provided")
	}

	bounds := img.Bounds()
	if bounds.Dx() < 0 || bounds.Dy() < 0 {
		return nil, Stats{}, fmt.Errorf("invalid image dimensions %dx%d", bounds.Dx(), bounds.Dy())
	}

	out := toNRGBA(img)
	stats := Stats{
		Width:      bounds.Dx(),
		Height:     bounds.Dy(),
		Total:      bounds.Dx() * bounds.Dy(),
		Background: applyTransparency(out),
	}
	return out, stats, nil
}

// toNRGBA copies the image into a mutable NRGBA buffer. Sources without an
// alpha channel come out fully opaque. Conversion never goes through
// premultiplied color, so translucent pixels keep their exact channels.
func toNRGBA(src image.Image) *image.NRGBA {
	bounds := src.Bounds()
	dst := image.NewNRGBA(bounds)

	switch m := src.(type) {
	case *image.NRGBA:
		rowLen := 4 * bounds.Dx()
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			so := m.PixOffset(bounds.Min.X, y)
			do := dst.PixOffset(bounds.Min.X, y)
			copy(dst.Pix[do:do+rowLen], m.Pix[so:so+rowLen])
		}
	case *image.Paletted:
		palette := make([]color.NRGBA, len(m.Palette))
		for i, c := range m.Palette {
			palette[i] = color.NRGBAModel.Convert(c).(color.NRGBA)
		}
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				idx := int(m.ColorIndexAt(x, y))
				if idx < len(palette) {
					dst.SetNRGBA(x, y, palette[idx])
				}
			}
		}
	default:
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				dst.SetNRGBA(x, y, color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA))
			}
		}
	}

	return dst
}

// applyTransparency rewrites background pixels in place and returns how many
// it matched.
func applyTransparency(img *image.NRGBA) int {
	bounds := img.Bounds()
	var count int

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		offset := img.PixOffset(bounds.Min.X, y)
		for x := 0; x < bounds.Dx(); x++ {
			p := img.Pix[offset : offset+4 : offset+4]
			if isWhite(p[0], p[1], p[2]) {
				p[0], p[1], p[2], p[3] = Background.R, Background.G, Background.B, Background.A
				count++
			}
			offset += 4
		}
	}

	return count
}
