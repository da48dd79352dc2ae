package bgremove

import (
	"image"
)

// Stats summarizes how much of an image is classified as background.
type Stats struct {
	Width      int
	Height     int
	Total      int
	Background int
}

// Ratio returns the share of background pixels in [0, 1].
func (s Stats) Ratio() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Background) / float64(s.Total)
}

// Analyze counts the pixels of img that satisfy the whiteness predicate
// without modifying anything.
func Analyze(img image.Image) Stats {
	if img == nil {
		return Stats{}
	}

	bounds := img.Bounds()
	stats := Stats{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Total:  bounds.Dx() * bounds.Dy(),
	}

	if n, ok := img.(*image.NRGBA); ok {
		stats.Background = countBackground(n)
		return stats
	}

	stats.Background = countBackground(toNRGBA(img))
	return stats
}

func countBackground(img *image.NRGBA) int {
	bounds := img.Bounds()
	var count int

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		offset := img.PixOffset(bounds.Min.X, y)
		for x := 0; x < bounds.Dx(); x++ {
			if isWhite(img.Pix[offset], img.Pix[offset+1], img.Pix[offset+2]) {
				count++
			}
			offset += 4
		}
	}

	return count
}
