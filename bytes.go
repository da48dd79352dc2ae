package bgremove

import (
	"bytes"
)

// RemoveBackgroundBytes removes the background from raw image bytes and
// returns the result encoded as PNG together with the statistics of the
// source image.
func RemoveBackgroundBytes(data []byte) ([]byte, Stats, error) {
	return defaultRemover.RemoveBackgroundBytes(data)
}

// RemoveBackgroundBytes removes the background from raw image bytes.
func (r *Remover) RemoveBackgroundBytes(data []byte) ([]byte, Stats, error) {
	img, _, err := DecodeImageBytes(data)
	if err != nil {
		return nil, Stats{}, err
	}

	cleaned, stats, err := r.process(img)
	if err != nil {
		return nil, Stats{}, err
	}

	var buf bytes.Buffer
	if err := encodePNG(&buf, cleaned, r.compression); err != nil {
		return nil, Stats{}, &EncodeError{Op: "encode", Err: err}
	}

	return buf.Bytes(), stats, nil
}
