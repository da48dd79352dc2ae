package bgremove

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"strings"
)

// DecodeBase64Image decodes a base64-encoded image (optionally a data URL) into
// an image.Image. It returns the decoded image and the detected format string
// ("png", "jpeg", "webp", etc.).
func DecodeBase64Image(input string) (image.Image, string, error) {
	raw := stripDataPrefix(strings.TrimSpace(input))

	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, "", &DecodeError{Op: "decode", Err: fmt.Errorf("decode base64: %w", err)}
	}

	return DecodeImageBytes(data)
}

// EncodePNGToBase64 encodes an image as PNG and returns a base64 string.
func EncodePNGToBase64(img image.Image) (string, error) {
	return defaultRemover.encodeBase64(img)
}

func (r *Remover) encodeBase64(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := encodePNG(&buf, img, r.compression); err != nil {
		return "", &EncodeError{Op: "encode", Err: err}
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// RemoveBackgroundBase64 removes the background from a base64-encoded image
// and returns the cleaned image as base64 PNG.
func RemoveBackgroundBase64(input string) (string, Stats, error) {
	return defaultRemover.RemoveBackgroundBase64(input)
}

// RemoveBackgroundBase64 removes the background from a base64-encoded image.
func (r *Remover) RemoveBackgroundBase64(input string) (string, Stats, error) {
	img, _, err := DecodeBase64Image(input)
	if err != nil {
		return "", Stats{}, err
	}

	cleaned, stats, err := r.process(img)
	if err != nil {
		return "", Stats{}, err
	}

	output, err := r.encodeBase64(cleaned)
	if err != nil {
		return "", Stats{}, err
	}

	return output, stats, nil
}

func stripDataPrefix(input string) string {
	lower := strings.ToLower(input)
	if strings.HasPrefix(lower, "data:") {
		if idx := strings.Index(input, ","); idx != -1 {
			return input[idx+1:]
		}
	}
	return input
}
