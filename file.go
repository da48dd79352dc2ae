package bgremove

import (
	"image"
	"os"
	"path/filepath"
)

// RemoveBackgroundFile decodes the image at inPath, removes its background
// and writes the result as PNG to outPath, replacing any existing file.
func RemoveBackgroundFile(inPath, outPath string) error {
	_, err := defaultRemover.RemoveBackgroundFile(inPath, outPath)
	return err
}

// RemoveBackgroundFile decodes the image at inPath, removes its background
// and writes the result as PNG to outPath. The output is first written to a
// temporary file in the destination directory and renamed into place only
// once it is complete.
func (r *Remover) RemoveBackgroundFile(inPath, outPath string) (Stats, error) {
	in, err := os.Open(inPath)
	if err != nil {
		return Stats{}, &DecodeError{Op: "open", Path: inPath, Err: err}
	}
	img, _, err := Decode(in)
	_ = in.Close()
	if err != nil {
		return Stats{}, &DecodeError{Op: "decode", Path: inPath, Err: err}
	}

	return r.RemoveBackgroundToFile(img, outPath)
}

// RemoveBackgroundToFile removes the background of an already decoded image
// and writes the result as PNG to outPath.
func (r *Remover) RemoveBackgroundToFile(img image.Image, outPath string) (Stats, error) {
	cleaned, stats, err := r.process(img)
	if err != nil {
		return Stats{}, &DecodeError{Op: "decode", Err: err}
	}

	if err := r.writeFile(outPath, cleaned); err != nil {
		return Stats{}, err
	}
	return stats, nil
}

// writeFile encodes img into a temporary sibling of path and renames it over
// path on success. The temporary file is removed on every failure. An
// existing target keeps its permission bits; a new one gets the mode chosen
// by os.CreateTemp.
func (r *Remover) writeFile(path string, img *image.NRGBA) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return &EncodeError{Op: "create", Path: path, Err: err}
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if err = encodePNG(tmp, img, r.compression); err != nil {
		return &EncodeError{Op: "encode", Path: path, Err: err}
	}
	if err = tmp.Sync(); err != nil {
		return &EncodeError{Op: "write", Path: path, Err: err}
	}
	if err = tmp.Close(); err != nil {
		return &EncodeError{Op: "write", Path: path, Err: err}
	}
	if fi, statErr := os.Stat(path); statErr == nil && fi.Mode().IsRegular() {
		if err = os.Chmod(tmpName, fi.Mode().Perm()); err != nil {
			return &EncodeError{Op: "write", Path: path, Err: err}
		}
	}
	if err = os.Rename(tmpName, path); err != nil {
		return &EncodeError{Op: "rename", Path: path, Err: err}
	}
	return nil
}
