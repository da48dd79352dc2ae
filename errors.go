package bgremove

import (
	"errors"
	"fmt"
)

var errEmptyInput = errors.New("empty image data")

// DecodeError reports a missing, unreadable or corrupt input image.
type DecodeError struct {
	Op   string
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s input: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s input %s: %v", e.Op, e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError reports a failure to produce or store the output image.
type EncodeError struct {
	Op   string
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s output: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s output %s: %v", e.Op, e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// DuplicateOutputError reports a batch job whose output path is already
// claimed by an earlier job in the same batch.
type DuplicateOutputError struct {
	Output string
	Input  string
}

func (e *DuplicateOutputError) Error() string {
	return fmt.Sprintf("output %s already written by job for %s", e.Output, e.Input)
}
