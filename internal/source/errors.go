package source

import (
	"errors"
	"fmt"
)

// ErrNoInputs indicates that the inputs matched no stylesheet
var ErrNoInputs = errors.New("no input files")

// ReadError represents a failure to read an input file
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
