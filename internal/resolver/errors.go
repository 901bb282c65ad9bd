package resolver

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCircularReference indicates a circular reference was detected
var ErrCircularReference = errors.New("circular reference detected")

// CircularReferenceError represents a circular var() reference chain
type CircularReferenceError struct {
	Source string
	Chain  []string
}

func (e *CircularReferenceError) Error() string {
	chain := strings.Join(e.Chain, " → ")
	if e.Source == "" {
		return fmt.Sprintf("circular reference detected: %s", chain)
	}
	return fmt.Sprintf("circular reference detected in %s: %s", e.Source, chain)
}

func (e *CircularReferenceError) Unwrap() error {
	return ErrCircularReference
}

// NewCircularReferenceError creates a new circular reference error
func NewCircularReferenceError(source string, chain []string) error {
	return &CircularReferenceError{
		Source: source,
		Chain:  chain,
	}
}
