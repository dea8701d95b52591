package wording

import (
	"errors"
	"fmt"
)

// Errors of the wording pipeline. They are wrapped with details of the
// offending tag; test with errors.Is.
var (
	ErrNoWording         = errors.New("no wording to process")
	ErrMalformedTag      = errors.New("malformed tag")
	ErrUnknownUnitKind   = errors.New("unknown unit kind")
	ErrUndefinedHintUnit = errors.New("hint refers to an undefined unit")
	ErrFormat            = errors.New("format error")
	ErrNoNameSource      = errors.New("no name source")
)

// MissingAttributeError is returned if a tag has no value, neither set by
// the caller nor invented by the pipeline.
type MissingAttributeError struct {
	Name string
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("attribute %q not set", e.Name)
}

func missing(name string) error {
	return &MissingAttributeError{Name: name}
}
