package core

import "errors"

// Common errors.
var (
	ErrNoNotes        = errors.New("no notes read from input")
	ErrWouldOverwrite = errors.New("refusing to overwrite existing file")
)
