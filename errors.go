package md2html

import "errors"

// Sentinel errors for library operations.
var (
	// Front matter errors.
	ErrFrontMatterUnterminated = errors.New("front matter block is not terminated")
	ErrFrontMatterParse        = errors.New("front matter parsing failed")
)
