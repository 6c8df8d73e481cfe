package matches

import "errors"

var (
	ErrNotFound          = errors.New("match not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrReferenceNotFound = errors.New("referenced record not found")
)
