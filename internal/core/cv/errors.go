package cv

import "errors"

var (
	ErrInvalidName = errors.New("cv: invalid name")
	ErrCVNotFound  = errors.New("cv: not found")
)
