package application

import "errors"

var (
	ErrInvalidID           = errors.New("application: invalid id")
	ErrInvalidStatus       = errors.New("application: invalid status")
	ErrInvalidCVID         = errors.New("application: invalid cv id")
	ErrApplicationNotFound = errors.New("application: not found")
	ErrJobNotFound         = errors.New("application: job not found")
	ErrNotHR               = errors.New("application: action requires hr role")
)
