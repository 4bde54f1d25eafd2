package event

import "errors"

var (
	ErrInvalidTitle = errors.New("event: invalid title")
	ErrInvalidDate  = errors.New("event: invalid date")
	ErrInvalidTime  = errors.New("event: invalid time")
	ErrInvalidType  = errors.New("event: invalid type")
)
