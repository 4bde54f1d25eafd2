package user

import "errors"

var (
	ErrInvalidEmail  = errors.New("user: invalid email")
	ErrInvalidName   = errors.New("user: invalid name")
	ErrInvalidBio    = errors.New("user: invalid bio")
	ErrInvalidGender = errors.New("user: invalid gender")
	ErrInvalidRole   = errors.New("user: invalid role")
	ErrUserNotFound  = errors.New("user: not found")
)
