package post

import "errors"

var (
	ErrInvalidContent = errors.New("post: invalid content")
)
