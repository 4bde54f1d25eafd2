package job

import "errors"

var (
	ErrInvalidTitle   = errors.New("job: invalid title")
	ErrInvalidCompany = errors.New("job: invalid company")
	ErrInvalidType    = errors.New("job: invalid employment type")
	ErrJobNotFound    = errors.New("job: not found")
	ErrNotHR          = errors.New("job: action requires hr role")
)
