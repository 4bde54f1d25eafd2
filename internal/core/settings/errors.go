package settings

import "errors"

var ErrInvalidEmail = errors.New("settings: invalid email")
