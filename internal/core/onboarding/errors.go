package onboarding

import "errors"

var (
	// ErrInvalidTransition は現在の状態で許可されない操作に対して返却されます。
	ErrInvalidTransition = errors.New("onboarding: action not allowed in current step")
)
