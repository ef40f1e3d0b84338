package sizing

import "errors"

var (
	ErrUnknownPolicy = errors.New("unknown sizing policy")
	ErrUnknownField  = errors.New("unknown form field")
)
