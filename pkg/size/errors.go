package size

import "errors"

var (
	ErrInvalidSizeFormat = errors.New("invalid size format")
	ErrUnknownUnit       = errors.New("unknown size unit")
	ErrSizeOverflow      = errors.New("size out of range")
)
