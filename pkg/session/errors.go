package session

import "errors"

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("usage")
	ErrReadInput      = errors.New("read session input")
	ErrOutputFormat   = errors.New("session output format")
)
