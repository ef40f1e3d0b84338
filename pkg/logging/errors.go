package logging

import "errors"

var (
	ErrCreateLogDir  = errors.New("logging: create events directory")
	ErrCreateLogFile = errors.New("logging: open events file")
	ErrWriteEvent    = errors.New("logging: write event")
	ErrMarshalData   = errors.New("logging: marshal event data")
	ErrCloseWriter   = errors.New("logging: close events file")
)
