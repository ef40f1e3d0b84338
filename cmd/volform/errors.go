package main

import "errors"

// Config errors
var (
	ErrReadConfig  = errors.New("read config")
	ErrNoTemplates = errors.New("no volume file: pass --templates or set templates in the config")
)

// Parse errors
var (
	ErrInvalidBytes = errors.New("invalid byte amount")
)
