package service

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrDatasetUnavailable = errors.New("dataset unavailable")
)
