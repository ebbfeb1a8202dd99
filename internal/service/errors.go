package service

import "errors"

var (
	ErrEmptyQuestion   = errors.New("question is empty")
	ErrMatchingFailure = errors.New("matching failed")
)
