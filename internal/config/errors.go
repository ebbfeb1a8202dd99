package config

import "errors"

var (
	ErrUnknownSource = errors.New("unknown faq source")
	ErrMissingDSN    = errors.New("missing database connection string")
	ErrInvalidPort   = errors.New("port must be between 1 and 65535")
)
