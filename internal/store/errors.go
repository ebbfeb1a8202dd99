package store

import "errors"

var (
	// ErrSourceNotFound means the backing file or table does not exist.
	ErrSourceNotFound = errors.New("faq source not found")

	// ErrEmptyData means the source held no row with both a question and
	// an answer.
	ErrEmptyData = errors.New("faq data is empty")
)
