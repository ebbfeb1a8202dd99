package matcher

import "errors"

// ErrNoItems is returned when there is nothing to match against.
var ErrNoItems = errors.New("faq collection is empty")
