package services

import "errors"

// ErrNotFound is returned when a referenced entity id does not exist.
// Handlers translate it to a 404; it is distinct from an empty filter
// result, which is a successful empty slice.
var ErrNotFound = errors.New("not found")
