package storage

import "errors"

// ErrNotFound is returned when a requested record does not exist in the store.
// It is the only way a store signals absence; callers test for it with errors.Is
// and must not treat it as a backend failure.
var ErrNotFound = errors.New("record not found")
