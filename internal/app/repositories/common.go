package repositories

import "errors"

// ErrNotFound is the shared sentinel for lookups that match no row.
// Entity-specific errors wrap or alias it.
var ErrNotFound = errors.New("record not found")
