// Package lock provides the keyed mutual exclusion used to serialize
// reservation admissions.
package lock

import "errors"

// ErrNotAcquired is returned when the key stayed held for the whole wait.
var ErrNotAcquired = errors.New("lock not acquired")
