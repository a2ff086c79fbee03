package utils

import "github.com/petermattis/goid"

// GoroutineID returns the runtime id of the calling goroutine. It is meant for
// trace output only.
func GoroutineID() int64 {
	return goid.Get()
}
