// Package utils provides shared internal utilities.
//
// The main resident is the debug trace facility. DebugOut writes one
// fixed-width line per call (tag, goroutine id, message) to a process-wide
// sink. Tracing is compiled in only when the SDK is built with the
// tdapi_debug build tag:
//
//	go build -tags tdapi_debug ./...
//
// Without the tag DebugEnabled is a false constant and calls to DebugOut are
// removed by the compiler.
//
// This package is internal and should not be imported by external code.
package utils
