//go:build !tdapi_debug

package utils

// DebugEnabled reports whether debug tracing was compiled in.
const DebugEnabled = false
