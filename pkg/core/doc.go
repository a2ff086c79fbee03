// Package core provides the shared error types of the tdapi SDK.
//
// Every package in the SDK reports failures through the sentinel errors and
// typed errors defined here, so callers can classify a failure with errors.Is
// and errors.As regardless of which layer produced it:
//   - ConfigError for invalid client configuration
//   - ValidationError for rejected request parameters
//   - ProtocolError for unexpected HTTP responses
//   - SignalError for signal guard setup and teardown failures
//
// Example usage:
//
//	import "github.com/tdapi/go-sdk/pkg/core"
//
//	body, err := c.Do(ctx, req)
//	var protoErr *core.ProtocolError
//	if errors.As(err, &protoErr) {
//		log.Printf("server answered %d: %s", protoErr.Code, protoErr.Body)
//	}
package core
