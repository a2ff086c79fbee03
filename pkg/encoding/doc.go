// Package encoding provides percent-encoding and query-string assembly for
// API requests.
//
// URLEncode leaves the unreserved set (ASCII letters, digits and "-_.~")
// untouched and replaces every other byte with "%XX" using uppercase hex
// digits. Unlike net/url.QueryEscape it never emits "+", so the output is safe
// both in paths and in query strings.
//
// BuildEncodedQueryString joins ordered key/value pairs into a query string.
// Only values are encoded; keys are written verbatim and callers must pass keys
// that are already safe for a query string.
//
// Example usage:
//
//	import "github.com/tdapi/go-sdk/pkg/encoding"
//
//	params := encoding.Params{}.
//		Add("symbol", "BRK.B").
//		Add("description", "berkshire hathaway")
//
//	fmt.Println(params.Encode())
//	// symbol=BRK.B&description=berkshire%20hathaway
package encoding
