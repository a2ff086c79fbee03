package client

import (
	"github.com/tdapi/go-sdk/internal/validation"
	"github.com/tdapi/go-sdk/pkg/encoding"
)

// Request describes a GET against the API.
type Request struct {
	// Path is appended to the client's base URL
	Path string

	// Params are sent in order as the query string
	Params encoding.Params
}

// NewRequest creates a request for path with no parameters.
func NewRequest(path string) *Request {
	return &Request{Path: path}
}

// Set appends a query parameter and returns r for chaining.
func (r *Request) Set(key, value string) *Request {
	r.Params = r.Params.Add(key, value)
	return r
}

// SetDateTime appends a date or date-time parameter after checking that value
// is shaped like YYYY-MM-DD or YYYY-MM-DDTHH:MM:SSZ. Nothing is appended when
// the check fails.
func (r *Request) SetDateTime(key, value string) error {
	if err := validation.ValidateDateTime(key, value); err != nil {
		return err
	}
	r.Set(key, value)
	return nil
}

// Query returns the encoded query string, without the leading '?'.
func (r *Request) Query() string {
	return encoding.BuildEncodedQueryString(r.Params)
}
