package testutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// MissingPath is answered with 404 by NewQueryEchoServer.
const MissingPath = "/missing"

// NewQueryEchoServer starts a server that answers every GET with the raw
// query string it received, except MissingPath which gets a 404. The server
// is closed when the test ends.
func NewQueryEchoServer(t testing.TB) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, MissingPath) {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(r.URL.RawQuery))
	}))
	t.Cleanup(server.Close)
	return server
}
