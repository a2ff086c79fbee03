//go:build unix

package signals

import (
	"os"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/tdapi/go-sdk/pkg/core"
)

// Parse resolves a signal name such as "SIGINT", "INT" or "term".
func Parse(name string) (os.Signal, error) {
	normalized := strings.ToUpper(strings.TrimSpace(name))
	if !strings.HasPrefix(normalized, "SIG") {
		normalized = "SIG" + normalized
	}

	sig := unix.SignalNum(normalized)
	if sig == 0 {
		return nil, &core.SignalError{Op: "parse", Signal: name, Err: core.ErrUnknownSignal}
	}
	return sig, nil
}
