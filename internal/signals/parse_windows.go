//go:build windows

package signals

import (
	"os"
	"strings"
	"syscall"

	"github.com/tdapi/go-sdk/pkg/core"
)

var windowsSignals = map[string]os.Signal{
	"SIGHUP":  syscall.SIGHUP,
	"SIGINT":  syscall.SIGINT,
	"SIGQUIT": syscall.SIGQUIT,
	"SIGKILL": syscall.SIGKILL,
	"SIGTERM": syscall.SIGTERM,
}

// Parse resolves a signal name such as "SIGINT", "INT" or "term". Only the
// signals the Go runtime emulates on Windows are known.
func Parse(name string) (os.Signal, error) {
	normalized := strings.ToUpper(strings.TrimSpace(name))
	if !strings.HasPrefix(normalized, "SIG") {
		normalized = "SIG" + normalized
	}

	sig, ok := windowsSignals[normalized]
	if !ok {
		return nil, &core.SignalError{Op: "parse", Signal: name, Err: core.ErrUnknownSignal}
	}
	return sig, nil
}
