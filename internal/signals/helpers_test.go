//go:build unix

package signals

import (
	"os"
	"os/signal"
	"testing"
)

func ignoreForTest(t *testing.T, sig os.Signal) {
	t.Helper()
	signal.Ignore(sig)
	t.Cleanup(func() { signal.Reset(sig) })
}

func isIgnored(sig os.Signal) bool {
	return signal.Ignored(sig)
}
