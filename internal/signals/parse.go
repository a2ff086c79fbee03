package signals

import (
	"os"
	"strings"
)

// ParseList resolves a comma-separated list of signal names. Empty entries are
// skipped.
func ParseList(list string) ([]os.Signal, error) {
	var sigs []os.Signal
	for _, name := range strings.Split(list, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		sig, err := Parse(name)
		if err != nil {
			return nil, err
		}
		sigs = append(sigs, sig)
	}
	return sigs, nil
}
