package signals

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"

	"github.com/tdapi/go-sdk/internal/utils"
	"github.com/tdapi/go-sdk/pkg/core"
)

const debugTag = "signals"

// Guard holds back a set of signals until Release is called.
type Guard struct {
	mu       sync.Mutex
	signals  []os.Signal
	ignored  []os.Signal
	ch       chan os.Signal
	released bool
	drained  []os.Signal
}

// Block starts capturing sigs. An empty set yields an inactive guard whose
// Release only marks it released.
func Block(sigs ...os.Signal) (*Guard, error) {
	g := &Guard{}
	if len(sigs) == 0 {
		return g, nil
	}

	for i, s := range sigs {
		if s == nil {
			return nil, &core.SignalError{
				Op:     "block",
				Signal: fmt.Sprintf("#%d", i),
				Err:    core.ErrNilSignal,
			}
		}
	}

	g.signals = append([]os.Signal(nil), sigs...)
	for _, s := range g.signals {
		if signal.Ignored(s) {
			g.ignored = append(g.ignored, s)
		}
	}

	// One slot per signal; os/signal drops deliveries to a full channel.
	g.ch = make(chan os.Signal, len(g.signals))
	signal.Notify(g.ch, g.signals...)

	utils.DebugOut(debugTag, fmt.Sprintf("blocked %v", g.signals))
	return g, nil
}

// MustBlock is like Block but panics on failure.
func MustBlock(sigs ...os.Signal) *Guard {
	g, err := Block(sigs...)
	if err != nil {
		panic(err)
	}
	return g
}

// Active reports whether the guard is currently capturing signals.
func (g *Guard) Active() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.ch != nil && !g.released
}

// Release stops capturing, drains pending signals and restores prior
// dispositions. A guard can be released once.
func (g *Guard) Release() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.released {
		return &core.SignalError{Op: "release", Err: core.ErrGuardReleased}
	}
	g.released = true

	if g.ch == nil {
		return nil
	}

	// No further sends to ch happen once Stop returns.
	signal.Stop(g.ch)
	for draining := true; draining; {
		select {
		case s := <-g.ch:
			g.drained = append(g.drained, s)
		default:
			draining = false
		}
	}

	if len(g.ignored) > 0 {
		signal.Ignore(g.ignored...)
	}

	utils.DebugOut(debugTag, fmt.Sprintf("released %v, drained %d", g.signals, len(g.drained)))
	return nil
}

// MustRelease is like Release but panics on failure.
func (g *Guard) MustRelease() {
	if err := g.Release(); err != nil {
		panic(err)
	}
}

// Drained returns the signals captured while the guard was held. It is only
// populated after Release.
func (g *Guard) Drained() []os.Signal {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]os.Signal(nil), g.drained...)
}

// WithBlocked runs fn with sigs blocked. The guard is released on every exit
// path; a release failure is joined with fn's error.
func WithBlocked(sigs []os.Signal, fn func() error) error {
	return withGuard(sigs, func(*Guard) error { return fn() })
}

// withGuard is WithBlocked with the guard passed to fn.
func withGuard(sigs []os.Signal, fn func(*Guard) error) (err error) {
	g, err := Block(sigs...)
	if err != nil {
		return err
	}
	defer func() {
		if releaseErr := g.Release(); releaseErr != nil {
			err = errors.Join(err, releaseErr)
		}
	}()

	return fn(g)
}
