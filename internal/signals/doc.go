// Package signals provides a scoped guard that holds back a set of signals
// while a critical section runs.
//
// Block subscribes the signals to a private channel, so a delivery is
// captured instead of triggering its default action (an interrupt no longer
// kills the process halfway through writing a file). Release stops the
// subscription, drains whatever was captured and restores signals that were
// ignored before the guard was taken. WithBlocked pairs the two and releases
// on every exit path, panics included.
//
// Setup and teardown failures are reported as *core.SignalError. The Must
// variants panic with that error for callers that treat it as fatal.
//
// This package is internal and should not be imported by external code.
package signals
