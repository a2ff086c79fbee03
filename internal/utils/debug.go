package utils

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

const (
	debugColumnWidth = 20

	fieldTag       = "tag"
	fieldGoroutine = "goroutine"
)

var debugLogger = newDebugLogger(os.Stderr)

// DebugOut writes a trace line for tag and message to the debug sink. It does
// nothing unless DebugEnabled.
func DebugOut(tag, message string) {
	if !DebugEnabled {
		return
	}
	writeDebug(debugLogger, tag, message)
}

// SetDebugOutput redirects the debug sink. The default is os.Stderr.
func SetDebugOutput(w io.Writer) {
	debugLogger.SetOutput(w)
}

func newDebugLogger(w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&columnFormatter{width: debugColumnWidth})
	logger.SetLevel(logrus.DebugLevel)
	return logger
}

// writeDebug relies on logrus holding the logger mutex for the duration of a
// single entry write, so concurrent lines never interleave.
func writeDebug(logger *logrus.Logger, tag, message string) {
	logger.WithFields(logrus.Fields{
		fieldTag:       tag,
		fieldGoroutine: GoroutineID(),
	}).Debug(message)
}

// columnFormatter renders entries as left-justified, space-padded columns:
// tag, goroutine id, then the message.
type columnFormatter struct {
	width int
}

func (f *columnFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	b := entry.Buffer
	if b == nil {
		b = &bytes.Buffer{}
	}

	tag, _ := entry.Data[fieldTag].(string)
	fmt.Fprintf(b, "%-*s %-*v %s\n",
		f.width, tag,
		f.width, entry.Data[fieldGoroutine],
		entry.Message)
	return b.Bytes(), nil
}
