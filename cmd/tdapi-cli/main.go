// Package main provides the tdapi CLI tool for encoding, validation and ad-hoc
// API requests.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/tdapi/go-sdk/internal/signals"
	"github.com/tdapi/go-sdk/internal/validation"
	"github.com/tdapi/go-sdk/pkg/client"
	"github.com/tdapi/go-sdk/pkg/encoding"
)

const (
	envBaseURL     = "TDAPI_BASE_URL"
	defaultSignals = "INT,TERM"

	// Parameters the API takes as ISO-8601 dates. Price history startDate and
	// endDate are epoch milliseconds and are not listed.
	defaultDateKeys = "fromEnteredTime,toEnteredTime"
)

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	log := logrus.New()
	log.SetOutput(stderr)

	if len(args) == 0 {
		usage(stderr)
		return 2
	}

	var err error
	switch cmd, rest := args[0], args[1:]; cmd {
	case "encode":
		err = runEncode(rest, stdout)
	case "decode":
		err = runDecode(rest, stdout)
	case "query":
		err = runQuery(rest, stdout)
	case "datetime":
		err = runDateTime(rest, stdout)
	case "get":
		err = runGet(rest, stdout, log)
	case "help", "-h", "--help":
		usage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "Command '%s' not recognized.\n\n", cmd)
		usage(stderr)
		return 2
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		fmt.Fprintln(stderr, err)
		return 2
	case errors.Is(err, errInvalidDates):
		return 1
	default:
		log.WithError(err).Error(args[0] + " failed")
		return 1
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "tdapi-cli v"+client.Version)
	fmt.Fprintln(w, "A command-line tool for the tdapi Go SDK.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  tdapi-cli [command]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available Commands:")
	fmt.Fprintln(w, "  encode    Percent-encode each argument")
	fmt.Fprintln(w, "  decode    Percent-decode each argument")
	fmt.Fprintln(w, "  query     Build a query string: query [-date-keys k1,k2] [key=value...]")
	fmt.Fprintln(w, "  datetime  Check arguments are YYYY-MM-DD or YYYY-MM-DDTHH:MM:SSZ")
	fmt.Fprintln(w, "  get       Send a GET request: get [-base URL] [-date-keys k1,k2] path [key=value...]")
	fmt.Fprintln(w, "  help      Show help information")
}

func runEncode(args []string, stdout io.Writer) error {
	lines := make([]string, len(args))
	for i, a := range args {
		lines[i] = encoding.URLEncode(a)
	}
	return writeLines(stdout, defaultSignals, lines)
}

func runDecode(args []string, stdout io.Writer) error {
	lines := make([]string, len(args))
	for i, a := range args {
		decoded, err := encoding.URLDecode(a)
		if err != nil {
			return err
		}
		lines[i] = decoded
	}
	return writeLines(stdout, defaultSignals, lines)
}

func runQuery(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("query", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	dateKeys := fs.String("date-keys", defaultDateKeys, "keys whose values must be ISO-8601 dates")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	params, err := parsePairs(fs.Args(), splitKeys(*dateKeys))
	if err != nil {
		return err
	}
	return writeLines(stdout, defaultSignals, []string{params.Encode()})
}

var errInvalidDates = errors.New("invalid date-time arguments")

func runDateTime(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: datetime value...", errUsage)
	}

	lines := make([]string, len(args))
	failed := false
	for i, a := range args {
		verdict := "valid"
		if !validation.IsValidISO8601DateTime(a) {
			verdict = "invalid"
			failed = true
		}
		lines[i] = fmt.Sprintf("%s\t%s", verdict, a)
	}
	if err := writeLines(stdout, defaultSignals, lines); err != nil {
		return err
	}
	if failed {
		return errInvalidDates
	}
	return nil
}

func runGet(args []string, stdout io.Writer, log *logrus.Logger) error {
	fs := flag.NewFlagSet("get", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	base := fs.String("base", os.Getenv(envBaseURL), "API base URL (default $"+envBaseURL+")")
	timeout := fs.Duration("timeout", client.DefaultTimeout, "request timeout")
	block := fs.String("block-signals", defaultSignals, "signals held back while writing output")
	verbose := fs.Bool("v", false, "log requests at debug level")
	dateKeys := fs.String("date-keys", defaultDateKeys, "keys whose values must be ISO-8601 dates")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("%w: get [-base URL] path [key=value...]", errUsage)
	}
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	c, err := client.New(client.Config{
		BaseURL: *base,
		Timeout: *timeout,
		Logger:  log,
	})
	if err != nil {
		return err
	}
	defer c.Close()

	params, err := parsePairs(fs.Args()[1:], splitKeys(*dateKeys))
	if err != nil {
		return err
	}
	req := &client.Request{Path: fs.Arg(0), Params: params}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	body, err := c.Do(ctx, req)
	if err != nil {
		return err
	}
	return writeLines(stdout, *block, []string{string(body)})
}

// parsePairs turns key=value arguments into ordered params. Values of the
// keys in dateKeys are checked before anything is sent.
func parsePairs(args []string, dateKeys map[string]bool) (encoding.Params, error) {
	var params encoding.Params
	for _, a := range args {
		key, value, ok := strings.Cut(a, "=")
		if !ok {
			return nil, fmt.Errorf("%w: expected key=value, got %q", errUsage, a)
		}
		if dateKeys[key] {
			if err := validation.ValidateDateTime(key, value); err != nil {
				return nil, err
			}
		}
		params = params.Add(key, value)
	}
	return params, nil
}

func splitKeys(list string) map[string]bool {
	keys := make(map[string]bool)
	for _, k := range strings.Split(list, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys[k] = true
		}
	}
	return keys
}

// writeLines writes all lines with the named signals held back, so an
// interrupt cannot leave a partial line behind.
func writeLines(w io.Writer, signalList string, lines []string) error {
	sigs, err := signals.ParseList(signalList)
	if err != nil {
		return err
	}

	return signals.WithBlocked(sigs, func() error {
		for _, line := range lines {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil
	})
}
