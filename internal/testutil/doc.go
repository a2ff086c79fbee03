// Package testutil provides testing utilities and helpers.
//
// This package contains test helpers shared by the SDK packages and the CLI,
// such as HTTP servers that echo what the client sent.
//
// This package is internal and should not be imported by external code.
package testutil
