// Package validation provides request parameter validation.
//
// Date parameters sent to the API use the compact ISO-8601 forms
// "YYYY-MM-DD" and "YYYY-MM-DDTHH:MM:SSZ". The checks here are purely about
// shape and character class: field ranges are not checked, so "9999-99-99"
// passes and is left for the server to reject.
//
// This package is internal and should not be imported by external code.
package validation
