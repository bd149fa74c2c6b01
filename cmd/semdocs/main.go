// Package main provides the semdocs binary entry point. Semdocs generates
// natural-language documentation, SHACL constraints, and schema refactors
// for OWL/RDF ontologies.
package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "semdocs"
)

// Exit codes. Fatal errors print one line to stderr and terminate with the
// code of their category; warnings never change the exit code.
const (
	exitFailure       = 1
	exitPanic         = 2
	exitMissingInput  = 3
	exitOutputExists  = 4
	exitBackupFailure = 5
)

// exitError carries a category exit code alongside the error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func exitErrorf(code int, format string, args ...any) error {
	return &exitError{code: code, err: fmt.Errorf(format, args...)}
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(exitPanic)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		code := exitFailure
		var ee *exitError
		if errors.As(err, &ee) {
			code = ee.code
		}
		os.Exit(code)
	}
}
