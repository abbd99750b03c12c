// Package cli provides terminal output helpers for the stashq command.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Fatal prints a message to stderr and exits with code 1.
func Fatal(msg string) {
	fmt.Fprintln(os.Stderr, "error:", msg)
	os.Exit(1)
}

// FatalErr prints an error message with details to stderr and exits with code 1.
func FatalErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}

// Info prints an informational message to stdout.
func Info(msg string) {
	fmt.Println(msg)
}

// Infof prints a formatted informational message to stdout.
func Infof(format string, args ...any) {
	fmt.Printf(format+"\n", args...)
}

// Warn prints a warning message to stderr.
func Warn(msg string) {
	fmt.Fprintln(os.Stderr, "warning:", msg)
}

// JSON pretty-prints a value as indented JSON on stdout.
func JSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		FatalErr("encoding output", err)
	}
	fmt.Println(string(out))
}
