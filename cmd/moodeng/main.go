// Package main provides the moodeng CLI, a local-first note store.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/moodeng-app/moodeng/pkg/types"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the CLI exit code: 1 for user errors such as a
// missing note or a bad field value, 2 for system failures.
func exitCode(err error) int {
	switch {
	case errors.Is(err, types.ErrNotFound),
		errors.Is(err, types.ErrValidation),
		errors.Is(err, types.ErrDuplicateKey):
		return exitUserError
	default:
		return exitSysError
	}
}
