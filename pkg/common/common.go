// 29 Apr 2020

// Package common has the few things shared by the commands and their
// tests.
package common

import (
	"fmt"
	"io"
	"os"
)

// Exit codes for the commands
const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

// QuitWords end the program from any prompt except a chain id.
var QuitWords = []string{"q", "Q", "quit"}

// ChainQuitWords end the program from a chain id prompt. "q" and "Q"
// are valid chain ids there.
var ChainQuitWords = []string{"quit"}

// IsQuit says if s is one of words.
func IsQuit(s string, words []string) bool {
	for _, w := range words {
		if s == w {
			return true
		}
	}
	return false
}

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
func WrtTemp(s string) (string, error) {
	f_tmp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", fmt.Errorf("tempfile fail: %w", err)
	}
	defer f_tmp.Close()
	if _, err := io.WriteString(f_tmp, s); err != nil {
		return "", fmt.Errorf("writing string to temp file %v: %w", f_tmp.Name(), err)
	}
	return f_tmp.Name(), nil
}
