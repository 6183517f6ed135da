package main

import (
	"fmt"
	"os"
)

// stdioDup points the process's stdout and stderr at f.
var stdioDup = dupStdio

// openStdioLog opens path for appending and routes stdout and stderr into
// it. The caller writes progress into the returned file and closes it.
func openStdioLog(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open stdio log: %w", err)
	}
	if err := stdioDup(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("redirect stdio to %s: %w", path, err)
	}
	return f, nil
}
