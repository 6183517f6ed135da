//go:build !unix

package main

import "os"

// dupStdio swaps the os.Stdout and os.Stderr handles. Panics from the runtime
// still reach the original stderr.
func dupStdio(f *os.File) error {
	os.Stdout = f
	os.Stderr = f
	return nil
}
