//go:build !unix

package main

import (
	"fmt"
	"os"
	"time"
)

// redirectStdIO swaps the os.Stdout/os.Stderr values. Runtime panics still go
// to the original stderr on these platforms.
func redirectStdIO(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(f, "--- joypaint started %s ---\n", time.Now().Format(time.RFC3339))
	os.Stdout = f
	os.Stderr = f
	return nil
}
