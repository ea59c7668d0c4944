//go:build !windows

package main

import (
	"os"
	"syscall"
)

// shutdownSignals stop a run between images.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}
