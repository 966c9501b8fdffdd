//go:build !unix

package main

import (
	"os"
)

func notifyControlSignals(_, _ chan<- os.Signal) {}
