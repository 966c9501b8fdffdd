//go:build unix

package main

import (
	"os"
	"os/signal"
	"syscall"
)

// notifyControlSignals delivers SIGUSR1 ("kill -USR1 <pid>") as a
// snapshot request and SIGUSR2 as a switch to the next filter.
func notifyControlSignals(snapshot, nextFilter chan<- os.Signal) {
	signal.Notify(snapshot, syscall.SIGUSR1)
	signal.Notify(nextFilter, syscall.SIGUSR2)
}
