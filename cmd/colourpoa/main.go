// Command colourpoa builds a partial-order alignment graph from a FASTA file
// and colours every edge by which sequence groups support it.
//
// Usage:
//
//	colourpoa -b 3 -s 12 -o graph.dot input.fa
package main

import (
	"context"
	"os"
	"os/signal"

	"golang.org/x/term"
)

// version is overridden at link time with -ldflags "-X main.version=...".
var version = "dev"

// main executes the root command, cancelled on interrupt, and exits with
// status 1 on error.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
