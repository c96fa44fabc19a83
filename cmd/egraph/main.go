package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/livalex/egraph/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Errors are reported by cli.Execute itself; only the exit code is
	// decided here.
	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		os.Exit(1)
	}
}
