package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ericfisherdev/fishledger/internal/adapter/driving/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Cancel the prompt loop on SIGINT/SIGTERM so deferred closes still run.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand().ExecuteContext(ctx); err != nil {
		code := cli.ExitCode(err)
		if code == cli.ExitLookupFailed {
			slog.Warn("lookup failed", "error", err)
		} else {
			slog.Error("fatal error", "error", err)
		}
		return code
	}
	return cli.ExitSuccess
}
