package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"task-reminder/internal/cli"
	"task-reminder/internal/config"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Cancel the session on Ctrl+C outside raw mode and on SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCommand(config.NewLoader(), version)

	if err := root.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", cli.NewErrorHandler().HandleSimple(err))
		stop()
		os.Exit(1)
	}
}
