package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/criteo/copilot-auth/internal/client/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := commands.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
