// Command hongroise assigns commerces to emplacements from built-in flow
// and distance matrices.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/abdelaziz-lounes/hungarian-method-implementation/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
