// Command server runs the show catalog HTTP API (CMS and Discovery).
//
// Configuration is read from CONFIG_PATH (default ./config.yaml) and
// environment variables. SIGINT or SIGTERM triggers a graceful shutdown.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/php-ini/thamaneya/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
