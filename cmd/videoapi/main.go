package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"videoapi/internal/app"
	"videoapi/internal/config"
)

func main() {
	cfg := config.FromEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatalf("boot: %v", err)
	}
	log.Printf("videoapi listening on %s (DB_DRIVER=%s)", a.Addr(), cfg.DBDriver)

	// Blocks until SIGINT/SIGTERM.
	if err := a.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
