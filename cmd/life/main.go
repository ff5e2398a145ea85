package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"lifeterm/internal/app"
	_ "lifeterm/internal/seed"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("life: ")

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := log.New(os.Stderr, "life: ", 0)
	if cfg.Headless {
		if _, err := app.RunHeadless(ctx, cfg, os.Stdout); err != nil {
			fatal(err)
		}
		return
	}
	if err := app.RunTerminal(ctx, cfg, os.Stdout, logger); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	if errors.Is(err, app.ErrInvalidConfig) {
		flag.Usage()
	}
	log.Fatal(err)
}
