package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"firefield/internal/app"
	"firefield/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	logPath := flag.String("log", "", "write logs to this file instead of discarding them")
	flag.Parse()

	// The screen owns the terminal; stray log lines would corrupt it.
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.SetOutput(os.Stderr)
			log.Fatalf("open log: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("terminal init: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := term.DefaultOptions()
	opts.FPS = cfg.TPS
	opts.Seed = cfg.Seed

	err = term.Run(ctx, screen, cfg.FireConfig(), opts, cfg.ReducedMotion)
	screen.Fini()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
