package main

import (
	"context"
	"io"
	"log"
	"log/slog"

	"github.com/mockview/mockview/internal/client/cli"
	"github.com/mockview/mockview/internal/client/config"
	"github.com/mockview/mockview/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	// The REPL owns stdout; client-side logs would garble the prompts.
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
