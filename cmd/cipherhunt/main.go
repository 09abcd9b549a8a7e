package main

import (
	"context"
	"os"

	"github.com/dmitrijs2005/cipherhunt/internal/buildinfo"
	"github.com/dmitrijs2005/cipherhunt/internal/cli"
	"github.com/dmitrijs2005/cipherhunt/internal/config"
	"github.com/dmitrijs2005/cipherhunt/internal/logging"
	"github.com/google/uuid"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()

	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, cfg.Verbose).With("run_id", uuid.NewString())

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "failed to start", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	logger.Debug(ctx, "starting", "db", cfg.DatabasePath, "hash", cfg.HashAlgorithm)
	app.Run(ctx)
}
