package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/countdown/internal/buildinfo"
	"github.com/dmitrijs2005/countdown/internal/cli"
	"github.com/dmitrijs2005/countdown/internal/config"
	"github.com/dmitrijs2005/countdown/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg := config.LoadConfig()

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}
	logger := logging.New(os.Stderr, level)

	ctx := context.Background()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
