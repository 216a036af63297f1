package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/projconf/internal/client"
	"github.com/MKhiriev/projconf/internal/config"
	"github.com/MKhiriev/projconf/internal/logger"
	"github.com/MKhiriev/projconf/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, args, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "projconf: %v\n", err)
		os.Exit(2)
	}

	if cfg.ShowVersion {
		printBuildInfo()
		return
	}

	level, _ := zerolog.ParseLevel(cfg.Log.Level)
	log := logger.NewLogger(os.Stderr, "projconf", level)
	log.Debug().Any("settings", cfg).Msg("received settings")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(cfg, args, os.Stdout, log)
	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("projconf run error")
	}
}

func printBuildInfo() {
	fmt.Print(models.NewBuildInfo(buildVersion, buildDate, buildCommit))
}
