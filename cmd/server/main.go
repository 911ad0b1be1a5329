package main

import (
	"fmt"

	httphandler "github.com/MKhiriev/go-service-starter/internal/handler/http"
	"github.com/MKhiriev/go-service-starter/internal/logger"
	"github.com/MKhiriev/go-service-starter/internal/server"
	"github.com/MKhiriev/go-service-starter/internal/settings"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := settings.Get()
	if err != nil {
		// settings failures are fatal at boot: the resolver reports every
		// coercion error and invariant violation in one pass
		log := logger.NewLogger("starter-server", settings.LevelError)
		log.Fatal().Err(err).Msg("error resolving settings")
	}

	log := logger.NewLogger("starter-server", cfg.LogLevel)
	log.Debug().Any("settings", cfg).Msg("resolved settings")

	handler := httphandler.NewHandler(cfg, log)
	srv := server.NewServer(handler.Init(), cfg.API, log)
	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
