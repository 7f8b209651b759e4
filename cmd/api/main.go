package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Pillumz/spruthub-mcp-server/pkg/api"
	"github.com/Pillumz/spruthub-mcp-server/pkg/config"
	"github.com/Pillumz/spruthub-mcp-server/pkg/hub"
	"github.com/Pillumz/spruthub-mcp-server/pkg/spruthub"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	ctx := context.Background()

	client := hub.NewClient(hub.Config{
		URL:      cfg.Hub.WSURL,
		Email:    cfg.Hub.Email,
		Password: cfg.Hub.Password,
		Serial:   cfg.Hub.Serial,
	})
	if err := client.Connect(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Sprut.hub")
	}
	defer client.Close()

	controller := spruthub.NewController(client)
	router := api.NewRouter(controller, client)

	// Handle shutdown gracefully
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info().Msg("Shutting down...")
		client.Close()
		os.Exit(0)
	}()

	addr := cfg.APIAddress()
	log.Info().Str("address", addr).Msg("Starting API server")

	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
