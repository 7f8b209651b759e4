package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Pillumz/spruthub-mcp-server/pkg/catalog"
	"github.com/Pillumz/spruthub-mcp-server/pkg/config"
	"github.com/Pillumz/spruthub-mcp-server/pkg/hub"
	sprutmcp "github.com/Pillumz/spruthub-mcp-server/pkg/mcp"
	"github.com/Pillumz/spruthub-mcp-server/pkg/spruthub"
)

func main() {
	// Logging must go to stderr — stdout is the MCP transport
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	hubCfg := hub.Config{
		URL:      cfg.Hub.WSURL,
		Email:    cfg.Hub.Email,
		Password: cfg.Hub.Password,
		Serial:   cfg.Hub.Serial,
	}

	// The hub connection is established lazily, on the first tool call that
	// needs it; the catalog tools work without one.
	dial := func(ctx context.Context) (spruthub.Caller, error) {
		client := hub.NewClient(hubCfg)
		if err := client.Connect(ctx); err != nil {
			return nil, err
		}
		return client, nil
	}

	server := sprutmcp.NewServer(dial, catalog.New())
	defer server.Close()

	log.Info().Msg("Starting MCP server on stdio")

	if err := server.ServeStdio(); err != nil {
		log.Fatal().Err(err).Msg("MCP server failed")
	}
}
