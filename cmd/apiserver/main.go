// Package main runs the combat calculator REST API.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ramonehamilton/combat-calc/internal/api"
	"github.com/ramonehamilton/combat-calc/internal/config"
	"github.com/ramonehamilton/combat-calc/internal/mtga/cards/archidekt"
	"github.com/ramonehamilton/combat-calc/internal/version"
)

var (
	configPath = flag.String("config", "", "Config file path (default: ~/.combat-calc/config.toml)")
	port       = flag.Int("port", 0, "API server port (overrides config)")
	deckID     = flag.String("deck", "", "Default Archidekt deck ID (overrides config and DECK_ID)")
	debug      = flag.Bool("debug", false, "Enable debug logging")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *deckID != "" {
		cfg.Deck.DefaultID = *deckID
	}
	if *debug {
		cfg.App.DebugMode = true
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	fmt.Println("Combat Calculator - REST API Server")
	fmt.Println("===================================")
	fmt.Printf("Version: %s\n", version.GetVersion())
	fmt.Println()

	// Durations were checked by Validate.
	requestTimeout, _ := cfg.GetRequestTimeout()
	deckTimeout, _ := cfg.GetDeckTimeout()
	rateInterval, _ := cfg.GetRateInterval()

	client := archidekt.NewClient(
		archidekt.WithBaseURL(cfg.Deck.BaseURL),
		archidekt.WithHTTPClient(newHTTPClient(deckTimeout)),
		archidekt.WithRateLimit(rateInterval),
		archidekt.WithUserAgent(cfg.Deck.UserAgent),
		archidekt.WithLogger(logger),
	)

	if cfg.Deck.DefaultID == "" {
		logger.Warn("No default deck configured; /api/deck will return an error", "env", "DECK_ID")
	} else {
		logger.Info("Default deck configured", "deckID", cfg.Deck.DefaultID)
	}

	server := api.NewServer(&api.Config{
		Port:           cfg.Server.Port,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		RequestTimeout: requestTimeout,
		DefaultDeckID:  cfg.Deck.DefaultID,
	}, client, logger)

	if err := server.Start(); err != nil {
		log.Fatalf("Failed to start API server: %v", err)
	}

	fmt.Printf("API server running at http://localhost:%d\n", cfg.Server.Port)
	fmt.Println("Press Ctrl+C to stop")
	fmt.Println()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	fmt.Println()
	fmt.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", "error", err)
	}

	fmt.Println("API server stopped.")
}
