// Package main is the entry point for OSIRIS.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/samdwyer/osiris/internal/config"
	"github.com/samdwyer/osiris/internal/game"
	"github.com/samdwyer/osiris/internal/gamedata"
	"github.com/samdwyer/osiris/internal/logger"
	"github.com/samdwyer/osiris/internal/save"
	"github.com/samdwyer/osiris/internal/telemetry"
	"github.com/samdwyer/osiris/internal/ui"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	fresh := flag.Bool("new", false, "discard any saved game and start over")
	flag.BoolVar(&cfg.Plain, "plain", cfg.Plain, "use a plain line console instead of the full screen")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed for random events (0 = random)")
	flag.Parse()

	sessionID := uuid.NewString()
	ctx := context.Background()

	if cfg.Telemetry {
		setupOTelEnv(cfg)
		shutdown, err := telemetry.Setup(ctx, sessionID)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Game will run without observability")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	zl, err := logger.New(logger.Config{
		Level:      cfg.LogLevel,
		Encoding:   cfg.LogEncoding,
		OutputPath: cfg.LogPath,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	term, closeTerm, err := newTerminal(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize terminal: %v", err)
	}

	g, err := game.New(game.Config{
		Seed:      cfg.Seed,
		BeatDelay: cfg.BeatDelay,
		SessionID: sessionID,
		Fresh:     *fresh,
	}, term, save.NewStore(cfg.SavePath), zl)
	if err != nil {
		closeTerm()
		log.Fatalf("Failed to initialize game: %v", err)
	}

	zl.Info("session started",
		zap.String("session", sessionID),
		zap.Int64("seed", g.Session().Dice.Seed()),
		zap.Bool("plain", cfg.Plain),
	)

	err = g.Run(ctx)
	closeTerm()
	if err != nil {
		zl.Error("game error", zap.Error(err))
		log.Fatalf("Game error: %v", err)
	}
}

// newTerminal picks the full-screen console or the plain line console.
func newTerminal(cfg config.Config) (game.Terminal, func(), error) {
	if cfg.Plain {
		return ui.NewLineConsole(os.Stdin, os.Stdout, cfg.TextDelay), func() {}, nil
	}

	styles, err := ui.NewStyles(gamedata.MustLoadNarrative().Palette)
	if err != nil {
		return nil, nil, fmt.Errorf("build styles: %w", err)
	}
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, nil, fmt.Errorf("create screen: %w", err)
	}
	console := ui.NewConsole(screen, styles, cfg.TextDelay)
	return console, console.Close, nil
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv(cfg config.Config) {
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// The .env file may hold an unexpanded reference, so build the header here
	if cfg.HoneycombAPIKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", cfg.HoneycombAPIKey, cfg.HoneycombDataset))
	}
}
