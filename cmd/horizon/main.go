package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MANASI777-hub/horizon/internal/api"
	"github.com/MANASI777-hub/horizon/internal/cache"
	"github.com/MANASI777-hub/horizon/internal/config"
	"github.com/MANASI777-hub/horizon/internal/events"
	"github.com/MANASI777-hub/horizon/internal/gemini"
	"github.com/MANASI777-hub/horizon/internal/narrative"
	"github.com/MANASI777-hub/horizon/internal/nearby"
	"github.com/MANASI777-hub/horizon/internal/store"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	slog.Info("horizon starting", "port", cfg.Port)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	if cfg.DatabaseURL == "" {
		slog.Error("DATABASE_URL is required")
		os.Exit(1)
	}
	db, err := store.New(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("database connected")

	// Gemini client
	if cfg.GeminiAPIKey == "" {
		slog.Error("GEMINI_API_KEY is required")
		os.Exit(1)
	}
	llm := gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	slog.Info("gemini client ready", "model", cfg.GeminiModel)

	narrator := narrative.New(llm, slog.Default())

	// Redis cache (optional — handlers skip caching without it)
	var redisCache *cache.Cache
	if cfg.RedisURL != "" {
		redisCache, err = cache.New(ctx, cfg.RedisURL, slog.Default())
		if err != nil {
			slog.Warn("redis unavailable — running without cache", "error", err)
			redisCache = nil
		} else {
			defer redisCache.Close()
			slog.Info("redis connected")
		}
	} else {
		slog.Warn("REDIS_URL not set — running without cache")
	}

	// NATS (optional — journal writes still invalidate inline)
	var bus *events.Client
	if cfg.NatsURL != "" {
		bus, err = events.NewClient(ctx, cfg.NatsURL, cfg.NatsToken, slog.Default())
		if err != nil {
			slog.Warn("NATS unavailable — running without events", "error", err)
			bus = nil
		} else {
			defer bus.Close()
			slog.Info("NATS connected", "url", cfg.NatsURL)
		}
	} else {
		slog.Warn("NATS_URL not set — running without events")
	}

	if bus != nil {
		inv := events.NewInvalidator(redisCache, slog.Default())
		if err := bus.Subscribe(events.SubjectJournalSaved, inv.HandleJournalSaved); err != nil {
			slog.Error("failed to subscribe to journal events", "error", err)
			os.Exit(1)
		}
	}

	places := nearby.NewClient(cfg.OverpassURL)

	// HTTP API
	srv := api.NewServer(cfg.Port, cfg.APIToken, api.Deps{
		Store:    db,
		Cache:    redisCache,
		Events:   publisherOrNil(bus),
		Narrator: narrator,
		Nearby:   places,
		Logger:   slog.Default(),
	})
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	// Announce registration
	if bus != nil {
		if err := bus.Publish(events.SubjectRegistered, map[string]any{
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"port":      cfg.Port,
		}); err != nil {
			slog.Warn("failed to publish registration", "error", err)
		}
	}

	slog.Info("horizon ready", "port", cfg.Port)

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	slog.Info("shutting down")
	cancel()
	slog.Info("horizon stopped")
}

// publisherOrNil keeps the interface nil when the client is nil; a typed nil
// inside api.Publisher would dodge the handlers' nil checks.
func publisherOrNil(c *events.Client) api.Publisher {
	if c == nil {
		return nil
	}
	return c
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
