// Package bootstrap wires configuration into a store and session for the
// spellsheet binaries.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"spellsheet/internal/adapters/filesystem"
	"spellsheet/internal/adapters/seed"
	"spellsheet/internal/adapters/sqlite"
	"spellsheet/internal/application"
	"spellsheet/internal/config"
	"spellsheet/internal/domain"
	"spellsheet/internal/ports"
)

// Runtime holds the opened collaborators of one process
type Runtime struct {
	Config  *config.Config
	Store   ports.Store
	Session *application.Session
	Files   *filesystem.Repository
}

// Close releases the store
func (r *Runtime) Close() error {
	return r.Store.Close()
}

// Open opens the SQLite store from cfg and starts a session on it
func Open(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Runtime, error) {
	store, err := sqlite.Open(cfg.StorePath())
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	opts, err := SessionOptions(cfg, log)
	if err != nil {
		store.Close()
		return nil, err
	}

	log.Debug("store opened", "path", store.Path())
	return &Runtime{
		Config:  cfg,
		Store:   store,
		Session: application.Open(ctx, store, opts...),
		Files:   filesystem.NewRepository("."),
	}, nil
}

// SessionOptions translates configuration into session options
func SessionOptions(cfg *config.Config, log *slog.Logger) ([]application.Option, error) {
	policy, err := domain.ParsePolicy(cfg.Selection.Policy)
	if err != nil {
		return nil, err
	}

	opts := []application.Option{
		application.WithLogger(log),
		application.WithPolicy(policy),
		application.WithUsageTracking(cfg.Selection.TrackUsage()),
		application.WithCollator(domain.NewCollator(cfg.Selection.Locale)),
	}
	if cfg.Selection.Seed != 0 {
		opts = append(opts, application.WithSeed(cfg.Selection.Seed))
	}
	if src := SeedSource(cfg.Seed, log); src != nil {
		opts = append(opts, application.WithSeedSource(src))
	}
	return opts, nil
}

// SeedSource returns the starter list source for cfg, or nil when seeding is off.
// A configured URL is tried first, with the bundled list as fallback.
func SeedSource(cfg config.SeedConfig, log *slog.Logger) ports.SeedSource {
	if cfg.Disabled {
		return nil
	}
	if cfg.URL == "" {
		return seed.Embedded{}
	}
	return seed.Fallback{seed.NewHTTP(cfg.URL, cfg.Timeout, log), seed.Embedded{}}
}
