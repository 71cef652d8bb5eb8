// Package bootstrap picks and prepares the storage backend for a process.
//
// The durable backend is preferred. Anything that keeps it from coming up,
// whether a missing DSN, an unreachable server, a failed migration or a
// failed seed, demotes the process to the preloaded in-memory store so the
// dashboard stays usable.
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Aerucodes/CryptoDM/pkg/config"
	"github.com/Aerucodes/CryptoDM/pkg/storage"
	"github.com/Aerucodes/CryptoDM/pkg/storage/memory"
	"github.com/Aerucodes/CryptoDM/pkg/storage/postgres"
	"github.com/Aerucodes/CryptoDM/pkg/storage/seed"
)

// NewStorage returns the storage backend for this process. With a reachable
// DATABASE_URL it migrates, seeds and returns the postgres store; in every
// other case it returns the in-memory store and says so on the log.
func NewStorage(ctx context.Context, cfg config.Config, log *zap.SugaredLogger) storage.Storage {
	if cfg.DatabaseURL == "" {
		log.Infow("no database configured, using in-memory storage")
		return memory.New()
	}

	store, err := postgres.Open(cfg.DatabaseURL, cfg.ConnectAttempts, cfg.ConnectDelay)
	if err != nil {
		log.Warnw("database unreachable, falling back to in-memory storage", "error", err)
		return memory.New()
	}

	if err := store.Migrate(ctx); err != nil {
		log.Warnw("migration failed, falling back to in-memory storage", "error", err)
		_ = store.Close()
		return memory.New()
	}

	seeded, err := Seed(ctx, store)
	if err != nil {
		log.Warnw("seeding failed, falling back to in-memory storage", "error", err)
		_ = store.Close()
		return memory.New()
	}

	log.Infow("using postgres storage", "seeded", seeded)
	return store
}

// Seed inserts the default admin user, a zeroed stats row, the webhook
// config and the bot settings if the store has never been seeded. It
// reports whether it wrote anything. The bot settings row is the marker: its
// presence means a previous run already seeded this backend.
func Seed(ctx context.Context, s storage.Storage) (bool, error) {
	_, err := s.GetBotSettings(ctx)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return false, fmt.Errorf("failed to probe bot settings: %w", err)
	}

	if _, err := s.CreateUser(ctx, seed.AdminUser()); err != nil {
		return false, fmt.Errorf("failed to seed admin user: %w", err)
	}
	if _, err := s.CreateStats(ctx, seed.ZeroStats()); err != nil {
		return false, fmt.Errorf("failed to seed stats: %w", err)
	}
	if _, err := s.CreateWebhookConfig(ctx, seed.DefaultWebhookConfig()); err != nil {
		return false, fmt.Errorf("failed to seed webhook config: %w", err)
	}
	if _, err := s.CreateBotSettings(ctx, seed.DefaultBotSettings()); err != nil {
		return false, fmt.Errorf("failed to seed bot settings: %w", err)
	}

	return true, nil
}
