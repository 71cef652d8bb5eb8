// Package postgres implements the Storage interface on top of PostgreSQL
// through GORM. Every method maps to a single statement; locking and
// isolation are left entirely to the database.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Aerucodes/CryptoDM/pkg/models"
	"github.com/Aerucodes/CryptoDM/pkg/storage"
)

// Store implements the Storage interface using PostgreSQL.
type Store struct {
	db *gorm.DB
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)

// New wraps an existing GORM handle. Tests use it to inject a mocked
// connection.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Open connects to the database at dsn, retrying up to attempts times with a
// fixed delay between tries. The GORM logger is kept silent; operational
// logging belongs to the caller.
func Open(dsn string, attempts uint, delay time.Duration) (*Store, error) {
	var db *gorm.DB
	err := retry.Do(
		func() error {
			var openErr error
			db, openErr = gorm.Open(pgdriver.Open(dsn), &gorm.Config{
				Logger: logger.Default.LogMode(logger.Silent),
			})
			return openErr
		},
		retry.Attempts(attempts),
		retry.Delay(delay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return New(db), nil
}

// Migrate creates or updates the schema for every stored entity.
func (s *Store) Migrate(ctx context.Context) error {
	err := s.db.WithContext(ctx).AutoMigrate(
		&models.User{},
		&models.Wallet{},
		&models.Transaction{},
		&models.WebhookConfig{},
		&models.BotSettings{},
		&models.Stats{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql connection: %w", err)
	}
	return sqlDB.Close()
}
