package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Aerucodes/CryptoDM/pkg/models"
	"github.com/Aerucodes/CryptoDM/pkg/storage"
)

// GetStats retrieves the dashboard statistics. The table is expected to
// hold a single row; if several exist the oldest one wins.
func (s *Store) GetStats(ctx context.Context) (*models.Stats, error) {
	var stats models.Stats
	if err := s.db.WithContext(ctx).First(&stats).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}
	return &stats, nil
}

// CreateStats inserts a statistics row and returns it with its assigned ID.
func (s *Store) CreateStats(ctx context.Context, stats *models.Stats) (*models.Stats, error) {
	if err := s.db.WithContext(ctx).Create(stats).Error; err != nil {
		return nil, fmt.Errorf("failed to create stats: %w", err)
	}
	return stats, nil
}

// UpdateStats applies the non-nil fields of params to the statistics row.
// It never creates one; callers that want upsert behavior seed the row
// first.
func (s *Store) UpdateStats(ctx context.Context, params storage.UpdateStatsParams) (*models.Stats, error) {
	var stats models.Stats
	if err := s.db.WithContext(ctx).First(&stats).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	params.Apply(&stats)
	if err := s.db.WithContext(ctx).Save(&stats).Error; err != nil {
		return nil, fmt.Errorf("failed to update stats: %w", err)
	}
	return &stats, nil
}

// IncrementWebhookCalls adds one to the webhook call counter and returns
// the updated row. The add happens in place on the database so concurrent
// increments are never lost.
func (s *Store) IncrementWebhookCalls(ctx context.Context) (*models.Stats, error) {
	var stats models.Stats
	if err := s.db.WithContext(ctx).First(&stats).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	res := s.db.WithContext(ctx).
		Model(&models.Stats{}).
		Where("id = ?", stats.ID).
		Update("webhook_calls", gorm.Expr("webhook_calls + ?", 1))
	if res.Error != nil {
		return nil, fmt.Errorf("failed to increment webhook calls: %w", res.Error)
	}

	if err := s.db.WithContext(ctx).First(&stats, stats.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload stats: %w", err)
	}
	return &stats, nil
}
