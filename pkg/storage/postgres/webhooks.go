package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Aerucodes/CryptoDM/pkg/models"
	"github.com/Aerucodes/CryptoDM/pkg/storage"
)

// GetWebhookConfig retrieves the webhook configuration. The table is
// expected to hold a single row; if several exist the oldest one wins.
func (s *Store) GetWebhookConfig(ctx context.Context) (*models.WebhookConfig, error) {
	var config models.WebhookConfig
	if err := s.db.WithContext(ctx).First(&config).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get webhook config: %w", err)
	}
	return &config, nil
}

// CreateWebhookConfig inserts a webhook configuration and returns it with
// its assigned ID and timestamps.
func (s *Store) CreateWebhookConfig(ctx context.Context, config *models.WebhookConfig) (*models.WebhookConfig, error) {
	if err := s.db.WithContext(ctx).Create(config).Error; err != nil {
		return nil, fmt.Errorf("failed to create webhook config: %w", err)
	}
	return config, nil
}

// UpdateWebhookConfig applies the non-nil fields of params to the webhook
// configuration with the given ID and returns the updated row.
func (s *Store) UpdateWebhookConfig(ctx context.Context, id int64, params storage.UpdateWebhookConfigParams) (*models.WebhookConfig, error) {
	var config models.WebhookConfig
	if err := s.db.WithContext(ctx).First(&config, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get webhook config: %w", err)
	}

	params.Apply(&config)
	if err := s.db.WithContext(ctx).Save(&config).Error; err != nil {
		return nil, fmt.Errorf("failed to update webhook config: %w", err)
	}
	return &config, nil
}
