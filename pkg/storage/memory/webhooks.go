package memory

import (
	"context"
	"time"

	"github.com/Aerucodes/CryptoDM/pkg/models"
	"github.com/Aerucodes/CryptoDM/pkg/storage"
)

// GetWebhookConfig retrieves the active webhook config, the oldest row if
// several were ever inserted.
func (s *Store) GetWebhookConfig(ctx context.Context) (*models.WebhookConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var current models.WebhookConfig
	var found bool
	for _, cfg := range s.webhookConfigs {
		if !found || cfg.ID < current.ID {
			current = cfg
			found = true
		}
	}
	if !found {
		return nil, storage.ErrNotFound
	}
	return &current, nil
}

// CreateWebhookConfig creates a webhook config and returns it with its
// assigned ID and timestamps.
func (s *Store) CreateWebhookConfig(ctx context.Context, cfg *models.WebhookConfig) (*models.WebhookConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	cfg.ID = s.nextWebhookConfigID
	s.nextWebhookConfigID++
	cfg.CreatedAt = now
	cfg.UpdatedAt = now
	s.webhookConfigs[cfg.ID] = *cfg
	return cfg, nil
}

// UpdateWebhookConfig applies a partial update to the config with the given
// ID and returns the result.
func (s *Store) UpdateWebhookConfig(ctx context.Context, id int64, params storage.UpdateWebhookConfigParams) (*models.WebhookConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, ok := s.webhookConfigs[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	params.Apply(&cfg)
	cfg.UpdatedAt = time.Now()
	s.webhookConfigs[id] = cfg
	return &cfg, nil
}
