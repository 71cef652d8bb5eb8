package storage

import (
	"context"

	"github.com/Aerucodes/CryptoDM/pkg/models"
)

// UpdateWebhookConfigParams describes a partial update of a webhook config.
// Nil fields keep the stored value.
type UpdateWebhookConfigParams struct {
	URL           *string
	NotifySuccess *bool
	NotifyPending *bool
	NotifyFailed  *bool
	NotifyWallet  *bool
}

// Apply overlays the non-nil fields onto the given config.
func (p UpdateWebhookConfigParams) Apply(cfg *models.WebhookConfig) {
	if p.URL != nil {
		cfg.URL = *p.URL
	}
	if p.NotifySuccess != nil {
		cfg.NotifySuccess = *p.NotifySuccess
	}
	if p.NotifyPending != nil {
		cfg.NotifyPending = *p.NotifyPending
	}
	if p.NotifyFailed != nil {
		cfg.NotifyFailed = *p.NotifyFailed
	}
	if p.NotifyWallet != nil {
		cfg.NotifyWallet = *p.NotifyWallet
	}
}

// WebhookStore defines the interface for managing the webhook configuration.
// Storage permits multiple rows; the oldest one is the active config.
type WebhookStore interface {
	// GetWebhookConfig retrieves the active webhook config, or ErrNotFound if
	// none has been created yet.
	GetWebhookConfig(ctx context.Context) (*models.WebhookConfig, error)

	// CreateWebhookConfig creates a webhook config and returns it with its
	// assigned ID and timestamps.
	CreateWebhookConfig(ctx context.Context, cfg *models.WebhookConfig) (*models.WebhookConfig, error)

	// UpdateWebhookConfig applies a partial update to the config with the
	// given ID and returns the result.
	UpdateWebhookConfig(ctx context.Context, id int64, params UpdateWebhookConfigParams) (*models.WebhookConfig, error)
}
