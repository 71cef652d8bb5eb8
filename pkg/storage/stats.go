package storage

import (
	"context"

	"github.com/Aerucodes/CryptoDM/pkg/models"
	"github.com/shopspring/decimal"
)

// UpdateStatsParams describes a partial update of the dashboard stats.
// Nil fields keep the stored value.
type UpdateStatsParams struct {
	TotalTransactions  *int64
	TotalVolume        *decimal.Decimal
	ActiveWallets      *int64
	WebhookCalls       *int64
	TransactionsGrowth *string
	VolumeGrowth       *string
	WalletsGrowth      *string
	WebhookCallsGrowth *string
}

// Apply overlays the non-nil fields onto the given stats.
func (p UpdateStatsParams) Apply(stats *models.Stats) {
	if p.TotalTransactions != nil {
		stats.TotalTransactions = *p.TotalTransactions
	}
	if p.TotalVolume != nil {
		stats.TotalVolume = *p.TotalVolume
	}
	if p.ActiveWallets != nil {
		stats.ActiveWallets = *p.ActiveWallets
	}
	if p.WebhookCalls != nil {
		stats.WebhookCalls = *p.WebhookCalls
	}
	if p.TransactionsGrowth != nil {
		stats.TransactionsGrowth = *p.TransactionsGrowth
	}
	if p.VolumeGrowth != nil {
		stats.VolumeGrowth = *p.VolumeGrowth
	}
	if p.WalletsGrowth != nil {
		stats.WalletsGrowth = *p.WalletsGrowth
	}
	if p.WebhookCallsGrowth != nil {
		stats.WebhookCallsGrowth = *p.WebhookCallsGrowth
	}
}

// StatsStore defines the interface for the dashboard aggregate counters.
// Storage permits multiple rows; the oldest one is the active stats row.
type StatsStore interface {
	// GetStats retrieves the active stats row, or ErrNotFound if none has
	// been created yet.
	GetStats(ctx context.Context) (*models.Stats, error)

	// CreateStats creates a stats row and returns it with its assigned ID.
	CreateStats(ctx context.Context, stats *models.Stats) (*models.Stats, error)

	// UpdateStats applies a partial update to the active stats row and
	// returns the result. It never creates a row; with no stats stored it
	// returns ErrNotFound.
	UpdateStats(ctx context.Context, params UpdateStatsParams) (*models.Stats, error)

	// IncrementWebhookCalls adds one to the webhook call counter of the
	// active stats row and returns the row as stored. The add happens at the
	// storage layer, so concurrent increments are never lost.
	IncrementWebhookCalls(ctx context.Context) (*models.Stats, error)
}
