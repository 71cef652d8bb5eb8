package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Aerucodes/CryptoDM/pkg/models"
	"github.com/Aerucodes/CryptoDM/pkg/storage"
)

// GetBotSettings retrieves the bot settings. The table is expected to hold
// a single row; if several exist the oldest one wins.
func (s *Store) GetBotSettings(ctx context.Context) (*models.BotSettings, error) {
	var settings models.BotSettings
	if err := s.db.WithContext(ctx).First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get bot settings: %w", err)
	}
	return &settings, nil
}

// CreateBotSettings inserts a bot settings row and returns it with its
// assigned ID and timestamps.
func (s *Store) CreateBotSettings(ctx context.Context, settings *models.BotSettings) (*models.BotSettings, error) {
	if err := s.db.WithContext(ctx).Create(settings).Error; err != nil {
		return nil, fmt.Errorf("failed to create bot settings: %w", err)
	}
	return settings, nil
}

// UpdateBotSettings applies the non-nil fields of params to the bot
// settings row with the given ID and returns the updated row.
func (s *Store) UpdateBotSettings(ctx context.Context, id int64, params storage.UpdateBotSettingsParams) (*models.BotSettings, error) {
	var settings models.BotSettings
	if err := s.db.WithContext(ctx).First(&settings, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get bot settings: %w", err)
	}

	params.Apply(&settings)
	if err := s.db.WithContext(ctx).Save(&settings).Error; err != nil {
		return nil, fmt.Errorf("failed to update bot settings: %w", err)
	}
	return &settings, nil
}
