package memory

import (
	"context"
	"time"

	"github.com/Aerucodes/CryptoDM/pkg/models"
	"github.com/Aerucodes/CryptoDM/pkg/storage"
)

// GetBotSettings retrieves the active bot settings, the oldest row if several
// were ever inserted.
func (s *Store) GetBotSettings(ctx context.Context) (*models.BotSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var current models.BotSettings
	var found bool
	for _, settings := range s.botSettings {
		if !found || settings.ID < current.ID {
			current = settings
			found = true
		}
	}
	if !found {
		return nil, storage.ErrNotFound
	}
	return &current, nil
}

// CreateBotSettings creates a bot settings row and returns it with its
// assigned ID and timestamps.
func (s *Store) CreateBotSettings(ctx context.Context, settings *models.BotSettings) (*models.BotSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	settings.ID = s.nextBotSettingsID
	s.nextBotSettingsID++
	settings.CreatedAt = now
	settings.UpdatedAt = now
	s.botSettings[settings.ID] = *settings
	return settings, nil
}

// UpdateBotSettings applies a partial update to the settings with the given
// ID and returns the result.
func (s *Store) UpdateBotSettings(ctx context.Context, id int64, params storage.UpdateBotSettingsParams) (*models.BotSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, ok := s.botSettings[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	params.Apply(&settings)
	settings.UpdatedAt = time.Now()
	s.botSettings[id] = settings
	return &settings, nil
}
