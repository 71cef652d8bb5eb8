package memory

import (
	"context"
	"time"

	"github.com/Aerucodes/CryptoDM/pkg/models"
	"github.com/Aerucodes/CryptoDM/pkg/storage"
)

// GetStats retrieves the active stats row, the oldest one if several were
// ever inserted.
func (s *Store) GetStats(ctx context.Context) (*models.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.currentStatsID()
	if !ok {
		return nil, storage.ErrNotFound
	}
	stats := s.stats[id]
	return &stats, nil
}

// CreateStats creates a stats row and returns it with its assigned ID.
func (s *Store) CreateStats(ctx context.Context, stats *models.Stats) (*models.Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats.ID = s.nextStatsID
	s.nextStatsID++
	stats.UpdatedAt = time.Now()
	s.stats[stats.ID] = *stats
	return stats, nil
}

// UpdateStats applies a partial update to the active stats row and returns
// the result. It never creates a row.
func (s *Store) UpdateStats(ctx context.Context, params storage.UpdateStatsParams) (*models.Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.currentStatsID()
	if !ok {
		return nil, storage.ErrNotFound
	}
	stats := s.stats[id]
	params.Apply(&stats)
	stats.UpdatedAt = time.Now()
	s.stats[id] = stats
	return &stats, nil
}

// IncrementWebhookCalls adds one to the webhook call counter of the active
// stats row. The write lock makes the read-modify-write atomic.
func (s *Store) IncrementWebhookCalls(ctx context.Context) (*models.Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.currentStatsID()
	if !ok {
		return nil, storage.ErrNotFound
	}
	stats := s.stats[id]
	stats.WebhookCalls++
	stats.UpdatedAt = time.Now()
	s.stats[id] = stats
	return &stats, nil
}

// currentStatsID returns the lowest stats row ID. The caller must hold mu.
func (s *Store) currentStatsID() (int64, bool) {
	var id int64
	var found bool
	for k := range s.stats {
		if !found || k < id {
			id = k
			found = true
		}
	}
	return id, found
}
