package memory

import (
	"context"

	"github.com/Aerucodes/CryptoDM/pkg/models"
	"github.com/Aerucodes/CryptoDM/pkg/storage"
)

// GetUser retrieves a user by ID.
func (s *Store) GetUser(ctx context.Context, id int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &user, nil
}

// GetUserByUsername retrieves a user by exact username match.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var match models.User
	var found bool
	for _, user := range s.users {
		if user.Username != username {
			continue
		}
		if !found || user.ID < match.ID {
			match = user
			found = true
		}
	}
	if !found {
		return nil, storage.ErrNotFound
	}
	return &match, nil
}

// CreateUser creates a new user and returns it with its assigned ID.
func (s *Store) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = s.nextUserID
	s.nextUserID++
	s.users[user.ID] = *user
	return user, nil
}
