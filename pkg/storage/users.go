package storage

import (
	"context"

	"github.com/Aerucodes/CryptoDM/pkg/models"
)

// UserStore defines the interface for managing dashboard admin users.
type UserStore interface {
	// GetUser retrieves a user by ID.
	GetUser(ctx context.Context, id int64) (*models.User, error)

	// GetUserByUsername retrieves a user by exact username match.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// CreateUser creates a new user and returns it with its assigned ID.
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
}
