package memory

import (
	"context"
	"testing"

	"github.com/Aerucodes/CryptoDM/pkg/models"
	"github.com/Aerucodes/CryptoDM/pkg/storage"
	"github.com/stretchr/testify/assert"
)

func TestCreateUser(t *testing.T) {
	s := NewEmpty()

	first, err := s.CreateUser(context.Background(), &models.User{Username: "admin", Password: "changeme", Email: "admin@cryptodm.local"})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)

	second, err := s.CreateUser(context.Background(), &models.User{Username: "viewer", Password: "secret"})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)
}

func TestGetUser(t *testing.T) {
	s := NewEmpty()
	created, err := s.CreateUser(context.Background(), &models.User{Username: "admin", Password: "changeme"})
	assert.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		user, err := s.GetUser(context.Background(), created.ID)

		assert.NoError(t, err)
		assert.Equal(t, created, user)
	})

	t.Run("Not Found", func(t *testing.T) {
		_, err := s.GetUser(context.Background(), 42)

		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestGetUserByUsername(t *testing.T) {
	s := NewEmpty()
	created, err := s.CreateUser(context.Background(), &models.User{Username: "admin", Password: "changeme"})
	assert.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		user, err := s.GetUserByUsername(context.Background(), "admin")

		assert.NoError(t, err)
		assert.Equal(t, created, user)
	})

	t.Run("Not Found", func(t *testing.T) {
		_, err := s.GetUserByUsername(context.Background(), "nobody")

		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}
