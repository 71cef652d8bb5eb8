package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/Aerucodes/CryptoDM/pkg/models"
	"github.com/Aerucodes/CryptoDM/pkg/storage"
)

func userColumns() []string {
	return []string{"id", "username", "password", "email"}
}

func TestGetUser(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		store, mock := newMockStore(t)

		rows := sqlmock.NewRows(userColumns()).
			AddRow(int64(1), "admin", "changeme", "admin@cryptodm.local")
		mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"\."id" = \$1`).
			WithArgs(int64(1), 1).
			WillReturnRows(rows)

		user, err := store.GetUser(context.Background(), 1)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, "admin", user.Username)
		assert.Equal(t, "admin@cryptodm.local", user.Email)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		store, mock := newMockStore(t)

		mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"\."id" = \$1`).
			WithArgs(int64(42), 1).
			WillReturnRows(sqlmock.NewRows(userColumns()))

		user, err := store.GetUser(context.Background(), 42)

		assert.ErrorIs(t, err, storage.ErrNotFound)
		assert.Nil(t, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Storage Error", func(t *testing.T) {
		store, mock := newMockStore(t)

		mock.ExpectQuery(`SELECT \* FROM "users"`).
			WillReturnError(errors.New("connection reset"))

		user, err := store.GetUser(context.Background(), 1)

		assert.Error(t, err)
		assert.NotErrorIs(t, err, storage.ErrNotFound)
		assert.Nil(t, user)
	})
}

func TestGetUserByUsername(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		store, mock := newMockStore(t)

		rows := sqlmock.NewRows(userColumns()).
			AddRow(int64(1), "admin", "changeme", "admin@cryptodm.local")
		mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1`).
			WithArgs("admin", 1).
			WillReturnRows(rows)

		user, err := store.GetUserByUsername(context.Background(), "admin")

		assert.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, "admin", user.Username)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		store, mock := newMockStore(t)

		mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1`).
			WithArgs("ghost", 1).
			WillReturnRows(sqlmock.NewRows(userColumns()))

		user, err := store.GetUserByUsername(context.Background(), "ghost")

		assert.ErrorIs(t, err, storage.ErrNotFound)
		assert.Nil(t, user)
	})
}

func TestCreateUser(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		store, mock := newMockStore(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
		mock.ExpectCommit()

		user, err := store.CreateUser(context.Background(), &models.User{
			Username: "operator",
			Password: "s3cret",
			Email:    "ops@cryptodm.local",
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(7), user.ID)
		assert.Equal(t, "operator", user.Username)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate Username", func(t *testing.T) {
		store, mock := newMockStore(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "users"`).
			WillReturnError(errors.New(`duplicate key value violates unique constraint "idx_users_username"`))
		mock.ExpectRollback()

		user, err := store.CreateUser(context.Background(), &models.User{Username: "admin"})

		assert.Error(t, err)
		assert.Nil(t, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
