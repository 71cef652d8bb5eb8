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

// Only the columns the assertions look at; GORM zero-fills the rest.
func settingsColumns() []string {
	return []string{"id", "token", "bitcoin_confirmations", "ethereum_confirmations", "erc20_confirmations", "discord_guild_id"}
}

func TestGetBotSettings(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		store, mock := newMockStore(t)

		rows := sqlmock.NewRows(settingsColumns()).
			AddRow(int64(1), "REPLACE_WITH_BOT_TOKEN", 3, 12, 12, "0")
		mock.ExpectQuery(`SELECT \* FROM "bot_settings" ORDER BY "bot_settings"\."id" LIMIT \$1`).
			WithArgs(1).
			WillReturnRows(rows)

		settings, err := store.GetBotSettings(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, int64(1), settings.ID)
		assert.Equal(t, 3, settings.BitcoinConfirmations)
		assert.Equal(t, 12, settings.ERC20Confirmations)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		store, mock := newMockStore(t)

		mock.ExpectQuery(`SELECT \* FROM "bot_settings"`).
			WillReturnRows(sqlmock.NewRows(settingsColumns()))

		settings, err := store.GetBotSettings(context.Background())

		assert.ErrorIs(t, err, storage.ErrNotFound)
		assert.Nil(t, settings)
	})
}

func TestCreateBotSettings(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		store, mock := newMockStore(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "bot_settings"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
		mock.ExpectCommit()

		settings, err := store.CreateBotSettings(context.Background(), &models.BotSettings{
			Token:                "REPLACE_WITH_BOT_TOKEN",
			BitcoinConfirmations: 3,
			SolanaConfirmations:  32,
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(1), settings.ID)
		assert.False(t, settings.CreatedAt.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Storage Error", func(t *testing.T) {
		store, mock := newMockStore(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "bot_settings"`).
			WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		settings, err := store.CreateBotSettings(context.Background(), &models.BotSettings{})

		assert.Error(t, err)
		assert.Nil(t, settings)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateBotSettings(t *testing.T) {
	t.Run("Partial Merge", func(t *testing.T) {
		store, mock := newMockStore(t)

		rows := sqlmock.NewRows(settingsColumns()).
			AddRow(int64(1), "REPLACE_WITH_BOT_TOKEN", 3, 12, 12, "0")
		mock.ExpectQuery(`SELECT \* FROM "bot_settings" WHERE "bot_settings"\."id" = \$1`).
			WithArgs(int64(1), 1).
			WillReturnRows(rows)
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "bot_settings" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		token := "MTA5xXxREALxTOKENxXx"
		bitcoin := 6
		settings, err := store.UpdateBotSettings(context.Background(), 1, storage.UpdateBotSettingsParams{
			Token:                &token,
			BitcoinConfirmations: &bitcoin,
		})

		assert.NoError(t, err)
		assert.Equal(t, "MTA5xXxREALxTOKENxXx", settings.Token)
		assert.Equal(t, 6, settings.BitcoinConfirmations)
		// Fields without params keep their stored values.
		assert.Equal(t, 12, settings.EthereumConfirmations)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		store, mock := newMockStore(t)

		mock.ExpectQuery(`SELECT \* FROM "bot_settings" WHERE "bot_settings"\."id" = \$1`).
			WithArgs(int64(9), 1).
			WillReturnRows(sqlmock.NewRows(settingsColumns()))

		token := "unused"
		settings, err := store.UpdateBotSettings(context.Background(), 9, storage.UpdateBotSettingsParams{Token: &token})

		assert.ErrorIs(t, err, storage.ErrNotFound)
		assert.Nil(t, settings)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
