package memory

import (
	"context"
	"testing"

	"github.com/Aerucodes/CryptoDM/pkg/models"
	"github.com/Aerucodes/CryptoDM/pkg/storage"
	"github.com/stretchr/testify/assert"
)

func TestCreateWallet(t *testing.T) {
	s := NewEmpty()

	wallet, err := s.CreateWallet(context.Background(), &models.Wallet{
		Name:     "Main BTC Wallet",
		Address:  "bc1qdemo",
		Currency: "BTC",
		Network:  "Bitcoin",
		UserID:   1,
		IsActive: true,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), wallet.ID)
	assert.False(t, wallet.CreatedAt.IsZero())

	second, err := s.CreateWallet(context.Background(), &models.Wallet{Name: "ETH Treasury", Address: "0xdemo", Currency: "ETH", Network: "Ethereum"})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)
}

func TestGetWallet(t *testing.T) {
	s := New()

	t.Run("Success", func(t *testing.T) {
		wallet, err := s.GetWallet(context.Background(), 1)

		assert.NoError(t, err)
		assert.Equal(t, "BTC", wallet.Currency)
	})

	t.Run("Not Found", func(t *testing.T) {
		_, err := s.GetWallet(context.Background(), 99)

		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestGetWalletByAddress(t *testing.T) {
	s := NewEmpty()

	first, err := s.CreateWallet(context.Background(), &models.Wallet{Name: "Primary", Address: "bc1qshared", Currency: "BTC", Network: "Bitcoin"})
	assert.NoError(t, err)
	_, err = s.CreateWallet(context.Background(), &models.Wallet{Name: "Duplicate", Address: "bc1qshared", Currency: "BTC", Network: "Bitcoin"})
	assert.NoError(t, err)

	t.Run("First Match Wins", func(t *testing.T) {
		wallet, err := s.GetWalletByAddress(context.Background(), "bc1qshared")

		assert.NoError(t, err)
		assert.Equal(t, first.ID, wallet.ID)
		assert.Equal(t, "Primary", wallet.Name)
	})

	t.Run("Not Found", func(t *testing.T) {
		_, err := s.GetWalletByAddress(context.Background(), "bc1qunknown")

		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestUpdateWallet(t *testing.T) {
	t.Run("Partial Merge", func(t *testing.T) {
		s := New()
		prior, err := s.GetWallet(context.Background(), 1)
		assert.NoError(t, err)

		name := "Cold Storage"
		active := false
		updated, err := s.UpdateWallet(context.Background(), 1, storage.UpdateWalletParams{Name: &name, IsActive: &active})

		assert.NoError(t, err)
		assert.Equal(t, "Cold Storage", updated.Name)
		assert.False(t, updated.IsActive)
		assert.Equal(t, prior.Address, updated.Address)
		assert.Equal(t, prior.Currency, updated.Currency)
		assert.Equal(t, prior.Network, updated.Network)
		assert.Equal(t, prior.CreatedAt, updated.CreatedAt)
	})

	t.Run("Empty Update Preserves Fields", func(t *testing.T) {
		s := New()
		prior, err := s.GetWallet(context.Background(), 2)
		assert.NoError(t, err)

		updated, err := s.UpdateWallet(context.Background(), 2, storage.UpdateWalletParams{})

		assert.NoError(t, err)
		assert.Equal(t, prior, updated)
	})

	t.Run("Not Found", func(t *testing.T) {
		s := NewEmpty()
		name := "Ghost"

		_, err := s.UpdateWallet(context.Background(), 7, storage.UpdateWalletParams{Name: &name})

		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestDeleteWallet(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		s := New()

		deleted, err := s.DeleteWallet(context.Background(), 5)

		assert.NoError(t, err)
		assert.True(t, deleted)

		_, err = s.GetWallet(context.Background(), 5)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("Missing ID", func(t *testing.T) {
		s := New()

		deleted, err := s.DeleteWallet(context.Background(), 99)

		assert.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("ID Not Reused", func(t *testing.T) {
		s := New()

		deleted, err := s.DeleteWallet(context.Background(), 5)
		assert.NoError(t, err)
		assert.True(t, deleted)

		wallet, err := s.CreateWallet(context.Background(), &models.Wallet{Name: "Replacement", Address: "bc1qnew", Currency: "BTC", Network: "Bitcoin"})
		assert.NoError(t, err)
		assert.Equal(t, int64(6), wallet.ID)
	})
}

func TestListWallets(t *testing.T) {
	s := NewEmpty()

	for _, name := range []string{"first", "second", "third"} {
		_, err := s.CreateWallet(context.Background(), &models.Wallet{Name: name, Address: "addr-" + name, Currency: "BTC", Network: "Bitcoin"})
		assert.NoError(t, err)
	}

	wallets, err := s.ListWallets(context.Background())

	assert.NoError(t, err)
	assert.Len(t, wallets, 3)
	assert.Equal(t, "first", wallets[0].Name)
	assert.Equal(t, "second", wallets[1].Name)
	assert.Equal(t, "third", wallets[2].Name)
}
