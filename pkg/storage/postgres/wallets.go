package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Aerucodes/CryptoDM/pkg/models"
	"github.com/Aerucodes/CryptoDM/pkg/storage"
)

// ListWallets retrieves every wallet, oldest first.
func (s *Store) ListWallets(ctx context.Context) ([]models.Wallet, error) {
	var wallets []models.Wallet
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&wallets).Error; err != nil {
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}
	return wallets, nil
}

// GetWallet retrieves a wallet by its ID.
func (s *Store) GetWallet(ctx context.Context, id int64) (*models.Wallet, error) {
	var wallet models.Wallet
	if err := s.db.WithContext(ctx).First(&wallet, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return &wallet, nil
}

// GetWalletByAddress retrieves the wallet with the given address. Addresses
// are not unique; when several wallets share one, the oldest row wins.
func (s *Store) GetWalletByAddress(ctx context.Context, address string) (*models.Wallet, error) {
	var wallet models.Wallet
	if err := s.db.WithContext(ctx).Where("address = ?", address).First(&wallet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get wallet by address: %w", err)
	}
	return &wallet, nil
}

// CreateWallet inserts a new wallet and returns it with its assigned ID and
// creation timestamp.
func (s *Store) CreateWallet(ctx context.Context, wallet *models.Wallet) (*models.Wallet, error) {
	if err := s.db.WithContext(ctx).Create(wallet).Error; err != nil {
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}
	return wallet, nil
}

// UpdateWallet applies the non-nil fields of params to the wallet with the
// given ID and returns the updated row.
func (s *Store) UpdateWallet(ctx context.Context, id int64, params storage.UpdateWalletParams) (*models.Wallet, error) {
	var wallet models.Wallet
	if err := s.db.WithContext(ctx).First(&wallet, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}

	params.Apply(&wallet)
	if err := s.db.WithContext(ctx).Save(&wallet).Error; err != nil {
		return nil, fmt.Errorf("failed to update wallet: %w", err)
	}
	return &wallet, nil
}

// DeleteWallet removes the wallet with the given ID. It reports whether a
// row was actually deleted; a missing ID is not an error.
func (s *Store) DeleteWallet(ctx context.Context, id int64) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&models.Wallet{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete wallet: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}
