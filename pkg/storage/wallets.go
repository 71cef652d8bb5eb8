package storage

import (
	"context"

	"github.com/Aerucodes/CryptoDM/pkg/models"
)

// UpdateWalletParams describes a partial update of a wallet.
// Nil fields keep the stored value.
type UpdateWalletParams struct {
	Name     *string
	Address  *string
	Currency *string
	Network  *string
	UserID   *int64
	IsActive *bool
}

// Apply overlays the non-nil fields onto the given wallet.
func (p UpdateWalletParams) Apply(wallet *models.Wallet) {
	if p.Name != nil {
		wallet.Name = *p.Name
	}
	if p.Address != nil {
		wallet.Address = *p.Address
	}
	if p.Currency != nil {
		wallet.Currency = *p.Currency
	}
	if p.Network != nil {
		wallet.Network = *p.Network
	}
	if p.UserID != nil {
		wallet.UserID = *p.UserID
	}
	if p.IsActive != nil {
		wallet.IsActive = *p.IsActive
	}
}

// WalletStore defines the interface for managing monitored wallets.
type WalletStore interface {
	// ListWallets retrieves all wallets from the storage.
	ListWallets(ctx context.Context) ([]models.Wallet, error)

	// GetWallet retrieves a wallet by ID.
	GetWallet(ctx context.Context, id int64) (*models.Wallet, error)

	// GetWalletByAddress retrieves the oldest wallet with the given address.
	GetWalletByAddress(ctx context.Context, address string) (*models.Wallet, error)

	// CreateWallet creates a new wallet and returns it with its assigned ID.
	CreateWallet(ctx context.Context, wallet *models.Wallet) (*models.Wallet, error)

	// UpdateWallet applies a partial update to a wallet and returns the result.
	UpdateWallet(ctx context.Context, id int64, params UpdateWalletParams) (*models.Wallet, error)

	// DeleteWallet deletes a wallet. It reports whether a wallet was actually
	// deleted; deleting an unknown ID returns false, not an error.
	DeleteWallet(ctx context.Context, id int64) (bool, error)
}
