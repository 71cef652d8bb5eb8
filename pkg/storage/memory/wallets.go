package memory

import (
	"context"
	"sort"
	"time"

	"github.com/Aerucodes/CryptoDM/pkg/models"
	"github.com/Aerucodes/CryptoDM/pkg/storage"
)

// ListWallets retrieves all wallets, oldest first.
func (s *Store) ListWallets(ctx context.Context) ([]models.Wallet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wallets := make([]models.Wallet, 0, len(s.wallets))
	for _, wallet := range s.wallets {
		wallets = append(wallets, wallet)
	}
	sort.Slice(wallets, func(i, j int) bool { return wallets[i].ID < wallets[j].ID })
	return wallets, nil
}

// GetWallet retrieves a wallet by ID.
func (s *Store) GetWallet(ctx context.Context, id int64) (*models.Wallet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wallet, ok := s.wallets[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &wallet, nil
}

// GetWalletByAddress retrieves the oldest wallet with the given address.
// Addresses are not unique, so duplicates resolve to the first one inserted.
func (s *Store) GetWalletByAddress(ctx context.Context, address string) (*models.Wallet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var match models.Wallet
	var found bool
	for _, wallet := range s.wallets {
		if wallet.Address != address {
			continue
		}
		if !found || wallet.ID < match.ID {
			match = wallet
			found = true
		}
	}
	if !found {
		return nil, storage.ErrNotFound
	}
	return &match, nil
}

// CreateWallet creates a new wallet and returns it with its assigned ID.
func (s *Store) CreateWallet(ctx context.Context, wallet *models.Wallet) (*models.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wallet.ID = s.nextWalletID
	s.nextWalletID++
	wallet.CreatedAt = time.Now()
	s.wallets[wallet.ID] = *wallet
	return wallet, nil
}

// UpdateWallet applies a partial update to a wallet and returns the result.
func (s *Store) UpdateWallet(ctx context.Context, id int64, params storage.UpdateWalletParams) (*models.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wallet, ok := s.wallets[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	params.Apply(&wallet)
	s.wallets[id] = wallet
	return &wallet, nil
}

// DeleteWallet deletes a wallet, reporting whether it existed. The freed ID
// is not reused by later creates.
func (s *Store) DeleteWallet(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.wallets[id]; !ok {
		return false, nil
	}
	delete(s.wallets, id)
	return true, nil
}
