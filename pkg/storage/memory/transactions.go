package memory

import (
	"context"
	"sort"
	"time"

	"github.com/Aerucodes/CryptoDM/pkg/models"
	"github.com/Aerucodes/CryptoDM/pkg/storage"
)

// ListTransactions retrieves a page of transactions ordered by creation time,
// most recent first. Equal timestamps keep insertion order.
func (s *Store) ListTransactions(ctx context.Context, limit, offset int) ([]models.Transaction, error) {
	if limit <= 0 {
		limit = storage.DefaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	txs := make([]models.Transaction, 0, len(s.transactions))
	for _, tx := range s.transactions {
		txs = append(txs, tx)
	}
	// Insertion order first, so the stable sort keeps it as the tie-break.
	sort.Slice(txs, func(i, j int) bool { return txs[i].ID < txs[j].ID })
	sort.SliceStable(txs, func(i, j int) bool { return txs[i].CreatedAt.After(txs[j].CreatedAt) })

	if offset > len(txs) {
		offset = len(txs)
	}
	end := offset + limit
	if end > len(txs) {
		end = len(txs)
	}
	return txs[offset:end], nil
}

// GetTransaction retrieves a transaction by ID.
func (s *Store) GetTransaction(ctx context.Context, id int64) (*models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tx, ok := s.transactions[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &tx, nil
}

// GetTransactionByTxID retrieves a transaction by its on-chain hash.
func (s *Store) GetTransactionByTxID(ctx context.Context, txID string) (*models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var match models.Transaction
	var found bool
	for _, tx := range s.transactions {
		if tx.TxID != txID {
			continue
		}
		if !found || tx.ID < match.ID {
			match = tx
			found = true
		}
	}
	if !found {
		return nil, storage.ErrNotFound
	}
	return &match, nil
}

// CreateTransaction creates a new transaction and returns it with its
// assigned ID. An empty status defaults to pending; both timestamps are set
// to the same instant.
func (s *Store) CreateTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	tx.ID = s.nextTransactionID
	s.nextTransactionID++
	if tx.Status == "" {
		tx.Status = models.PENDING
	}
	tx.CreatedAt = now
	tx.UpdatedAt = now
	s.transactions[tx.ID] = *tx
	return tx, nil
}

// UpdateTransaction applies a partial update to a transaction and returns the
// result. UpdatedAt is refreshed even when no field changes.
func (s *Store) UpdateTransaction(ctx context.Context, id int64, params storage.UpdateTransactionParams) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, ok := s.transactions[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	params.Apply(&tx)
	tx.UpdatedAt = time.Now()
	s.transactions[id] = tx
	return &tx, nil
}

// CountTransactions returns the total number of stored transactions.
func (s *Store) CountTransactions(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.transactions)), nil
}

// ListTransactionsByCurrency retrieves all transactions with the given
// currency, oldest first.
func (s *Store) ListTransactionsByCurrency(ctx context.Context, currency string) ([]models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var txs []models.Transaction
	for _, tx := range s.transactions {
		if tx.Currency == currency {
			txs = append(txs, tx)
		}
	}
	sort.Slice(txs, func(i, j int) bool { return txs[i].ID < txs[j].ID })
	return txs, nil
}
