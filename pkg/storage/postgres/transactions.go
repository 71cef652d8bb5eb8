package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Aerucodes/CryptoDM/pkg/models"
	"github.com/Aerucodes/CryptoDM/pkg/storage"
)

// ListTransactions retrieves a page of transactions, most recent first.
// Transactions created at the same instant keep their insertion order. A
// non-positive limit falls back to DefaultListLimit and a negative offset is
// treated as zero.
func (s *Store) ListTransactions(ctx context.Context, limit, offset int) ([]models.Transaction, error) {
	if limit <= 0 {
		limit = storage.DefaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	var transactions []models.Transaction
	err := s.db.WithContext(ctx).
		Order("created_at DESC, id ASC").
		Limit(limit).
		Offset(offset).
		Find(&transactions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

// GetTransaction retrieves a transaction by its ID.
func (s *Store) GetTransaction(ctx context.Context, id int64) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.WithContext(ctx).First(&transaction, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

// GetTransactionByTxID retrieves a transaction by its chain transaction
// hash. Hashes are not unique across rows; the oldest row wins.
func (s *Store) GetTransactionByTxID(ctx context.Context, txID string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.WithContext(ctx).Where("transaction_id = ?", txID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get transaction by txid: %w", err)
	}
	return &transaction, nil
}

// CreateTransaction inserts a new transaction and returns it with its
// assigned ID and timestamps. An empty status defaults to pending.
func (s *Store) CreateTransaction(ctx context.Context, transaction *models.Transaction) (*models.Transaction, error) {
	if transaction.Status == "" {
		transaction.Status = models.PENDING
	}
	if err := s.db.WithContext(ctx).Create(transaction).Error; err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	return transaction, nil
}

// UpdateTransaction applies the non-nil fields of params to the transaction
// with the given ID and returns the updated row.
func (s *Store) UpdateTransaction(ctx context.Context, id int64, params storage.UpdateTransactionParams) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.WithContext(ctx).First(&transaction, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	params.Apply(&transaction)
	if err := s.db.WithContext(ctx).Save(&transaction).Error; err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}
	return &transaction, nil
}

// CountTransactions returns the total number of stored transactions.
func (s *Store) CountTransactions(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Transaction{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

// ListTransactionsByCurrency retrieves every transaction in the given
// currency, oldest first.
func (s *Store) ListTransactionsByCurrency(ctx context.Context, currency string) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := s.db.WithContext(ctx).
		Where("currency = ?", currency).
		Order("id ASC").
		Find(&transactions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions by currency: %w", err)
	}
	return transactions, nil
}
