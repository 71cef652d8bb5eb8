package storage

import (
	"context"

	"github.com/Aerucodes/CryptoDM/pkg/models"
	"github.com/shopspring/decimal"
)

// DefaultListLimit is the page size used by ListTransactions when the caller
// passes a non-positive limit.
const DefaultListLimit = 50

// UpdateTransactionParams describes a partial update of a transaction.
// Nil fields keep the stored value.
type UpdateTransactionParams struct {
	TxID                  *string
	Amount                *decimal.Decimal
	Currency              *string
	Network               *string
	Confirmations         *int
	RequiredConfirmations *int
	Status                *models.TransactionStatus
	WalletID              *int64
}

// Apply overlays the non-nil fields onto the given transaction.
func (p UpdateTransactionParams) Apply(tx *models.Transaction) {
	if p.TxID != nil {
		tx.TxID = *p.TxID
	}
	if p.Amount != nil {
		tx.Amount = *p.Amount
	}
	if p.Currency != nil {
		tx.Currency = *p.Currency
	}
	if p.Network != nil {
		tx.Network = *p.Network
	}
	if p.Confirmations != nil {
		tx.Confirmations = *p.Confirmations
	}
	if p.RequiredConfirmations != nil {
		tx.RequiredConfirmations = *p.RequiredConfirmations
	}
	if p.Status != nil {
		tx.Status = *p.Status
	}
	if p.WalletID != nil {
		tx.WalletID = *p.WalletID
	}
}

// TransactionReader defines the interface for reading transaction data.
type TransactionReader interface {
	// ListTransactions retrieves a page of transactions ordered by creation
	// time, most recent first. A non-positive limit falls back to
	// DefaultListLimit and a negative offset is treated as zero.
	ListTransactions(ctx context.Context, limit, offset int) ([]models.Transaction, error)

	// GetTransaction retrieves a transaction by ID.
	GetTransaction(ctx context.Context, id int64) (*models.Transaction, error)

	// GetTransactionByTxID retrieves a transaction by its on-chain transaction hash.
	GetTransactionByTxID(ctx context.Context, txID string) (*models.Transaction, error)

	// CountTransactions returns the total number of stored transactions.
	CountTransactions(ctx context.Context) (int64, error)

	// ListTransactionsByCurrency retrieves all transactions with the given currency.
	ListTransactionsByCurrency(ctx context.Context, currency string) ([]models.Transaction, error)
}

// TransactionManager defines the interface for recording and updating transactions.
type TransactionManager interface {
	// CreateTransaction creates a new transaction and returns it with its
	// assigned ID and timestamps. An empty status defaults to pending.
	CreateTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error)

	// UpdateTransaction applies a partial update to a transaction and returns
	// the result. UpdatedAt is refreshed on every call, even an empty one.
	UpdateTransaction(ctx context.Context, id int64, params UpdateTransactionParams) (*models.Transaction, error)
}

// TransactionStore combines the reader and manager interfaces.
type TransactionStore interface {
	TransactionReader
	TransactionManager
}
