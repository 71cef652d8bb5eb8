package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus defines the possible states of a payment transaction.
type TransactionStatus string

const (
	PENDING   TransactionStatus = "pending"
	COMPLETED TransactionStatus = "completed"
	FAILED    TransactionStatus = "failed"
)

// User represents a dashboard admin account.
type User struct {
	ID       int64  `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"`
	Email    string `json:"email"`
}

// TableName specifies the table name for User.
func (User) TableName() string {
	return "users"
}

// Wallet represents a monitored crypto wallet.
// Addresses are not unique; lookups by address return the oldest match.
type Wallet struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Address   string    `json:"address" gorm:"index;not null"`
	Currency  string    `json:"currency" gorm:"not null"`
	Network   string    `json:"network" gorm:"not null"`
	UserID    int64     `json:"user_id"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for Wallet.
func (Wallet) TableName() string {
	return "wallets"
}

// Transaction represents a payment observed on one of the monitored wallets.
// TxID carries the on-chain transaction hash used for external correlation.
type Transaction struct {
	ID                    int64             `json:"id" gorm:"primaryKey"`
	TxID                  string            `json:"transaction_id" gorm:"column:transaction_id;index;not null"`
	Amount                decimal.Decimal   `json:"amount" gorm:"type:numeric;not null"`
	Currency              string            `json:"currency" gorm:"not null"`
	Network               string            `json:"network" gorm:"not null"`
	Confirmations         int               `json:"confirmations"`
	RequiredConfirmations int               `json:"required_confirmations"`
	Status                TransactionStatus `json:"status" gorm:"not null"`
	WalletID              int64             `json:"wallet_id"`
	CreatedAt             time.Time         `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt             time.Time         `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Transaction.
func (Transaction) TableName() string {
	return "transactions"
}

// WebhookConfig holds the notification endpoint and which transaction events
// should be delivered to it. Callers treat the oldest row as the active config.
type WebhookConfig struct {
	ID            int64     `json:"id" gorm:"primaryKey"`
	URL           string    `json:"url" gorm:"not null"`
	NotifySuccess bool      `json:"notify_success"`
	NotifyPending bool      `json:"notify_pending"`
	NotifyFailed  bool      `json:"notify_failed"`
	NotifyWallet  bool      `json:"notify_wallet"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for WebhookConfig.
func (WebhookConfig) TableName() string {
	return "webhook_configs"
}

// BotSettings holds the Discord bot credentials and the per-network
// confirmation thresholds. Callers treat the oldest row as the active settings.
type BotSettings struct {
	ID                    int64     `json:"id" gorm:"primaryKey"`
	Token                 string    `json:"token"`
	BitcoinConfirmations  int       `json:"bitcoin_confirmations"`
	EthereumConfirmations int       `json:"ethereum_confirmations"`
	LitecoinConfirmations int       `json:"litecoin_confirmations"`
	ERC20Confirmations    int       `json:"erc20_confirmations" gorm:"column:erc20_confirmations"`
	TRC20Confirmations    int       `json:"trc20_confirmations" gorm:"column:trc20_confirmations"`
	BEP20Confirmations    int       `json:"bep20_confirmations" gorm:"column:bep20_confirmations"`
	PolygonConfirmations  int       `json:"polygon_confirmations"`
	SolanaConfirmations   int       `json:"solana_confirmations"`
	DiscordClientID       string    `json:"discord_client_id"`
	DiscordClientSecret   string    `json:"-"`
	DiscordRedirectURI    string    `json:"discord_redirect_uri"`
	DiscordGuildID        string    `json:"discord_guild_id"`
	GitbookAPIKey         string    `json:"-"`
	GitbookSpaceID        string    `json:"gitbook_space_id"`
	CreatedAt             time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt             time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for BotSettings.
func (BotSettings) TableName() string {
	return "bot_settings"
}

// Stats holds the aggregate counters shown on the dashboard overview page.
// The growth fields are preformatted display strings, not computed values.
type Stats struct {
	ID                 int64           `json:"id" gorm:"primaryKey"`
	TotalTransactions  int64           `json:"total_transactions"`
	TotalVolume        decimal.Decimal `json:"total_volume" gorm:"type:numeric"`
	ActiveWallets      int64           `json:"active_wallets"`
	WebhookCalls       int64           `json:"webhook_calls"`
	TransactionsGrowth string          `json:"transactions_growth"`
	VolumeGrowth       string          `json:"volume_growth"`
	WalletsGrowth      string          `json:"wallets_growth"`
	WebhookCallsGrowth string          `json:"webhook_calls_growth"`
	UpdatedAt          time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Stats.
func (Stats) TableName() string {
	return "stats"
}
