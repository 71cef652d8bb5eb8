// Package seed holds the canonical demo fixtures and first-run defaults.
// The memory store and the database bootstrap both build their rows from
// these constructors, so the two backends always expose the same data shape.
package seed

import (
	"time"

	"github.com/Aerucodes/CryptoDM/pkg/models"
	"github.com/shopspring/decimal"
)

// AdminUser returns the default admin account inserted on first run.
// The password is a placeholder and is expected to be changed immediately.
func AdminUser() *models.User {
	return &models.User{
		Username: "admin",
		Password: "changeme",
		Email:    "admin@cryptodm.local",
	}
}

// DemoStats returns the dashboard counters used by the memory store.
func DemoStats() *models.Stats {
	return &models.Stats{
		TotalTransactions:  1248,
		TotalVolume:        decimal.RequireFromString("45231.89"),
		ActiveWallets:      5,
		WebhookCalls:       2456,
		TransactionsGrowth: "+12.5%",
		VolumeGrowth:       "+8.2%",
		WalletsGrowth:      "+2",
		WebhookCallsGrowth: "+15.3%",
	}
}

// ZeroStats returns an all-zero stats row for the first-run database seed.
func ZeroStats() *models.Stats {
	return &models.Stats{
		TotalVolume:        decimal.Zero,
		TransactionsGrowth: "+0%",
		VolumeGrowth:       "+0%",
		WalletsGrowth:      "+0",
		WebhookCallsGrowth: "+0%",
	}
}

// DefaultWebhookConfig returns the initial webhook configuration with every
// notification kind enabled.
func DefaultWebhookConfig() *models.WebhookConfig {
	return &models.WebhookConfig{
		URL:           "https://example.com/webhooks/cryptodm",
		NotifySuccess: true,
		NotifyPending: true,
		NotifyFailed:  true,
		NotifyWallet:  true,
	}
}

// DefaultBotSettings returns the initial bot settings with placeholder
// credentials and the recommended confirmation threshold per network.
func DefaultBotSettings() *models.BotSettings {
	return &models.BotSettings{
		Token:                 "REPLACE_WITH_BOT_TOKEN",
		BitcoinConfirmations:  3,
		EthereumConfirmations: 12,
		LitecoinConfirmations: 6,
		ERC20Confirmations:    12,
		TRC20Confirmations:    19,
		BEP20Confirmations:    15,
		PolygonConfirmations:  128,
		SolanaConfirmations:   32,
		DiscordClientID:       "000000000000000000",
		DiscordClientSecret:   "REPLACE_WITH_CLIENT_SECRET",
		DiscordRedirectURI:    "http://localhost:3000/api/auth/discord/callback",
		DiscordGuildID:        "000000000000000000",
		GitbookAPIKey:         "REPLACE_WITH_GITBOOK_KEY",
		GitbookSpaceID:        "REPLACE_WITH_SPACE_ID",
	}
}

// Wallets returns the five demo wallets, one per supported currency and
// network pairing. IDs are fixed so the demo transactions can reference
// them; creation times are staggered before base, oldest first.
func Wallets(base time.Time) []models.Wallet {
	return []models.Wallet{
		{
			ID:        1,
			Name:      "Main BTC Wallet",
			Address:   "bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh",
			Currency:  "BTC",
			Network:   "Bitcoin",
			UserID:    1,
			IsActive:  true,
			CreatedAt: base.Add(-30 * 24 * time.Hour),
		},
		{
			ID:        2,
			Name:      "ETH Treasury",
			Address:   "0x742d35Cc6634C0532925a3b844Bc454e4438f44e",
			Currency:  "ETH",
			Network:   "Ethereum",
			UserID:    1,
			IsActive:  true,
			CreatedAt: base.Add(-21 * 24 * time.Hour),
		},
		{
			ID:        3,
			Name:      "LTC Payments",
			Address:   "ltc1qr60f6sgjxjtprm6wkyywskkpdn33fe98jwdfq8",
			Currency:  "LTC",
			Network:   "Litecoin",
			UserID:    1,
			IsActive:  true,
			CreatedAt: base.Add(-14 * 24 * time.Hour),
		},
		{
			ID:        4,
			Name:      "USDT Settlement",
			Address:   "TEpjT8Ap3WWblledSfGWPB7YvCPDxfGCeY",
			Currency:  "USDT",
			Network:   "TRC20",
			UserID:    1,
			IsActive:  true,
			CreatedAt: base.Add(-7 * 24 * time.Hour),
		},
		{
			ID:        5,
			Name:      "SOL Community Pot",
			Address:   "DYw8jCTfwHNRJhhmFcbXvVDTqWMEVFBX6ZKUmG5CNSKK",
			Currency:  "SOL",
			Network:   "Solana",
			UserID:    1,
			IsActive:  true,
			CreatedAt: base.Add(-3 * 24 * time.Hour),
		},
	}
}

// Transactions returns the six demo transactions referencing the Wallets
// fixtures. Creation times are staggered before base and strictly
// increasing, so the newest entry is the last one.
func Transactions(base time.Time) []models.Transaction {
	return []models.Transaction{
		{
			ID:                    1,
			TxID:                  "7d1ce58f5338eea0874a4e9ab23d45f9c8d6d6f1e34b8c8f2a0d9b7c11a4e3f2",
			Amount:                decimal.RequireFromString("0.0458"),
			Currency:              "BTC",
			Network:               "Bitcoin",
			Confirmations:         6,
			RequiredConfirmations: 3,
			Status:                models.COMPLETED,
			WalletID:              1,
			CreatedAt:             base.Add(-5 * 24 * time.Hour),
			UpdatedAt:             base.Add(-5*24*time.Hour + time.Hour),
		},
		{
			ID:                    2,
			TxID:                  "0x3f8a61b2c94d07e5fa2b4c8d9e0f1a2b3c4d5e6f7a8b9c0d1e2f3a4b5c6d7e8f",
			Amount:                decimal.RequireFromString("1.25"),
			Currency:              "ETH",
			Network:               "Ethereum",
			Confirmations:         35,
			RequiredConfirmations: 12,
			Status:                models.COMPLETED,
			WalletID:              2,
			CreatedAt:             base.Add(-4 * 24 * time.Hour),
			UpdatedAt:             base.Add(-4*24*time.Hour + 30*time.Minute),
		},
		{
			ID:                    3,
			TxID:                  "b9e2d4a6c8f0e1d3b5a7c9e0f2d4b6a8c0e2f4d6b8a0c2e4f6d8b0a2c4e6f8d0",
			Amount:                decimal.RequireFromString("2.43"),
			Currency:              "LTC",
			Network:               "Litecoin",
			Confirmations:         0,
			RequiredConfirmations: 6,
			Status:                models.FAILED,
			WalletID:              3,
			CreatedAt:             base.Add(-3 * 24 * time.Hour),
			UpdatedAt:             base.Add(-3*24*time.Hour + 2*time.Hour),
		},
		{
			ID:                    4,
			TxID:                  "e5f0c2a4d6b8f0a2c4e6d8b0f2a4c6e8d0b2f4a6c8e0d2b4f6a8c0e2d4b6f8a0",
			Amount:                decimal.RequireFromString("500"),
			Currency:              "USDT",
			Network:               "TRC20",
			Confirmations:         7,
			RequiredConfirmations: 19,
			Status:                models.PENDING,
			WalletID:              4,
			CreatedAt:             base.Add(-2 * 24 * time.Hour),
			UpdatedAt:             base.Add(-2 * 24 * time.Hour),
		},
		{
			ID:                    5,
			TxID:                  "2VfUuNhZLPfGqCsxkKU9gvZYBt8oLucX4GYyiqpLDdrNWzZ6V4JkMTPbe9rbLkqpXS",
			Amount:                decimal.RequireFromString("12.75"),
			Currency:              "SOL",
			Network:               "Solana",
			Confirmations:         64,
			RequiredConfirmations: 32,
			Status:                models.COMPLETED,
			WalletID:              5,
			CreatedAt:             base.Add(-24 * time.Hour),
			UpdatedAt:             base.Add(-24*time.Hour + 10*time.Minute),
		},
		{
			ID:                    6,
			TxID:                  "f3a5c7e9d1b3f5a7c9e1d3b5f7a9c1e3d5b7f9a1c3e5d7b9f1a3c5e7d9b1f3a5",
			Amount:                decimal.RequireFromString("0.0128"),
			Currency:              "BTC",
			Network:               "Bitcoin",
			Confirmations:         1,
			RequiredConfirmations: 3,
			Status:                models.PENDING,
			WalletID:              1,
			CreatedAt:             base.Add(-6 * time.Hour),
			UpdatedAt:             base.Add(-6 * time.Hour),
		},
	}
}
