package storage

import (
	"context"

	"github.com/Aerucodes/CryptoDM/pkg/models"
)

// UpdateBotSettingsParams describes a partial update of the bot settings.
// Nil fields keep the stored value.
type UpdateBotSettingsParams struct {
	Token                 *string
	BitcoinConfirmations  *int
	EthereumConfirmations *int
	LitecoinConfirmations *int
	ERC20Confirmations    *int
	TRC20Confirmations    *int
	BEP20Confirmations    *int
	PolygonConfirmations  *int
	SolanaConfirmations   *int
	DiscordClientID       *string
	DiscordClientSecret   *string
	DiscordRedirectURI    *string
	DiscordGuildID        *string
	GitbookAPIKey         *string
	GitbookSpaceID        *string
}

// Apply overlays the non-nil fields onto the given settings.
func (p UpdateBotSettingsParams) Apply(settings *models.BotSettings) {
	if p.Token != nil {
		settings.Token = *p.Token
	}
	if p.BitcoinConfirmations != nil {
		settings.BitcoinConfirmations = *p.BitcoinConfirmations
	}
	if p.EthereumConfirmations != nil {
		settings.EthereumConfirmations = *p.EthereumConfirmations
	}
	if p.LitecoinConfirmations != nil {
		settings.LitecoinConfirmations = *p.LitecoinConfirmations
	}
	if p.ERC20Confirmations != nil {
		settings.ERC20Confirmations = *p.ERC20Confirmations
	}
	if p.TRC20Confirmations != nil {
		settings.TRC20Confirmations = *p.TRC20Confirmations
	}
	if p.BEP20Confirmations != nil {
		settings.BEP20Confirmations = *p.BEP20Confirmations
	}
	if p.PolygonConfirmations != nil {
		settings.PolygonConfirmations = *p.PolygonConfirmations
	}
	if p.SolanaConfirmations != nil {
		settings.SolanaConfirmations = *p.SolanaConfirmations
	}
	if p.DiscordClientID != nil {
		settings.DiscordClientID = *p.DiscordClientID
	}
	if p.DiscordClientSecret != nil {
		settings.DiscordClientSecret = *p.DiscordClientSecret
	}
	if p.DiscordRedirectURI != nil {
		settings.DiscordRedirectURI = *p.DiscordRedirectURI
	}
	if p.DiscordGuildID != nil {
		settings.DiscordGuildID = *p.DiscordGuildID
	}
	if p.GitbookAPIKey != nil {
		settings.GitbookAPIKey = *p.GitbookAPIKey
	}
	if p.GitbookSpaceID != nil {
		settings.GitbookSpaceID = *p.GitbookSpaceID
	}
}

// SettingsStore defines the interface for managing the bot settings.
// Storage permits multiple rows; the oldest one is the active settings.
type SettingsStore interface {
	// GetBotSettings retrieves the active bot settings, or ErrNotFound if
	// none have been created yet.
	GetBotSettings(ctx context.Context) (*models.BotSettings, error)

	// CreateBotSettings creates a bot settings row and returns it with its
	// assigned ID and timestamps.
	CreateBotSettings(ctx context.Context, settings *models.BotSettings) (*models.BotSettings, error)

	// UpdateBotSettings applies a partial update to the settings with the
	// given ID and returns the result.
	UpdateBotSettings(ctx context.Context, id int64, params UpdateBotSettingsParams) (*models.BotSettings, error)
}
