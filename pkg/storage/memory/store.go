// Package memory implements the Storage interface entirely in process
// memory. It is the fallback backend when no database is reachable at
// startup and doubles as the natural test double for everything that
// depends on storage.
package memory

import (
	"sync"
	"time"

	"github.com/Aerucodes/CryptoDM/pkg/models"
	"github.com/Aerucodes/CryptoDM/pkg/storage"
	"github.com/Aerucodes/CryptoDM/pkg/storage/seed"
)

// Store holds one map per entity kind, keyed by ID. IDs are assigned from
// per-kind counters that start at 1 and only ever move forward, so an ID is
// never reused even after a delete. A single RWMutex guards every operation;
// records are copied on the way in and out, callers can never reach the
// stored values through returned pointers.
type Store struct {
	mu sync.RWMutex

	users          map[int64]models.User
	wallets        map[int64]models.Wallet
	transactions   map[int64]models.Transaction
	webhookConfigs map[int64]models.WebhookConfig
	botSettings    map[int64]models.BotSettings
	stats          map[int64]models.Stats

	nextUserID          int64
	nextWalletID        int64
	nextTransactionID   int64
	nextWebhookConfigID int64
	nextBotSettingsID   int64
	nextStatsID         int64
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)

// NewEmpty creates a Store with no records at all.
func NewEmpty() *Store {
	return &Store{
		users:          make(map[int64]models.User),
		wallets:        make(map[int64]models.Wallet),
		transactions:   make(map[int64]models.Transaction),
		webhookConfigs: make(map[int64]models.WebhookConfig),
		botSettings:    make(map[int64]models.BotSettings),
		stats:          make(map[int64]models.Stats),

		nextUserID:          1,
		nextWalletID:        1,
		nextTransactionID:   1,
		nextWebhookConfigID: 1,
		nextBotSettingsID:   1,
		nextStatsID:         1,
	}
}

// New creates a Store seeded with the demo fixtures: five wallets, six
// transactions, the demo stats row and the default webhook and bot settings.
// The fixture timestamps are staggered relative to construction time so the
// transaction listing has a meaningful order.
func New() *Store {
	s := NewEmpty()
	now := time.Now()

	for _, wallet := range seed.Wallets(now) {
		s.wallets[wallet.ID] = wallet
		if wallet.ID >= s.nextWalletID {
			s.nextWalletID = wallet.ID + 1
		}
	}

	for _, tx := range seed.Transactions(now) {
		s.transactions[tx.ID] = tx
		if tx.ID >= s.nextTransactionID {
			s.nextTransactionID = tx.ID + 1
		}
	}

	stats := seed.DemoStats()
	stats.ID = s.nextStatsID
	s.nextStatsID++
	stats.UpdatedAt = now
	s.stats[stats.ID] = *stats

	webhook := seed.DefaultWebhookConfig()
	webhook.ID = s.nextWebhookConfigID
	s.nextWebhookConfigID++
	webhook.CreatedAt = now
	webhook.UpdatedAt = now
	s.webhookConfigs[webhook.ID] = *webhook

	settings := seed.DefaultBotSettings()
	settings.ID = s.nextBotSettingsID
	s.nextBotSettingsID++
	settings.CreatedAt = now
	settings.UpdatedAt = now
	s.botSettings[settings.ID] = *settings

	return s
}

// Close implements the Storage interface. There is nothing to release.
func (s *Store) Close() error {
	return nil
}
