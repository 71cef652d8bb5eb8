package storage

// Storage defines the root interface for the entire data layer.
// It composes all available storage operations. Components should depend on the
// more granular interfaces (WalletStore, TransactionStore, etc.) instead of
// this one. Both backends satisfy it: the postgres store delegates every call
// to the database, the memory store resolves everything in process.
type Storage interface {
	UserStore
	WalletStore
	TransactionStore
	WebhookStore
	SettingsStore
	StatsStore

	// Close releases any resources held by the backend. The memory store
	// treats it as a no-op.
	Close() error
}
