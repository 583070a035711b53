package ports

import "context"

// Port: key-value store for app settings (title, permissions overrides).
// Load-at-start, save-on-change semantics; no transactions.
type SettingsStore interface {
	// Get returns the stored value, or "" when the key is absent.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	All(ctx context.Context) (map[string]string, error)
}
