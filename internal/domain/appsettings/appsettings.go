package appsettings

import "context"

// KeyCurrentRound stores the active playoff round code.
const KeyCurrentRound = "current_round"

// Repository is a small key-value store for application state that has
// to survive process restarts.
type Repository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	List(ctx context.Context) (map[string]string, error)
}
