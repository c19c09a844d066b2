package player

import "context"

// Repository describes player-catalog persistence needs from use cases.
type Repository interface {
	ListActive(ctx context.Context) ([]Player, error)
	GetByKey(ctx context.Context, key string) (Player, bool, error)
}
