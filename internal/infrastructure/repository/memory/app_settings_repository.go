package memory

import (
	"context"
	"sync"
)

type AppSettingsRepository struct {
	mu    sync.RWMutex
	items map[string]string
}

func NewAppSettingsRepository(initial map[string]string) *AppSettingsRepository {
	items := make(map[string]string, len(initial))
	for k, v := range initial {
		items[k] = v
	}
	return &AppSettingsRepository{items: items}
}

func (r *AppSettingsRepository) Get(_ context.Context, key string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.items[key]
	return v, ok, nil
}

func (r *AppSettingsRepository) Set(_ context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[key] = value
	return nil
}

func (r *AppSettingsRepository) List(_ context.Context) (map[string]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]string, len(r.items))
	for k, v := range r.items {
		out[k] = v
	}
	return out, nil
}
