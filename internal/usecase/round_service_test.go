package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/gridpool/playoff-pool/internal/domain/round"
	"github.com/gridpool/playoff-pool/internal/platform/cache"
)

type memSettingsRepo struct {
	mu       sync.Mutex
	values   map[string]string
	getCalls int
}

func newMemSettingsRepo(values map[string]string) *memSettingsRepo {
	if values == nil {
		values = make(map[string]string)
	}
	return &memSettingsRepo{values: values}
}

func (m *memSettingsRepo) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getCalls++
	value, ok := m.values[key]
	return value, ok, nil
}

func (m *memSettingsRepo) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *memSettingsRepo) List(_ context.Context) (map[string]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]string, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out, nil
}

func TestRoundService_CurrentRoundDefaultsToWildCard(t *testing.T) {
	t.Parallel()

	svc := NewRoundService(newMemSettingsRepo(nil), nil, nil)

	got, err := svc.CurrentRound(context.Background())
	if err != nil {
		t.Fatalf("CurrentRound error: %v", err)
	}
	if got != round.WildCard {
		t.Fatalf("unexpected default round: got=%s want=%s", got, round.WildCard)
	}
}

func TestRoundService_CurrentRoundUsesCache(t *testing.T) {
	t.Parallel()

	repo := newMemSettingsRepo(map[string]string{"current_round": "DIV"})
	svc := NewRoundService(repo, cache.NewStore(30*time.Second), nil)

	for i := 0; i < 3; i++ {
		got, err := svc.CurrentRound(context.Background())
		if err != nil {
			t.Fatalf("CurrentRound error: %v", err)
		}
		if got != round.Divisional {
			t.Fatalf("unexpected round: got=%s want=DIV", got)
		}
	}

	if repo.getCalls != 1 {
		t.Fatalf("expected a single storage read, got=%d", repo.getCalls)
	}
}

func TestRoundService_SetCurrentRoundInvalidatesCache(t *testing.T) {
	t.Parallel()

	repo := newMemSettingsRepo(map[string]string{"current_round": "WC"})
	svc := NewRoundService(repo, cache.NewStore(30*time.Second), nil)

	if got, _ := svc.CurrentRound(context.Background()); got != round.WildCard {
		t.Fatalf("unexpected initial round: got=%s", got)
	}

	if err := svc.SetCurrentRound(context.Background(), round.Divisional); err != nil {
		t.Fatalf("SetCurrentRound error: %v", err)
	}

	got, err := svc.CurrentRound(context.Background())
	if err != nil {
		t.Fatalf("CurrentRound error: %v", err)
	}
	if got != round.Divisional {
		t.Fatalf("stale cached round after update: got=%s want=DIV", got)
	}
}

func TestRoundService_SetCurrentRoundRejectsUnknownRound(t *testing.T) {
	t.Parallel()

	svc := NewRoundService(newMemSettingsRepo(nil), nil, nil)
	if err := svc.SetCurrentRound(context.Background(), round.Round("PRESEASON")); err == nil {
		t.Fatalf("expected invalid input error")
	}
}

func TestRoundService_CurrentRoundRejectsCorruptValue(t *testing.T) {
	t.Parallel()

	svc := NewRoundService(newMemSettingsRepo(map[string]string{"current_round": "round-5"}), nil, nil)
	if _, err := svc.CurrentRound(context.Background()); err == nil {
		t.Fatalf("expected error for corrupt stored round")
	}
}
