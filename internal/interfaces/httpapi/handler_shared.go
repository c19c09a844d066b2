package httpapi

import (
	"time"

	"github.com/gridpool/playoff-pool/internal/domain/roster"
	"github.com/gridpool/playoff-pool/internal/domain/scoring"
	"github.com/gridpool/playoff-pool/internal/usecase"
)

type leagueDTO struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	JoinCode        string            `json:"joinCode"`
	ScoringFormat   string            `json:"scoringFormat"`
	CommissionerID  string            `json:"commissionerId"`
	ScoringSettings *scoring.Settings `json:"scoringSettings,omitempty"`
}

type playerDTO struct {
	Key      string `json:"key"`
	ESPNID   string `json:"espnId"`
	FullName string `json:"fullName"`
	Team     string `json:"team"`
	Position string `json:"position"`
}

type currentRoundDTO struct {
	Round string `json:"round"`
	Name  string `json:"name"`
}

type setCurrentRoundRequest struct {
	Round string `json:"round" validate:"required"`
}

type lockStatusDTO struct {
	PlayerKey     string     `json:"playerKey"`
	Locked        bool       `json:"locked"`
	KickoffAt     *time.Time `json:"kickoffAt,omitempty"`
	SecondsToLock *int64     `json:"secondsToLock,omitempty"`
}

type rosterLocksDTO struct {
	UserID   string                   `json:"userId"`
	LeagueID string                   `json:"leagueId"`
	Round    string                   `json:"round"`
	Slots    map[string]lockStatusDTO `json:"slots"`
}

func lockStatusToDTO(status usecase.LockStatus) lockStatusDTO {
	dto := lockStatusDTO{
		PlayerKey: status.PlayerKey,
		Locked:    status.Locked,
		KickoffAt: status.KickoffAt,
	}
	if status.TimeUntilLock != nil {
		seconds := int64(status.TimeUntilLock.Seconds())
		dto.SecondsToLock = &seconds
	}
	return dto
}

func rosterLocksToDTO(userID, leagueID, roundCode string, locks map[roster.Slot]usecase.LockStatus) rosterLocksDTO {
	slots := make(map[string]lockStatusDTO, len(locks))
	for slot, status := range locks {
		slots[string(slot)] = lockStatusToDTO(status)
	}
	return rosterLocksDTO{
		UserID:   userID,
		LeagueID: leagueID,
		Round:    roundCode,
		Slots:    slots,
	}
}
