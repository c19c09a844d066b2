package roster

import (
	"time"

	"github.com/gridpool/playoff-pool/internal/domain/round"
)

// Slot names one of the 8 fixed roster positions.
type Slot string

const (
	SlotQB  Slot = "qb"
	SlotRB1 Slot = "rb1"
	SlotRB2 Slot = "rb2"
	SlotWR1 Slot = "wr1"
	SlotWR2 Slot = "wr2"
	SlotTE  Slot = "te"
	SlotK   Slot = "k"
	SlotDST Slot = "dst"
)

// MinWeeksHeld and MaxWeeksHeld bound the loyalty multiplier.
const (
	MinWeeksHeld = 1
	MaxWeeksHeld = 4
)

var slots = []Slot{SlotQB, SlotRB1, SlotRB2, SlotWR1, SlotWR2, SlotTE, SlotK, SlotDST}

// Slots returns the roster slots in display order.
func Slots() []Slot {
	out := make([]Slot, len(slots))
	copy(out, slots)
	return out
}

// Entry is one slot's contents: an optional player key and the loyalty
// multiplier. WeeksHeld is always MinWeeksHeld when PlayerKey is nil.
type Entry struct {
	PlayerKey *string
	WeeksHeld int
}

// EmptyEntry is a cleared slot.
func EmptyEntry() Entry {
	return Entry{WeeksHeld: MinWeeksHeld}
}

// Roster is one user's picks for one league and round.
type Roster struct {
	UserID      string
	LeagueID    string
	Round       round.Round
	QB          Entry
	RB1         Entry
	RB2         Entry
	WR1         Entry
	WR2         Entry
	TE          Entry
	K           Entry
	DST         Entry
	SubmittedAt *time.Time
	IsFinal     bool
	UpdatedAt   time.Time
}

// Entry returns the named slot's contents.
func (r Roster) Entry(slot Slot) Entry {
	switch slot {
	case SlotQB:
		return r.QB
	case SlotRB1:
		return r.RB1
	case SlotRB2:
		return r.RB2
	case SlotWR1:
		return r.WR1
	case SlotWR2:
		return r.WR2
	case SlotTE:
		return r.TE
	case SlotK:
		return r.K
	case SlotDST:
		return r.DST
	default:
		return EmptyEntry()
	}
}

// SetEntry replaces the named slot's contents.
func (r *Roster) SetEntry(slot Slot, entry Entry) {
	switch slot {
	case SlotQB:
		r.QB = entry
	case SlotRB1:
		r.RB1 = entry
	case SlotRB2:
		r.RB2 = entry
	case SlotWR1:
		r.WR1 = entry
	case SlotWR2:
		r.WR2 = entry
	case SlotTE:
		r.TE = entry
	case SlotK:
		r.K = entry
	case SlotDST:
		r.DST = entry
	}
}

// PlayerKeys lists the non-empty player keys across all slots.
func (r Roster) PlayerKeys() []string {
	keys := make([]string, 0, len(slots))
	for _, slot := range slots {
		if entry := r.Entry(slot); entry.PlayerKey != nil && *entry.PlayerKey != "" {
			keys = append(keys, *entry.PlayerKey)
		}
	}
	return keys
}
