package scoring

import "strings"

// Format selects the default reception value for a league.
type Format string

const (
	FormatPPR      Format = "PPR"
	FormatHalfPPR  Format = "HALF_PPR"
	FormatStandard Format = "STANDARD"
)

// ParseFormat validates a scoring format tag.
func ParseFormat(value string) (Format, bool) {
	switch Format(strings.ToUpper(strings.TrimSpace(value))) {
	case FormatPPR:
		return FormatPPR, true
	case FormatHalfPPR:
		return FormatHalfPPR, true
	case FormatStandard:
		return FormatStandard, true
	default:
		return "", false
	}
}

// Settings is a fully populated scoring table. Settings values are
// immutable once built; construct them through Normalize.
type Settings struct {
	Passing   PassingRules   `json:"passing"`
	Rushing   RushingRules   `json:"rushing"`
	Receiving ReceivingRules `json:"receiving"`
	Fumbles   FumbleRules    `json:"fumbles"`
	Kicking   KickingRules   `json:"kicking"`
	Defense   DefenseRules   `json:"defense"`
}

type PassingRules struct {
	YardsPerPoint float64 `json:"yards_per_point"`
	Touchdown     float64 `json:"touchdown"`
	Interception  float64 `json:"interception"`
}

type RushingRules struct {
	YardsPerPoint float64 `json:"yards_per_point"`
	Touchdown     float64 `json:"touchdown"`
}

type ReceivingRules struct {
	YardsPerPoint float64 `json:"yards_per_point"`
	Touchdown     float64 `json:"touchdown"`
	Reception     float64 `json:"reception"`
}

type FumbleRules struct {
	Lost float64 `json:"lost"`
}

type KickingRules struct {
	FieldGoal  float64 `json:"field_goal"`
	ExtraPoint float64 `json:"extra_point"`
}

type DefenseRules struct {
	Touchdown      float64 `json:"touchdown"`
	Sack           float64 `json:"sack"`
	Interception   float64 `json:"interception"`
	FumbleRecovery float64 `json:"fumble_recovery"`
	Safety         float64 `json:"safety"`
}

// Override is a league's stored partial scoring table. Nil fields fall
// back to the format defaults during Normalize.
type Override struct {
	Passing   *PassingOverride   `json:"passing,omitempty"`
	Rushing   *RushingOverride   `json:"rushing,omitempty"`
	Receiving *ReceivingOverride `json:"receiving,omitempty"`
	Fumbles   *FumbleOverride    `json:"fumbles,omitempty"`
	Kicking   *KickingOverride   `json:"kicking,omitempty"`
	Defense   *DefenseOverride   `json:"defense,omitempty"`
}

type PassingOverride struct {
	YardsPerPoint *float64 `json:"yards_per_point,omitempty"`
	Touchdown     *float64 `json:"touchdown,omitempty"`
	Interception  *float64 `json:"interception,omitempty"`
}

type RushingOverride struct {
	YardsPerPoint *float64 `json:"yards_per_point,omitempty"`
	Touchdown     *float64 `json:"touchdown,omitempty"`
}

type ReceivingOverride struct {
	YardsPerPoint *float64 `json:"yards_per_point,omitempty"`
	Touchdown     *float64 `json:"touchdown,omitempty"`
	Reception     *float64 `json:"reception,omitempty"`
}

type FumbleOverride struct {
	Lost *float64 `json:"lost,omitempty"`
}

type KickingOverride struct {
	FieldGoal  *float64 `json:"field_goal,omitempty"`
	ExtraPoint *float64 `json:"extra_point,omitempty"`
}

type DefenseOverride struct {
	Touchdown      *float64 `json:"touchdown,omitempty"`
	Sack           *float64 `json:"sack,omitempty"`
	Interception   *float64 `json:"interception,omitempty"`
	FumbleRecovery *float64 `json:"fumble_recovery,omitempty"`
	Safety         *float64 `json:"safety,omitempty"`
}

// Defaults returns the full default table for a format. Reception is the
// only format-sensitive value.
func Defaults(format Format) Settings {
	settings := Settings{
		Passing: PassingRules{
			YardsPerPoint: 25,
			Touchdown:     4,
			Interception:  -2,
		},
		Rushing: RushingRules{
			YardsPerPoint: 10,
			Touchdown:     6,
		},
		Receiving: ReceivingRules{
			YardsPerPoint: 10,
			Touchdown:     6,
			Reception:     1,
		},
		Fumbles: FumbleRules{
			Lost: -2,
		},
		Kicking: KickingRules{
			FieldGoal:  3,
			ExtraPoint: 1,
		},
		Defense: DefenseRules{
			Touchdown:      6,
			Sack:           1,
			Interception:   2,
			FumbleRecovery: 2,
			Safety:         2,
		},
	}

	switch format {
	case FormatHalfPPR:
		settings.Receiving.Reception = 0.5
	case FormatStandard:
		settings.Receiving.Reception = 0
	}

	return settings
}

// Normalize merges a league's partial override over the format defaults,
// category by category. Fields left nil inside an overridden category keep
// the default value. Normalizing without an override is idempotent.
func Normalize(format Format, override *Override) Settings {
	settings := Defaults(format)
	if override == nil {
		return settings
	}

	if o := override.Passing; o != nil {
		applyFloat(&settings.Passing.YardsPerPoint, o.YardsPerPoint)
		applyFloat(&settings.Passing.Touchdown, o.Touchdown)
		applyFloat(&settings.Passing.Interception, o.Interception)
	}
	if o := override.Rushing; o != nil {
		applyFloat(&settings.Rushing.YardsPerPoint, o.YardsPerPoint)
		applyFloat(&settings.Rushing.Touchdown, o.Touchdown)
	}
	if o := override.Receiving; o != nil {
		applyFloat(&settings.Receiving.YardsPerPoint, o.YardsPerPoint)
		applyFloat(&settings.Receiving.Touchdown, o.Touchdown)
		applyFloat(&settings.Receiving.Reception, o.Reception)
	}
	if o := override.Fumbles; o != nil {
		applyFloat(&settings.Fumbles.Lost, o.Lost)
	}
	if o := override.Kicking; o != nil {
		applyFloat(&settings.Kicking.FieldGoal, o.FieldGoal)
		applyFloat(&settings.Kicking.ExtraPoint, o.ExtraPoint)
	}
	if o := override.Defense; o != nil {
		applyFloat(&settings.Defense.Touchdown, o.Touchdown)
		applyFloat(&settings.Defense.Sack, o.Sack)
		applyFloat(&settings.Defense.Interception, o.Interception)
		applyFloat(&settings.Defense.FumbleRecovery, o.FumbleRecovery)
		applyFloat(&settings.Defense.Safety, o.Safety)
	}

	return settings
}

func applyFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
