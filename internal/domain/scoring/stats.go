package scoring

import (
	"strconv"
	"strings"
)

// PlayerStats is a sparse record of one player's raw statistics for a
// single game. Nil fields mean the stat was not reported.
type PlayerStats struct {
	PassingYards        *float64 `json:"passingYards,omitempty"`
	PassingTouchdowns   *float64 `json:"passingTouchdowns,omitempty"`
	Interceptions       *float64 `json:"interceptions,omitempty"`
	RushingYards        *float64 `json:"rushingYards,omitempty"`
	RushingTouchdowns   *float64 `json:"rushingTouchdowns,omitempty"`
	ReceivingYards      *float64 `json:"receivingYards,omitempty"`
	ReceivingTouchdowns *float64 `json:"receivingTouchdowns,omitempty"`
	Receptions          *float64 `json:"receptions,omitempty"`
	FumblesLost         *float64 `json:"fumblesLost,omitempty"`
	FieldGoalsMade      *float64 `json:"fieldGoalsMade,omitempty"`
	ExtraPointsMade     *float64 `json:"extraPointsMade,omitempty"`
	DefensiveTouchdowns *float64 `json:"defensiveTouchdowns,omitempty"`
	Sacks               *float64 `json:"sacks,omitempty"`
	InterceptionsMade   *float64 `json:"interceptionsMade,omitempty"`
	FumblesRecovered    *float64 `json:"fumblesRecovered,omitempty"`
	Safeties            *float64 `json:"safeties,omitempty"`
	PointsAllowed       *float64 `json:"pointsAllowed,omitempty"`
}

// IsZero reports whether no stat field is set.
func (s PlayerStats) IsZero() bool {
	return s == PlayerStats{}
}

// Merge overlays other onto s. Fields set in other win; fields only set
// in s survive. Box scores report one athlete across several category
// groups, so per-athlete stats are merged group by group before scoring.
func (s PlayerStats) Merge(other PlayerStats) PlayerStats {
	mergeFloat(&s.PassingYards, other.PassingYards)
	mergeFloat(&s.PassingTouchdowns, other.PassingTouchdowns)
	mergeFloat(&s.Interceptions, other.Interceptions)
	mergeFloat(&s.RushingYards, other.RushingYards)
	mergeFloat(&s.RushingTouchdowns, other.RushingTouchdowns)
	mergeFloat(&s.ReceivingYards, other.ReceivingYards)
	mergeFloat(&s.ReceivingTouchdowns, other.ReceivingTouchdowns)
	mergeFloat(&s.Receptions, other.Receptions)
	mergeFloat(&s.FumblesLost, other.FumblesLost)
	mergeFloat(&s.FieldGoalsMade, other.FieldGoalsMade)
	mergeFloat(&s.ExtraPointsMade, other.ExtraPointsMade)
	mergeFloat(&s.DefensiveTouchdowns, other.DefensiveTouchdowns)
	mergeFloat(&s.Sacks, other.Sacks)
	mergeFloat(&s.InterceptionsMade, other.InterceptionsMade)
	mergeFloat(&s.FumblesRecovered, other.FumblesRecovered)
	mergeFloat(&s.Safeties, other.Safeties)
	mergeFloat(&s.PointsAllowed, other.PointsAllowed)
	return s
}

func mergeFloat(dst **float64, src *float64) {
	if src != nil {
		v := *src
		*dst = &v
	}
}

// StatCategory scopes the extractor's alias table. Box-score labels such
// as "yds" and "td" are ambiguous across categories, so the category tag
// is required to resolve them.
type StatCategory string

const (
	CategoryPassing       StatCategory = "passing"
	CategoryRushing       StatCategory = "rushing"
	CategoryReceiving     StatCategory = "receiving"
	CategoryFumbles       StatCategory = "fumbles"
	CategoryKicking       StatCategory = "kicking"
	CategoryDefense       StatCategory = "defense"
	CategoryInterceptions StatCategory = "interceptions"
)

// ParseCategory maps an external stat-group name to a known category.
// Groups that carry no fantasy-relevant stats (punting, returns) report
// false.
func ParseCategory(groupName string) (StatCategory, bool) {
	switch strings.ToLower(strings.TrimSpace(groupName)) {
	case "passing":
		return CategoryPassing, true
	case "rushing":
		return CategoryRushing, true
	case "receiving":
		return CategoryReceiving, true
	case "fumbles":
		return CategoryFumbles, true
	case "kicking":
		return CategoryKicking, true
	case "defense", "defensive":
		return CategoryDefense, true
	case "interceptions":
		return CategoryInterceptions, true
	default:
		return "", false
	}
}

type statField int

const (
	fieldIgnored statField = iota
	fieldPassingYards
	fieldPassingTouchdowns
	fieldInterceptions
	fieldRushingYards
	fieldRushingTouchdowns
	fieldReceivingYards
	fieldReceivingTouchdowns
	fieldReceptions
	fieldFumblesLost
	fieldFieldGoalsMade
	fieldExtraPointsMade
	fieldDefensiveTouchdowns
	fieldSacks
	fieldInterceptionsMade
)

// Box-score category groups report per-athlete lines only, so team
// aggregates (fumbles recovered, safeties, points allowed) never appear
// here; those fields are populated only through stored stats.
var categoryAliases = map[StatCategory]map[string]statField{
	CategoryPassing: {
		"c/att":               fieldIgnored,
		"passing completions": fieldIgnored,
		"yds":                 fieldPassingYards,
		"passing yards":       fieldPassingYards,
		"td":                  fieldPassingTouchdowns,
		"passing touchdowns":  fieldPassingTouchdowns,
		"int":                 fieldInterceptions,
		"interceptions thrown": fieldInterceptions,
	},
	CategoryRushing: {
		"car":                fieldIgnored,
		"rushing attempts":   fieldIgnored,
		"yds":                fieldRushingYards,
		"rushing yards":      fieldRushingYards,
		"td":                 fieldRushingTouchdowns,
		"rushing touchdowns": fieldRushingTouchdowns,
	},
	CategoryReceiving: {
		"rec":                  fieldReceptions,
		"receptions":           fieldReceptions,
		"yds":                  fieldReceivingYards,
		"receiving yards":      fieldReceivingYards,
		"td":                   fieldReceivingTouchdowns,
		"receiving touchdowns": fieldReceivingTouchdowns,
	},
	CategoryFumbles: {
		"fl":           fieldFumblesLost,
		"lost":         fieldFumblesLost,
		"fumbles lost": fieldFumblesLost,
	},
	CategoryKicking: {
		"fg":                fieldFieldGoalsMade,
		"field goals made":  fieldFieldGoalsMade,
		"xp":                fieldExtraPointsMade,
		"extra points made": fieldExtraPointsMade,
	},
	CategoryDefense: {
		"sacks": fieldSacks,
		"sack":  fieldSacks,
		"td":    fieldDefensiveTouchdowns,
	},
	CategoryInterceptions: {
		"int":           fieldInterceptionsMade,
		"interceptions": fieldInterceptionsMade,
		"td":            fieldDefensiveTouchdowns,
	},
}

// ExtractStats maps parallel label/value arrays from one box-score
// category group into a PlayerStats record. Unrecognized labels are
// ignored and non-numeric values parse to zero. Extra values without a
// matching label are dropped.
func ExtractStats(category StatCategory, labels []string, values []string) PlayerStats {
	aliases, ok := categoryAliases[category]
	if !ok {
		return PlayerStats{}
	}

	stats := PlayerStats{}
	for i, label := range labels {
		if i >= len(values) {
			break
		}

		field, ok := aliases[strings.ToLower(strings.TrimSpace(label))]
		if !ok || field == fieldIgnored {
			continue
		}

		parsed, err := strconv.ParseFloat(strings.TrimSpace(values[i]), 64)
		if err != nil {
			parsed = 0
		}

		switch field {
		case fieldPassingYards:
			stats.PassingYards = &parsed
		case fieldPassingTouchdowns:
			stats.PassingTouchdowns = &parsed
		case fieldInterceptions:
			stats.Interceptions = &parsed
		case fieldRushingYards:
			stats.RushingYards = &parsed
		case fieldRushingTouchdowns:
			stats.RushingTouchdowns = &parsed
		case fieldReceivingYards:
			stats.ReceivingYards = &parsed
		case fieldReceivingTouchdowns:
			stats.ReceivingTouchdowns = &parsed
		case fieldReceptions:
			stats.Receptions = &parsed
		case fieldFumblesLost:
			stats.FumblesLost = &parsed
		case fieldFieldGoalsMade:
			stats.FieldGoalsMade = &parsed
		case fieldExtraPointsMade:
			stats.ExtraPointsMade = &parsed
		case fieldDefensiveTouchdowns:
			stats.DefensiveTouchdowns = &parsed
		case fieldSacks:
			stats.Sacks = &parsed
		case fieldInterceptionsMade:
			stats.InterceptionsMade = &parsed
		}
	}

	return stats
}
