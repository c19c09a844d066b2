package scoring

import "math"

// CalculatePoints converts one player's raw per-game statistics into a
// fantasy point total under the given settings. Absent stats contribute
// zero. The result is rounded to 2 decimal places.
func CalculatePoints(stats PlayerStats, settings Settings) float64 {
	points := 0.0

	if v := value(stats.PassingYards); v != 0 && settings.Passing.YardsPerPoint > 0 {
		points += v / settings.Passing.YardsPerPoint
	}
	points += value(stats.PassingTouchdowns) * settings.Passing.Touchdown
	points += value(stats.Interceptions) * settings.Passing.Interception

	if v := value(stats.RushingYards); v != 0 && settings.Rushing.YardsPerPoint > 0 {
		points += v / settings.Rushing.YardsPerPoint
	}
	points += value(stats.RushingTouchdowns) * settings.Rushing.Touchdown

	if v := value(stats.ReceivingYards); v != 0 && settings.Receiving.YardsPerPoint > 0 {
		points += v / settings.Receiving.YardsPerPoint
	}
	points += value(stats.ReceivingTouchdowns) * settings.Receiving.Touchdown
	points += value(stats.Receptions) * settings.Receiving.Reception

	points += value(stats.FumblesLost) * settings.Fumbles.Lost

	points += value(stats.FieldGoalsMade) * settings.Kicking.FieldGoal
	points += value(stats.ExtraPointsMade) * settings.Kicking.ExtraPoint

	points += value(stats.DefensiveTouchdowns) * settings.Defense.Touchdown
	points += value(stats.Sacks) * settings.Defense.Sack
	points += value(stats.InterceptionsMade) * settings.Defense.Interception
	points += value(stats.FumblesRecovered) * settings.Defense.FumbleRecovery
	points += value(stats.Safeties) * settings.Defense.Safety

	// The points-allowed tier table is fixed and format independent. It is
	// deliberately not part of Settings; see PointsAllowedBonus.
	if stats.PointsAllowed != nil {
		points += PointsAllowedBonus(*stats.PointsAllowed)
	}

	return round2(points)
}

// PointsAllowedBonus is the defense/special-teams bonus for total points
// conceded in one game.
func PointsAllowedBonus(pointsAllowed float64) float64 {
	switch {
	case pointsAllowed <= 0:
		return 10
	case pointsAllowed <= 6:
		return 7
	case pointsAllowed <= 13:
		return 4
	case pointsAllowed <= 20:
		return 1
	case pointsAllowed <= 27:
		return 0
	case pointsAllowed <= 34:
		return -1
	default:
		return -4
	}
}

func value(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
