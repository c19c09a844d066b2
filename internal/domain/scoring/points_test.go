package scoring

import "testing"

func TestCalculatePointsPassingLine(t *testing.T) {
	t.Parallel()

	stats := PlayerStats{
		PassingYards:      floatPtr(250),
		PassingTouchdowns: floatPtr(2),
		Interceptions:     floatPtr(1),
	}

	// 250/25 + 2*4 - 1*2 = 16.00 under default PPR settings.
	got := CalculatePoints(stats, Normalize(FormatPPR, nil))
	if got != 16 {
		t.Fatalf("unexpected points: got=%v want=16", got)
	}
}

func TestCalculatePointsEmptyStats(t *testing.T) {
	t.Parallel()

	for _, format := range []Format{FormatPPR, FormatHalfPPR, FormatStandard} {
		if got := CalculatePoints(PlayerStats{}, Normalize(format, nil)); got != 0 {
			t.Fatalf("unexpected points for empty stats under %s: got=%v want=0", format, got)
		}
	}
}

func TestCalculatePointsReceptionByFormat(t *testing.T) {
	t.Parallel()

	stats := PlayerStats{Receptions: floatPtr(8)}

	cases := []struct {
		format Format
		want   float64
	}{
		{format: FormatPPR, want: 8},
		{format: FormatHalfPPR, want: 4},
		{format: FormatStandard, want: 0},
	}

	for _, tc := range cases {
		if got := CalculatePoints(stats, Normalize(tc.format, nil)); got != tc.want {
			t.Fatalf("unexpected points under %s: got=%v want=%v", tc.format, got, tc.want)
		}
	}
}

func TestPointsAllowedTiers(t *testing.T) {
	t.Parallel()

	cases := []struct {
		allowed float64
		want    float64
	}{
		{allowed: 0, want: 10},
		{allowed: 6, want: 7},
		{allowed: 13, want: 4},
		{allowed: 20, want: 1},
		{allowed: 27, want: 0},
		{allowed: 34, want: -1},
		{allowed: 35, want: -4},
	}

	for _, tc := range cases {
		if got := PointsAllowedBonus(tc.allowed); got != tc.want {
			t.Fatalf("unexpected bonus for %v allowed: got=%v want=%v", tc.allowed, got, tc.want)
		}
	}
}

func TestCalculatePointsDefenseLine(t *testing.T) {
	t.Parallel()

	stats := PlayerStats{
		Sacks:               floatPtr(3),
		InterceptionsMade:   floatPtr(2),
		FumblesRecovered:    floatPtr(1),
		DefensiveTouchdowns: floatPtr(1),
		PointsAllowed:       floatPtr(13),
	}

	// 3*1 + 2*2 + 1*2 + 1*6 + tier(13)=4 → 19.00
	got := CalculatePoints(stats, Normalize(FormatPPR, nil))
	if got != 19 {
		t.Fatalf("unexpected defense points: got=%v want=19", got)
	}
}

func TestCalculatePointsRoundsToTwoDecimals(t *testing.T) {
	t.Parallel()

	stats := PlayerStats{PassingYards: floatPtr(251)}

	// 251/25 = 10.04 exactly two decimal places.
	got := CalculatePoints(stats, Normalize(FormatStandard, nil))
	if got != 10.04 {
		t.Fatalf("unexpected rounded points: got=%v want=10.04", got)
	}
}
