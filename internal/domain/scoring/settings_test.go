package scoring

import "testing"

func floatPtr(v float64) *float64 {
	return &v
}

func TestDefaultsReceptionByFormat(t *testing.T) {
	t.Parallel()

	cases := []struct {
		format Format
		want   float64
	}{
		{format: FormatPPR, want: 1},
		{format: FormatHalfPPR, want: 0.5},
		{format: FormatStandard, want: 0},
	}

	for _, tc := range cases {
		got := Normalize(tc.format, nil)
		if got.Receiving.Reception != tc.want {
			t.Fatalf("unexpected reception value for %s: got=%v want=%v", tc.format, got.Receiving.Reception, tc.want)
		}
	}
}

func TestNormalizeMergesPartialOverride(t *testing.T) {
	t.Parallel()

	override := &Override{
		Passing: &PassingOverride{
			Touchdown: floatPtr(6),
		},
		Receiving: &ReceivingOverride{
			Reception: floatPtr(0.75),
		},
	}

	got := Normalize(FormatPPR, override)

	if got.Passing.Touchdown != 6 {
		t.Fatalf("unexpected passing touchdown: got=%v want=6", got.Passing.Touchdown)
	}
	// Fields missing inside an overridden category keep format defaults.
	if got.Passing.YardsPerPoint != 25 {
		t.Fatalf("unexpected passing yards per point: got=%v want=25", got.Passing.YardsPerPoint)
	}
	if got.Passing.Interception != -2 {
		t.Fatalf("unexpected passing interception: got=%v want=-2", got.Passing.Interception)
	}
	if got.Receiving.Reception != 0.75 {
		t.Fatalf("unexpected reception value: got=%v want=0.75", got.Receiving.Reception)
	}
	if got.Rushing != Defaults(FormatPPR).Rushing {
		t.Fatalf("expected untouched rushing category to keep defaults")
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	t.Parallel()

	override := &Override{
		Defense: &DefenseOverride{
			Sack: floatPtr(1.5),
		},
	}

	once := Normalize(FormatHalfPPR, override)
	if again := Normalize(FormatHalfPPR, override); again != once {
		t.Fatalf("normalize is not deterministic: got=%+v want=%+v", again, once)
	}

	// Re-normalizing a full table expressed as an override changes nothing.
	full := &Override{
		Passing: &PassingOverride{
			YardsPerPoint: floatPtr(once.Passing.YardsPerPoint),
			Touchdown:     floatPtr(once.Passing.Touchdown),
			Interception:  floatPtr(once.Passing.Interception),
		},
		Rushing: &RushingOverride{
			YardsPerPoint: floatPtr(once.Rushing.YardsPerPoint),
			Touchdown:     floatPtr(once.Rushing.Touchdown),
		},
		Receiving: &ReceivingOverride{
			YardsPerPoint: floatPtr(once.Receiving.YardsPerPoint),
			Touchdown:     floatPtr(once.Receiving.Touchdown),
			Reception:     floatPtr(once.Receiving.Reception),
		},
		Fumbles: &FumbleOverride{Lost: floatPtr(once.Fumbles.Lost)},
		Kicking: &KickingOverride{
			FieldGoal:  floatPtr(once.Kicking.FieldGoal),
			ExtraPoint: floatPtr(once.Kicking.ExtraPoint),
		},
		Defense: &DefenseOverride{
			Touchdown:      floatPtr(once.Defense.Touchdown),
			Sack:           floatPtr(once.Defense.Sack),
			Interception:   floatPtr(once.Defense.Interception),
			FumbleRecovery: floatPtr(once.Defense.FumbleRecovery),
			Safety:         floatPtr(once.Defense.Safety),
		},
	}
	if again := Normalize(FormatHalfPPR, full); again != once {
		t.Fatalf("re-normalizing normalized settings drifted: got=%+v want=%+v", again, once)
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	if got, ok := ParseFormat(" half_ppr "); !ok || got != FormatHalfPPR {
		t.Fatalf("unexpected parse result: got=%s ok=%v", got, ok)
	}
	if _, ok := ParseFormat("SUPERFLEX"); ok {
		t.Fatalf("expected unknown format to fail")
	}
}
