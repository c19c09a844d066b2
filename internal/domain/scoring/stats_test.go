package scoring

import "testing"

func TestParseCategory(t *testing.T) {
	t.Parallel()

	cases := []struct {
		group string
		want  StatCategory
		ok    bool
	}{
		{group: "passing", want: CategoryPassing, ok: true},
		{group: "Defensive", want: CategoryDefense, ok: true},
		{group: "interceptions", want: CategoryInterceptions, ok: true},
		{group: "punting", ok: false},
		{group: "kickReturns", ok: false},
	}

	for _, tc := range cases {
		got, ok := ParseCategory(tc.group)
		if ok != tc.ok {
			t.Fatalf("unexpected ok for group %q: got=%v want=%v", tc.group, ok, tc.ok)
		}
		if ok && got != tc.want {
			t.Fatalf("unexpected category for group %q: got=%s want=%s", tc.group, got, tc.want)
		}
	}
}

func TestExtractStatsResolvesAmbiguousLabelsByCategory(t *testing.T) {
	t.Parallel()

	passing := ExtractStats(CategoryPassing, []string{"C/ATT", "YDS", "TD", "INT"}, []string{"22/31", "250", "2", "1"})
	if passing.PassingYards == nil || *passing.PassingYards != 250 {
		t.Fatalf("unexpected passing yards: got=%v", passing.PassingYards)
	}
	if passing.PassingTouchdowns == nil || *passing.PassingTouchdowns != 2 {
		t.Fatalf("unexpected passing touchdowns: got=%v", passing.PassingTouchdowns)
	}
	if passing.Interceptions == nil || *passing.Interceptions != 1 {
		t.Fatalf("unexpected interceptions: got=%v", passing.Interceptions)
	}
	if passing.RushingYards != nil {
		t.Fatalf("passing group must not populate rushing yards")
	}

	rushing := ExtractStats(CategoryRushing, []string{"CAR", "YDS", "TD"}, []string{"18", "94", "1"})
	if rushing.RushingYards == nil || *rushing.RushingYards != 94 {
		t.Fatalf("unexpected rushing yards: got=%v", rushing.RushingYards)
	}
	if rushing.PassingYards != nil {
		t.Fatalf("rushing group must not populate passing yards")
	}

	receiving := ExtractStats(CategoryReceiving, []string{"REC", "YDS", "TD"}, []string{"7", "88", "0"})
	if receiving.Receptions == nil || *receiving.Receptions != 7 {
		t.Fatalf("unexpected receptions: got=%v", receiving.Receptions)
	}
	if receiving.ReceivingTouchdowns == nil || *receiving.ReceivingTouchdowns != 0 {
		t.Fatalf("expected explicit zero receiving touchdowns")
	}
}

func TestExtractStatsIgnoresUnknownAndGarbage(t *testing.T) {
	t.Parallel()

	stats := ExtractStats(CategoryKicking, []string{"FG", "XP", "LONG", "PTS"}, []string{"2", "n/a", "52", "7"})
	if stats.FieldGoalsMade == nil || *stats.FieldGoalsMade != 2 {
		t.Fatalf("unexpected field goals: got=%v", stats.FieldGoalsMade)
	}
	// Non-numeric values parse to zero rather than erroring.
	if stats.ExtraPointsMade == nil || *stats.ExtraPointsMade != 0 {
		t.Fatalf("unexpected extra points: got=%v", stats.ExtraPointsMade)
	}

	if got := ExtractStats(StatCategory("punting"), []string{"YDS"}, []string{"300"}); !got.IsZero() {
		t.Fatalf("unknown category must produce empty stats: got=%+v", got)
	}
}

func TestExtractStatsMismatchedLengths(t *testing.T) {
	t.Parallel()

	stats := ExtractStats(CategoryPassing, []string{"YDS", "TD", "INT"}, []string{"310"})
	if stats.PassingYards == nil || *stats.PassingYards != 310 {
		t.Fatalf("unexpected passing yards: got=%v", stats.PassingYards)
	}
	if stats.PassingTouchdowns != nil || stats.Interceptions != nil {
		t.Fatalf("labels without values must stay unset")
	}
}

func TestMergeCombinesCategoryGroups(t *testing.T) {
	t.Parallel()

	passing := ExtractStats(CategoryPassing, []string{"YDS", "TD"}, []string{"220", "1"})
	rushing := ExtractStats(CategoryRushing, []string{"YDS", "TD"}, []string{"45", "1"})

	merged := passing.Merge(rushing)
	if merged.PassingYards == nil || *merged.PassingYards != 220 {
		t.Fatalf("merge lost passing yards: got=%v", merged.PassingYards)
	}
	if merged.RushingYards == nil || *merged.RushingYards != 45 {
		t.Fatalf("merge lost rushing yards: got=%v", merged.RushingYards)
	}
	if merged.RushingTouchdowns == nil || *merged.RushingTouchdowns != 1 {
		t.Fatalf("merge lost rushing touchdowns: got=%v", merged.RushingTouchdowns)
	}
}
