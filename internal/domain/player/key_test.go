package player

import "testing"

func TestTeamFromKey(t *testing.T) {
	t.Parallel()

	cases := []struct {
		key  string
		want string
		ok   bool
	}{
		{key: "J.Allen-BUF-QB", want: "BUF", ok: true},
		{key: "A.St.Brown-DET-WR", want: "DET", ok: true},
		{key: "J.Smith-Schuster-KC-WR", want: "KC", ok: true},
		{key: "SF-DST", want: "SF", ok: true},
		{key: "-DST", ok: false},
		{key: "SF-K", ok: false},
		{key: "", ok: false},
		{key: "X.--QB", ok: false},
	}

	for _, tc := range cases {
		got, ok := TeamFromKey(tc.key)
		if ok != tc.ok {
			t.Fatalf("unexpected ok for key %q: got=%v want=%v", tc.key, ok, tc.ok)
		}
		if ok && got != tc.want {
			t.Fatalf("unexpected team for key %q: got=%q want=%q", tc.key, got, tc.want)
		}
	}
}

func TestPlayerValidate(t *testing.T) {
	t.Parallel()

	valid := Player{
		Key:      "J.Allen-BUF-QB",
		ESPNID:   "3918298",
		FullName: "Josh Allen",
		Team:     "BUF",
		Position: PositionQuarterback,
		IsActive: true,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}

	invalid := valid
	invalid.Position = Position("LB")
	if err := invalid.Validate(); err == nil {
		t.Fatalf("expected error for unsupported position")
	}
}
