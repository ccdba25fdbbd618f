package result

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		home int
		away int
		want Outcome
	}{
		{name: "home win", home: 2, away: 1, want: Home},
		{name: "away win", home: 0, away: 3, want: Away},
		{name: "goalless draw", home: 0, away: 0, want: Draw},
		{name: "score draw", home: 2, away: 2, want: Draw},
		{name: "big margin", home: 20, away: 0, want: Home},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.home, tt.away); got != tt.want {
				t.Fatalf("unexpected outcome: got=%s want=%s", got, tt.want)
			}
		})
	}
}

func TestResolve_TotalOverScoreGrid(t *testing.T) {
	for home := 0; home <= 20; home++ {
		for away := 0; away <= 20; away++ {
			got := Resolve(home, away)
			switch {
			case home > away && got != Home,
				away > home && got != Away,
				home == away && got != Draw:
				t.Fatalf("inconsistent outcome for %d-%d: %s", home, away, got)
			}
		}
	}
}
