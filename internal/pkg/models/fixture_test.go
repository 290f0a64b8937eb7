package models

import "testing"

func TestFixtureStatus(t *testing.T) {
	tests := []struct {
		short    string
		live     bool
		finished bool
		upcoming bool
	}{
		{"NS", false, false, true},
		{"TBD", false, false, true},
		{"1H", true, false, false},
		{"HT", true, false, false},
		{"2H", true, false, false},
		{"P", true, false, false},
		{"FT", false, true, false},
		{"AET", false, true, false},
		{"PEN", false, true, false},
		{"PST", false, false, false},
	}
	for _, tt := range tests {
		f := Fixture{Status: FixtureStatus{Short: tt.short}}
		if got := f.IsLive(); got != tt.live {
			t.Errorf("IsLive(%s) = %v, want %v", tt.short, got, tt.live)
		}
		if got := f.IsFinished(); got != tt.finished {
			t.Errorf("IsFinished(%s) = %v, want %v", tt.short, got, tt.finished)
		}
		if got := f.NotStarted(); got != tt.upcoming {
			t.Errorf("NotStarted(%s) = %v, want %v", tt.short, got, tt.upcoming)
		}
	}
}

func TestFixtureHasScore(t *testing.T) {
	one, zero := 1, 0
	if (Fixture{}).HasScore() {
		t.Error("fixture without goals should not have a score")
	}
	if !(Fixture{Goals: Goals{Home: &one, Away: &zero}}).HasScore() {
		t.Error("fixture with both goals should have a score")
	}
	if (Fixture{Goals: Goals{Home: &one}}).HasScore() {
		t.Error("half-known score should not count")
	}
}
