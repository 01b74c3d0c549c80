package dateutil

import (
	"testing"
	"time"
)

func TestAgeInYear(t *testing.T) {
	tests := []struct {
		name      string
		birthYear int
		year      int
		want      int
	}{
		{"adult", 1990, 2025, 35},
		{"born this year", 2025, 2025, 0},
		{"not yet born", 2027, 2025, -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AgeInYear(tt.birthYear, tt.year); got != tt.want {
				t.Errorf("AgeInYear(%d, %d) = %d, want %d", tt.birthYear, tt.year, got, tt.want)
			}
		})
	}
}

func TestCalendarYear(t *testing.T) {
	ts := time.Date(2031, time.December, 31, 23, 0, 0, 0, time.UTC)
	if got := CalendarYear(ts); got != 2031 {
		t.Errorf("CalendarYear = %d, want 2031", got)
	}
}

func TestHorizonYears(t *testing.T) {
	if got := HorizonYears(35, 100); got != 66 {
		t.Errorf("HorizonYears(35, 100) = %d, want 66", got)
	}
	if got := HorizonYears(100, 100); got != 1 {
		t.Errorf("HorizonYears(100, 100) = %d, want 1", got)
	}
	if got := HorizonYears(2025, 100); got != 0 {
		t.Errorf("HorizonYears(2025, 100) = %d, want 0", got)
	}
}

func TestIsBirthYear(t *testing.T) {
	if !IsBirthYear(2025, 2025) {
		t.Error("expected 2025 to be the birth year")
	}
	if IsBirthYear(0, 0) {
		t.Error("empty slot must never match")
	}
	if IsBirthYear(2024, 2025) {
		t.Error("2024 birth is not a 2025 birth")
	}
}
