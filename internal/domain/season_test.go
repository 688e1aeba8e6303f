package domain

import (
	"testing"
	"time"
)

func TestSeasonOf(t *testing.T) {
	tests := []struct {
		month time.Month
		want  string
	}{
		{time.January, "Winter"},
		{time.March, "Winter"},
		{time.April, "Spring"},
		{time.June, "Spring"},
		{time.July, "Summer"},
		{time.September, "Summer"},
		{time.October, "Fall"},
		{time.December, "Fall"},
	}

	for _, tt := range tests {
		t.Run(tt.month.String(), func(t *testing.T) {
			now := time.Date(2025, tt.month, 15, 12, 0, 0, 0, time.UTC)
			season, year := SeasonOf(now)
			if season != tt.want {
				t.Errorf("season = %s, want %s", season, tt.want)
			}
			if year != 2025 {
				t.Errorf("year = %d, want 2025", year)
			}
		})
	}
}

func TestSeasonDir(t *testing.T) {
	now := time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)
	if got := SeasonDir(now); got != "Sub/2026/Fall" {
		t.Errorf("SeasonDir = %q, want Sub/2026/Fall", got)
	}
	if got := YearDir(2019); got != "Sub/2019" {
		t.Errorf("YearDir = %q, want Sub/2019", got)
	}
}
