package domain

import (
	"strconv"
	"time"
)

// Seasons in calendar-quarter order
var Seasons = [4]string{"Winter", "Spring", "Summer", "Fall"}

// SeasonOf returns the season name and year for t.
// Months 1-3 are Winter, 4-6 Spring, 7-9 Summer, 10-12 Fall.
func SeasonOf(t time.Time) (string, int) {
	return Seasons[(int(t.Month())-1)/3], t.Year()
}

// YearDir returns the remote directory for a year
func YearDir(year int) string {
	return RootDir + "/" + strconv.Itoa(year)
}

// SeasonDir returns the remote directory holding the releases of t's season
func SeasonDir(t time.Time) string {
	season, year := SeasonOf(t)
	return YearDir(year) + "/" + season
}
