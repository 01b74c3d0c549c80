package dateutil

import (
	"time"
)

// AgeInYear returns the age reached during the given calendar year.
// Negative results mean the person is not yet born in that year.
func AgeInYear(birthYear, year int) int {
	return year - birthYear
}

// CalendarYear returns the calendar year of t in its own location.
func CalendarYear(t time.Time) int {
	return t.Year()
}

// HorizonYears is the number of years from startAge through endAge inclusive, never negative.
func HorizonYears(startAge, endAge int) int {
	n := endAge - startAge + 1
	if n < 0 {
		return 0
	}
	return n
}

// IsBirthYear reports whether year is the calendar year of birth.
func IsBirthYear(birthYear, year int) bool {
	return birthYear != 0 && birthYear == year
}
