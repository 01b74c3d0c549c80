package calculation

import (
	"github.com/lifeplan/assetsim/internal/domain"
	"github.com/lifeplan/assetsim/pkg/dateutil"
)

// ResolveChildren returns a profile for every populated dependent slot as seen from year.
// Order is the slot position (1, 2, 3), never the chronological rank, and ages may be
// negative for children who are not yet born.
func ResolveChildren(params *domain.InputParameters, year int) []domain.ChildProfile {
	var children []domain.ChildProfile
	for i, birthYear := range params.ChildBirthYears() {
		if birthYear == 0 {
			// later slots keep their position: a lone child 2 stays order 2
			continue
		}
		children = append(children, domain.ChildProfile{
			Order:     i + 1,
			BirthYear: birthYear,
			Age:       dateutil.AgeInYear(birthYear, year),
		})
	}
	return children
}

// bornInYear reports whether any dependent's birth year is year.
func bornInYear(children []domain.ChildProfile, year int) bool {
	for _, c := range children {
		if dateutil.IsBirthYear(c.BirthYear, year) {
			return true
		}
	}
	return false
}
