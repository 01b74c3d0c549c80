package calculation

import (
	"github.com/lifeplan/assetsim/internal/domain"
)

// DetectEvents returns the life events of one year in a fixed order: husband, wife, then
// children by birth order. Spouse events precede child milestones.
func DetectEvents(rules *domain.Rules, params *domain.InputParameters, husbandAge, wifeAge int, children []domain.ChildProfile) []domain.LifeEvent {
	var events []domain.LifeEvent

	spouses := []struct {
		spouse        domain.Spouse
		status        spouseStatus
		retirementAge int
	}{
		{domain.Husband, newSpouseStatus(params.HusbandBirthYear, husbandAge), rules.HusbandRetirementAge(params)},
		{domain.Wife, newSpouseStatus(params.WifeBirthYear, wifeAge), rules.WifeRetirementAge(params)},
	}
	for _, s := range spouses {
		if !s.status.Present {
			continue
		}
		if s.status.Age == s.retirementAge {
			events = append(events, domain.NewSpouseEvent(domain.EventRetirement, s.spouse, s.status.Age))
		}
		if s.status.Age == rules.PensionStartAge {
			events = append(events, domain.NewSpouseEvent(domain.EventPensionStart, s.spouse, s.status.Age))
		}
	}

	for _, child := range children {
		for _, m := range rules.Milestones {
			if child.Age == m.Age {
				events = append(events, domain.NewChildEvent(m.Kind, child.Order))
			}
		}
	}
	return events
}
