package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lifeplan/assetsim/internal/domain"
	"github.com/lifeplan/assetsim/pkg/dateutil"
)

// ErrInvalidParameters is wrapped by every strict validation failure.
var ErrInvalidParameters = errors.New("invalid household parameters")

const (
	minRetirementAge = 40
	maxRetirementAge = 100
)

// ValidateParameters applies checks the engine deliberately skips. It is optional:
// callers that want strict input run it before projecting.
func ValidateParameters(params *domain.InputParameters, startYear int, rules *domain.Rules) error {
	var problems []string

	if params.HusbandBirthYear == 0 {
		problems = append(problems, "husband birth year is required")
	} else {
		if params.HusbandBirthYear > startYear {
			problems = append(problems, fmt.Sprintf("husband birth year %d is after start year %d", params.HusbandBirthYear, startYear))
		}
		if age := dateutil.AgeInYear(params.HusbandBirthYear, startYear); age > rules.TerminalAge {
			problems = append(problems, fmt.Sprintf("husband age %d is past the terminal age %d", age, rules.TerminalAge))
		}
	}
	if params.WifeBirthYear > startYear {
		problems = append(problems, fmt.Sprintf("wife birth year %d is after start year %d", params.WifeBirthYear, startYear))
	}

	for _, r := range []struct {
		who string
		age int
	}{
		{"husband", params.HusbandRetirementAge},
		{"wife", params.WifeRetirementAge},
	} {
		if r.age != 0 && (r.age < minRetirementAge || r.age > maxRetirementAge) {
			problems = append(problems, fmt.Sprintf("%s retirement age %d must be between %d and %d", r.who, r.age, minRetirementAge, maxRetirementAge))
		}
	}

	for _, field := range domain.ParameterFields() {
		if !field.Signed && field.Get(params) < 0 {
			problems = append(problems, fmt.Sprintf("%s cannot be negative", field.Key))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidParameters, strings.Join(problems, "; "))
	}
	return nil
}
