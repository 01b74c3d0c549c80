package config

import (
	"fmt"
	"os"

	"github.com/lifeplan/assetsim/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

var oneDecimal = decimal.NewFromInt(1)

// LoadRules reads a YAML rule override file on top of domain.DefaultRules.
// Keys absent from the file keep their defaults; list keys replace the whole list.
func LoadRules(filename string) (domain.Rules, error) {
	rules := domain.DefaultRules()
	if filename == "" {
		return rules, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return rules, fmt.Errorf("failed to read rules file %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return rules, fmt.Errorf("failed to parse rules YAML: %w", err)
	}
	if err := validateRules(&rules); err != nil {
		return rules, fmt.Errorf("rules validation failed: %w", err)
	}
	return rules, nil
}

func validateRules(rules *domain.Rules) error {
	if rules.TaxRate.IsNegative() || rules.TaxRate.GreaterThanOrEqual(oneDecimal) {
		return fmt.Errorf("tax rate must be in [0, 1), got %s", rules.TaxRate)
	}
	if rules.TerminalAge <= 0 {
		return fmt.Errorf("terminal age must be positive, got %d", rules.TerminalAge)
	}
	if rules.PensionStartAge <= 0 {
		return fmt.Errorf("pension start age must be positive, got %d", rules.PensionStartAge)
	}
	for i, band := range rules.Education {
		if band.MinAge > band.MaxAge {
			return fmt.Errorf("education band %d (%s): min age %d exceeds max age %d", i, band.Stage, band.MinAge, band.MaxAge)
		}
	}
	return nil
}
