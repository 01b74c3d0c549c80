package config

import (
	"testing"

	"github.com/lifeplan/assetsim/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateParameters(t *testing.T) {
	rules := domain.DefaultRules()
	valid := domain.InputParameters{HusbandBirthYear: 1990, WifeBirthYear: 1992, Child1BirthYear: 2027}

	tests := []struct {
		name    string
		modify  func(p *domain.InputParameters)
		wantErr string
	}{
		{"valid household with planned child", func(p *domain.InputParameters) {}, ""},
		{"missing husband", func(p *domain.InputParameters) { p.HusbandBirthYear = 0 }, "husband birth year is required"},
		{"husband born in the future", func(p *domain.InputParameters) { p.HusbandBirthYear = 2030 }, "husband birth year 2030 is after start year 2025"},
		{"wife born in the future", func(p *domain.InputParameters) { p.WifeBirthYear = 2026 }, "wife birth year 2026 is after start year 2025"},
		{"husband past terminal age", func(p *domain.InputParameters) { p.HusbandBirthYear = 1920 }, "husband age 105 is past the terminal age 100"},
		{"retirement age too low", func(p *domain.InputParameters) { p.HusbandRetirementAge = 30 }, "husband retirement age 30 must be between 40 and 100"},
		{"retirement age too high", func(p *domain.InputParameters) { p.WifeRetirementAge = 120 }, "wife retirement age 120 must be between 40 and 100"},
		{"negative expense", func(p *domain.InputParameters) { p.Travel = -1 }, "travel cannot be negative"},
		{"negative assets allowed", func(p *domain.InputParameters) { p.CurrentAssets = -1 }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := valid
			tt.modify(&params)
			err := ValidateParameters(&params, 2025, &rules)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidParameters)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateParametersReportsAllProblems(t *testing.T) {
	rules := domain.DefaultRules()
	params := domain.InputParameters{HusbandRetirementAge: 10, Phone: -5}

	err := ValidateParameters(&params, 2025, &rules)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "husband birth year is required")
	assert.Contains(t, err.Error(), "husband retirement age 10")
	assert.Contains(t, err.Error(), "phone cannot be negative")
}
