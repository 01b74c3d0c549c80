package integration

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifeplan/assetsim/internal/calculation"
	"github.com/lifeplan/assetsim/internal/config"
	"github.com/lifeplan/assetsim/internal/domain"
)

const (
	householdFile = "../testdata/household.yaml"
	startYear     = 2026
)

func loadProjection(t *testing.T) (*domain.InputParameters, *domain.Projection) {
	t.Helper()
	params, err := config.NewInputParser().LoadFromFile(householdFile)
	require.NoError(t, err)
	engine := calculation.NewSimulationEngine()
	return params, engine.RunProjection(params, startYear)
}

func rowFor(t *testing.T, p *domain.Projection, year int) domain.ProjectionRow {
	t.Helper()
	row, ok := calculation.FindRow(p.Rows, year)
	require.True(t, ok, "no row for %d", year)
	return row
}

func TestEndToEndProjection(t *testing.T) {
	params, projection := loadProjection(t)

	// husband is 41 in 2026 and the horizon runs through age 100
	require.Len(t, projection.Rows, 60)
	assert.Equal(t, 2026, projection.Rows[0].Year)
	assert.Equal(t, 100, projection.Rows[59].HusbandAge)

	assets := decimal.NewFromInt(params.CurrentAssets)
	for _, row := range projection.Rows {
		assert.True(t, row.Balance.Equal(row.TotalIncome.Sub(row.TotalExpense)), "balance in %d", row.Year)
		assets = assets.Add(row.Balance)
		assert.True(t, row.Assets.Equal(assets), "assets in %d", row.Year)
	}

	s := projection.Summary
	assert.Equal(t, 60, s.Years)
	assert.True(t, s.FinalAssets.Equal(projection.Rows[59].Assets))
	assert.True(t, s.StartingAssets.Equal(decimal.NewFromInt(3000000)))
}

func TestLifeEventsAcrossTheHorizon(t *testing.T) {
	_, projection := loadProjection(t)

	birth := rowFor(t, projection, 2027)
	assert.Contains(t, birth.EventLabels(), "Child 1 born")
	assert.True(t, birth.Income.MaternityBenefit.Equal(decimal.NewFromInt(1755000)))
	assert.True(t, birth.Income.WifeSalary.IsZero())

	third := rowFor(t, projection, 2033)
	require.Len(t, third.Income.ChildAllowances, 3)
	assert.True(t, third.Income.ChildAllowances[2].Amount.Equal(decimal.NewFromInt(360000)))

	wifeRetires := rowFor(t, projection, 2048)
	assert.True(t, wifeRetires.HasEvent(domain.EventRetirement))
	assert.True(t, wifeRetires.Income.WifeSalary.IsZero())

	husbandRetires := rowFor(t, projection, 2050)
	assert.Contains(t, husbandRetires.EventLabels(), "Husband retires (age 65)")
	assert.Contains(t, husbandRetires.EventLabels(), "Husband pension starts (age 65)")
	assert.True(t, husbandRetires.Income.HusbandPension.Equal(decimal.NewFromInt(2040000)))

	wifePension := rowFor(t, projection, 2053)
	assert.Contains(t, wifePension.EventLabels(), "Wife pension starts (age 65)")
	assert.True(t, wifePension.Income.WifePension.Equal(decimal.NewFromInt(1560000)))

	graduation := rowFor(t, projection, 2049)
	assert.Contains(t, graduation.EventLabels(), "Child 1 graduates")
}

func TestConfigurationValidation(t *testing.T) {
	params, err := config.NewInputParser().LoadFromFile(householdFile)
	require.NoError(t, err)

	rules := domain.DefaultRules()
	assert.NoError(t, config.ValidateParameters(params, startYear, &rules))

	params.HusbandRetirementAge = 30
	err = config.ValidateParameters(params, startYear, &rules)
	assert.ErrorIs(t, err, config.ErrInvalidParameters)
}
