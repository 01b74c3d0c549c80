package calculation

import (
	"testing"

	"github.com/lifeplan/assetsim/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rowsWithBalances(startYear int, start int64, balances ...int64) []domain.ProjectionRow {
	rows := make([]domain.ProjectionRow, 0, len(balances))
	assets := dec(start)
	for i, b := range balances {
		assets = assets.Add(dec(b))
		income, expense := dec(0), dec(0)
		if b >= 0 {
			income = dec(b)
		} else {
			expense = dec(-b)
		}
		rows = append(rows, domain.ProjectionRow{
			Year:         startYear + i,
			TotalIncome:  income,
			TotalExpense: expense,
			Balance:      dec(b),
			Assets:       assets,
		})
	}
	return rows
}

func TestSummarize(t *testing.T) {
	rows := rowsWithBalances(2025, 100, 50, -200, -100, 400)
	summary := Summarize(rows, 100)

	assert.Equal(t, 2025, summary.StartYear)
	assert.Equal(t, 2028, summary.EndYear)
	assert.Equal(t, 4, summary.Years)
	assertDecimal(t, 100, summary.StartingAssets)
	assertDecimal(t, 250, summary.FinalAssets)
	assertDecimal(t, 250, summary.PeakAssets)
	assert.Equal(t, 2028, summary.PeakAssetsYear)
	assertDecimal(t, -150, summary.LowestAssets)
	assert.Equal(t, 2027, summary.LowestAssetsYear)
	assert.Equal(t, 2026, summary.FirstDeficitYear)
	assertDecimal(t, 450, summary.LifetimeIncome)
	assertDecimal(t, 300, summary.LifetimeExpense)
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil, 5000)
	assert.Equal(t, 0, summary.Years)
	assertDecimal(t, 5000, summary.FinalAssets)
	assert.Equal(t, 0, summary.FirstDeficitYear)
}

func TestFindRow(t *testing.T) {
	rows := rowsWithBalances(2030, 0, 1, 2, 3)

	row, ok := FindRow(rows, 2031)
	require.True(t, ok)
	assert.Equal(t, 2031, row.Year)

	_, ok = FindRow(rows, 2029)
	assert.False(t, ok)
	_, ok = FindRow(rows, 2033)
	assert.False(t, ok)
	_, ok = FindRow(nil, 2030)
	assert.False(t, ok)
}
