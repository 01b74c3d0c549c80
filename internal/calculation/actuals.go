package calculation

import (
	"sort"

	"github.com/lifeplan/assetsim/internal/domain"
)

// CompareActuals lines recorded actuals up against the projection. Years outside the
// projection are skipped; when a year is recorded twice the later entry wins.
// Results are ordered by year.
func CompareActuals(rows []domain.ProjectionRow, actuals []domain.ActualYear) []domain.YearVariance {
	byYear := make(map[int]domain.ActualYear, len(actuals))
	for _, a := range actuals {
		byYear[a.Year] = a
	}

	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)

	var variances []domain.YearVariance
	for _, y := range years {
		row, ok := FindRow(rows, y)
		if !ok {
			continue
		}
		actual := byYear[y]
		predicted := domain.Figures{Income: row.TotalIncome, Expense: row.TotalExpense, Balance: row.Balance}
		observed := domain.Figures{Income: actual.Income, Expense: actual.Expense, Balance: actual.Income.Sub(actual.Expense)}
		variances = append(variances, domain.YearVariance{
			Year:      y,
			Predicted: predicted,
			Actual:    observed,
			Difference: domain.Figures{
				Income:  observed.Income.Sub(predicted.Income),
				Expense: observed.Expense.Sub(predicted.Expense),
				Balance: observed.Balance.Sub(predicted.Balance),
			},
		})
	}
	return variances
}
