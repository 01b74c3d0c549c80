package calculation

import (
	"github.com/lifeplan/assetsim/internal/domain"
	"github.com/lifeplan/assetsim/pkg/money"
	"github.com/shopspring/decimal"
)

// Summarize derives the headline metrics of a projection.
func Summarize(rows []domain.ProjectionRow, currentAssets int64) domain.ProjectionSummary {
	summary := domain.ProjectionSummary{
		StartingAssets:  money.FromInt(currentAssets),
		FinalAssets:     money.FromInt(currentAssets),
		PeakAssets:      money.FromInt(currentAssets),
		LowestAssets:    money.FromInt(currentAssets),
		LifetimeIncome:  decimal.Zero,
		LifetimeExpense: decimal.Zero,
	}
	if len(rows) == 0 {
		return summary
	}

	first, last := rows[0], rows[len(rows)-1]
	summary.StartYear = first.Year
	summary.EndYear = last.Year
	summary.Years = len(rows)
	summary.FinalAssets = last.Assets
	summary.PeakAssets = first.Assets
	summary.PeakAssetsYear = first.Year
	summary.LowestAssets = first.Assets
	summary.LowestAssetsYear = first.Year

	for _, row := range rows {
		summary.LifetimeIncome = summary.LifetimeIncome.Add(row.TotalIncome)
		summary.LifetimeExpense = summary.LifetimeExpense.Add(row.TotalExpense)
		if row.Assets.GreaterThan(summary.PeakAssets) {
			summary.PeakAssets = row.Assets
			summary.PeakAssetsYear = row.Year
		}
		if row.Assets.LessThan(summary.LowestAssets) {
			summary.LowestAssets = row.Assets
			summary.LowestAssetsYear = row.Year
		}
		if summary.FirstDeficitYear == 0 && row.Assets.IsNegative() {
			summary.FirstDeficitYear = row.Year
		}
	}
	return summary
}

// FindRow returns the row for a calendar year.
func FindRow(rows []domain.ProjectionRow, year int) (domain.ProjectionRow, bool) {
	if len(rows) == 0 {
		return domain.ProjectionRow{}, false
	}
	i := year - rows[0].Year
	if i < 0 || i >= len(rows) {
		return domain.ProjectionRow{}, false
	}
	return rows[i], true
}
