package calculation

import (
	"github.com/lifeplan/assetsim/internal/domain"
	"github.com/lifeplan/assetsim/pkg/dateutil"
	"github.com/lifeplan/assetsim/pkg/money"
)

// GenerateProjection simulates one row per calendar year from startYear until the husband's
// age passes the terminal age. The horizon is fixed up front from his starting age, so the
// loop is bounded by TerminalAge - startAge + 1 iterations and is empty when he is already older.
func (se *SimulationEngine) GenerateProjection(params *domain.InputParameters, startYear int) []domain.ProjectionRow {
	startAge := dateutil.AgeInYear(params.HusbandBirthYear, startYear)
	horizon := dateutil.HorizonYears(startAge, se.Rules.TerminalAge)
	rows := make([]domain.ProjectionRow, 0, horizon)

	assets := money.FromInt(params.CurrentAssets)
	for i := 0; i < horizon; i++ {
		year := startYear + i
		row := se.projectYear(params, year)

		assets = assets.Add(row.Balance)
		row.Assets = assets
		rows = append(rows, row)

		if se.Debug {
			se.Logger.Debugf("year %d (husband %d, wife %d): income=%s expense=%s balance=%s assets=%s events=%v",
				row.Year, row.HusbandAge, row.WifeAge,
				row.TotalIncome.String(), row.TotalExpense.String(), row.Balance.String(), row.Assets.String(),
				row.EventLabels())
		}
	}
	return rows
}

// projectYear computes everything of one year except the running asset balance.
func (se *SimulationEngine) projectYear(params *domain.InputParameters, year int) domain.ProjectionRow {
	husbandAge := dateutil.AgeInYear(params.HusbandBirthYear, year)
	wifeAge := dateutil.AgeInYear(params.WifeBirthYear, year)
	children := ResolveChildren(params, year)

	income := se.IncomeCalc.Calculate(params, husbandAge, wifeAge, year, children)
	expense := se.ExpenseCalc.Calculate(params, children)

	return domain.ProjectionRow{
		Year:         year,
		HusbandAge:   husbandAge,
		WifeAge:      wifeAge,
		Children:     children,
		Income:       income,
		Expense:      expense,
		TotalIncome:  income.TotalNet,
		TotalExpense: expense.AnnualTotal,
		Balance:      income.TotalNet.Sub(expense.AnnualTotal),
		Events:       DetectEvents(&se.Rules, params, husbandAge, wifeAge, children),
	}
}
