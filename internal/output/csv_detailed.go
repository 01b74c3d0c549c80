package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/lifeplan/assetsim/internal/domain"
	"github.com/shopspring/decimal"
)

// CSVDetailedExporter writes every income and expense component per year, including
// per-child costs for each dependent slot.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(projection *domain.Projection) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{
		"Year", "HusbandAge", "WifeAge",
		"HusbandSalary", "WifeSalary", "HusbandPension", "WifePension", "ChildAllowance", "MaternityBenefit",
		"GrossIncome", "Tax", "NetIncome",
		"MonthlyFixedAnnual", "YearlyFixed", "ChildCosts",
	}
	for order := 1; order <= domain.MaxDependents; order++ {
		n := strconv.Itoa(order)
		header = append(header, "Child"+n+"Age", "Child"+n+"Food", "Child"+n+"Education")
	}
	header = append(header, "TotalExpense", "Balance", "Assets")
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for i := range projection.Rows {
		row := &projection.Rows[i]
		in, ex := &row.Income, &row.Expense
		record := []string{
			strconv.Itoa(row.Year), strconv.Itoa(row.HusbandAge), wifeAgeField(row),
			Plain(in.HusbandSalary), Plain(in.WifeSalary), Plain(in.HusbandPension), Plain(in.WifePension),
			Plain(in.ChildAllowance), Plain(in.MaternityBenefit),
			Plain(in.TotalGross), Plain(in.Tax()), Plain(in.TotalNet),
			Plain(ex.AnnualFromMonthly), Plain(ex.YearlyTotal), Plain(ex.ChildTotal),
		}
		record = append(record, childColumns(row)...)
		record = append(record, Plain(row.TotalExpense), Plain(row.Balance), Plain(row.Assets))
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// childColumns emits age, food and education per slot; empty when the slot is unused
// or the child is not yet born.
func childColumns(row *domain.ProjectionRow) []string {
	cols := make([]string, 3*domain.MaxDependents)
	for _, child := range row.Children {
		base := 3 * (child.Order - 1)
		if !child.Exists() {
			continue
		}
		cols[base] = strconv.Itoa(child.Age)
		cols[base+1], cols[base+2] = Plain(decimal.Zero), Plain(decimal.Zero)
	}
	for _, cost := range row.Expense.ChildCosts {
		base := 3 * (cost.Order - 1)
		cols[base+1] = Plain(cost.Food)
		cols[base+2] = Plain(cost.Education)
	}
	return cols
}
