package calculation

import (
	"github.com/lifeplan/assetsim/internal/domain"
	"github.com/lifeplan/assetsim/pkg/money"
	"github.com/shopspring/decimal"
)

// IncomeCalculator derives a household's yearly income from the snapshot and the year's ages.
type IncomeCalculator struct {
	Rules *domain.Rules
	Tax   FlatTax
}

// NewIncomeCalculator creates an income calculator bound to rules.
func NewIncomeCalculator(rules *domain.Rules) *IncomeCalculator {
	return &IncomeCalculator{Rules: rules, Tax: NewFlatTax(rules.TaxRate)}
}

// Calculate returns the income breakdown for one simulation year.
// A spouse with no declared birth year, or not yet born, earns nothing.
func (ic *IncomeCalculator) Calculate(params *domain.InputParameters, husbandAge, wifeAge, year int, children []domain.ChildProfile) domain.YearlyIncome {
	rules := ic.Rules
	husband := newSpouseStatus(params.HusbandBirthYear, husbandAge)
	wife := newSpouseStatus(params.WifeBirthYear, wifeAge)
	wifeRetirementAge := rules.WifeRetirementAge(params)

	var yi domain.YearlyIncome
	yi.HusbandSalary = decimal.Zero
	yi.WifeSalary = decimal.Zero
	yi.MaternityBenefit = decimal.Zero

	if husband.isWorking(rules.HusbandRetirementAge(params)) {
		yi.HusbandSalary = money.FromInt(params.HusbandIncome)
	}
	if wife.isWorking(wifeRetirementAge) {
		if bornInYear(children, year) {
			// leave year: salary replaced by the maternity benefit
			yi.MaternityBenefit = CalculateMaternityBenefit(money.FromInt(params.WifeIncome), rules.Maternity)
		} else {
			yi.WifeSalary = money.FromInt(params.WifeIncome)
		}
	}

	yi.HusbandPension = decimal.Zero
	yi.WifePension = decimal.Zero
	if husband.Present {
		yi.HusbandPension = CalculatePension(husband.Age, rules.HusbandMonthlyPension, rules.PensionStartAge)
	}
	if wife.Present {
		yi.WifePension = CalculatePension(wife.Age, rules.WifeMonthlyPension, rules.PensionStartAge)
	}

	yi.ChildAllowances, yi.ChildAllowance = CalculateChildAllowances(children, rules.ChildAllowance)

	yi.GrossSalary = yi.HusbandSalary.Add(yi.WifeSalary)
	yi.SalaryAfterTax = ic.Tax.NetSalary(yi.GrossSalary)
	yi.TotalPension = yi.HusbandPension.Add(yi.WifePension)
	yi.TotalGross = money.Sum(yi.GrossSalary, yi.TotalPension, yi.ChildAllowance, yi.MaternityBenefit)
	yi.TotalNet = money.Sum(yi.SalaryAfterTax, yi.TotalPension, yi.ChildAllowance, yi.MaternityBenefit)
	return yi
}
