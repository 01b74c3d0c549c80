package calculation

import (
	"github.com/lifeplan/assetsim/internal/domain"
	"github.com/lifeplan/assetsim/pkg/money"
	"github.com/shopspring/decimal"
)

// spouseStatus is one earner as seen from a simulation year.
type spouseStatus struct {
	Age     int
	Present bool // birth year declared and already born
}

func newSpouseStatus(birthYear, age int) spouseStatus {
	return spouseStatus{Age: age, Present: birthYear != 0 && age >= 0}
}

// isWorking reports whether the spouse still draws salary.
func (s spouseStatus) isWorking(retirementAge int) bool {
	return s.Present && s.Age < retirementAge
}

// CalculatePension returns the annual public pension for a spouse of the given age.
func CalculatePension(age int, monthly decimal.Decimal, startAge int) decimal.Decimal {
	if age < startAge {
		return decimal.Zero
	}
	return money.Annual(monthly)
}

// CalculateMaternityBenefit returns floor(wifeIncome * blended rate) for a birth year.
func CalculateMaternityBenefit(wifeIncome decimal.Decimal, rule domain.MaternityRule) decimal.Decimal {
	if wifeIncome.Sign() <= 0 {
		return decimal.Zero
	}
	return money.FloorMul(wifeIncome, rule.BlendedRate())
}

// CalculateChildAllowances returns the annual stipend per born dependent plus the household total.
func CalculateChildAllowances(children []domain.ChildProfile, rule domain.ChildAllowanceRule) ([]domain.ChildAmount, decimal.Decimal) {
	var amounts []domain.ChildAmount
	total := decimal.Zero
	for _, child := range children {
		if !child.Exists() {
			continue
		}
		annual := money.Annual(rule.MonthlyAmount(child))
		amounts = append(amounts, domain.ChildAmount{Order: child.Order, Amount: annual})
		total = total.Add(annual)
	}
	return amounts, total
}
