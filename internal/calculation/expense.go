package calculation

import (
	"github.com/lifeplan/assetsim/internal/domain"
	"github.com/lifeplan/assetsim/pkg/money"
	"github.com/shopspring/decimal"
)

// ExpenseCalculator derives a household's yearly expenses.
type ExpenseCalculator struct {
	Rules *domain.Rules
}

// NewExpenseCalculator creates an expense calculator bound to rules.
func NewExpenseCalculator(rules *domain.Rules) *ExpenseCalculator {
	return &ExpenseCalculator{Rules: rules}
}

// Calculate returns the expense breakdown for one simulation year.
func (ec *ExpenseCalculator) Calculate(params *domain.InputParameters, children []domain.ChildProfile) domain.YearlyExpense {
	ye := domain.YearlyExpense{
		Monthly: params.MonthlyExpenseItems(),
		Yearly:  params.YearlyExpenseItems(),
	}
	ye.MonthlyTotal = sumItems(ye.Monthly)
	ye.AnnualFromMonthly = money.Annual(ye.MonthlyTotal)
	ye.YearlyTotal = sumItems(ye.Yearly)

	ye.ChildTotal = decimal.Zero
	for _, child := range children {
		if !child.Exists() {
			continue
		}
		cost := ec.ChildCost(child)
		ye.ChildCosts = append(ye.ChildCosts, cost)
		ye.ChildTotal = ye.ChildTotal.Add(cost.Total)
	}

	ye.AnnualTotal = money.Sum(ye.AnnualFromMonthly, ye.YearlyTotal, ye.ChildTotal)
	return ye
}

// ChildCost returns the food and education cost of one born child.
func (ec *ExpenseCalculator) ChildCost(child domain.ChildProfile) domain.ChildCost {
	cost := domain.ChildCost{
		Order:     child.Order,
		Age:       child.Age,
		Food:      money.Annual(ec.Rules.FoodMonthly(child.Age)),
		Education: decimal.Zero,
	}
	if band, ok := ec.Rules.EducationFor(child.Age); ok {
		cost.EducationStage = band.Stage
		if !band.FirstChildOnly || child.Order == 1 {
			cost.Education = band.Annual
		}
	}
	cost.Total = cost.Food.Add(cost.Education)
	return cost
}

func sumItems(items []domain.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Amount)
	}
	return total
}
