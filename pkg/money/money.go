// Package money holds whole-unit currency arithmetic on decimal amounts.
// Household figures carry no fractional subunits, so every rate application floors.
package money

import (
	"github.com/shopspring/decimal"
)

var monthsPerYear = decimal.NewFromInt(12)

// FromInt creates an amount from whole currency units
func FromInt(units int64) decimal.Decimal {
	return decimal.NewFromInt(units)
}

// Annual converts a monthly amount to annual
func Annual(monthly decimal.Decimal) decimal.Decimal {
	return monthly.Mul(monthsPerYear)
}

// FloorMul multiplies by a rate and drops any fractional unit
func FloorMul(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate).Floor()
}

// AfterTax applies a flat tax rate: floor(amount * (1 - rate))
func AfterTax(amount, rate decimal.Decimal) decimal.Decimal {
	return FloorMul(amount, decimal.NewFromInt(1).Sub(rate))
}

// Sum adds all amounts
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}
