package calculation

import (
	"github.com/lifeplan/assetsim/pkg/money"
	"github.com/shopspring/decimal"
)

// FlatTax withholds a single rate from salary income. Pension, allowance and
// maternity benefit are never taxed.
type FlatTax struct {
	Rate decimal.Decimal
}

// NewFlatTax creates a flat tax calculator
func NewFlatTax(rate decimal.Decimal) FlatTax {
	return FlatTax{Rate: rate}
}

// NetSalary returns floor(gross * (1 - rate)).
func (t FlatTax) NetSalary(gross decimal.Decimal) decimal.Decimal {
	if gross.IsZero() {
		return decimal.Zero
	}
	return money.AfterTax(gross, t.Rate)
}
