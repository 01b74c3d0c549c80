package calculation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFlatTax(t *testing.T) {
	tax := NewFlatTax(decimal.New(20, -2))

	tests := []struct {
		name  string
		gross int64
		net   int64
	}{
		{"zero", 0, 0},
		{"round", 10000000, 8000000},
		{"floors fractional units", 1001, 800},
		{"single unit", 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDecimal(t, tt.net, tax.NetSalary(dec(tt.gross)))
		})
	}
}

func TestCurrentYearUsesInjectedClock(t *testing.T) {
	defer SetNowFunc(nowFunc)
	SetNowFunc(func() time.Time { return time.Date(2031, 3, 1, 0, 0, 0, 0, time.UTC) })
	assert.Equal(t, 2031, CurrentYear())
}
