package domain

import "github.com/shopspring/decimal"

// ActualYear records what a household really earned and spent in a calendar year.
type ActualYear struct {
	Year    int             `yaml:"year" json:"year"`
	Income  decimal.Decimal `yaml:"income" json:"income"`
	Expense decimal.Decimal `yaml:"expense" json:"expense"`
}

// Figures is an income/expense/balance triple.
type Figures struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// YearVariance compares the projected and actual figures of one year.
type YearVariance struct {
	Year       int     `json:"year"`
	Predicted  Figures `json:"predicted"`
	Actual     Figures `json:"actual"`
	Difference Figures `json:"difference"` // actual - predicted
}
