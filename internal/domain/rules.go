package domain

import (
	"github.com/shopspring/decimal"
)

// MonthsPerYear annualizes monthly amounts.
const MonthsPerYear = 12

// Rules holds every rule parameter of the projection. A Rules value is treated as immutable
// once handed to the engine; DefaultRules returns a fresh copy on each call.
type Rules struct {
	TaxRate         decimal.Decimal `yaml:"tax_rate" json:"taxRate"`
	TerminalAge     int             `yaml:"terminal_age" json:"terminalAge"`
	PensionStartAge int             `yaml:"pension_start_age" json:"pensionStartAge"`

	HusbandMonthlyPension decimal.Decimal `yaml:"husband_monthly_pension" json:"husbandMonthlyPension"`
	WifeMonthlyPension    decimal.Decimal `yaml:"wife_monthly_pension" json:"wifeMonthlyPension"`

	DefaultHusbandRetirementAge int `yaml:"default_husband_retirement_age" json:"defaultHusbandRetirementAge"`
	DefaultWifeRetirementAge    int `yaml:"default_wife_retirement_age" json:"defaultWifeRetirementAge"`

	Maternity      MaternityRule      `yaml:"maternity" json:"maternity"`
	ChildAllowance ChildAllowanceRule `yaml:"child_allowance" json:"childAllowance"`
	ChildFood      []FoodBand         `yaml:"child_food" json:"childFood"`
	Education      []EducationBand    `yaml:"education" json:"education"`
	Milestones     []Milestone        `yaml:"milestones" json:"milestones"`
}

// MaternityRule describes the leave-period income substitution paid in a birth year.
type MaternityRule struct {
	HighRate   decimal.Decimal `yaml:"high_rate" json:"highRate"`
	HighMonths int             `yaml:"high_months" json:"highMonths"`
	LowRate    decimal.Decimal `yaml:"low_rate" json:"lowRate"`
	LowMonths  int             `yaml:"low_months" json:"lowMonths"`
}

// BlendedRate is the month-weighted mean of the high and low rates.
func (m MaternityRule) BlendedRate() decimal.Decimal {
	months := m.HighMonths + m.LowMonths
	if months <= 0 {
		return decimal.Zero
	}
	weighted := m.HighRate.Mul(decimal.NewFromInt(int64(m.HighMonths))).
		Add(m.LowRate.Mul(decimal.NewFromInt(int64(m.LowMonths))))
	return weighted.Div(decimal.NewFromInt(int64(months)))
}

// ChildAllowanceRule is the monthly stipend schedule per eligible dependent.
type ChildAllowanceRule struct {
	EligibleUntilAge  int             `yaml:"eligible_until_age" json:"eligibleUntilAge"`   // exclusive
	InfantUntilAge    int             `yaml:"infant_until_age" json:"infantUntilAge"`       // exclusive
	ElevatedFromOrder int             `yaml:"elevated_from_order" json:"elevatedFromOrder"` // birth order
	BaseMonthly       decimal.Decimal `yaml:"base_monthly" json:"baseMonthly"`
	InfantMonthly     decimal.Decimal `yaml:"infant_monthly" json:"infantMonthly"`
	ElevatedMonthly   decimal.Decimal `yaml:"elevated_monthly" json:"elevatedMonthly"`
}

// MonthlyAmount returns the stipend for one child. Birth order outranks the age bracket.
func (r ChildAllowanceRule) MonthlyAmount(child ChildProfile) decimal.Decimal {
	if child.Age < 0 || child.Age >= r.EligibleUntilAge {
		return decimal.Zero
	}
	switch {
	case child.Order >= r.ElevatedFromOrder:
		return r.ElevatedMonthly
	case child.Age < r.InfantUntilAge:
		return r.InfantMonthly
	default:
		return r.BaseMonthly
	}
}

// FoodBand adds a monthly food increment for children younger than UnderAge.
// Bands are evaluated in order; the first matching band wins.
type FoodBand struct {
	UnderAge int             `yaml:"under_age" json:"underAge"`
	Monthly  decimal.Decimal `yaml:"monthly" json:"monthly"`
}

// EducationBand is an inclusive age range with an annual education or childcare cost.
type EducationBand struct {
	Stage          string          `yaml:"stage" json:"stage"`
	MinAge         int             `yaml:"min_age" json:"minAge"`
	MaxAge         int             `yaml:"max_age" json:"maxAge"`
	Annual         decimal.Decimal `yaml:"annual" json:"annual"`
	FirstChildOnly bool            `yaml:"first_child_only" json:"firstChildOnly"`
}

// Contains reports whether age falls in the band.
func (b EducationBand) Contains(age int) bool {
	return age >= b.MinAge && age <= b.MaxAge
}

// Milestone labels a child's exact age with a life-cycle event.
type Milestone struct {
	Age  int       `yaml:"age" json:"age"`
	Kind EventKind `yaml:"kind" json:"kind"`
}

// FoodMonthly returns the monthly food increment for a child of the given age.
func (r *Rules) FoodMonthly(age int) decimal.Decimal {
	if age < 0 {
		return decimal.Zero
	}
	for _, band := range r.ChildFood {
		if age < band.UnderAge {
			return band.Monthly
		}
	}
	return decimal.Zero
}

// EducationFor returns the education band covering age, if any.
func (r *Rules) EducationFor(age int) (EducationBand, bool) {
	for _, band := range r.Education {
		if band.Contains(age) {
			return band, true
		}
	}
	return EducationBand{}, false
}

// HusbandRetirementAge resolves the configured retirement age, falling back to the default.
func (r *Rules) HusbandRetirementAge(p *InputParameters) int {
	if p.HusbandRetirementAge > 0 {
		return p.HusbandRetirementAge
	}
	return r.DefaultHusbandRetirementAge
}

// WifeRetirementAge resolves the configured retirement age, falling back to the default.
func (r *Rules) WifeRetirementAge(p *InputParameters) int {
	if p.WifeRetirementAge > 0 {
		return p.WifeRetirementAge
	}
	return r.DefaultWifeRetirementAge
}

// DefaultRules returns the standard household rule set.
func DefaultRules() Rules {
	return Rules{
		TaxRate:                     decimal.New(20, -2),
		TerminalAge:                 100,
		PensionStartAge:             65,
		HusbandMonthlyPension:       decimal.NewFromInt(170000),
		WifeMonthlyPension:          decimal.NewFromInt(130000),
		DefaultHusbandRetirementAge: 65,
		DefaultWifeRetirementAge:    60,
		Maternity: MaternityRule{
			HighRate:   decimal.New(67, -2),
			HighMonths: 6,
			LowRate:    decimal.New(50, -2),
			LowMonths:  6,
		},
		ChildAllowance: ChildAllowanceRule{
			EligibleUntilAge:  18,
			InfantUntilAge:    3,
			ElevatedFromOrder: 3,
			BaseMonthly:       decimal.NewFromInt(10000),
			InfantMonthly:     decimal.NewFromInt(15000),
			ElevatedMonthly:   decimal.NewFromInt(30000),
		},
		ChildFood: []FoodBand{
			{UnderAge: 6, Monthly: decimal.NewFromInt(10000)},
			{UnderAge: 13, Monthly: decimal.NewFromInt(20000)},
			{UnderAge: 23, Monthly: decimal.NewFromInt(30000)},
		},
		Education: []EducationBand{
			{Stage: "nursery", MinAge: 0, MaxAge: 2, Annual: decimal.NewFromInt(600000), FirstChildOnly: true},
			{Stage: "kindergarten", MinAge: 3, MaxAge: 5, Annual: decimal.NewFromInt(120000)},
			{Stage: "elementary", MinAge: 6, MaxAge: 11, Annual: decimal.NewFromInt(350000)},
			{Stage: "junior_high", MinAge: 12, MaxAge: 14, Annual: decimal.NewFromInt(540000)},
			{Stage: "high_school", MinAge: 15, MaxAge: 17, Annual: decimal.NewFromInt(510000)},
			{Stage: "university", MinAge: 18, MaxAge: 21, Annual: decimal.NewFromInt(1500000)},
		},
		Milestones: []Milestone{
			{Age: 0, Kind: EventChildBirth},
			{Age: 6, Kind: EventElementarySchool},
			{Age: 12, Kind: EventJuniorHighSchool},
			{Age: 15, Kind: EventHighSchool},
			{Age: 18, Kind: EventUniversity},
			{Age: 22, Kind: EventGraduation},
		},
	}
}
