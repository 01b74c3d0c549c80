package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ChildProfile is a dependent as seen from one simulation year.
type ChildProfile struct {
	Order     int `json:"order"` // 1-based, fixed by input slot
	BirthYear int `json:"birthYear"`
	Age       int `json:"age"` // negative means not yet born
}

// Exists reports whether the child is born in the profile's year.
func (c ChildProfile) Exists() bool { return c.Age >= 0 }

// ChildAmount is a per-child monetary figure.
type ChildAmount struct {
	Order  int             `json:"order"`
	Amount decimal.Decimal `json:"amount"`
}

// YearlyIncome is the household income breakdown for one year
type YearlyIncome struct {
	HusbandSalary    decimal.Decimal `json:"husbandSalary"`
	WifeSalary       decimal.Decimal `json:"wifeSalary"`
	HusbandPension   decimal.Decimal `json:"husbandPension"`
	WifePension      decimal.Decimal `json:"wifePension"`
	ChildAllowances  []ChildAmount   `json:"childAllowances"`
	ChildAllowance   decimal.Decimal `json:"childAllowance"`
	MaternityBenefit decimal.Decimal `json:"maternityBenefit"`

	GrossSalary    decimal.Decimal `json:"grossSalary"`    // taxable part
	SalaryAfterTax decimal.Decimal `json:"salaryAfterTax"` // floor(grossSalary * (1 - taxRate))
	TotalPension   decimal.Decimal `json:"totalPension"`
	TotalGross     decimal.Decimal `json:"totalGross"`
	TotalNet       decimal.Decimal `json:"totalNet"`
}

// Tax returns the flat tax withheld from salary income.
func (yi *YearlyIncome) Tax() decimal.Decimal {
	return yi.GrossSalary.Sub(yi.SalaryAfterTax)
}

// ChildCost is the annual cost attributed to one child.
type ChildCost struct {
	Order          int             `json:"order"`
	Age            int             `json:"age"`
	Food           decimal.Decimal `json:"food"`
	Education      decimal.Decimal `json:"education"`
	EducationStage string          `json:"educationStage,omitempty"`
	Total          decimal.Decimal `json:"total"`
}

// YearlyExpense is the household expense breakdown for one year
type YearlyExpense struct {
	Monthly           []LineItem      `json:"monthly"`
	MonthlyTotal      decimal.Decimal `json:"monthlyTotal"`
	AnnualFromMonthly decimal.Decimal `json:"annualFromMonthly"`
	Yearly            []LineItem      `json:"yearly"`
	YearlyTotal       decimal.Decimal `json:"yearlyTotal"`
	ChildCosts        []ChildCost     `json:"childCosts"`
	ChildTotal        decimal.Decimal `json:"childTotal"`
	AnnualTotal       decimal.Decimal `json:"annualTotal"`
}

// EventKind identifies a life-cycle event.
type EventKind string

const (
	EventRetirement       EventKind = "retirement"
	EventPensionStart     EventKind = "pension_start"
	EventChildBirth       EventKind = "child_birth"
	EventElementarySchool EventKind = "elementary_school"
	EventJuniorHighSchool EventKind = "junior_high_school"
	EventHighSchool       EventKind = "high_school"
	EventUniversity       EventKind = "university"
	EventGraduation       EventKind = "graduation"
)

var childEventText = map[EventKind]string{
	EventChildBirth:       "born",
	EventElementarySchool: "enters elementary school",
	EventJuniorHighSchool: "enters junior high school",
	EventHighSchool:       "enters high school",
	EventUniversity:       "enters university",
	EventGraduation:       "graduates",
}

// Spouse names a household earner.
type Spouse string

const (
	Husband Spouse = "husband"
	Wife    Spouse = "wife"
)

// Title returns the capitalized spouse name.
func (s Spouse) Title() string {
	switch s {
	case Husband:
		return "Husband"
	case Wife:
		return "Wife"
	default:
		return string(s)
	}
}

// LifeEvent is a labeled life-cycle event detected in a projection year.
type LifeEvent struct {
	Kind       EventKind `json:"kind"`
	Spouse     Spouse    `json:"spouse,omitempty"`
	ChildOrder int       `json:"childOrder,omitempty"`
	Label      string    `json:"label"`
}

func (e LifeEvent) String() string { return e.Label }

// NewSpouseEvent builds a retirement or pension-start event.
func NewSpouseEvent(kind EventKind, spouse Spouse, age int) LifeEvent {
	var label string
	switch kind {
	case EventRetirement:
		label = fmt.Sprintf("%s retires (age %d)", spouse.Title(), age)
	case EventPensionStart:
		label = fmt.Sprintf("%s pension starts (age %d)", spouse.Title(), age)
	default:
		label = fmt.Sprintf("%s %s", spouse.Title(), kind)
	}
	return LifeEvent{Kind: kind, Spouse: spouse, Label: label}
}

// NewChildEvent builds a child milestone event labeled with the birth order.
func NewChildEvent(kind EventKind, order int) LifeEvent {
	text, ok := childEventText[kind]
	if !ok {
		text = string(kind)
	}
	return LifeEvent{Kind: kind, ChildOrder: order, Label: fmt.Sprintf("Child %d %s", order, text)}
}

// ProjectionRow is one simulated calendar year.
type ProjectionRow struct {
	Year       int            `json:"year"`
	HusbandAge int            `json:"husbandAge"`
	WifeAge    int            `json:"wifeAge"`
	Children   []ChildProfile `json:"children"`

	Income  YearlyIncome  `json:"income"`
	Expense YearlyExpense `json:"expense"`

	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	Balance      decimal.Decimal `json:"balance"`
	Assets       decimal.Decimal `json:"assets"`

	Events []LifeEvent `json:"events"`
}

// EventLabels returns the row's event labels in detection order.
func (r *ProjectionRow) EventLabels() []string {
	labels := make([]string, 0, len(r.Events))
	for _, e := range r.Events {
		labels = append(labels, e.Label)
	}
	return labels
}

// HasEvent reports whether the row carries an event of the given kind.
func (r *ProjectionRow) HasEvent(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// ProjectionSummary provides a summary of key metrics for a projection
type ProjectionSummary struct {
	StartYear        int             `json:"startYear"`
	EndYear          int             `json:"endYear"`
	Years            int             `json:"years"`
	StartingAssets   decimal.Decimal `json:"startingAssets"`
	FinalAssets      decimal.Decimal `json:"finalAssets"`
	PeakAssets       decimal.Decimal `json:"peakAssets"`
	PeakAssetsYear   int             `json:"peakAssetsYear"`
	LowestAssets     decimal.Decimal `json:"lowestAssets"`
	LowestAssetsYear int             `json:"lowestAssetsYear"`
	FirstDeficitYear int             `json:"firstDeficitYear,omitempty"` // first year assets drop below zero, 0 if never
	LifetimeIncome   decimal.Decimal `json:"lifetimeIncome"`
	LifetimeExpense  decimal.Decimal `json:"lifetimeExpense"`
}

// Projection is a complete household trajectory.
type Projection struct {
	Rows    []ProjectionRow   `json:"rows"`
	Summary ProjectionSummary `json:"summary"`
}

// WifeDeclared reports whether the row's wife age comes from a declared birth year.
// An undeclared birth year (0) makes the age equal to the calendar year.
func (r *ProjectionRow) WifeDeclared() bool { return r.WifeAge != r.Year }
