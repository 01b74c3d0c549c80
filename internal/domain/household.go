package domain

import (
	"github.com/shopspring/decimal"
)

// MaxDependents is the number of dependent slots a household can declare.
const MaxDependents = 3

// InputParameters is the immutable household snapshot a projection is computed from.
// Field names double as the stable wire keys shared with form, storage and HTTP collaborators.
// Every value is a non-negative whole number except CurrentAssets, which may be negative.
type InputParameters struct {
	HusbandBirthYear     int   `yaml:"husbandBirthYear" json:"husbandBirthYear"`
	WifeBirthYear        int   `yaml:"wifeBirthYear" json:"wifeBirthYear"`
	HusbandIncome        int64 `yaml:"husbandIncome" json:"husbandIncome"` // gross, annual
	WifeIncome           int64 `yaml:"wifeIncome" json:"wifeIncome"`       // gross, annual
	HusbandRetirementAge int   `yaml:"husbandRetirementAge" json:"husbandRetirementAge"`
	WifeRetirementAge    int   `yaml:"wifeRetirementAge" json:"wifeRetirementAge"`

	// Dependent slots. Zero means the slot is empty (not yet conceived).
	Child1BirthYear int `yaml:"child1BirthYear" json:"child1BirthYear"`
	Child2BirthYear int `yaml:"child2BirthYear" json:"child2BirthYear"`
	Child3BirthYear int `yaml:"child3BirthYear" json:"child3BirthYear"`

	// Monthly fixed expenses
	HouseLoan        int64 `yaml:"houseLoan" json:"houseLoan"`
	CarLoan          int64 `yaml:"carLoan" json:"carLoan"`
	Utilities        int64 `yaml:"utilities" json:"utilities"`
	Phone            int64 `yaml:"phone" json:"phone"`
	Wifi             int64 `yaml:"wifi" json:"wifi"`
	HusbandAllowance int64 `yaml:"husbandAllowance" json:"husbandAllowance"`
	WifeAllowance    int64 `yaml:"wifeAllowance" json:"wifeAllowance"`
	Food             int64 `yaml:"food" json:"food"`
	Medical          int64 `yaml:"medical" json:"medical"`
	Insurance        int64 `yaml:"insurance" json:"insurance"`
	Contact          int64 `yaml:"contact" json:"contact"`

	// Yearly lump expenses
	Event       int64 `yaml:"event" json:"event"`
	Ceremony    int64 `yaml:"ceremony" json:"ceremony"`
	Travel      int64 `yaml:"travel" json:"travel"`
	Celebration int64 `yaml:"celebration" json:"celebration"`

	CurrentAssets int64 `yaml:"currentAssets" json:"currentAssets"`
}

// ChildBirthYears returns the dependent slots in slot order.
func (p *InputParameters) ChildBirthYears() [MaxDependents]int {
	return [MaxDependents]int{p.Child1BirthYear, p.Child2BirthYear, p.Child3BirthYear}
}

// LineItem is a single named expense amount.
type LineItem struct {
	Key    string          `json:"key"`
	Amount decimal.Decimal `json:"amount"`
}

// MonthlyExpenseItems returns the monthly fixed expense categories in display order.
func (p *InputParameters) MonthlyExpenseItems() []LineItem {
	return lineItems(p, GroupMonthly)
}

// YearlyExpenseItems returns the yearly lump expense categories in display order.
func (p *InputParameters) YearlyExpenseItems() []LineItem {
	return lineItems(p, GroupYearly)
}

func lineItems(p *InputParameters, group FieldGroup) []LineItem {
	var items []LineItem
	for _, f := range parameterFields {
		if f.Group != group {
			continue
		}
		items = append(items, LineItem{Key: f.Key, Amount: decimal.NewFromInt(f.Get(p))})
	}
	return items
}

// FieldGroup classifies a parameter field for forms and expense aggregation.
type FieldGroup string

const (
	GroupHousehold FieldGroup = "household"
	GroupChildren  FieldGroup = "children"
	GroupMonthly   FieldGroup = "monthly"
	GroupYearly    FieldGroup = "yearly"
	GroupAssets    FieldGroup = "assets"
)

// Field describes one named numeric input of the wire contract.
type Field struct {
	Key    string
	Label  string
	Group  FieldGroup
	Signed bool // only currentAssets may hold a negative value

	get func(*InputParameters) int64
	set func(*InputParameters, int64)
}

// Get reads the field from p.
func (f Field) Get(p *InputParameters) int64 { return f.get(p) }

// Set writes v into the field of p.
func (f Field) Set(p *InputParameters, v int64) { f.set(p, v) }

func intField(key, label string, group FieldGroup, ptr func(*InputParameters) *int) Field {
	return Field{
		Key:   key,
		Label: label,
		Group: group,
		get:   func(p *InputParameters) int64 { return int64(*ptr(p)) },
		set:   func(p *InputParameters, v int64) { *ptr(p) = int(v) },
	}
}

func moneyField(key, label string, group FieldGroup, ptr func(*InputParameters) *int64) Field {
	return Field{
		Key:   key,
		Label: label,
		Group: group,
		get:   func(p *InputParameters) int64 { return *ptr(p) },
		set:   func(p *InputParameters, v int64) { *ptr(p) = v },
	}
}

var parameterFields = []Field{
	intField("husbandBirthYear", "Husband birth year", GroupHousehold, func(p *InputParameters) *int { return &p.HusbandBirthYear }),
	intField("wifeBirthYear", "Wife birth year", GroupHousehold, func(p *InputParameters) *int { return &p.WifeBirthYear }),
	moneyField("husbandIncome", "Husband gross income (annual)", GroupHousehold, func(p *InputParameters) *int64 { return &p.HusbandIncome }),
	moneyField("wifeIncome", "Wife gross income (annual)", GroupHousehold, func(p *InputParameters) *int64 { return &p.WifeIncome }),
	intField("husbandRetirementAge", "Husband retirement age", GroupHousehold, func(p *InputParameters) *int { return &p.HusbandRetirementAge }),
	intField("wifeRetirementAge", "Wife retirement age", GroupHousehold, func(p *InputParameters) *int { return &p.WifeRetirementAge }),

	intField("child1BirthYear", "Child 1 birth year", GroupChildren, func(p *InputParameters) *int { return &p.Child1BirthYear }),
	intField("child2BirthYear", "Child 2 birth year", GroupChildren, func(p *InputParameters) *int { return &p.Child2BirthYear }),
	intField("child3BirthYear", "Child 3 birth year", GroupChildren, func(p *InputParameters) *int { return &p.Child3BirthYear }),

	moneyField("houseLoan", "House loan", GroupMonthly, func(p *InputParameters) *int64 { return &p.HouseLoan }),
	moneyField("carLoan", "Car loan", GroupMonthly, func(p *InputParameters) *int64 { return &p.CarLoan }),
	moneyField("utilities", "Utilities", GroupMonthly, func(p *InputParameters) *int64 { return &p.Utilities }),
	moneyField("phone", "Phone", GroupMonthly, func(p *InputParameters) *int64 { return &p.Phone }),
	moneyField("wifi", "Network", GroupMonthly, func(p *InputParameters) *int64 { return &p.Wifi }),
	moneyField("husbandAllowance", "Husband allowance", GroupMonthly, func(p *InputParameters) *int64 { return &p.HusbandAllowance }),
	moneyField("wifeAllowance", "Wife allowance", GroupMonthly, func(p *InputParameters) *int64 { return &p.WifeAllowance }),
	moneyField("food", "Food", GroupMonthly, func(p *InputParameters) *int64 { return &p.Food }),
	moneyField("medical", "Medical", GroupMonthly, func(p *InputParameters) *int64 { return &p.Medical }),
	moneyField("insurance", "Insurance", GroupMonthly, func(p *InputParameters) *int64 { return &p.Insurance }),
	moneyField("contact", "Social contact", GroupMonthly, func(p *InputParameters) *int64 { return &p.Contact }),

	moneyField("event", "Events", GroupYearly, func(p *InputParameters) *int64 { return &p.Event }),
	moneyField("ceremony", "Ceremonies", GroupYearly, func(p *InputParameters) *int64 { return &p.Ceremony }),
	moneyField("travel", "Travel", GroupYearly, func(p *InputParameters) *int64 { return &p.Travel }),
	moneyField("celebration", "Celebrations", GroupYearly, func(p *InputParameters) *int64 { return &p.Celebration }),

	func() Field {
		f := moneyField("currentAssets", "Current assets", GroupAssets, func(p *InputParameters) *int64 { return &p.CurrentAssets })
		f.Signed = true
		return f
	}(),
}

// ParameterFields returns the wire contract fields in form order.
func ParameterFields() []Field {
	return append([]Field(nil), parameterFields...)
}

// LookupField finds a field by its wire key.
func LookupField(key string) (Field, bool) {
	for _, f := range parameterFields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// Values flattens p into a key -> value map.
func (p *InputParameters) Values() map[string]int64 {
	values := make(map[string]int64, len(parameterFields))
	for _, f := range parameterFields {
		values[f.Key] = f.Get(p)
	}
	return values
}

// ParametersFromValues builds a snapshot from a key -> value map. Unknown keys are ignored
// and absent keys stay zero.
func ParametersFromValues(values map[string]int64) InputParameters {
	var p InputParameters
	for _, f := range parameterFields {
		if v, ok := values[f.Key]; ok {
			f.Set(&p, v)
		}
	}
	return p
}
