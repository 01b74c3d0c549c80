package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMaternityBlendedRate(t *testing.T) {
	rules := DefaultRules()
	assert.True(t, rules.Maternity.BlendedRate().Equal(decimal.RequireFromString("0.585")))

	assert.True(t, MaternityRule{}.BlendedRate().IsZero())
}

func TestChildAllowanceMonthlyAmount(t *testing.T) {
	rule := DefaultRules().ChildAllowance

	tests := []struct {
		name  string
		child ChildProfile
		want  int64
	}{
		{"unborn", ChildProfile{Order: 1, Age: -1}, 0},
		{"newborn", ChildProfile{Order: 1, Age: 0}, 15000},
		{"age 2", ChildProfile{Order: 2, Age: 2}, 15000},
		{"age 3", ChildProfile{Order: 1, Age: 3}, 10000},
		{"age 17", ChildProfile{Order: 2, Age: 17}, 10000},
		{"age 18", ChildProfile{Order: 1, Age: 18}, 0},
		{"third child infant", ChildProfile{Order: 3, Age: 1}, 30000},
		{"third child teen", ChildProfile{Order: 3, Age: 16}, 30000},
		{"third child adult", ChildProfile{Order: 3, Age: 18}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rule.MonthlyAmount(tt.child).IntPart())
		})
	}
}

func TestFoodMonthly(t *testing.T) {
	rules := DefaultRules()
	cases := map[int]int64{-1: 0, 0: 10000, 5: 10000, 6: 20000, 12: 20000, 13: 30000, 22: 30000, 23: 0}
	for age, want := range cases {
		assert.Equal(t, want, rules.FoodMonthly(age).IntPart(), "age %d", age)
	}
}

func TestEducationFor(t *testing.T) {
	rules := DefaultRules()

	band, ok := rules.EducationFor(0)
	assert.True(t, ok)
	assert.Equal(t, "nursery", band.Stage)
	assert.True(t, band.FirstChildOnly)

	band, ok = rules.EducationFor(21)
	assert.True(t, ok)
	assert.Equal(t, "university", band.Stage)
	assert.Equal(t, int64(1500000), band.Annual.IntPart())

	_, ok = rules.EducationFor(22)
	assert.False(t, ok)
}

func TestRetirementAgeDefaults(t *testing.T) {
	rules := DefaultRules()
	p := &InputParameters{}
	assert.Equal(t, 65, rules.HusbandRetirementAge(p))
	assert.Equal(t, 60, rules.WifeRetirementAge(p))

	p.HusbandRetirementAge = 70
	p.WifeRetirementAge = 55
	assert.Equal(t, 70, rules.HusbandRetirementAge(p))
	assert.Equal(t, 55, rules.WifeRetirementAge(p))
}

func TestDefaultRulesAreIndependentCopies(t *testing.T) {
	a := DefaultRules()
	b := DefaultRules()
	a.Education[0].Annual = decimal.NewFromInt(1)
	assert.Equal(t, int64(600000), b.Education[0].Annual.IntPart())
}

func TestEventLabels(t *testing.T) {
	assert.Equal(t, "Child 2 enters elementary school", NewChildEvent(EventElementarySchool, 2).Label)
	assert.Equal(t, "Wife retires (age 60)", NewSpouseEvent(EventRetirement, Wife, 60).Label)

	row := ProjectionRow{Events: []LifeEvent{
		NewSpouseEvent(EventPensionStart, Husband, 65),
		NewChildEvent(EventGraduation, 1),
	}}
	assert.Equal(t, []string{"Husband pension starts (age 65)", "Child 1 graduates"}, row.EventLabels())
	assert.True(t, row.HasEvent(EventGraduation))
	assert.False(t, row.HasEvent(EventChildBirth))
}
