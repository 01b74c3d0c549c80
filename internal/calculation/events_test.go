package calculation

import (
	"testing"

	"github.com/lifeplan/assetsim/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDetectEvents(t *testing.T) {
	rules := domain.DefaultRules()
	params := &domain.InputParameters{
		HusbandBirthYear: 1960,
		WifeBirthYear:    1965,
		Child1BirthYear:  2019,
		Child2BirthYear:  2025,
		Child3BirthYear:  2003,
	}

	children := ResolveChildren(params, 2025)
	events := DetectEvents(&rules, params, 65, 60, children)

	var labels []string
	for _, e := range events {
		labels = append(labels, e.Label)
	}
	assert.Equal(t, []string{
		"Husband retires (age 65)",
		"Husband pension starts (age 65)",
		"Wife retires (age 60)",
		"Child 1 enters elementary school",
		"Child 2 born",
		"Child 3 graduates",
	}, labels)
	assert.Equal(t, domain.Wife, events[2].Spouse)
	assert.Equal(t, 2, events[4].ChildOrder)
}

func TestDetectEventsMilestones(t *testing.T) {
	rules := domain.DefaultRules()

	tests := []struct {
		age  int
		kind domain.EventKind
	}{
		{0, domain.EventChildBirth},
		{6, domain.EventElementarySchool},
		{12, domain.EventJuniorHighSchool},
		{15, domain.EventHighSchool},
		{18, domain.EventUniversity},
		{22, domain.EventGraduation},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			children := []domain.ChildProfile{{Order: 1, BirthYear: 2000, Age: tt.age}}
			events := DetectEvents(&rules, &domain.InputParameters{}, 0, 0, children)
			if assert.Len(t, events, 1) {
				assert.Equal(t, tt.kind, events[0].Kind)
			}
		})
	}

	for _, age := range []int{-1, 1, 5, 7, 17, 23} {
		children := []domain.ChildProfile{{Order: 1, BirthYear: 2000, Age: age}}
		assert.Empty(t, DetectEvents(&rules, &domain.InputParameters{}, 0, 0, children), "age %d", age)
	}
}

func TestDetectEventsSkipsAbsentSpouse(t *testing.T) {
	rules := domain.DefaultRules()
	params := &domain.InputParameters{HusbandBirthYear: 1960}
	// wife birth year undeclared; her computed age never matches a milestone
	events := DetectEvents(&rules, params, 64, 60, nil)
	assert.Empty(t, events)
}
