package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lifeplan/assetsim/internal/domain"
	"github.com/shopspring/decimal"
)

var groupTitles = map[domain.FieldGroup]string{
	domain.GroupHousehold: "Household",
	domain.GroupChildren:  "Children (birth year, blank if none)",
	domain.GroupMonthly:   "Monthly expenses",
	domain.GroupYearly:    "Yearly expenses",
	domain.GroupAssets:    "Assets",
}

// View renders the current scene.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(fmt.Sprintf("Household Asset Projection from %d", m.opts.StartYear)))
	b.WriteString("\n")

	if m.scene == SceneResults {
		b.WriteString(m.resultsView())
	} else {
		b.WriteString(m.formView())
	}

	if m.status != "" {
		b.WriteString("\n" + StatusStyle.Render(m.status))
	}
	if m.err != nil {
		b.WriteString("\n" + ErrorStyle.Render("Error: "+m.err.Error()))
	}
	return AppStyle.Render(b.String())
}

func (m Model) formView() string {
	var b strings.Builder
	var group domain.FieldGroup
	for i, f := range m.fields {
		if f.Group != group {
			group = f.Group
			b.WriteString(GroupStyle.Render(groupTitles[group]) + "\n")
		}
		label := LabelStyle.Render(f.Label)
		if i == m.focus {
			label = FocusedLabelStyle.Render("> " + f.Label)
		}
		b.WriteString(label + m.inputs[i].View() + "\n")
	}
	b.WriteString(HelpStyle.Render(helpLine(keys.Next, keys.Prev, keys.Submit, keys.Quit)))
	return b.String()
}

func (m Model) resultsView() string {
	var b strings.Builder
	if m.projection != nil {
		s := m.projection.Summary
		b.WriteString("\n")
		if s.Years == 0 {
			b.WriteString("No projection years: the husband is past the terminal age or his birth year is missing.\n")
		} else {
			b.WriteString(m.metric("Period", fmt.Sprintf("%d - %d (%d years)", s.StartYear, s.EndYear, s.Years)))
			b.WriteString(m.metric("Final assets", m.styledAmount(s.FinalAssets)))
			b.WriteString(m.metric("Lowest assets", fmt.Sprintf("%s (%d)", m.styledAmount(s.LowestAssets), s.LowestAssetsYear)))
			deficit := "none"
			if s.FirstDeficitYear != 0 {
				deficit = MetricNegativeStyle.Render(fmt.Sprint(s.FirstDeficitYear))
			}
			b.WriteString(m.metric("First deficit", deficit))
		}
	}
	b.WriteString(TableBorderStyle.Render(m.table.View()))
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(helpLine(keys.Back, keys.Quit) + "  •  ↑/↓ scroll  •  q quit"))
	return b.String()
}

func (m Model) metric(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, MetricLabelStyle.Render(label), value) + "\n"
}

func (m Model) styledAmount(d decimal.Decimal) string {
	if d.IsNegative() {
		return MetricNegativeStyle.Render(m.numbers.Amount(d))
	}
	return MetricPositiveStyle.Render(m.numbers.Amount(d))
}
