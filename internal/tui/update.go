package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(tableHeight(msg.Height))
		return m, nil

	case HouseholdRestoredMsg:
		if msg.Found {
			m.setValues(msg.Parameters)
			m.status = "Restored household " + strconv.Quote(m.opts.Household)
		}
		return m, nil

	case ProjectionCompleteMsg:
		m.projection = msg.Projection
		m.table.SetRows(m.tableRows())
		m.table.GotoTop()
		m.scene = SceneResults
		m.status = ""
		if msg.SnapshotID != "" {
			m.status = "Saved household " + strconv.Quote(m.opts.Household)
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			return m, tea.Quit
		}
		if m.scene == SceneResults {
			return m.updateResults(msg)
		}
		return m.updateForm(msg)
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Submit):
		return m, calculateCmd(m.opts, m.Parameters())
	case key.Matches(msg, keys.Next):
		return m, m.moveFocus(1)
	case key.Matches(msg, keys.Prev):
		return m, m.moveFocus(-1)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Back):
		m.scene = SceneForm
		return m, m.inputs[m.focus].Focus()
	case msg.String() == "q":
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	m.inputs[m.focus].Blur()
	n := len(m.inputs)
	m.focus = ((m.focus+delta)%n + n) % n
	return m.inputs[m.focus].Focus()
}

func (m Model) tableRows() []table.Row {
	if m.projection == nil {
		return nil
	}
	rows := make([]table.Row, 0, len(m.projection.Rows))
	for i := range m.projection.Rows {
		r := &m.projection.Rows[i]
		wife := "-"
		if r.WifeDeclared() {
			wife = strconv.Itoa(r.WifeAge)
		}
		rows = append(rows, table.Row{
			strconv.Itoa(r.Year),
			strconv.Itoa(r.HusbandAge),
			wife,
			m.numbers.Amount(r.TotalIncome),
			m.numbers.Amount(r.TotalExpense),
			m.numbers.Signed(r.Balance),
			m.numbers.Amount(r.Assets),
			strings.Join(r.EventLabels(), ", "),
		})
	}
	return rows
}
