// Package tui is a terminal form for household inputs with a yearly results table.
package tui

import (
	"context"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lifeplan/assetsim/internal/calculation"
	"github.com/lifeplan/assetsim/internal/config"
	"github.com/lifeplan/assetsim/internal/domain"
	"github.com/lifeplan/assetsim/internal/output"
	"github.com/lifeplan/assetsim/internal/storage"
)

// Scene is the screen being shown.
type Scene int

const (
	SceneForm Scene = iota
	SceneResults
)

// Options configures a Model.
type Options struct {
	Engine    *calculation.SimulationEngine
	Persister *storage.Persister // nil disables save and restore
	Household string             // storage name; empty disables save and restore
	StartYear int
	Locale    string
	Initial   domain.InputParameters
}

// Model represents the entire application state
type Model struct {
	opts    Options
	parser  *config.InputParser
	numbers output.NumberFormat

	scene  Scene
	fields []domain.Field
	inputs []textinput.Model
	focus  int

	table      table.Model
	projection *domain.Projection

	width  int
	height int

	status string
	err    error
}

// NewModel creates a new application model
func NewModel(opts Options) Model {
	if opts.Engine == nil {
		opts.Engine = calculation.NewSimulationEngine()
	}
	if opts.StartYear == 0 {
		opts.StartYear = calculation.CurrentYear()
	}

	m := Model{
		opts:    opts,
		parser:  config.NewInputParser(),
		numbers: output.NewNumberFormat(opts.Locale),
		fields:  domain.ParameterFields(),
		width:   100,
		height:  30,
	}
	m.inputs = make([]textinput.Model, len(m.fields))
	for i := range m.fields {
		ti := textinput.New()
		ti.CharLimit = 16
		ti.Width = 16
		ti.Placeholder = "0"
		m.inputs[i] = ti
	}
	m.setValues(config.NormalizeParameters(opts.Initial))
	m.inputs[0].Focus()
	m.table = newResultsTable(m.height)
	return m
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	if m.opts.Persister != nil && m.opts.Household != "" {
		return restoreCmd(m.opts.Persister, m.opts.Household)
	}
	return textinput.Blink
}

// Scene returns the screen currently shown.
func (m Model) Scene() Scene { return m.scene }

// Projection returns the last computed projection, if any.
func (m Model) Projection() *domain.Projection { return m.projection }

// Parameters normalizes the current form contents.
func (m Model) Parameters() domain.InputParameters {
	values := make(map[string]string, len(m.fields))
	for i, f := range m.fields {
		values[f.Key] = m.inputs[i].Value()
	}
	return m.parser.ParseFields(values)
}

func (m *Model) setValues(params domain.InputParameters) {
	for i, f := range m.fields {
		v := f.Get(&params)
		if v == 0 {
			m.inputs[i].SetValue("")
			continue
		}
		m.inputs[i].SetValue(strconv.FormatInt(v, 10))
	}
}

func restoreCmd(persister *storage.Persister, name string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		params, found := persister.Restore(ctx, name)
		return HouseholdRestoredMsg{Parameters: params, Found: found}
	}
}

func calculateCmd(opts Options, params domain.InputParameters) tea.Cmd {
	return func() tea.Msg {
		projection := opts.Engine.RunProjection(&params, opts.StartYear)
		msg := ProjectionCompleteMsg{Projection: projection, Parameters: params}
		if opts.Persister != nil && opts.Household != "" {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			msg.SnapshotID = opts.Persister.Persist(ctx, opts.Household, &params)
		}
		return msg
	}
}

func newResultsTable(height int) table.Model {
	columns := []table.Column{
		{Title: "Year", Width: 6},
		{Title: "Husband", Width: 7},
		{Title: "Wife", Width: 5},
		{Title: "Income", Width: 13},
		{Title: "Expense", Width: 13},
		{Title: "Balance", Width: 14},
		{Title: "Assets", Width: 15},
		{Title: "Events", Width: 40},
	}
	return table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(tableHeight(height)),
	)
}

// tableHeight leaves room for the title, summary and help lines.
func tableHeight(windowHeight int) int {
	h := windowHeight - 14
	if h < 5 {
		return 5
	}
	return h
}
