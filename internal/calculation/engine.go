package calculation

import (
	"github.com/lifeplan/assetsim/internal/domain"
)

// SimulationEngine orchestrates the yearly household projection
type SimulationEngine struct {
	Rules       domain.Rules
	IncomeCalc  *IncomeCalculator
	ExpenseCalc *ExpenseCalculator
	Debug       bool // Enable debug output for per-year figures
	Logger      Logger
}

// NewSimulationEngine creates a new simulation engine with the default rule set
func NewSimulationEngine() *SimulationEngine {
	return NewSimulationEngineWithRules(domain.DefaultRules())
}

// NewSimulationEngineWithRules creates a new simulation engine with a custom rule set
func NewSimulationEngineWithRules(rules domain.Rules) *SimulationEngine {
	engine := &SimulationEngine{
		Rules:  rules,
		Logger: NopLogger{},
	}
	engine.IncomeCalc = NewIncomeCalculator(&engine.Rules)
	engine.ExpenseCalc = NewExpenseCalculator(&engine.Rules)
	return engine
}

// SetLogger sets the logger for the simulation engine. If nil is provided, a no-op logger is used.
func (se *SimulationEngine) SetLogger(l Logger) {
	if l == nil {
		se.Logger = NopLogger{}
		return
	}
	se.Logger = l
}

// RunProjection computes the full trajectory for params beginning at startYear, with its summary.
// It never fails: malformed inputs have already been normalized to zero at the boundary.
func (se *SimulationEngine) RunProjection(params *domain.InputParameters, startYear int) *domain.Projection {
	rows := se.GenerateProjection(params, startYear)
	summary := Summarize(rows, params.CurrentAssets)
	if len(rows) == 0 {
		se.Logger.Warnf("empty projection: husband birth year %d yields no years through age %d", params.HusbandBirthYear, se.Rules.TerminalAge)
	} else {
		se.Logger.Infof("projected %d years (%d-%d), final assets %s", summary.Years, summary.StartYear, summary.EndYear, summary.FinalAssets.String())
	}
	return &domain.Projection{Rows: rows, Summary: summary}
}
