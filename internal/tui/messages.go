package tui

import "github.com/lifeplan/assetsim/internal/domain"

// ProjectionCompleteMsg carries a finished projection back to the model.
type ProjectionCompleteMsg struct {
	Projection *domain.Projection
	Parameters domain.InputParameters
	SnapshotID string
}

// HouseholdRestoredMsg carries a saved household loaded at startup.
type HouseholdRestoredMsg struct {
	Parameters domain.InputParameters
	Found      bool
}
