package storage

import (
	"context"

	"demes/internal/model"
)

// Store persists named parameter scenarios. Scenarios are configuration
// only; simulation runs and their histories are never stored.
type Store interface {
	Init(ctx context.Context) error
	SaveScenario(ctx context.Context, scenario model.Scenario) error
	GetScenario(ctx context.Context, name string) (model.Scenario, bool, error)
	ListScenarios(ctx context.Context) ([]model.Scenario, error)
	DeleteScenario(ctx context.Context, name string) error
}

// Resetter is implemented by stores that can drop all stored scenarios.
type Resetter interface {
	Reset(ctx context.Context) error
}
