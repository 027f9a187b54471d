// Package demes is the embeddable client for the multi-level selection
// simulation core: it validates parameters, owns a table of in-memory runs
// keyed by generated IDs, and manages stored scenarios. Histories and
// conclusions live only on the runs; nothing about a run is persisted.
package demes

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"demes/internal/model"
	"demes/internal/sim"
	"demes/internal/storage"
)

const defaultDBPath = "demes.db"

type Options struct {
	StoreKind string
	DBPath    string
}

type Client struct {
	store storage.Store

	mu   sync.Mutex
	runs map[string]*sim.Run
}

// RunSummary describes a completed run.
type RunSummary struct {
	RunID         string
	History       []model.GenerationRecord
	FinalFraction float64
	FinalVariance float64
	Conclusion    string
}

func New(opts Options) (*Client, error) {
	storeKind := opts.StoreKind
	if storeKind == "" {
		storeKind = storage.DefaultStoreKind()
	}
	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = defaultDBPath
	}

	store, err := storage.NewStore(storeKind, dbPath)
	if err != nil {
		return nil, err
	}

	return &Client{
		store: store,
		runs:  make(map[string]*sim.Run),
	}, nil
}

func (c *Client) Init(ctx context.Context) error {
	return c.store.Init(ctx)
}

func (c *Client) Close() error {
	return storage.CloseIfSupported(c.store)
}

// Configure validates a parameter set and returns it unchanged on success.
// Out-of-range values fail; nothing is clamped.
func (c *Client) Configure(params model.Parameters) (model.Parameters, error) {
	if err := model.ValidateParameters(params); err != nil {
		return model.Parameters{}, err
	}
	return params, nil
}

// StartRun validates the parameters, seeds a run and registers it under a
// fresh run ID. The returned handle is used with the other run operations.
func (c *Client) StartRun(params model.Parameters, seed int64) (string, error) {
	run, err := sim.Start(params, sim.NewSeededSource(seed))
	if err != nil {
		return "", err
	}

	runID := uuid.NewString()
	c.mu.Lock()
	c.runs[runID] = run
	c.mu.Unlock()
	return runID, nil
}

// StepRun advances the run by exactly one generation.
func (c *Client) StepRun(runID string) (model.GenerationRecord, bool, error) {
	run, err := c.getRun(runID)
	if err != nil {
		return model.GenerationRecord{}, false, err
	}
	return run.Step()
}

// StopRun cancels a running simulation at its current step boundary.
func (c *Client) StopRun(runID string) error {
	run, err := c.getRun(runID)
	if err != nil {
		return err
	}
	return run.Stop()
}

// ResetRun discards the run's population, history and conclusion. The handle
// stays registered in the Idle state.
func (c *Client) ResetRun(runID string) error {
	run, err := c.getRun(runID)
	if err != nil {
		return err
	}
	return run.Reset()
}

// ReleaseRun unregisters a handle. Unknown IDs are ignored.
func (c *Client) ReleaseRun(runID string) {
	c.mu.Lock()
	delete(c.runs, runID)
	c.mu.Unlock()
}

// RunState reports the lifecycle state of a run.
func (c *Client) RunState(runID string) (sim.State, error) {
	run, err := c.getRun(runID)
	if err != nil {
		return "", err
	}
	return run.State(), nil
}

// History returns a read-only copy of the run's records so far.
func (c *Client) History(runID string) ([]model.GenerationRecord, error) {
	run, err := c.getRun(runID)
	if err != nil {
		return nil, err
	}
	return run.History(), nil
}

// Conclusion returns the run's summary; present only once completed.
func (c *Client) Conclusion(runID string) (string, bool, error) {
	run, err := c.getRun(runID)
	if err != nil {
		return "", false, err
	}
	conclusion, ok := run.Conclusion()
	return conclusion, ok, nil
}

// RunToCompletion starts a run and plays it through all configured
// generations, yielding each record to onGeneration. Cancellation is
// honored between generations only.
func (c *Client) RunToCompletion(ctx context.Context, params model.Parameters, seed int64, onGeneration func(model.GenerationRecord)) (RunSummary, error) {
	runID, err := c.StartRun(params, seed)
	if err != nil {
		return RunSummary{}, err
	}
	run, err := c.getRun(runID)
	if err != nil {
		return RunSummary{}, err
	}

	if err := run.Play(ctx, onGeneration); err != nil {
		return RunSummary{}, err
	}

	history := run.History()
	final := history[len(history)-1]
	conclusion, _ := run.Conclusion()
	return RunSummary{
		RunID:         runID,
		History:       history,
		FinalFraction: final.AltruistFraction,
		FinalVariance: final.GroupVariance,
		Conclusion:    conclusion,
	}, nil
}

// SaveScenario validates and stores a named parameter set.
func (c *Client) SaveScenario(ctx context.Context, name, description string, params model.Parameters) (model.Scenario, error) {
	if name == "" {
		return model.Scenario{}, fmt.Errorf("scenario name is required")
	}
	if err := model.ValidateParameters(params); err != nil {
		return model.Scenario{}, err
	}

	scenario := model.Scenario{
		VersionedRecord: model.VersionedRecord{
			SchemaVersion: storage.CurrentSchemaVersion,
			CodecVersion:  storage.CurrentCodecVersion,
		},
		Name:         name,
		Description:  description,
		Parameters:   params,
		CreatedAtUTC: time.Now().UTC().Format(time.RFC3339),
	}
	if err := c.store.SaveScenario(ctx, scenario); err != nil {
		return model.Scenario{}, err
	}
	return scenario, nil
}

func (c *Client) GetScenario(ctx context.Context, name string) (model.Scenario, error) {
	scenario, ok, err := c.store.GetScenario(ctx, name)
	if err != nil {
		return model.Scenario{}, err
	}
	if !ok {
		return model.Scenario{}, fmt.Errorf("scenario not found: %s", name)
	}
	return scenario, nil
}

func (c *Client) ListScenarios(ctx context.Context) ([]model.Scenario, error) {
	return c.store.ListScenarios(ctx)
}

func (c *Client) DeleteScenario(ctx context.Context, name string) error {
	return c.store.DeleteScenario(ctx, name)
}

func (c *Client) getRun(runID string) (*sim.Run, error) {
	if runID == "" {
		return nil, fmt.Errorf("run id is required")
	}
	c.mu.Lock()
	run, ok := c.runs[runID]
	c.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("run not found: %s", runID)
	}
	return run, nil
}
