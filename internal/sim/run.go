package sim

import (
	"context"
	"errors"
	"fmt"

	"demes/internal/model"
)

// State is the lifecycle position of a Run.
type State string

const (
	StateIdle      State = "idle"
	StateRunning   State = "running"
	StateStopped   State = "stopped"
	StateCompleted State = "completed"
)

// ErrInvalidTransition reports a lifecycle method called in the wrong state.
// The run's state is unchanged when it is returned.
var ErrInvalidTransition = errors.New("invalid state transition")

// Run owns one population, the growing sequence of generation records and
// the parameters that produced them. A Run is driven synchronously by a
// single caller; its methods are not safe for concurrent use. External
// readers only ever see copies of its state.
type Run struct {
	params     model.Parameters
	rng        Source
	state      State
	generation int
	population model.Population
	history    []model.GenerationRecord
	conclusion string
}

// Start validates the parameters, initializes the population, records
// generation zero and returns a Running handle. A validation failure means
// the simulation never begins.
func Start(params model.Parameters, rng Source) (*Run, error) {
	if err := model.ValidateParameters(params); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("random source is required")
	}

	r := &Run{params: params, rng: rng, state: StateRunning}
	r.population = NewPopulation(params, rng)
	r.history = append(r.history, Collect(0, r.population))
	return r, nil
}

// State returns the current lifecycle state.
func (r *Run) State() State {
	return r.state
}

// Parameters returns the run's configuration.
func (r *Run) Parameters() model.Parameters {
	return r.params
}

// Generation returns the number of completed generations.
func (r *Run) Generation() int {
	return r.generation
}

// Step advances exactly one generation and appends its record. The second
// return value reports completion; the conclusion is derived exactly once,
// on the step that reaches the configured generation count. Stepping a run
// that is not Running fails with ErrInvalidTransition and changes nothing.
func (r *Run) Step() (model.GenerationRecord, bool, error) {
	if r.state != StateRunning {
		return model.GenerationRecord{}, false, fmt.Errorf("step in state %s: %w", r.state, ErrInvalidTransition)
	}

	r.generation++
	var record model.GenerationRecord
	r.population, record = StepPopulation(r.population, r.params, r.rng, r.generation)
	r.history = append(r.history, record)

	if r.generation == r.params.Generations {
		r.state = StateCompleted
		r.conclusion = Conclude(r.history, r.params)
		return record, true, nil
	}
	return record, false, nil
}

// Stop cancels a running simulation. The population and the history up to
// the last completed generation are retained; no conclusion is generated.
func (r *Run) Stop() error {
	if r.state != StateRunning {
		return fmt.Errorf("stop in state %s: %w", r.state, ErrInvalidTransition)
	}
	r.state = StateStopped
	return nil
}

// Reset discards population, history and conclusion, returning the run to
// Idle. Only a Stopped or Completed run may be reset.
func (r *Run) Reset() error {
	if r.state != StateStopped && r.state != StateCompleted {
		return fmt.Errorf("reset in state %s: %w", r.state, ErrInvalidTransition)
	}
	r.state = StateIdle
	r.generation = 0
	r.population = nil
	r.history = nil
	r.conclusion = ""
	return nil
}

// History returns a copy of the records appended so far, ordered by
// generation ascending.
func (r *Run) History() []model.GenerationRecord {
	return append([]model.GenerationRecord(nil), r.history...)
}

// Snapshot returns a deep copy of the current population for external
// readers; the live population is never exposed.
func (r *Run) Snapshot() model.Population {
	return r.population.Clone()
}

// Conclusion returns the derived summary, present only once Completed.
func (r *Run) Conclusion() (string, bool) {
	if r.state != StateCompleted {
		return "", false
	}
	return r.conclusion, true
}

// Play steps the run to completion, yielding each record to onGeneration.
// The context is checked only between steps, so cancellation never applies a
// partial generation; a cancelled run is stopped at that boundary and keeps
// its history.
func (r *Run) Play(ctx context.Context, onGeneration func(model.GenerationRecord)) error {
	if r.state != StateRunning {
		return fmt.Errorf("play in state %s: %w", r.state, ErrInvalidTransition)
	}
	for {
		if err := ctx.Err(); err != nil {
			_ = r.Stop()
			return err
		}
		record, completed, err := r.Step()
		if err != nil {
			return err
		}
		if onGeneration != nil {
			onGeneration(record)
		}
		if completed {
			return nil
		}
	}
}
