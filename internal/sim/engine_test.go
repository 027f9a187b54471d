package sim

import (
	"reflect"
	"testing"

	"demes/internal/model"
)

func TestStepPopulationPreservesGroupSizesWithoutMigration(t *testing.T) {
	params := validParams()
	params.MigrationRate = 0
	params.BetweenGroupSelection = false

	rng := NewSeededSource(42)
	population := NewPopulation(params, rng)
	for generation := 1; generation <= 50; generation++ {
		next, record := StepPopulation(population, params, rng, generation)
		for g, group := range next {
			if len(group) != params.GroupSize {
				t.Fatalf("generation %d: group %d has size %d, expected %d", generation, g, len(group), params.GroupSize)
			}
		}
		if record.Generation != generation {
			t.Fatalf("expected record for generation %d, got %d", generation, record.Generation)
		}
		population = next
	}
}

func TestStepPopulationConservesTotalWithMigration(t *testing.T) {
	params := validParams()
	params.MigrationRate = 0.3

	rng := NewSeededSource(7)
	population := NewPopulation(params, rng)
	total := population.TotalSize()
	for generation := 1; generation <= 100; generation++ {
		population, _ = StepPopulation(population, params, rng, generation)
		if got := population.TotalSize(); got != total {
			t.Fatalf("generation %d: expected total size %d, got %d", generation, total, got)
		}
	}
}

func TestStepPopulationDeterministicForEqualSources(t *testing.T) {
	params := validParams()
	seedPopulation := NewPopulation(params, NewSeededSource(3))

	a := seedPopulation.Clone()
	b := seedPopulation.Clone()
	rngA := NewSeededSource(99)
	rngB := NewSeededSource(99)
	for generation := 1; generation <= 20; generation++ {
		var recA, recB model.GenerationRecord
		a, recA = StepPopulation(a, params, rngA, generation)
		b, recB = StepPopulation(b, params, rngB, generation)
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("generation %d: populations diverged for identical sources", generation)
		}
		if !reflect.DeepEqual(recA, recB) {
			t.Fatalf("generation %d: records diverged for identical sources", generation)
		}
	}
}
