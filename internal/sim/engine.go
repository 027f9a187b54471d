package sim

import "demes/internal/model"

// StepPopulation advances one full generation in the fixed operator order:
// fitness-weighted reproduction within each group, then migration, then
// group competition, then statistics over the resulting population. It is a
// pure function of its inputs and the draw sequence of the Source.
func StepPopulation(population model.Population, params model.Parameters, rng Source, generation int) (model.Population, model.GenerationRecord) {
	next := make(model.Population, len(population))
	for g, group := range population {
		next[g] = ReproduceGroup(group, params, rng)
	}
	next = Migrate(next, params, rng)
	next = Compete(next, params, rng)
	return next, Collect(generation, next)
}
