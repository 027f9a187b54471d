package sim

import "demes/internal/model"

// NewPopulation builds the initial population: NumGroups groups of GroupSize
// individuals, each independently altruist with probability
// InitialAltruistFrequency. Parameters are assumed pre-validated.
func NewPopulation(params model.Parameters, rng Source) model.Population {
	population := make(model.Population, params.NumGroups)
	for g := range population {
		group := make(model.Group, params.GroupSize)
		for i := range group {
			group[i] = model.Individual{Altruist: rng.Float64() < params.InitialAltruistFrequency}
		}
		population[g] = group
	}
	return population
}
