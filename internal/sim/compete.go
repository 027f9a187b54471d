package sim

import "demes/internal/model"

// Compete applies between-group selection after migration. Group fitness is
// 1.0 + GroupCompetitionStrength * altruistFraction, so it is always >= 1.0
// and the extinction probability GroupExtinctionRate / fitness never exceeds
// the configured rate. Extinction draws, the fittest-group lookup and the
// replacement source all use the same pre-extinction snapshot: a group
// replaced this generation never seeds another replacement. A group that is
// itself the fittest survives its own extinction draw unchanged, which also
// covers the single-group population.
func Compete(population model.Population, params model.Parameters, rng Source) model.Population {
	if !params.BetweenGroupSelection || len(population) == 0 {
		return population
	}

	fitness := make([]float64, len(population))
	for g, group := range population {
		fitness[g] = 1.0 + params.GroupCompetitionStrength*altruistFraction(group)
	}
	fittest := 0
	for g := 1; g < len(fitness); g++ {
		if fitness[g] > fitness[fittest] {
			fittest = g
		}
	}
	source := population[fittest].Clone()

	next := make(model.Population, len(population))
	copy(next, population)
	for g := range population {
		if rng.Float64() >= params.GroupExtinctionRate/fitness[g] {
			continue
		}
		if g == fittest {
			continue
		}
		replacement := make(model.Group, len(source))
		for i, individual := range source {
			replacement[i] = mutate(individual, params.MutationRate, rng)
		}
		next[g] = replacement
	}
	return next
}
