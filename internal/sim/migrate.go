package sim

import "demes/internal/model"

// Migrate relocates individuals between groups after reproduction. Each
// individual is evaluated exactly once, against a frozen snapshot of its
// originating group: the first pass collects stay/leave decisions and
// destinations for every group, the second pass rebuilds groups from the
// retained members plus arrivals. Arrivals are never reconsidered within the
// same generation. Group sizes may diverge from GroupSize here and are never
// re-normalized; total population size is conserved exactly.
//
// With a migration rate of zero or a single group the pass is a no-op.
func Migrate(population model.Population, params model.Parameters, rng Source) model.Population {
	if params.MigrationRate <= 0 || len(population) < 2 {
		return population
	}

	retained := make([]model.Group, len(population))
	arrivals := make([]model.Group, len(population))
	for g, group := range population {
		retained[g] = make(model.Group, 0, len(group))
		for _, individual := range group {
			if rng.Float64() >= params.MigrationRate {
				retained[g] = append(retained[g], individual)
				continue
			}
			// Destination is uniform over the other groups.
			destination := pickIndex(rng, len(population)-1)
			if destination >= g {
				destination++
			}
			arrivals[destination] = append(arrivals[destination], individual)
		}
	}

	next := make(model.Population, len(population))
	for g := range next {
		next[g] = append(retained[g], arrivals[g]...)
	}
	return next
}
