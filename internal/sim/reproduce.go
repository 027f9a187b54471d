package sim

import "demes/internal/model"

// ReproduceGroup draws len(group) offspring by fitness-proportional sampling
// with replacement, then applies the mutation flip to each offspring. The
// selection walk accumulates weights in member order and picks the first
// member whose cumulative weight reaches the draw; the last member is the
// implicit fallback against floating-point shortfall. A non-positive total
// weight degrades to uniform selection instead of failing, so a generation
// step never errors.
func ReproduceGroup(group model.Group, params model.Parameters, rng Source) model.Group {
	if len(group) == 0 {
		return model.Group{}
	}

	weights := Fitnesses(group, params)
	total := 0.0
	for _, weight := range weights {
		total += weight
	}

	next := make(model.Group, 0, len(group))
	for n := 0; n < len(group); n++ {
		var parent model.Individual
		if total <= 0 {
			parent = group[pickIndex(rng, len(group))]
		} else {
			draw := rng.Float64() * total
			cumulative := 0.0
			parent = group[len(group)-1]
			for i, weight := range weights {
				cumulative += weight
				if cumulative >= draw {
					parent = group[i]
					break
				}
			}
		}
		next = append(next, mutate(parent, params.MutationRate, rng))
	}
	return next
}

// mutate flips the trait with the given probability. One draw is consumed
// per call regardless of the rate, keeping the draw sequence independent of
// parameter values.
func mutate(individual model.Individual, rate float64, rng Source) model.Individual {
	if rng.Float64() < rate {
		individual.Altruist = !individual.Altruist
	}
	return individual
}
