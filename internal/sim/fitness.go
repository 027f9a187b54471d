package sim

import "demes/internal/model"

// altruistFraction returns the share of altruists in a group. An empty
// group's fraction is defined as 0.
func altruistFraction(group model.Group) float64 {
	if len(group) == 0 {
		return 0
	}
	return float64(group.AltruistCount()) / float64(len(group))
}

// Fitnesses computes the selection weight of every member of a group.
// Base fitness is 1.0. The benefit term is non-excludable: every member
// receives AltruismBenefit scaled by the group's altruist fraction. The cost
// applies only to altruists, and only when within-group selection is
// enabled. Weights may be zero or negative; the sampler absorbs that case.
func Fitnesses(group model.Group, params model.Parameters) []float64 {
	fraction := altruistFraction(group)
	weights := make([]float64, len(group))
	for i, individual := range group {
		fitness := 1.0 + params.AltruismBenefit*fraction
		if individual.Altruist && params.WithinGroupSelection {
			fitness -= params.AltruismCost
		}
		weights[i] = fitness
	}
	return weights
}
