package sim

import "demes/internal/model"

// Collect reduces a population snapshot to its generation record: the global
// altruist fraction and the population variance (N denominator) of per-group
// fractions. Empty groups contribute a fraction of 0; an empty population
// yields a zero record rather than an error.
func Collect(generation int, population model.Population) model.GenerationRecord {
	record := model.GenerationRecord{Generation: generation}
	if len(population) == 0 {
		return record
	}

	totalIndividuals := 0
	totalAltruists := 0
	fractions := make([]float64, len(population))
	mean := 0.0
	for g, group := range population {
		totalIndividuals += len(group)
		totalAltruists += group.AltruistCount()
		fractions[g] = altruistFraction(group)
		mean += fractions[g]
	}
	mean /= float64(len(population))

	if totalIndividuals > 0 {
		record.AltruistFraction = float64(totalAltruists) / float64(totalIndividuals)
	}
	variance := 0.0
	for _, fraction := range fractions {
		delta := fraction - mean
		variance += delta * delta
	}
	record.GroupVariance = variance / float64(len(population))
	return record
}
