package model

import "fmt"

// ValidateParameters checks every field against its declared range.
// Out-of-range values fail validation rather than being clamped.
func ValidateParameters(p Parameters) error {
	if p.NumGroups < 2 || p.NumGroups > 20 {
		return fmt.Errorf("num_groups must be in [2, 20], got %d", p.NumGroups)
	}
	if p.GroupSize < 10 || p.GroupSize > 100 {
		return fmt.Errorf("group_size must be in [10, 100], got %d", p.GroupSize)
	}
	if p.Generations < 50 || p.Generations > 500 {
		return fmt.Errorf("generations must be in [50, 500], got %d", p.Generations)
	}
	if p.Generations%50 != 0 {
		return fmt.Errorf("generations must be a multiple of 50, got %d", p.Generations)
	}
	if p.InitialAltruistFrequency < 0 || p.InitialAltruistFrequency > 1 {
		return fmt.Errorf("initial_altruist_frequency must be in [0, 1], got %g", p.InitialAltruistFrequency)
	}
	if p.AltruismCost < 0 || p.AltruismCost > 0.2 {
		return fmt.Errorf("altruism_cost must be in [0, 0.2], got %g", p.AltruismCost)
	}
	if p.AltruismBenefit < 0 || p.AltruismBenefit > 0.3 {
		return fmt.Errorf("altruism_benefit must be in [0, 0.3], got %g", p.AltruismBenefit)
	}
	if p.MigrationRate < 0 || p.MigrationRate > 0.3 {
		return fmt.Errorf("migration_rate must be in [0, 0.3], got %g", p.MigrationRate)
	}
	if p.GroupCompetitionStrength < 0 || p.GroupCompetitionStrength > 1 {
		return fmt.Errorf("group_competition_strength must be in [0, 1], got %g", p.GroupCompetitionStrength)
	}
	if p.GroupExtinctionRate < 0 || p.GroupExtinctionRate > 0.2 {
		return fmt.Errorf("group_extinction_rate must be in [0, 0.2], got %g", p.GroupExtinctionRate)
	}
	if p.MutationRate < 0 || p.MutationRate > 0.1 {
		return fmt.Errorf("mutation_rate must be in [0, 0.1], got %g", p.MutationRate)
	}
	return nil
}
