package sim

import (
	"strings"

	"demes/internal/model"
)

// Conclude maps a completed history and its parameters onto a rule-based
// natural-language summary. Each rule contributes at most one clause;
// clauses are concatenated in a fixed order and an untriggered rule leaves
// no placeholder. The trend rule compares the final record against the
// generation-zero record.
func Conclude(history []model.GenerationRecord, params model.Parameters) string {
	if len(history) == 0 {
		return ""
	}
	initial := history[0].AltruistFraction
	final := history[len(history)-1].AltruistFraction

	clauses := make([]string, 0, 5)

	switch {
	case final > 0.8:
		clauses = append(clauses, "Altruism evolved to a high frequency.")
	case final < 0.2:
		clauses = append(clauses, "Altruism was selected against.")
	default:
		clauses = append(clauses, "The population settled at a mixed equilibrium.")
	}

	switch {
	case final > initial:
		clauses = append(clauses, "The altruist fraction increased over the run.")
	case final < initial:
		clauses = append(clauses, "The altruist fraction decreased over the run.")
	}

	switch {
	case params.BetweenGroupSelection && !params.WithinGroupSelection:
		clauses = append(clauses, "Between-group selection acted unopposed by within-group costs.")
	case !params.BetweenGroupSelection && params.WithinGroupSelection:
		clauses = append(clauses, "Within-group selection acted alone, which disfavors costly altruism.")
	case params.BetweenGroupSelection && params.WithinGroupSelection:
		if params.GroupCompetitionStrength > 2*params.AltruismCost {
			clauses = append(clauses, "Group competition was strong enough to outweigh the individual cost of altruism.")
		} else {
			clauses = append(clauses, "The individual cost of altruism dominated group competition.")
		}
	default:
		clauses = append(clauses, "With both selection modes disabled, only drift and mutation shaped the outcome.")
	}

	switch {
	case params.MigrationRate > 0.2:
		clauses = append(clauses, "High migration homogenized groups and weakened between-group selection.")
	case params.MigrationRate < 0.05:
		clauses = append(clauses, "Low migration preserved between-group differences.")
	}

	switch {
	case params.AltruismCost > params.AltruismBenefit:
		clauses = append(clauses, "With cost exceeding benefit, altruism was hard to evolve.")
	case params.AltruismCost < params.AltruismBenefit/3:
		clauses = append(clauses, "With benefit far exceeding cost, conditions favored altruism.")
	}

	return strings.Join(clauses, " ")
}
