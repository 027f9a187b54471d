package model

// VersionedRecord captures schema and codec evolution for stored records.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

// Individual carries the single heritable trait. It has no identity beyond
// membership in a group.
type Individual struct {
	Altruist bool `json:"altruist"`
}

// Group is a size-varying collection of individuals. Order is irrelevant for
// the model but sampling walks it in slice order, which keeps runs replayable.
type Group []Individual

// AltruistCount returns the number of altruists in the group.
func (g Group) AltruistCount() int {
	count := 0
	for _, individual := range g {
		if individual.Altruist {
			count++
		}
	}
	return count
}

// Clone returns an independent copy of the group.
func (g Group) Clone() Group {
	if g == nil {
		return nil
	}
	copied := make(Group, len(g))
	copy(copied, g)
	return copied
}

// Population is an ordered sequence of groups. Its length is fixed for the
// whole run; only group membership changes.
type Population []Group

// Clone returns a deep copy of the population.
func (p Population) Clone() Population {
	if p == nil {
		return nil
	}
	copied := make(Population, len(p))
	for i, group := range p {
		copied[i] = group.Clone()
	}
	return copied
}

// TotalSize returns the number of individuals across all groups.
func (p Population) TotalSize() int {
	total := 0
	for _, group := range p {
		total += len(group)
	}
	return total
}

// Parameters is the immutable configuration of one run. It is validated once
// before a run starts and read-only afterwards.
type Parameters struct {
	NumGroups                int     `json:"num_groups" yaml:"num_groups"`
	GroupSize                int     `json:"group_size" yaml:"group_size"`
	Generations              int     `json:"generations" yaml:"generations"`
	AltruismCost             float64 `json:"altruism_cost" yaml:"altruism_cost"`
	AltruismBenefit          float64 `json:"altruism_benefit" yaml:"altruism_benefit"`
	MigrationRate            float64 `json:"migration_rate" yaml:"migration_rate"`
	GroupCompetitionStrength float64 `json:"group_competition_strength" yaml:"group_competition_strength"`
	GroupExtinctionRate      float64 `json:"group_extinction_rate" yaml:"group_extinction_rate"`
	MutationRate             float64 `json:"mutation_rate" yaml:"mutation_rate"`
	WithinGroupSelection     bool    `json:"within_group_selection" yaml:"within_group_selection"`
	BetweenGroupSelection    bool    `json:"between_group_selection" yaml:"between_group_selection"`
	InitialAltruistFrequency float64 `json:"initial_altruist_frequency" yaml:"initial_altruist_frequency"`
}

// GenerationRecord is one point of a run's observable history, appended once
// per completed generation and never mutated afterwards.
type GenerationRecord struct {
	Generation       int     `json:"generation"`
	AltruistFraction float64 `json:"altruist_fraction"`
	GroupVariance    float64 `json:"group_variance"`
}

// Scenario is a named, stored parameter set. Scenarios are configuration;
// run results are never persisted.
type Scenario struct {
	VersionedRecord
	Name         string     `json:"name"`
	Description  string     `json:"description,omitempty"`
	Parameters   Parameters `json:"parameters"`
	CreatedAtUTC string     `json:"created_at_utc"`
}
