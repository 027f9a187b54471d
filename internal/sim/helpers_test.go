package sim

import "demes/internal/model"

// sequenceSource replays scripted draws, cycling when exhausted. calls
// counts every draw consumed, which lets tests assert that an operator
// consumed no randomness at all.
type sequenceSource struct {
	values []float64
	calls  int
}

func (s *sequenceSource) Float64() float64 {
	v := s.values[s.calls%len(s.values)]
	s.calls++
	return v
}

func uniformGroup(size int, altruist bool) model.Group {
	group := make(model.Group, size)
	for i := range group {
		group[i] = model.Individual{Altruist: altruist}
	}
	return group
}

func validParams() model.Parameters {
	return model.Parameters{
		NumGroups:                4,
		GroupSize:                10,
		Generations:              50,
		AltruismCost:             0.1,
		AltruismBenefit:          0.2,
		MigrationRate:            0.05,
		GroupCompetitionStrength: 0.5,
		GroupExtinctionRate:      0.1,
		MutationRate:             0.01,
		WithinGroupSelection:     true,
		BetweenGroupSelection:    true,
		InitialAltruistFrequency: 0.5,
	}
}
