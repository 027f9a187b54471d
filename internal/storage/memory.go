package storage

import (
	"context"
	"errors"
	"sort"
	"sync"

	"demes/internal/model"
)

type MemoryStore struct {
	mu          sync.RWMutex
	initialized bool
	scenarios   map[string]model.Scenario
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = true
	s.scenarios = make(map[string]model.Scenario)
	return nil
}

func (s *MemoryStore) SaveScenario(_ context.Context, scenario model.Scenario) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return errors.New("store is not initialized")
	}
	s.scenarios[scenario.Name] = scenario
	return nil
}

func (s *MemoryStore) GetScenario(_ context.Context, name string) (model.Scenario, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.initialized {
		return model.Scenario{}, false, errors.New("store is not initialized")
	}
	scenario, ok := s.scenarios[name]
	return scenario, ok, nil
}

func (s *MemoryStore) ListScenarios(_ context.Context) ([]model.Scenario, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.initialized {
		return nil, errors.New("store is not initialized")
	}
	names := make([]string, 0, len(s.scenarios))
	for name := range s.scenarios {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]model.Scenario, 0, len(names))
	for _, name := range names {
		out = append(out, s.scenarios[name])
	}
	return out, nil
}

func (s *MemoryStore) DeleteScenario(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return errors.New("store is not initialized")
	}
	delete(s.scenarios, name)
	return nil
}

func (s *MemoryStore) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.scenarios = make(map[string]model.Scenario)
	return nil
}
