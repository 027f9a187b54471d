package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"demes/internal/model"
)

func TestDefaultParametersAreValid(t *testing.T) {
	params, err := defaultParameters()
	if err != nil {
		t.Fatalf("defaults failed to parse: %v", err)
	}
	if err := model.ValidateParameters(params); err != nil {
		t.Fatalf("embedded defaults do not validate: %v", err)
	}
	if params.NumGroups != 10 || params.GroupSize != 20 || params.Generations != 200 {
		t.Fatalf("unexpected defaults: %+v", params)
	}
}

func TestLoadParametersOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	content := "num_groups: 5\nmigration_rate: 0.2\nbetween_group_selection: false\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write scenario file: %v", err)
	}

	params, err := loadParameters(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if params.NumGroups != 5 {
		t.Fatalf("expected overridden num_groups 5, got %d", params.NumGroups)
	}
	if params.MigrationRate != 0.2 {
		t.Fatalf("expected overridden migration_rate 0.2, got %g", params.MigrationRate)
	}
	if params.BetweenGroupSelection {
		t.Fatalf("expected between_group_selection overridden to false")
	}
	// Untouched fields keep their defaults.
	if params.GroupSize != 20 || params.Generations != 200 {
		t.Fatalf("expected defaults preserved, got %+v", params)
	}
}

func TestLoadParametersEmptyPathReturnsDefaults(t *testing.T) {
	params, err := loadParameters("")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	defaults, err := defaultParameters()
	if err != nil {
		t.Fatalf("defaults failed: %v", err)
	}
	if params != defaults {
		t.Fatalf("expected defaults for empty path, got %+v", params)
	}
}

func TestLoadParametersMissingFile(t *testing.T) {
	if _, err := loadParameters(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected missing file to fail")
	}
}

func TestRenderParameters(t *testing.T) {
	params, err := defaultParameters()
	if err != nil {
		t.Fatalf("defaults failed: %v", err)
	}
	rendered, err := renderParameters(params)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	for _, key := range []string{"num_groups", "migration_rate", "initial_altruist_frequency"} {
		if !strings.Contains(rendered, key) {
			t.Fatalf("expected rendered output to contain %s:\n%s", key, rendered)
		}
	}
}
