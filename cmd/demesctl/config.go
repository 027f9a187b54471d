package main

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"demes/internal/model"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// defaultParameters returns the embedded default parameter set.
func defaultParameters() (model.Parameters, error) {
	var params model.Parameters
	if err := yaml.Unmarshal(defaultsYAML, &params); err != nil {
		return model.Parameters{}, fmt.Errorf("parse embedded defaults: %w", err)
	}
	return params, nil
}

// loadParameters reads a scenario file on top of the embedded defaults:
// fields absent from the file keep their default values.
func loadParameters(path string) (model.Parameters, error) {
	params, err := defaultParameters()
	if err != nil {
		return model.Parameters{}, err
	}
	if path == "" {
		return params, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return model.Parameters{}, err
	}
	if err := yaml.Unmarshal(data, &params); err != nil {
		return model.Parameters{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return params, nil
}

// renderParameters formats a parameter set as YAML for display.
func renderParameters(params model.Parameters) (string, error) {
	data, err := yaml.Marshal(params)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
