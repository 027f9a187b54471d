package storage

import (
	"encoding/json"
	"errors"

	"demes/internal/model"
)

const (
	CurrentSchemaVersion = 1
	CurrentCodecVersion  = 1
)

var ErrVersionMismatch = errors.New("record version mismatch")

func EncodeScenario(s model.Scenario) ([]byte, error) {
	return json.Marshal(s)
}

func DecodeScenario(data []byte) (model.Scenario, error) {
	var scenario model.Scenario
	if err := json.Unmarshal(data, &scenario); err != nil {
		return model.Scenario{}, err
	}
	if err := checkVersion(scenario.VersionedRecord); err != nil {
		return model.Scenario{}, err
	}
	return scenario, nil
}

func checkVersion(v model.VersionedRecord) error {
	if v.SchemaVersion != CurrentSchemaVersion || v.CodecVersion != CurrentCodecVersion {
		return ErrVersionMismatch
	}
	return nil
}
