package storage

import (
	"errors"
	"testing"
)

func TestScenarioCodecRoundTrip(t *testing.T) {
	want := testScenario("baseline")
	data, err := EncodeScenario(want)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	got, err := DecodeScenario(data)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if got != want {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, want)
	}
}

func TestScenarioCodecRejectsVersionMismatch(t *testing.T) {
	scenario := testScenario("baseline")
	scenario.SchemaVersion = CurrentSchemaVersion + 1
	data, err := EncodeScenario(scenario)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if _, err := DecodeScenario(data); !errors.Is(err, ErrVersionMismatch) {
		t.Fatalf("expected ErrVersionMismatch, got %v", err)
	}

	scenario = testScenario("baseline")
	scenario.CodecVersion = 0
	data, err = EncodeScenario(scenario)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if _, err := DecodeScenario(data); !errors.Is(err, ErrVersionMismatch) {
		t.Fatalf("expected ErrVersionMismatch, got %v", err)
	}
}

func TestScenarioCodecRejectsGarbage(t *testing.T) {
	if _, err := DecodeScenario([]byte("not json")); err == nil {
		t.Fatalf("expected decode of garbage to fail")
	}
}
