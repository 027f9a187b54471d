package stats

import (
	"os"
	"path/filepath"
	"testing"

	"demes/internal/model"
)

func TestWriteHistoryChart(t *testing.T) {
	history := make([]model.GenerationRecord, 0, 51)
	for generation := 0; generation <= 50; generation++ {
		history = append(history, model.GenerationRecord{
			Generation:       generation,
			AltruistFraction: 0.5 + 0.005*float64(generation),
			GroupVariance:    0.02,
		})
	}

	path := filepath.Join(t.TempDir(), "history.png")
	if err := WriteHistoryChart(history, path); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected chart file: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("expected non-empty chart file")
	}
}

func TestWriteHistoryChartRejectsEmptyHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.png")
	if err := WriteHistoryChart(nil, path); err == nil {
		t.Fatalf("expected error for empty history")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no file written for empty history")
	}
}
