package stats

import (
	"math"
	"testing"

	"demes/internal/model"
)

func sampleHistory() []model.GenerationRecord {
	return []model.GenerationRecord{
		{Generation: 0, AltruistFraction: 0.5, GroupVariance: 0.0},
		{Generation: 1, AltruistFraction: 0.6, GroupVariance: 0.01},
		{Generation: 2, AltruistFraction: 0.4, GroupVariance: 0.04},
		{Generation: 3, AltruistFraction: 0.7, GroupVariance: 0.02},
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-12
}

func TestSeriesExtraction(t *testing.T) {
	history := sampleHistory()

	fractions := FractionSeries(history)
	variances := VarianceSeries(history)
	generations := GenerationSeries(history)
	for i, record := range history {
		if fractions[i] != record.AltruistFraction {
			t.Fatalf("fraction %d: got %g, want %g", i, fractions[i], record.AltruistFraction)
		}
		if variances[i] != record.GroupVariance {
			t.Fatalf("variance %d: got %g, want %g", i, variances[i], record.GroupVariance)
		}
		if generations[i] != float64(record.Generation) {
			t.Fatalf("generation %d: got %g, want %d", i, generations[i], record.Generation)
		}
	}
}

func TestSummarize(t *testing.T) {
	summary := Summarize([]float64{0.5, 0.6, 0.4, 0.7})
	if summary.Initial != 0.5 || summary.Final != 0.7 {
		t.Fatalf("expected endpoints 0.5 and 0.7, got %+v", summary)
	}
	if summary.Min != 0.4 || summary.Max != 0.7 {
		t.Fatalf("expected extrema 0.4 and 0.7, got %+v", summary)
	}
	if !almostEqual(summary.Mean, 0.55) {
		t.Fatalf("expected mean 0.55, got %g", summary.Mean)
	}
}

func TestSummarizeEmptySeries(t *testing.T) {
	if summary := Summarize(nil); summary != (SeriesSummary{}) {
		t.Fatalf("expected zero summary for empty series, got %+v", summary)
	}
}

func TestWindowedMean(t *testing.T) {
	smoothed := WindowedMean([]float64{1, 2, 3, 4}, 2)
	want := []float64{1, 1.5, 2.5, 3.5}
	for i := range want {
		if !almostEqual(smoothed[i], want[i]) {
			t.Fatalf("position %d: got %g, want %g", i, smoothed[i], want[i])
		}
	}
}

func TestWindowedMeanDegenerateWindow(t *testing.T) {
	series := []float64{1, 2, 3}
	smoothed := WindowedMean(series, 0)
	for i := range series {
		if smoothed[i] != series[i] {
			t.Fatalf("expected copy of input for window 0, got %v", smoothed)
		}
	}
	// The copy must be independent.
	smoothed[0] = 99
	if series[0] != 1 {
		t.Fatalf("expected input untouched")
	}
}
