package stats

import "demes/internal/model"

// FractionSeries extracts the altruist-fraction series from a history.
func FractionSeries(history []model.GenerationRecord) []float64 {
	out := make([]float64, len(history))
	for i, record := range history {
		out[i] = record.AltruistFraction
	}
	return out
}

// VarianceSeries extracts the group-variance series from a history.
func VarianceSeries(history []model.GenerationRecord) []float64 {
	out := make([]float64, len(history))
	for i, record := range history {
		out[i] = record.GroupVariance
	}
	return out
}

// GenerationSeries extracts generation indices as floats, for plotting.
func GenerationSeries(history []model.GenerationRecord) []float64 {
	out := make([]float64, len(history))
	for i, record := range history {
		out[i] = float64(record.Generation)
	}
	return out
}

// SeriesSummary is a compact reduction of one time series.
type SeriesSummary struct {
	Initial float64 `json:"initial"`
	Final   float64 `json:"final"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Mean    float64 `json:"mean"`
}

// Summarize reduces a series to its summary. An empty series yields the zero
// summary.
func Summarize(series []float64) SeriesSummary {
	if len(series) == 0 {
		return SeriesSummary{}
	}
	summary := SeriesSummary{
		Initial: series[0],
		Final:   series[len(series)-1],
		Min:     series[0],
		Max:     series[0],
	}
	total := 0.0
	for _, value := range series {
		if value < summary.Min {
			summary.Min = value
		}
		if value > summary.Max {
			summary.Max = value
		}
		total += value
	}
	summary.Mean = total / float64(len(series))
	return summary
}

// WindowedMean smooths a series with a trailing mean over at most window
// points. A window below 1 returns a copy of the input.
func WindowedMean(series []float64, window int) []float64 {
	out := make([]float64, len(series))
	if window < 1 {
		copy(out, series)
		return out
	}
	total := 0.0
	for i, value := range series {
		total += value
		if i >= window {
			total -= series[i-window]
		}
		span := i + 1
		if span > window {
			span = window
		}
		out[i] = total / float64(span)
	}
	return out
}
