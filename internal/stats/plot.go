package stats

import (
	"fmt"
	"os"

	"github.com/wcharczuk/go-chart/v2"

	"demes/internal/model"
)

// WriteHistoryChart renders the altruist-fraction and group-variance series
// of a run to a PNG. This is a presentation-side collaborator: it consumes a
// read-only history copy and the simulation core never calls it.
func WriteHistoryChart(history []model.GenerationRecord, path string) error {
	if len(history) == 0 {
		return fmt.Errorf("history is empty")
	}

	generations := GenerationSeries(history)
	graph := chart.Chart{
		Title: "altruist trait over generations",
		XAxis: chart.XAxis{Name: "generation"},
		YAxis: chart.YAxis{
			Name:  "value",
			Range: &chart.ContinuousRange{Min: 0, Max: 1},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "altruist fraction",
				XValues: generations,
				YValues: FractionSeries(history),
			},
			chart.ContinuousSeries{
				Name:    "group variance",
				XValues: generations,
				YValues: VarianceSeries(history),
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := graph.Render(chart.PNG, out); err != nil {
		return fmt.Errorf("render history chart: %w", err)
	}
	return nil
}
