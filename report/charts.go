package report

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/carbocation/pfx"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/arog-bioinfo/covmeta/metadata"
	"github.com/arog-bioinfo/covmeta/pheno"
)

// FitnessHistogramBins is the bin count of the fitness distribution figure.
const FitnessHistogramBins = 25

type renderer interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

// writePNG renders a chart into a buffer first so a failed render never
// leaves a truncated file behind.
func writePNG(graph renderer, path string) error {
	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return pfx.Err(err)
	}

	f, err := os.Create(path)
	if err != nil {
		return pfx.Err(err)
	}
	defer f.Close()

	if _, err := buffer.WriteTo(f); err != nil {
		return pfx.Err(err)
	}

	return nil
}

// RenderSequenceCounts draws the sequences-per-variant bar chart.
func RenderSequenceCounts(summaries []metadata.Summary, path string) error {
	bars := make([]chart.Value, 0, len(summaries))
	for _, s := range summaries {
		bars = append(bars, chart.Value{
			Label: s.DisplayName,
			Value: float64(s.Sequences),
		})
	}

	graph := chart.BarChart{
		Title:  "NCBI genomic sequences per variant",
		Width:  1024,
		Height: 512,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		BarWidth: 80,
		XAxis:    chart.Shown(),
		YAxis: chart.YAxis{
			Style: chart.Shown(),
		},
		Bars: bars,
	}

	return writePNG(graph, path)
}

// RenderTimeline draws one horizontal date-span segment per variant, in
// configuration order from the bottom up. Variants without parseable dates
// are skipped.
func RenderTimeline(summaries []metadata.Summary, path string) error {
	var series []chart.Series
	var ticks []chart.Tick

	row := 0
	for _, s := range summaries {
		if !s.HasDates {
			continue
		}
		series = append(series, chart.TimeSeries{
			Name:    s.DisplayName,
			XValues: []time.Time{s.DateMin, s.DateMax},
			YValues: []float64{float64(row), float64(row)},
			Style: chart.Style{
				StrokeWidth: 14,
				StrokeColor: chart.GetDefaultColor(row),
			},
		})
		ticks = append(ticks, chart.Tick{Value: float64(row), Label: s.DisplayName})
		row++
	}

	graph := chart.Chart{
		Title:  "Variant collection-date spans",
		Width:  1280,
		Height: 560,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01"),
		},
		YAxis: chart.YAxis{
			Ticks: ticks,
			Range: &chart.ContinuousRange{Min: -1, Max: float64(row)},
		},
		Series: series,
	}

	return writePNG(graph, path)
}

// RenderFitnessHistogram draws the distribution of the phenotype target
// column as an equal-width histogram.
func RenderFitnessHistogram(values []float64, st pheno.Stats, path string) error {
	if len(values) == 0 {
		return fmt.Errorf("no values to draw a fitness distribution from")
	}

	width := (st.Max - st.Min) / FitnessHistogramBins
	if width == 0 {
		width = 1
	}

	counts := make([]int, FitnessHistogramBins)
	for _, v := range values {
		bin := int((v - st.Min) / width)
		if bin >= FitnessHistogramBins {
			bin = FitnessHistogramBins - 1
		}
		counts[bin]++
	}

	bars := make([]chart.Value, 0, FitnessHistogramBins)
	for i, c := range counts {
		label := ""
		if i%5 == 0 {
			label = fmt.Sprintf("%.2f", st.Min+(float64(i)+0.5)*width)
		}
		bars = append(bars, chart.Value{Label: label, Value: float64(c)})
	}

	graph := chart.BarChart{
		Title:  fmt.Sprintf("Fitness distribution (n=%d, mean=%.3f)", st.Count, st.Mean),
		Width:  1024,
		Height: 512,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		BarWidth:   24,
		BarSpacing: 4,
		XAxis:      chart.Shown(),
		YAxis: chart.YAxis{
			Style: chart.Shown(),
		},
		Bars: bars,
	}

	return writePNG(graph, path)
}
