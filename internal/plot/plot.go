// Package plot renders 7-day price history charts for Discord attachments.
package plot

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/albie-bot/albie/internal/aodata"
)

// ErrNoData is returned when no city has enough history to draw.
var ErrNoData = errors.New("no history data to plot")

// Chart dimensions and the quality level charted (1 = normal).
const (
	chartWidth     = 1024
	chartHeight    = 512
	chartedQuality = 1
)

// maxDeviations is the outlier cutoff: points further than this many median
// absolute deviations from the median are dropped before plotting.
const maxDeviations = 10

// Render draws the average sell price per city over time and returns the
// encoded PNG. Cities with fewer than two usable points are skipped.
func Render(itemID, itemName string, entries []aodata.HistoryEntry) ([]byte, error) {
	var series []chart.Series

	for _, entry := range entries {
		if entry.Quality != chartedQuality {
			continue
		}

		times, prices := parseSeries(entry.Data)
		prices, kept := rejectOutliers(prices)
		times = pick(times, kept)

		if len(times) < 2 {
			continue
		}
		series = append(series, chart.TimeSeries{
			Name:    entry.Location,
			XValues: times,
			YValues: prices,
		})
	}

	if len(series) == 0 {
		return nil, ErrNoData
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("7 Days Sell Order Prices for %s (%s)", itemName, itemID),
		Width:  chartWidth,
		Height: chartHeight,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("01/02"),
		},
		YAxis: chart.YAxis{
			Name: "Silver",
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	return buf.Bytes(), nil
}

// parseSeries pairs up timestamps and prices, dropping entries whose
// timestamp does not parse.
func parseSeries(data aodata.HistoryData) ([]time.Time, []float64) {
	n := len(data.Timestamps)
	if len(data.PricesAvg) < n {
		n = len(data.PricesAvg)
	}

	times := make([]time.Time, 0, n)
	prices := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		ts, err := time.Parse(aodata.TimestampLayout, data.Timestamps[i])
		if err != nil {
			continue
		}
		times = append(times, ts)
		prices = append(prices, data.PricesAvg[i])
	}
	return times, prices
}

// rejectOutliers drops values further than maxDeviations median absolute
// deviations from the median. Returns the kept values and their original
// indices so parallel slices can be filtered the same way.
func rejectOutliers(values []float64) ([]float64, []int) {
	if len(values) == 0 {
		return nil, nil
	}

	med := median(values)
	devs := make([]float64, len(values))
	for i, v := range values {
		devs[i] = abs(v - med)
	}
	mdev := median(devs)

	kept := make([]int, 0, len(values))
	out := make([]float64, 0, len(values))
	for i, v := range values {
		score := 0.0
		if mdev != 0 {
			score = devs[i] / mdev
		}
		if score < maxDeviations {
			kept = append(kept, i)
			out = append(out, v)
		}
	}
	return out, kept
}

func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func pick[T any](values []T, indices []int) []T {
	out := make([]T, 0, len(indices))
	for _, i := range indices {
		out = append(out, values[i])
	}
	return out
}
