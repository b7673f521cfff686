package plot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albie-bot/albie/internal/aodata"
)

func TestRejectOutliers(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		want     []float64
		wantKept []int
	}{
		{
			name:     "no outliers",
			values:   []float64{100, 102, 98, 101},
			want:     []float64{100, 102, 98, 101},
			wantKept: []int{0, 1, 2, 3},
		},
		{
			name:     "single spike removed",
			values:   []float64{100, 102, 98, 101, 99, 5000},
			want:     []float64{100, 102, 98, 101, 99},
			wantKept: []int{0, 1, 2, 3, 4},
		},
		{
			name:     "identical values all kept",
			values:   []float64{50, 50, 50},
			want:     []float64{50, 50, 50},
			wantKept: []int{0, 1, 2},
		},
		{
			name:     "empty input",
			values:   nil,
			want:     nil,
			wantKept: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, kept := rejectOutliers(tt.values)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantKept, kept)
		})
	}
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 2.0, median([]float64{3, 1, 2}))
	assert.Equal(t, 2.5, median([]float64{4, 1, 2, 3}))
	assert.Equal(t, 7.0, median([]float64{7}))
}

func historyEntry(location string, quality int, n int) aodata.HistoryEntry {
	timestamps := make([]string, 0, n)
	prices := make([]float64, 0, n)
	counts := make([]int, 0, n)
	days := []string{"01", "02", "03", "04", "05", "06", "07"}
	for i := 0; i < n; i++ {
		timestamps = append(timestamps, "2024-03-"+days[i]+"T00:00:00")
		prices = append(prices, 1000+float64(i)*25)
		counts = append(counts, 10+i)
	}
	return aodata.HistoryEntry{
		Location: location,
		Quality:  quality,
		Data: aodata.HistoryData{
			ItemCount:  counts,
			PricesAvg:  prices,
			Timestamps: timestamps,
		},
	}
}

func TestRenderProducesPNG(t *testing.T) {
	entries := []aodata.HistoryEntry{
		historyEntry("Caerleon", 1, 7),
		historyEntry("Martlock", 1, 5),
		historyEntry("Caerleon", 2, 7), // wrong quality, skipped
	}

	png, err := Render("T4_BAG", "Bag", entries)
	require.NoError(t, err)
	require.NotEmpty(t, png)

	// PNG signature
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestRenderNoData(t *testing.T) {
	_, err := Render("T4_BAG", "Bag", nil)
	assert.ErrorIs(t, err, ErrNoData)

	// Only wrong-quality or too-short series also yields ErrNoData.
	entries := []aodata.HistoryEntry{
		historyEntry("Caerleon", 2, 7),
		historyEntry("Martlock", 1, 1),
	}
	_, err = Render("T4_BAG", "Bag", entries)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestRenderSkipsBadTimestamps(t *testing.T) {
	entry := historyEntry("Caerleon", 1, 4)
	entry.Data.Timestamps[1] = "not-a-timestamp"

	png, err := Render("T4_BAG", "Bag", []aodata.HistoryEntry{entry})
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
