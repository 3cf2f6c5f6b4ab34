package feature

import (
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog/log"

	mlmath "github.com/marketlens/marketlens/internal/math"
	"github.com/marketlens/marketlens/internal/model"
)

// MinRows is the minimum number of usable feature rows after the warm-up.
const MinRows = 21

// Matrix is the model input produced from a price series.
// Rows with any undefined value are dropped whole, feature columns that are
// undefined on every row (degenerate series) are removed from the schema.
type Matrix struct {
	X      [][]float64
	Y      []float64
	Dates  []time.Time
	Index  []int // original table index of each kept row
	Schema Schema
	Total  int // input table length
}

// Warmup returns the number of leading rows dropped for insufficient history.
func (m Matrix) Warmup() int {
	if len(m.Index) == 0 {
		return m.Total
	}
	return m.Index[0]
}

// Build converts a price series into the feature matrix and aligned target.
// Every feature value at row t is computable from data at or before t-1,
// except the two calendar fields which belong to t itself.
func Build(series model.PriceSeries) (Matrix, error) {
	n := series.Len()
	if n < MinRows {
		return Matrix{}, fmt.Errorf("%d rows, need at least %d: %w",
			n, MinRows, model.ErrInsufficientData)
	}

	close := series.Closes()
	volume := series.Volumes()
	dates := series.Dates()

	cols := buildColumns(close, volume, dates)
	schema := DefaultSchema()

	// degenerate columns (all rows undefined) are filtered out,
	// dropping them row-wise would lose the entire series
	kept := make(Schema, 0, len(schema))
	dropped := make([]string, 0)
	for _, slot := range schema {
		if allNaN(cols[slot]) {
			dropped = append(dropped, slot.String())
			continue
		}
		kept = append(kept, slot)
	}
	if len(dropped) > 0 {
		log.Debug().Strs("features", dropped).Msg("removed degenerate feature columns")
	}

	x := make([][]float64, 0, n)
	y := make([]float64, 0, n)
	dd := make([]time.Time, 0, n)
	index := make([]int, 0, n)
	for i := 0; i < n; i++ {
		row := make([]float64, len(kept))
		for j, slot := range kept {
			row[j] = cols[slot][i]
		}
		if mlmath.HasNaN(row) {
			continue
		}
		x = append(x, row)
		y = append(y, close[i])
		dd = append(dd, dates[i])
		index = append(index, i)
	}

	if len(x) < MinRows {
		return Matrix{}, fmt.Errorf("%d usable rows after warm-up, need at least %d: %w",
			len(x), MinRows, model.ErrInsufficientData)
	}

	return Matrix{
		X:      x,
		Y:      y,
		Dates:  dd,
		Index:  index,
		Schema: kept,
		Total:  n,
	}, nil
}

func buildColumns(close, volume []float64, dates []time.Time) map[Slot][]float64 {
	n := len(close)
	cols := make(map[Slot][]float64, len(slotNames))

	cols[Lag1] = Shift(close, 1)
	cols[Lag2] = Shift(close, 2)
	cols[Lag3] = Shift(close, 3)
	cols[Lag5] = Shift(close, 5)
	cols[Lag10] = Shift(close, 10)

	cols[RollMean5] = Shift(RollMean(close, 5), 1)
	cols[RollMean10] = Shift(RollMean(close, 10), 1)
	cols[RollMean20] = Shift(RollMean(close, 20), 1)
	cols[RollStd5] = Shift(RollStd(close, 5), 1)
	cols[RollStd20] = Shift(RollStd(close, 20), 1)

	cols[Momentum5] = Shift(momentum(close, 5), 1)
	cols[Momentum10] = Shift(momentum(close, 10), 1)
	cols[Momentum20] = Shift(momentum(close, 20), 1)

	cols[VolumeMA5] = Shift(RollMean(volume, 5), 1)
	cols[VolumeRatio] = Shift(volumeRatio(volume, 20), 1)

	cols[RSI14] = Shift(RSI(close, 14), 1)
	line, _, hist := MACD(close, 12, 26, 9)
	cols[MACDHist] = Shift(hist, 1)
	cols[MACDLine] = Shift(line, 1)
	cols[BBPosition] = Shift(bbPosition(close, 20, 2), 1)

	dow := make([]float64, n)
	month := make([]float64, n)
	for i, d := range dates {
		dow[i], month[i] = Calendar(d)
	}
	cols[DayOfWeek] = dow
	cols[Month] = month

	return cols
}

// momentum is the relative change of the close against its value k periods back.
func momentum(xs []float64, k int) []float64 {
	out := make([]float64, len(xs))
	for i := range xs {
		if i < k || xs[i-k] == 0 {
			out[i] = math.NaN()
			continue
		}
		out[i] = xs[i]/xs[i-k] - 1
	}
	return out
}

// volumeRatio is the volume relative to its trailing mean,
// NaN when the trailing mean is zero.
func volumeRatio(vv []float64, window int) []float64 {
	mean := RollMean(vv, window)
	out := make([]float64, len(vv))
	for i := range vv {
		if math.IsNaN(mean[i]) || mean[i] == 0 {
			out[i] = math.NaN()
			continue
		}
		out[i] = vv[i] / mean[i]
	}
	return out
}

func allNaN(xs []float64) bool {
	for _, x := range xs {
		if !math.IsNaN(x) {
			return false
		}
	}
	return true
}
