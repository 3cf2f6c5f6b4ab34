package forecast

import (
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/marketlens/marketlens/internal/feature"
	"github.com/marketlens/marketlens/internal/math/ml"
)

// rollout produces the multi-step forecast by feeding each prediction back
// into the close history and reconstructing the next feature row from it.
// Errors compound over the horizon, that is the documented trade-off of
// forecasting arbitrarily far with a single-step model.
func rollout(reg ml.Regressor, scalerX, scalerY *ml.MinMaxScaler,
	m feature.Matrix, closes []float64, futureDates []time.Time) []float64 {

	history := append([]float64(nil), closes...)
	cur := append([]float64(nil), m.X[len(m.X)-1]...)

	out := make([]float64, 0, len(futureDates))
	for step := range futureDates {
		scaled := scalerX.TransformRow(cur)
		price := scalerY.InverseValue(reg.Predict(scaled))
		out = append(out, price)
		history = append(history, price)
		if step+1 < len(futureDates) {
			cur = NextRow(m.Schema, history, cur, futureDates[step+1])
		}
	}
	return out
}

// NextRow reconstructs the feature row for the rollout step at the given
// future date. The history already contains the latest predicted close.
// Lags, rolling stats and momentum are rebuilt from the history, calendar
// fields advance with the synthetic date, and the remaining indicator slots
// keep their last real value. Slots with insufficient history fall back to
// the latest close (neutral mean, zero momentum) instead of failing.
func NextRow(schema feature.Schema, history []float64, row []float64, date time.Time) []float64 {
	next := append([]float64(nil), row...)
	n := len(history)
	latest := history[n-1]

	set := func(slot feature.Slot, v float64) {
		if i := schema.Index(slot); i >= 0 {
			next[i] = v
		}
	}
	lag := func(k int) float64 {
		if n >= k {
			return history[n-k]
		}
		return latest
	}
	tail := func(k int) []float64 {
		if n < k {
			return history
		}
		return history[n-k:]
	}
	momentum := func(k int) float64 {
		if n > k && history[n-1-k] != 0 {
			return history[n-1]/history[n-1-k] - 1
		}
		return 0
	}

	set(feature.Lag1, lag(1))
	set(feature.Lag2, lag(2))
	set(feature.Lag3, lag(3))
	set(feature.Lag5, lag(5))
	set(feature.Lag10, lag(10))

	set(feature.RollMean5, stat.Mean(tail(5), nil))
	set(feature.RollMean10, stat.Mean(tail(10), nil))
	set(feature.RollMean20, stat.Mean(tail(20), nil))
	set(feature.RollStd5, stat.PopStdDev(tail(5), nil))
	set(feature.RollStd20, stat.PopStdDev(tail(20), nil))

	set(feature.Momentum5, momentum(5))
	set(feature.Momentum10, momentum(10))
	set(feature.Momentum20, momentum(20))

	dow, month := feature.Calendar(date)
	set(feature.DayOfWeek, dow)
	set(feature.Month, month)

	return next
}
