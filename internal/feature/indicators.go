package feature

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// The indicator functions operate on the full close series and propagate
// NaN for positions with insufficient history, so that a later shift keeps
// the undefined region intact instead of fabricating warm-up values.

// Shift moves the series k positions forward, padding the head with NaN.
func Shift(xs []float64, k int) []float64 {
	out := make([]float64, len(xs))
	for i := range out {
		if i < k {
			out[i] = math.NaN()
			continue
		}
		out[i] = xs[i-k]
	}
	return out
}

// RollMean is the trailing mean over the given window.
func RollMean(xs []float64, window int) []float64 {
	out := make([]float64, len(xs))
	for i := range out {
		if i < window-1 {
			out[i] = math.NaN()
			continue
		}
		out[i] = stat.Mean(xs[i-window+1:i+1], nil)
	}
	return out
}

// RollStd is the trailing sample standard deviation over the given window.
func RollStd(xs []float64, window int) []float64 {
	out := make([]float64, len(xs))
	for i := range out {
		if i < window-1 {
			out[i] = math.NaN()
			continue
		}
		out[i] = stat.StdDev(xs[i-window+1:i+1], nil)
	}
	return out
}

// EMA is the exponential moving average with smoothing 2/(span+1),
// seeded on the first value.
func EMA(xs []float64, span int) []float64 {
	out := make([]float64, len(xs))
	if len(xs) == 0 {
		return out
	}
	alpha := 2 / float64(span+1)
	out[0] = xs[0]
	for i := 1; i < len(xs); i++ {
		out[i] = alpha*xs[i] + (1-alpha)*out[i-1]
	}
	return out
}

// RSI is the relative strength index over trailing simple averages of the
// gains and losses. A zero loss average yields NaN rather than a
// divide-by-zero.
func RSI(xs []float64, period int) []float64 {
	n := len(xs)
	gains := make([]float64, n)
	losses := make([]float64, n)
	if n > 0 {
		gains[0] = math.NaN()
		losses[0] = math.NaN()
	}
	for i := 1; i < n; i++ {
		delta := xs[i] - xs[i-1]
		gains[i] = math.Max(delta, 0)
		losses[i] = math.Max(-delta, 0)
	}
	gainMean := RollMean(gains, period)
	lossMean := RollMean(losses, period)

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		if math.IsNaN(lossMean[i]) || lossMean[i] == 0 {
			out[i] = math.NaN()
			continue
		}
		rs := gainMean[i] / lossMean[i]
		out[i] = 100 - 100/(1+rs)
	}
	return out
}

// MACD returns the moving average convergence divergence line,
// its signal line and their difference.
func MACD(xs []float64, fast, slow, signalSpan int) (line, signal, hist []float64) {
	emaFast := EMA(xs, fast)
	emaSlow := EMA(xs, slow)
	line = make([]float64, len(xs))
	for i := range line {
		line[i] = emaFast[i] - emaSlow[i]
	}
	signal = EMA(line, signalSpan)
	hist = make([]float64, len(xs))
	for i := range hist {
		hist[i] = line[i] - signal[i]
	}
	return line, signal, hist
}

// Bollinger returns the upper, middle and lower bands over the period.
func Bollinger(xs []float64, period int, width float64) (upper, middle, lower []float64) {
	middle = RollMean(xs, period)
	sd := RollStd(xs, period)
	upper = make([]float64, len(xs))
	lower = make([]float64, len(xs))
	for i := range xs {
		upper[i] = middle[i] + width*sd[i]
		lower[i] = middle[i] - width*sd[i]
	}
	return upper, middle, lower
}

// bbPosition is the close position relative to the band width,
// NaN when the band has collapsed to zero width.
func bbPosition(xs []float64, period int, width float64) []float64 {
	middle := RollMean(xs, period)
	sd := RollStd(xs, period)
	out := make([]float64, len(xs))
	for i := range xs {
		if math.IsNaN(sd[i]) || sd[i] == 0 {
			out[i] = math.NaN()
			continue
		}
		out[i] = (xs[i] - middle[i]) / (width * sd[i])
	}
	return out
}
