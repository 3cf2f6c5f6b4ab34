package math

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/stat"
)

// Format formats a float based on the given precision
func Format(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// RMSE is the root mean squared error of the predictions.
func RMSE(actual, pred []float64) float64 {
	var sum float64
	for i := range actual {
		d := actual[i] - pred[i]
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(actual)))
}

// MAE is the mean absolute error of the predictions.
func MAE(actual, pred []float64) float64 {
	var sum float64
	for i := range actual {
		sum += math.Abs(actual[i] - pred[i])
	}
	return sum / float64(len(actual))
}

// R2 is the coefficient of determination of the predictions.
// A constant actual series scores 1 when matched exactly and 0 otherwise.
func R2(actual, pred []float64) float64 {
	mean := stat.Mean(actual, nil)
	var res, tot float64
	for i := range actual {
		d := actual[i] - pred[i]
		res += d * d
		t := actual[i] - mean
		tot += t * t
	}
	if tot == 0 {
		if res == 0 {
			return 1
		}
		return 0
	}
	return 1 - res/tot
}

// PctChange is the relative change from a to b in percent.
func PctChange(a, b float64) float64 {
	if a == 0 {
		return math.NaN()
	}
	return (b - a) / a * 100
}

// HasNaN reports whether the slice contains an undefined value.
func HasNaN(ff []float64) bool {
	for _, f := range ff {
		if math.IsNaN(f) {
			return true
		}
	}
	return false
}
