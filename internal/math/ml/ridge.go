package ml

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// RidgeConfig holds the regularised linear model hyperparameters.
type RidgeConfig struct {
	Alpha float64 `json:"alpha" yaml:"alpha" default:"1.0"`
}

// DefaultRidgeConfig returns the default L2 penalty.
func DefaultRidgeConfig() RidgeConfig {
	return RidgeConfig{Alpha: 1.0}
}

// Ridge is a linear regressor with an L2 penalty on the weights.
// The intercept is not penalised, the solve runs on centred columns.
type Ridge struct {
	cfg       RidgeConfig
	weights   []float64
	intercept float64
}

// NewRidge creates an unfitted ridge regressor.
func NewRidge(cfg RidgeConfig) *Ridge {
	return &Ridge{cfg: cfg}
}

// Fit solves the regularised normal equations.
func (r *Ridge) Fit(x [][]float64, y []float64) error {
	if len(x) == 0 || len(x) != len(y) {
		return fmt.Errorf("cannot fit ridge on %d rows and %d targets", len(x), len(y))
	}
	n := len(x)
	p := len(x[0])

	colMean := make([]float64, p)
	col := make([]float64, n)
	for j := 0; j < p; j++ {
		for i := 0; i < n; i++ {
			col[i] = x[i][j]
		}
		colMean[j] = stat.Mean(col, nil)
	}
	yMean := stat.Mean(y, nil)

	xc := mat.NewDense(n, p, nil)
	yc := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < p; j++ {
			xc.Set(i, j, x[i][j]-colMean[j])
		}
		yc.SetVec(i, y[i]-yMean)
	}

	// X'X + alpha*I
	var gram mat.Dense
	gram.Mul(xc.T(), xc)
	for j := 0; j < p; j++ {
		gram.Set(j, j, gram.At(j, j)+r.cfg.Alpha)
	}
	var rhs mat.VecDense
	rhs.MulVec(xc.T(), yc)

	var w mat.VecDense
	if err := w.SolveVec(&gram, &rhs); err != nil {
		return fmt.Errorf("could not solve ridge system: %w", err)
	}

	r.weights = make([]float64, p)
	r.intercept = yMean
	for j := 0; j < p; j++ {
		r.weights[j] = w.AtVec(j)
		r.intercept -= r.weights[j] * colMean[j]
	}
	return nil
}

// Predict evaluates the linear model on the row.
func (r *Ridge) Predict(row []float64) float64 {
	out := r.intercept
	for j, w := range r.weights {
		out += w * row[j]
	}
	return out
}
