package ml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRidge_Fit(t *testing.T) {
	// y = 2x + 1, the penalty barely shrinks a well-spread design
	x := make([][]float64, 0, 50)
	y := make([]float64, 0, 50)
	for i := 0; i < 50; i++ {
		v := float64(i)
		x = append(x, []float64{v})
		y = append(y, 2*v+1)
	}

	r := NewRidge(DefaultRidgeConfig())
	require.NoError(t, r.Fit(x, y))

	assert.InDelta(t, 21.0, r.Predict([]float64{10}), 0.1)
	assert.InDelta(t, 81.0, r.Predict([]float64{40}), 0.1)
	// a linear model extrapolates past the training range
	assert.InDelta(t, 201.0, r.Predict([]float64{100}), 1.0)
}

func TestRidge_TwoFeatures(t *testing.T) {
	// y = 3a - b + 2
	x := make([][]float64, 0, 60)
	y := make([]float64, 0, 60)
	for i := 0; i < 60; i++ {
		a := float64(i % 10)
		b := float64(i % 7)
		x = append(x, []float64{a, b})
		y = append(y, 3*a-b+2)
	}

	r := NewRidge(RidgeConfig{Alpha: 1e-6})
	require.NoError(t, r.Fit(x, y))

	assert.InDelta(t, 3.0, r.weights[0], 1e-3)
	assert.InDelta(t, -1.0, r.weights[1], 1e-3)
	assert.InDelta(t, 2.0, r.intercept, 1e-2)
}

func TestRidge_FitErrors(t *testing.T) {
	r := NewRidge(DefaultRidgeConfig())
	assert.Error(t, r.Fit(nil, nil))
	assert.Error(t, r.Fit([][]float64{{1}}, []float64{1, 2}))
}
