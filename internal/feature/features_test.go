package feature

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketlens/marketlens/internal/model"
)

func makeSeries(n int, close func(i int) float64) model.PriceSeries {
	start := time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)
	bars := make([]model.Bar, n)
	for i := range bars {
		bars[i] = model.Bar{
			Date:   start.AddDate(0, 0, i),
			Close:  close(i),
			Volume: 1e6 + 1000*float64(i),
		}
	}
	s, err := model.NewPriceSeries(bars)
	if err != nil {
		panic(err)
	}
	return s
}

func zigzag(i int) float64 {
	return 100 + 0.5*float64(i) + 3*float64(i%2)
}

func TestBuild(t *testing.T) {
	n := 120
	m, err := Build(makeSeries(n, zigzag))
	require.NoError(t, err)

	// the longest shifted look-back wins the warm-up
	assert.Equal(t, 21, m.Warmup())
	assert.Equal(t, n-21, len(m.X))
	assert.Equal(t, len(m.X), len(m.Y))
	assert.Equal(t, len(m.X), len(m.Dates))
	assert.Equal(t, len(m.X), len(m.Index))
	assert.Equal(t, n, m.Total)

	assert.Equal(t, DefaultSchema(), m.Schema)
	for _, row := range m.X {
		assert.Equal(t, len(m.Schema), len(row))
		assert.False(t, hasNaN(row))
	}

	// target is the close of the same row
	closes := makeSeries(n, zigzag).Closes()
	for r, i := range m.Index {
		assert.Equal(t, closes[i], m.Y[r])
	}
}

func TestBuild_Causality(t *testing.T) {
	n := 120
	cut := 100

	base, err := Build(makeSeries(n, zigzag))
	require.NoError(t, err)

	// rewriting the tail of the series must not touch earlier feature rows
	mutated, err := Build(makeSeries(n, func(i int) float64 {
		if i >= cut {
			return zigzag(i) * 3
		}
		return zigzag(i)
	}))
	require.NoError(t, err)

	for r, i := range base.Index {
		if i >= cut {
			break
		}
		assert.Equal(t, base.X[r], mutated.X[r], "row %d leaked future data", i)
		assert.Equal(t, base.Y[r], mutated.Y[r])
	}
}

func TestBuild_DegenerateColumns(t *testing.T) {
	m, err := Build(makeSeries(100, func(i int) float64 { return 50 }))
	require.NoError(t, err)

	// a flat series has no losses and no band width,
	// those columns vanish instead of wiping out every row
	assert.Equal(t, -1, m.Schema.Index(RSI14))
	assert.Equal(t, -1, m.Schema.Index(BBPosition))
	assert.GreaterOrEqual(t, m.Schema.Index(Lag1), 0)
	assert.Equal(t, 100-21, len(m.X))

	for _, row := range m.X {
		assert.False(t, hasNaN(row))
	}
}

func TestBuild_InsufficientData(t *testing.T) {
	type test struct {
		n int
	}

	tests := map[string]test{
		"empty":       {n: 0},
		"below-min":   {n: 20},
		"warmup-eats": {n: 30},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Build(makeSeries(tt.n, zigzag))
			assert.ErrorIs(t, err, model.ErrInsufficientData)
		})
	}
}

func TestSchema(t *testing.T) {
	s := DefaultSchema()
	assert.Equal(t, 21, len(s))
	assert.Equal(t, "lag_1", s.Names()[0])
	assert.Equal(t, "month", s.Names()[len(s)-1])
	assert.Equal(t, 0, s.Index(Lag1))
	assert.Equal(t, -1, Schema{Lag1, Lag2}.Index(Month))
}

func hasNaN(row []float64) bool {
	for _, v := range row {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}
