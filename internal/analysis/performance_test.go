package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketlens/marketlens/internal/model"
)

func TestReturns(t *testing.T) {
	out := Returns([]float64{50, 55, 60})
	assert.Equal(t, 100.0, out[0])
	assert.InDelta(t, 110.0, out[1], 1e-12)
	assert.InDelta(t, 120.0, out[2], 1e-12)

	assert.Equal(t, []float64{}, Returns([]float64{}))
}

func TestMeasure(t *testing.T) {
	type test struct {
		closes []float64
		want   func(t *testing.T, p Performance)
	}

	doubled := make([]float64, 100)
	for i := range doubled {
		doubled[i] = 100 * (1 + float64(i)/99)
	}
	flat := make([]float64, 100)
	for i := range flat {
		flat[i] = 100
	}

	tests := map[string]test{
		"doubled": {
			closes: doubled,
			want: func(t *testing.T, p Performance) {
				assert.InDelta(t, 100.0, p.TotalReturn, 1e-9)
				assert.Greater(t, p.WeekReturn, 0.0)
				assert.Greater(t, p.Sharpe, 0.0)
				assert.Equal(t, 200.0, p.Current)
			},
		},
		"flat": {
			closes: flat,
			want: func(t *testing.T, p Performance) {
				assert.Equal(t, 0.0, p.TotalReturn)
				assert.Equal(t, 0.0, p.AnnVolatility)
				assert.Equal(t, 0.0, p.Sharpe)
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p, err := Measure("test", tt.closes)
			require.NoError(t, err)
			assert.Equal(t, "test", p.Ticker)
			tt.want(t, p)
		})
	}
}

func TestMeasure_InsufficientData(t *testing.T) {
	_, err := Measure("test", []float64{100})
	assert.ErrorIs(t, err, model.ErrInsufficientData)
}

func TestCorrelation(t *testing.T) {
	a := make([]float64, 50)
	b := make([]float64, 60)
	c := make([]float64, 50)
	for i := range b {
		b[i] = 100 + 0.5*float64(i) + 3*float64(i%2)
	}
	for i := range a {
		a[i] = b[i+10] // same returns on the trailing overlap
		c[i] = 1e5 / a[i]
	}

	tickers := []string{"a", "b", "c"}
	matrix, err := Correlation(tickers, map[string][]float64{"a": a, "b": b, "c": c})
	require.NoError(t, err)
	require.Equal(t, 3, len(matrix))

	for i := range matrix {
		assert.Equal(t, 1.0, matrix[i][i])
	}
	assert.InDelta(t, 1.0, matrix[0][1], 1e-9)
	assert.InDelta(t, matrix[0][1], matrix[1][0], 1e-9)
	assert.Less(t, matrix[0][2], 0.0)
}

func TestCorrelation_Errors(t *testing.T) {
	_, err := Correlation(nil, nil)
	assert.Error(t, err)

	_, err = Correlation([]string{"a"}, map[string][]float64{})
	assert.Error(t, err)

	_, err = Correlation([]string{"a"}, map[string][]float64{"a": {1, 2}})
	assert.ErrorIs(t, err, model.ErrInsufficientData)
}
