package analysis

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	mlmath "github.com/marketlens/marketlens/internal/math"
	"github.com/marketlens/marketlens/internal/model"
)

// tradingDays is the annualisation basis for volatility and Sharpe.
const tradingDays = 252

// Performance is the comparison summary for one ticker.
type Performance struct {
	Ticker        string  `json:"ticker"`
	TotalReturn   float64 `json:"total_return"`
	MonthReturn   float64 `json:"month_return"`
	WeekReturn    float64 `json:"week_return"`
	AnnVolatility float64 `json:"ann_volatility"`
	Sharpe        float64 `json:"sharpe"`
	Current       float64 `json:"current"`
}

// Returns normalises the series to a base-100 relative return curve.
func Returns(closes []float64) []float64 {
	out := make([]float64, len(closes))
	if len(closes) == 0 || closes[0] == 0 {
		return out
	}
	for i, c := range closes {
		out[i] = c / closes[0] * 100
	}
	return out
}

// Measure computes the performance summary over the whole series.
func Measure(ticker string, closes []float64) (Performance, error) {
	n := len(closes)
	if n < 2 {
		return Performance{}, fmt.Errorf("%d closes for %s: %w",
			n, ticker, model.ErrInsufficientData)
	}

	rr := dailyReturns(closes)
	vol := stat.StdDev(rr, nil)
	sharpe := 0.0
	if vol > 0 {
		sharpe = stat.Mean(rr, nil) * tradingDays / (vol * math.Sqrt(tradingDays))
	}

	monthIdx := n - min(30, n)
	weekIdx := n - min(5, n)

	return Performance{
		Ticker:        ticker,
		TotalReturn:   mlmath.PctChange(closes[0], closes[n-1]),
		MonthReturn:   mlmath.PctChange(closes[monthIdx], closes[n-1]),
		WeekReturn:    mlmath.PctChange(closes[weekIdx], closes[n-1]),
		AnnVolatility: vol * math.Sqrt(tradingDays) * 100,
		Sharpe:        sharpe,
		Current:       closes[n-1],
	}, nil
}

// Correlation is the pairwise Pearson correlation of daily returns,
// aligned on the trailing overlap of the given series.
func Correlation(tickers []string, closes map[string][]float64) ([][]float64, error) {
	if len(tickers) == 0 {
		return nil, fmt.Errorf("no tickers given")
	}
	overlap := math.MaxInt
	for _, t := range tickers {
		cc, ok := closes[t]
		if !ok {
			return nil, fmt.Errorf("no closes for %s", t)
		}
		if len(cc) < overlap {
			overlap = len(cc)
		}
	}
	if overlap < 3 {
		return nil, fmt.Errorf("overlap of %d closes: %w", overlap, model.ErrInsufficientData)
	}

	returns := make([][]float64, len(tickers))
	for i, t := range tickers {
		cc := closes[t]
		returns[i] = dailyReturns(cc[len(cc)-overlap:])
	}

	matrix := make([][]float64, len(tickers))
	for i := range tickers {
		matrix[i] = make([]float64, len(tickers))
		for j := range tickers {
			if i == j {
				matrix[i][j] = 1
				continue
			}
			matrix[i][j] = stat.Correlation(returns[i], returns[j], nil)
		}
	}
	return matrix, nil
}

func dailyReturns(closes []float64) []float64 {
	rr := make([]float64, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i-1] == 0 {
			rr[i-1] = 0
			continue
		}
		rr[i-1] = closes[i]/closes[i-1] - 1
	}
	return rr
}
