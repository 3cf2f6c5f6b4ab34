package analysis

import (
	"fmt"
	"math"

	"github.com/marketlens/marketlens/internal/feature"
	mlmath "github.com/marketlens/marketlens/internal/math"
	"github.com/marketlens/marketlens/internal/model"
)

// minBars is the minimum series length for signal computation.
const minBars = 50

// Trend is the market strength read against the 50-day average.
type Trend string

// Signal is the moving-average crossover action.
type Signal string

// RSIState buckets the relative strength index.
type RSIState string

const (
	Bullish Trend = "bullish"
	Bearish Trend = "bearish"

	Buy  Signal = "BUY"
	Sell Signal = "SELL"
	Hold Signal = "HOLD"

	Oversold   RSIState = "oversold"
	Overbought RSIState = "overbought"
	Neutral    RSIState = "neutral"
)

// Bands is a Bollinger band snapshot.
type Bands struct {
	Upper  float64 `json:"upper"`
	Middle float64 `json:"middle"`
	Lower  float64 `json:"lower"`
}

// Report is the consolidated signal snapshot for the latest bar.
type Report struct {
	Last     float64 `json:"last"`
	Prev     float64 `json:"prev"`
	Change1D float64 `json:"change_1d"`
	Change1W float64 `json:"change_1w"`
	MA20     float64 `json:"ma20"`
	MA50     float64 `json:"ma50"`
	// MA200 is NaN when the series is shorter than 200 bars.
	MA200     model.Float `json:"ma200"`
	RSI       model.Float `json:"rsi"`
	Strength  Trend       `json:"strength"`
	Crossover Signal      `json:"crossover"`
	RSIState  RSIState    `json:"rsi_state"`
	Bollinger Bands       `json:"bollinger"`
}

// Signals computes the consolidated indicator snapshot for the series.
// Fails with ErrInsufficientData below 50 bars.
func Signals(series model.PriceSeries) (Report, error) {
	n := series.Len()
	if n < minBars {
		return Report{}, fmt.Errorf("%d bars, need at least %d for signals: %w",
			n, minBars, model.ErrInsufficientData)
	}

	closes := series.Closes()
	ma20 := feature.RollMean(closes, 20)
	ma50 := feature.RollMean(closes, 50)
	rsi := feature.RSI(closes, 14)
	upper, middle, lower := feature.Bollinger(closes, 20, 2)

	last := closes[n-1]
	prev := closes[n-2]
	weekAgo := prev
	if n >= 6 {
		weekAgo = closes[n-6]
	}

	report := Report{
		Last:     last,
		Prev:     prev,
		Change1D: mlmath.PctChange(prev, last),
		Change1W: mlmath.PctChange(weekAgo, last),
		MA20:     ma20[n-1],
		MA50:     ma50[n-1],
		MA200:    model.Float(math.NaN()),
		RSI:      model.Float(rsi[n-1]),
		Bollinger: Bands{
			Upper:  upper[n-1],
			Middle: middle[n-1],
			Lower:  lower[n-1],
		},
	}
	if n >= 200 {
		report.MA200 = model.Float(feature.RollMean(closes, 200)[n-1])
	}

	report.Strength = Bearish
	if last > ma50[n-1] {
		report.Strength = Bullish
	}

	report.Crossover = crossover(ma20[n-2], ma20[n-1], ma50[n-2], ma50[n-1])
	report.RSIState = rsiState(rsi[n-1])

	return report, nil
}

func crossover(ma20Prev, ma20, ma50Prev, ma50 float64) Signal {
	switch {
	case ma20 > ma50 && ma20Prev <= ma50Prev:
		return Buy
	case ma20 < ma50 && ma20Prev >= ma50Prev:
		return Sell
	default:
		return Hold
	}
}

func rsiState(rsi float64) RSIState {
	switch {
	case rsi < 30:
		return Oversold
	case rsi > 70:
		return Overbought
	default:
		// NaN from a degenerate series lands here as well
		return Neutral
	}
}
