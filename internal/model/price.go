package model

import (
	"fmt"
	"time"
)

// Bar is a single daily OHLCV entry.
// Only Close is required by the pipeline, Volume defaults to zero.
type Bar struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

// PriceSeries is a chronologically ordered sequence of daily bars.
type PriceSeries struct {
	Bars []Bar `json:"bars"`
}

// NewPriceSeries creates a series from the given bars,
// rejecting duplicate or out of order dates.
func NewPriceSeries(bars []Bar) (PriceSeries, error) {
	s := PriceSeries{Bars: bars}
	if err := s.Validate(); err != nil {
		return PriceSeries{}, err
	}
	return s, nil
}

// Validate checks that the bars are strictly ordered by date.
func (s PriceSeries) Validate() error {
	for i := 1; i < len(s.Bars); i++ {
		prev, cur := s.Bars[i-1].Date, s.Bars[i].Date
		if !cur.After(prev) {
			return fmt.Errorf("bars out of order at index %d: %s >= %s",
				i, prev.Format("2006-01-02"), cur.Format("2006-01-02"))
		}
	}
	return nil
}

// Len returns the number of bars.
func (s PriceSeries) Len() int {
	return len(s.Bars)
}

// Closes returns the close price column.
func (s PriceSeries) Closes() []float64 {
	cc := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		cc[i] = b.Close
	}
	return cc
}

// Volumes returns the volume column.
func (s PriceSeries) Volumes() []float64 {
	vv := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		vv[i] = b.Volume
	}
	return vv
}

// Dates returns the trading date column.
func (s PriceSeries) Dates() []time.Time {
	dd := make([]time.Time, len(s.Bars))
	for i, b := range s.Bars {
		dd[i] = b.Date
	}
	return dd
}

// Last returns the most recent bar.
func (s PriceSeries) Last() Bar {
	return s.Bars[len(s.Bars)-1]
}
