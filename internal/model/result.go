package model

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"time"
)

// Float is a scalar that marshals NaN as null.
type Float float64

// MarshalJSON renders NaN as null.
func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(v, 'f', -1, 64)), nil
}

// UnmarshalJSON maps null back to NaN.
func (f *Float) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = Float(math.NaN())
		return nil
	}
	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return err
	}
	*f = Float(v)
	return nil
}

// Series is a float column where undefined entries are NaN.
// It marshals NaN as null so result bundles survive json transport.
type Series []float64

// MarshalJSON renders NaN entries as null.
func (s Series) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBufferString("[")
	for i, v := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			buf.WriteString("null")
		} else {
			buf.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
		}
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// UnmarshalJSON maps null entries back to NaN.
func (s *Series) UnmarshalJSON(b []byte) error {
	var raw []*float64
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	out := make(Series, len(raw))
	for i, v := range raw {
		if v == nil {
			out[i] = math.NaN()
		} else {
			out[i] = *v
		}
	}
	*s = out
	return nil
}

// ForecastResult is the immutable output bundle of a forecast request.
type ForecastResult struct {
	Model        Model       `json:"-"`
	ModelName    string      `json:"model"`
	Horizon      int         `json:"horizon"`
	FutureDates  []time.Time `json:"future_dates"`
	FuturePrices []float64   `json:"future_prices"`
	// InSample is aligned index for index with the input table,
	// NaN for the warm-up rows.
	InSample     Series    `json:"in_sample"`
	RMSE         float64   `json:"rmse"`
	MAE          float64   `json:"mae"`
	R2           float64   `json:"r2"`
	CVRMSE       float64   `json:"cv_rmse,omitempty"`
	FeatureNames []string  `json:"feature_names"`
	Importances  []float64 `json:"importances,omitempty"`
}

// Band returns the fixed-width illustrative band around the forecast.
func (r ForecastResult) Band(pct float64) (upper, lower []float64) {
	upper = make([]float64, len(r.FuturePrices))
	lower = make([]float64, len(r.FuturePrices))
	for i, p := range r.FuturePrices {
		upper[i] = p * (1 + pct)
		lower[i] = p * (1 - pct)
	}
	return upper, lower
}
