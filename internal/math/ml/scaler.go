package ml

// MinMaxScaler maps every column independently to [0,1].
// A constant column maps to 0 and inverts back to its constant value.
type MinMaxScaler struct {
	min []float64
	rng []float64
}

// NewMinMaxScaler creates an unfitted scaler.
func NewMinMaxScaler() *MinMaxScaler {
	return &MinMaxScaler{}
}

// Fit learns the per-column min and range.
func (s *MinMaxScaler) Fit(x [][]float64) *MinMaxScaler {
	if len(x) == 0 {
		return s
	}
	cols := len(x[0])
	s.min = make([]float64, cols)
	s.rng = make([]float64, cols)
	for j := 0; j < cols; j++ {
		lo, hi := x[0][j], x[0][j]
		for i := 1; i < len(x); i++ {
			v := x[i][j]
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		s.min[j] = lo
		s.rng[j] = hi - lo
	}
	return s
}

// Transform scales all rows.
func (s *MinMaxScaler) Transform(x [][]float64) [][]float64 {
	out := make([][]float64, len(x))
	for i, row := range x {
		out[i] = s.TransformRow(row)
	}
	return out
}

// TransformRow scales a single row.
func (s *MinMaxScaler) TransformRow(row []float64) []float64 {
	out := make([]float64, len(row))
	for j, v := range row {
		if s.rng[j] == 0 {
			out[j] = 0
			continue
		}
		out[j] = (v - s.min[j]) / s.rng[j]
	}
	return out
}

// InverseRow maps a scaled row back to the original units.
func (s *MinMaxScaler) InverseRow(row []float64) []float64 {
	out := make([]float64, len(row))
	for j, v := range row {
		out[j] = v*s.rng[j] + s.min[j]
	}
	return out
}

// FitSeries fits the scaler on a single column.
func (s *MinMaxScaler) FitSeries(y []float64) *MinMaxScaler {
	x := make([][]float64, len(y))
	for i, v := range y {
		x[i] = []float64{v}
	}
	return s.Fit(x)
}

// TransformSeries scales a single column.
func (s *MinMaxScaler) TransformSeries(y []float64) []float64 {
	out := make([]float64, len(y))
	for i, v := range y {
		out[i] = s.TransformRow([]float64{v})[0]
	}
	return out
}

// InverseValue maps one scaled value of a single-column scaler back.
func (s *MinMaxScaler) InverseValue(v float64) float64 {
	return v*s.rng[0] + s.min[0]
}

// InverseSeries maps a scaled column back to the original units.
func (s *MinMaxScaler) InverseSeries(y []float64) []float64 {
	out := make([]float64, len(y))
	for i, v := range y {
		out[i] = s.InverseValue(v)
	}
	return out
}
