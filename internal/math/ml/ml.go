package ml

// Regressor is a single-output regression model over float feature rows.
type Regressor interface {
	Fit(x [][]float64, y []float64) error
	Predict(row []float64) float64
}

// Importer exposes native per-feature importance scores.
// Only the tree ensembles implement it.
type Importer interface {
	Importances() []float64
}

// PredictBatch runs the regressor over all rows.
func PredictBatch(r Regressor, x [][]float64) []float64 {
	out := make([]float64, len(x))
	for i, row := range x {
		out[i] = r.Predict(row)
	}
	return out
}
