package forecast

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/stat"

	"github.com/marketlens/marketlens/internal/feature"
	mlmath "github.com/marketlens/marketlens/internal/math"
	"github.com/marketlens/marketlens/internal/math/ml"
	"github.com/marketlens/marketlens/internal/model"
)

// Run trains the selected model on the series and forecasts Horizon business
// days ahead. The engine is stateless, every invocation owns its own scalers
// and fitted model.
func Run(series model.PriceSeries, cfg Config) (*model.ForecastResult, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	m, err := feature.Build(series)
	if err != nil {
		return nil, fmt.Errorf("could not build features: %w", err)
	}

	scalerX := ml.NewMinMaxScaler().Fit(m.X)
	scalerY := ml.NewMinMaxScaler().FitSeries(m.Y)
	xs := scalerX.Transform(m.X)
	ys := scalerY.TransformSeries(m.Y)

	cvRMSE, err := crossValidate(cfg, xs, ys, scalerY, m.Y)
	if err != nil {
		return nil, err
	}

	reg := newRegressor(cfg)
	if err := reg.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf("could not fit %s: %s: %w", cfg.Model, err, model.ErrFitFailure)
	}

	preds := scalerY.InverseSeries(ml.PredictBatch(reg, xs))

	inSample := make(model.Series, m.Total)
	for i := range inSample {
		inSample[i] = math.NaN()
	}
	for r, i := range m.Index {
		inSample[i] = preds[r]
	}

	// headline metrics on the chronological tail, scored with the final model
	split := int(float64(len(m.Y)) * (1 - cfg.HoldOut))
	rmse := mlmath.RMSE(m.Y[split:], preds[split:])
	mae := mlmath.MAE(m.Y[split:], preds[split:])
	r2 := mlmath.R2(m.Y[split:], preds[split:])

	futureDates := BusinessDays(series.Last().Date, cfg.Horizon)
	futurePrices := rollout(reg, scalerX, scalerY, m, series.Closes(), futureDates)

	var importances []float64
	if imp, ok := reg.(ml.Importer); ok {
		importances = imp.Importances()
	}

	log.Info().
		Str("model", cfg.Model.String()).
		Int("rows", len(m.Y)).
		Int("horizon", cfg.Horizon).
		Float64("rmse", rmse).
		Float64("cv_rmse", cvRMSE).
		Msg("forecast complete")

	return &model.ForecastResult{
		Model:        cfg.Model,
		ModelName:    cfg.Model.String(),
		Horizon:      cfg.Horizon,
		FutureDates:  futureDates,
		FuturePrices: futurePrices,
		InSample:     inSample,
		RMSE:         rmse,
		MAE:          mae,
		R2:           r2,
		CVRMSE:       cvRMSE,
		FeatureNames: m.Schema.Names(),
		Importances:  importances,
	}, nil
}

func newRegressor(cfg Config) ml.Regressor {
	switch cfg.Model {
	case model.GradientBoosting:
		return ml.NewGradientBoosting(cfg.GradientBoosting)
	case model.Ridge:
		return ml.NewRidge(cfg.Ridge)
	default:
		return ml.NewRandomForest(cfg.RandomForest)
	}
}

// fold is an expanding-window split, training on [0,trainEnd) and
// validating on [trainEnd,valEnd).
type fold struct {
	trainEnd int
	valEnd   int
}

// timeSeriesSplit lays out k sequential folds where every validation block
// is strictly later than its training block.
func timeSeriesSplit(n, k int) []fold {
	testSize := n / (k + 1)
	if testSize == 0 {
		return nil
	}
	folds := make([]fold, 0, k)
	for i := 0; i < k; i++ {
		valEnd := n - (k-1-i)*testSize
		folds = append(folds, fold{trainEnd: valEnd - testSize, valEnd: valEnd})
	}
	return folds
}

// crossValidate reports the mean validation RMSE over the expanding-window
// folds, in price units. Returns zero when the series is too short to fold.
func crossValidate(cfg Config, xs [][]float64, ys []float64,
	scalerY *ml.MinMaxScaler, yRaw []float64) (float64, error) {

	folds := timeSeriesSplit(len(xs), cfg.Folds)
	if len(folds) == 0 {
		return 0, nil
	}
	errs := make([]float64, 0, len(folds))
	for _, f := range folds {
		reg := newRegressor(cfg)
		if err := reg.Fit(xs[:f.trainEnd], ys[:f.trainEnd]); err != nil {
			return 0, fmt.Errorf("could not fit fold: %s: %w", err, model.ErrFitFailure)
		}
		pred := scalerY.InverseSeries(ml.PredictBatch(reg, xs[f.trainEnd:f.valEnd]))
		errs = append(errs, mlmath.RMSE(yRaw[f.trainEnd:f.valEnd], pred))
	}
	return stat.Mean(errs, nil), nil
}
