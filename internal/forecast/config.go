package forecast

import (
	"fmt"

	"github.com/marketlens/marketlens/internal/math/ml"
	"github.com/marketlens/marketlens/internal/model"
)

// Config drives a single forecast request.
// Hyperparameters carry explicit documented defaults so alternate
// configurations are testable without code changes.
type Config struct {
	Model   model.Model
	Horizon int
	// Folds for the expanding-window cross validation.
	Folds int
	// HoldOut is the chronological tail fraction scored for the headline metrics.
	HoldOut          float64
	RandomForest     ml.ForestConfig
	GradientBoosting ml.BoostConfig
	Ridge            ml.RidgeConfig
}

// NewConfig creates a config with the default hyperparameters.
func NewConfig(m model.Model, horizon int) Config {
	return Config{
		Model:            m,
		Horizon:          horizon,
		Folds:            5,
		HoldOut:          0.2,
		RandomForest:     ml.DefaultForestConfig(),
		GradientBoosting: ml.DefaultBoostConfig(),
		Ridge:            ml.DefaultRidgeConfig(),
	}
}

func (c Config) validate() error {
	if c.Horizon <= 0 {
		return fmt.Errorf("horizon must be positive, got %d", c.Horizon)
	}
	if c.HoldOut <= 0 || c.HoldOut >= 1 {
		return fmt.Errorf("hold-out fraction must be in (0,1), got %f", c.HoldOut)
	}
	return nil
}
