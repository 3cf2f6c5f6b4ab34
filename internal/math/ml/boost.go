package ml

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// BoostConfig holds the gradient boosting hyperparameters.
type BoostConfig struct {
	Stages       int     `json:"stages" yaml:"stages" default:"300"`
	LearningRate float64 `json:"learning_rate" yaml:"learning_rate" default:"0.05"`
	MaxDepth     int     `json:"max_depth" yaml:"max_depth" default:"4"`
	MinLeaf      int     `json:"min_leaf" yaml:"min_leaf" default:"1"`
	Seed         int64   `json:"seed" yaml:"seed" default:"42"`
}

// DefaultBoostConfig returns the default hyperparameters,
// 300 stages of depth-4 trees at learning rate 0.05.
func DefaultBoostConfig() BoostConfig {
	return BoostConfig{Stages: 300, LearningRate: 0.05, MaxDepth: 4, MinLeaf: 1, Seed: 42}
}

// GradientBoosting is a stage-wise additive ensemble of regression trees
// fitted on the running residuals.
type GradientBoosting struct {
	cfg         BoostConfig
	init        float64
	trees       []*tree
	importances []float64
}

// NewGradientBoosting creates an unfitted booster.
func NewGradientBoosting(cfg BoostConfig) *GradientBoosting {
	return &GradientBoosting{cfg: cfg}
}

// Fit trains the stages sequentially on the residuals of the previous ones.
func (gb *GradientBoosting) Fit(x [][]float64, y []float64) error {
	if len(x) == 0 || len(x) != len(y) {
		return fmt.Errorf("cannot fit booster on %d rows and %d targets", len(x), len(y))
	}
	n := len(x)
	gb.init = stat.Mean(y, nil)
	gb.trees = make([]*tree, 0, gb.cfg.Stages)
	gb.importances = make([]float64, len(x[0]))
	tc := treeConfig{maxDepth: gb.cfg.MaxDepth, minLeaf: gb.cfg.MinLeaf}

	idx := make([]int, n)
	residual := make([]float64, n)
	for i := range idx {
		idx[i] = i
		residual[i] = y[i] - gb.init
	}

	for s := 0; s < gb.cfg.Stages; s++ {
		t := growTree(x, residual, idx, tc, gb.importances)
		gb.trees = append(gb.trees, t)
		for i := range residual {
			residual[i] -= gb.cfg.LearningRate * t.predict(x[i])
		}
	}
	normalise(gb.importances)
	return nil
}

// Predict sums the shrunk stage predictions on top of the base value.
func (gb *GradientBoosting) Predict(row []float64) float64 {
	out := gb.init
	for _, t := range gb.trees {
		out += gb.cfg.LearningRate * t.predict(row)
	}
	return out
}

// Importances returns the normalised impurity-decrease importance per feature.
func (gb *GradientBoosting) Importances() []float64 {
	return gb.importances
}
