package ml

import (
	"fmt"
	"math/rand"
)

// ForestConfig holds the random forest hyperparameters.
type ForestConfig struct {
	Trees    int   `json:"trees" yaml:"trees" default:"300"`
	MaxDepth int   `json:"max_depth" yaml:"max_depth" default:"10"`
	MinLeaf  int   `json:"min_leaf" yaml:"min_leaf" default:"3"`
	Seed     int64 `json:"seed" yaml:"seed" default:"42"`
}

// DefaultForestConfig returns the default hyperparameters,
// 300 bootstrapped trees of depth 10 with at least 3 samples per leaf.
func DefaultForestConfig() ForestConfig {
	return ForestConfig{Trees: 300, MaxDepth: 10, MinLeaf: 3, Seed: 42}
}

// RandomForest is a bagged ensemble of regression trees.
type RandomForest struct {
	cfg         ForestConfig
	trees       []*tree
	importances []float64
}

// NewRandomForest creates an unfitted forest.
func NewRandomForest(cfg ForestConfig) *RandomForest {
	return &RandomForest{cfg: cfg}
}

// Fit trains the ensemble on bootstrap samples of the data.
func (rf *RandomForest) Fit(x [][]float64, y []float64) error {
	if len(x) == 0 || len(x) != len(y) {
		return fmt.Errorf("cannot fit forest on %d rows and %d targets", len(x), len(y))
	}
	n := len(x)
	rng := rand.New(rand.NewSource(rf.cfg.Seed))
	tc := treeConfig{maxDepth: rf.cfg.MaxDepth, minLeaf: rf.cfg.MinLeaf}

	rf.trees = make([]*tree, rf.cfg.Trees)
	rf.importances = make([]float64, len(x[0]))
	for t := 0; t < rf.cfg.Trees; t++ {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = rng.Intn(n)
		}
		rf.trees[t] = growTree(x, y, idx, tc, rf.importances)
	}
	normalise(rf.importances)
	return nil
}

// Predict averages the tree predictions for the row.
func (rf *RandomForest) Predict(row []float64) float64 {
	var sum float64
	for _, t := range rf.trees {
		sum += t.predict(row)
	}
	return sum / float64(len(rf.trees))
}

// Importances returns the normalised impurity-decrease importance per feature.
func (rf *RandomForest) Importances() []float64 {
	return rf.importances
}

func normalise(ff []float64) {
	var sum float64
	for _, f := range ff {
		sum += f
	}
	if sum == 0 {
		return
	}
	for i := range ff {
		ff[i] /= sum
	}
}
