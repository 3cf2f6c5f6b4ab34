package model

import (
	"errors"
	"strings"
)

var (
	// ErrInsufficientData marks a series that is too short to support the requested computation.
	ErrInsufficientData = errors.New("insufficient data")
	// ErrFitFailure marks a regressor that could not be fitted on the given data.
	ErrFitFailure = errors.New("fit failure")
)

// Model enumerates the supported regression model families.
type Model int

const (
	RandomForest Model = iota
	GradientBoosting
	Ridge
)

// ModelFromString parses a model selector.
// Unrecognised selectors fall back to RandomForest,
// the second return value reports whether the selector was known.
func ModelFromString(s string) (Model, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "random-forest", "random_forest", "randomforest", "rf":
		return RandomForest, true
	case "gradient-boosting", "gradient_boosting", "gradientboosting", "gb":
		return GradientBoosting, true
	case "ridge", "linear", "linear-regression":
		return Ridge, true
	}
	return RandomForest, false
}

func (m Model) String() string {
	switch m {
	case GradientBoosting:
		return "gradient-boosting"
	case Ridge:
		return "ridge"
	default:
		return "random-forest"
	}
}
