package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModelFromString(t *testing.T) {
	type test struct {
		in    string
		model Model
		known bool
	}

	tests := map[string]test{
		"canonical-rf":    {in: "random-forest", model: RandomForest, known: true},
		"underscore":      {in: "random_forest", known: true, model: RandomForest},
		"short-gb":        {in: "gb", model: GradientBoosting, known: true},
		"ridge":           {in: "ridge", model: Ridge, known: true},
		"linear-alias":    {in: "linear", model: Ridge, known: true},
		"case-and-spaces": {in: "  Gradient-Boosting ", model: GradientBoosting, known: true},
		"unknown":         {in: "prophet", model: RandomForest, known: false},
		"empty":           {in: "", model: RandomForest, known: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m, known := ModelFromString(tt.in)
			assert.Equal(t, tt.model, m)
			assert.Equal(t, tt.known, known)
		})
	}
}

func TestModel_String(t *testing.T) {
	assert.Equal(t, "random-forest", RandomForest.String())
	assert.Equal(t, "gradient-boosting", GradientBoosting.String())
	assert.Equal(t, "ridge", Ridge.String())
}
