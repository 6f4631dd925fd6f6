package inference_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"milesconnect-ml/internal/inference"
)

func identityScaler(n int) inference.ScalerArtifact {
	mean := make([]float64, n)
	std := make([]float64, n)
	for i := range std {
		std[i] = 1
	}
	return inference.ScalerArtifact{Mean: mean, Std: std}
}

func TestRegressor_Predict(t *testing.T) {
	reg := inference.NewRegressor(inference.RegressorArtifact{
		Features:     []string{"a", "b"},
		Scaler:       identityScaler(2),
		Coefficients: []float64{1.0, 0.5},
		Intercept:    1.0,
	})

	y, err := reg.Predict(map[string]float64{"a": 2, "b": 3})
	require.NoError(t, err)
	assert.InDelta(t, 4.5, y, 1e-12)
}

func TestRegressor_AppliesScaling(t *testing.T) {
	reg := inference.NewRegressor(inference.RegressorArtifact{
		Features: []string{"x"},
		Scaler: inference.ScalerArtifact{
			Mean: []float64{10},
			Std:  []float64{2},
		},
		Coefficients: []float64{3},
		Intercept:    1,
	})

	// (14-10)/2 = 2 -> 3*2 + 1
	y, err := reg.Predict(map[string]float64{"x": 14})
	require.NoError(t, err)
	assert.InDelta(t, 7, y, 1e-12)
}

func TestRegressor_ClampsOutput(t *testing.T) {
	reg := inference.NewRegressor(inference.RegressorArtifact{
		Features:     []string{"x"},
		Scaler:       identityScaler(1),
		Coefficients: []float64{1},
		Clamp:        &inference.OutputRange{Min: 0, Max: 100},
	})

	y, err := reg.Predict(map[string]float64{"x": 250})
	require.NoError(t, err)
	assert.Equal(t, 100.0, y)

	y, err = reg.Predict(map[string]float64{"x": -50})
	require.NoError(t, err)
	assert.Equal(t, 0.0, y)
}

func TestRegressor_MissingFeature(t *testing.T) {
	reg := inference.NewRegressor(inference.RegressorArtifact{
		Features:     []string{"a", "b"},
		Scaler:       identityScaler(2),
		Coefficients: []float64{1, 1},
	})

	_, err := reg.Predict(map[string]float64{"a": 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing feature "b"`)
}

func TestRegressor_PredictBatchMatchesPredict(t *testing.T) {
	reg := inference.NewRegressor(inference.RegressorArtifact{
		Features: []string{"a", "b", "c"},
		Scaler: inference.ScalerArtifact{
			Mean: []float64{1, 2, 3},
			Std:  []float64{0.5, 2, 4},
		},
		Coefficients: []float64{1.5, -0.25, 2},
		Intercept:    -7,
	})

	rows := []map[string]float64{
		{"a": 1, "b": 2, "c": 3},
		{"a": 4, "b": -1, "c": 0},
		{"a": 0.5, "b": 10, "c": 8},
	}

	batch, err := reg.PredictBatch(rows)
	require.NoError(t, err)
	require.Len(t, batch, len(rows))

	for i, row := range rows {
		single, err := reg.Predict(row)
		require.NoError(t, err)
		assert.InDelta(t, single, batch[i], 1e-12, "row %d", i)
	}
}

func TestRegressor_PredictBatchEmpty(t *testing.T) {
	reg := inference.NewRegressor(inference.RegressorArtifact{
		Features:     []string{"a"},
		Scaler:       identityScaler(1),
		Coefficients: []float64{1},
	})
	out, err := reg.PredictBatch(nil)
	require.NoError(t, err)
	assert.Nil(t, out)
}
