package inference_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"milesconnect-ml/internal/inference"
)

const regressorYAML = `
name: driver_scoring
features: [a, b]
scaler:
  mean: [0, 0]
  std: [1, 1]
coefficients: [1, 2]
intercept: 0.5
clamp:
  min: 0
  max: 100
`

const classifierYAML = `
name: maintenance_prediction
features: [x]
scaler:
  mean: [0]
  std: [1]
classes:
  - name: normal
    coefficients: [-1]
    intercept: 0.5
    days_until: [30, 90]
  - name: immediate
    coefficients: [1]
    intercept: -0.5
    days_until: [1, 7]
`

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadRegressor(t *testing.T) {
	path := writeFile(t, t.TempDir(), "m.yaml", regressorYAML)

	reg, err := inference.LoadRegressor(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, reg.Features())

	y, err := reg.Predict(map[string]float64{"a": 1, "b": 2})
	require.NoError(t, err)
	assert.InDelta(t, 5.5, y, 1e-12)
}

func TestLoadRegressor_MissingFile(t *testing.T) {
	_, err := inference.LoadRegressor(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, inference.ErrModelUnavailable)
}

func TestLoadRegressor_Invalid(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		body string
	}{
		{"coef length mismatch", `
features: [a, b]
scaler: {mean: [0, 0], std: [1, 1]}
coefficients: [1]
`},
		{"non-positive std", `
features: [a]
scaler: {mean: [0], std: [0]}
coefficients: [1]
`},
		{"no features", `
features: []
coefficients: []
`},
		{"inverted clamp", `
features: [a]
scaler: {mean: [0], std: [1]}
coefficients: [1]
clamp: {min: 10, max: 0}
`},
		{"not yaml", `{{{{`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, dir, "bad.yaml", tc.body)
			_, err := inference.LoadRegressor(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadClassifier(t *testing.T) {
	path := writeFile(t, t.TempDir(), "c.yaml", classifierYAML)

	clf, err := inference.LoadClassifier(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"normal", "immediate"}, clf.Classes())

	pred, err := clf.Predict(map[string]float64{"x": -3})
	require.NoError(t, err)
	assert.Equal(t, "normal", pred.Class)
}

func TestLoadClassifier_Invalid(t *testing.T) {
	dir := t.TempDir()

	// A single class is not a classifier.
	path := writeFile(t, dir, "one.yaml", `
features: [x]
scaler: {mean: [0], std: [1]}
classes:
  - name: only
    coefficients: [1]
    days_until: [0, 1]
`)
	_, err := inference.LoadClassifier(path)
	assert.Error(t, err)

	// Inverted day ranges are rejected.
	path = writeFile(t, dir, "days.yaml", `
features: [x]
scaler: {mean: [0], std: [1]}
classes:
  - name: a
    coefficients: [1]
    days_until: [7, 1]
  - name: b
    coefficients: [1]
    days_until: [1, 7]
`)
	_, err = inference.LoadClassifier(path)
	assert.Error(t, err)
}

func TestLoadRegistry(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, inference.DriverScoringFile, regressorYAML)
	writeFile(t, dir, inference.MaintenancePredictionFile, classifierYAML)
	// demand artifact deliberately absent

	reg := inference.LoadRegistry(dir)
	assert.NotNil(t, reg.Driver)
	assert.NotNil(t, reg.Maintenance)
	assert.Nil(t, reg.Demand)

	assert.Equal(t, map[string]bool{
		"driver_scoring":         true,
		"maintenance_prediction": true,
		"demand_forecast":        false,
	}, reg.Availability())
}

func TestLoadRegistry_ShippedArtifacts(t *testing.T) {
	reg := inference.LoadRegistry(filepath.Join("..", "..", "models"))
	for name, ok := range reg.Availability() {
		assert.True(t, ok, name)
	}
}

func TestLoadRegistry_EmptyDir(t *testing.T) {
	reg := inference.LoadRegistry(t.TempDir())
	for name, ok := range reg.Availability() {
		assert.False(t, ok, name)
	}
}
