package inference

import (
	"log"
	"path/filepath"
)

// Artifact file names looked up under the model directory.
const (
	DriverScoringFile         = "driver_scoring.yaml"
	MaintenancePredictionFile = "maintenance_prediction.yaml"
	DemandForecastFile        = "demand_forecast.yaml"
)

// Registry bundles the three models the service exposes. Models are
// loaded once at startup and treated as read-only afterwards; a nil
// entry means the artifact was missing or invalid and the matching
// endpoints answer 503.
type Registry struct {
	Driver      *Regressor
	Maintenance *Classifier
	Demand      *Forecaster
}

// LoadRegistry loads whatever artifacts exist under dir. Load failures
// are logged, not fatal: the service starts with the models it has,
// same as it always did.
func LoadRegistry(dir string) *Registry {
	reg := &Registry{}

	if m, err := LoadRegressor(filepath.Join(dir, DriverScoringFile)); err != nil {
		log.Printf("[Models] driver scoring model not loaded: %v", err)
	} else {
		reg.Driver = m
		log.Printf("[Models] driver scoring model loaded (%d features)", len(m.Features()))
	}

	if m, err := LoadClassifier(filepath.Join(dir, MaintenancePredictionFile)); err != nil {
		log.Printf("[Models] maintenance prediction model not loaded: %v", err)
	} else {
		reg.Maintenance = m
		log.Printf("[Models] maintenance prediction model loaded (classes: %v)", m.Classes())
	}

	if m, err := LoadRegressor(filepath.Join(dir, DemandForecastFile)); err != nil {
		log.Printf("[Models] demand forecast model not loaded: %v", err)
	} else {
		reg.Demand = NewForecaster(m)
		log.Printf("[Models] demand forecast model loaded (%d features)", len(m.Features()))
	}

	return reg
}

// Availability reports which models are loaded, keyed the way the
// health endpoint exposes them.
func (r *Registry) Availability() map[string]bool {
	return map[string]bool{
		"driver_scoring":         r.Driver != nil,
		"maintenance_prediction": r.Maintenance != nil,
		"demand_forecast":        r.Demand != nil,
	}
}
