package inference

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrModelUnavailable is returned when a model artifact file does not
// exist at its expected path.
var ErrModelUnavailable = errors.New("model not available")

// ScalerArtifact holds the standardization parameters fitted during
// training. Values are per-feature, in the same order as the feature
// list of the owning artifact.
type ScalerArtifact struct {
	Mean []float64 `yaml:"mean"`
	Std  []float64 `yaml:"std"`
}

// OutputRange optionally clamps a regressor's output.
type OutputRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// RegressorArtifact is the on-disk shape (YAML) of a trained linear
// regression model.
type RegressorArtifact struct {
	Name         string         `yaml:"name"`
	Features     []string       `yaml:"features"`
	Scaler       ScalerArtifact `yaml:"scaler"`
	Coefficients []float64      `yaml:"coefficients"`
	Intercept    float64        `yaml:"intercept"`
	Clamp        *OutputRange   `yaml:"clamp,omitempty"`
}

// ClassArtifact is one class of a multinomial logistic model.
type ClassArtifact struct {
	Name         string    `yaml:"name"`
	Coefficients []float64 `yaml:"coefficients"`
	Intercept    float64   `yaml:"intercept"`
	// DaysUntil is the [lo, hi] range of days-until-maintenance this
	// class was labeled with in the training data.
	DaysUntil [2]int `yaml:"days_until"`
}

// ClassifierArtifact is the on-disk shape (YAML) of a trained
// multinomial logistic classifier.
type ClassifierArtifact struct {
	Name     string          `yaml:"name"`
	Features []string        `yaml:"features"`
	Scaler   ScalerArtifact  `yaml:"scaler"`
	Classes  []ClassArtifact `yaml:"classes"`
}

func (a *RegressorArtifact) Validate() error {
	if len(a.Features) == 0 {
		return errors.New("artifact has no features")
	}
	if len(a.Coefficients) != len(a.Features) {
		return fmt.Errorf("coefficients length %d != features length %d", len(a.Coefficients), len(a.Features))
	}
	if err := a.Scaler.validate(len(a.Features)); err != nil {
		return err
	}
	if a.Clamp != nil && a.Clamp.Min > a.Clamp.Max {
		return errors.New("clamp min must be <= max")
	}
	return nil
}

func (a *ClassifierArtifact) Validate() error {
	if len(a.Features) == 0 {
		return errors.New("artifact has no features")
	}
	if len(a.Classes) < 2 {
		return errors.New("classifier needs at least 2 classes")
	}
	if err := a.Scaler.validate(len(a.Features)); err != nil {
		return err
	}
	for _, c := range a.Classes {
		if c.Name == "" {
			return errors.New("class name is required")
		}
		if len(c.Coefficients) != len(a.Features) {
			return fmt.Errorf("class %q: coefficients length %d != features length %d", c.Name, len(c.Coefficients), len(a.Features))
		}
		if c.DaysUntil[0] > c.DaysUntil[1] {
			return fmt.Errorf("class %q: days_until range inverted", c.Name)
		}
	}
	return nil
}

func (s ScalerArtifact) validate(n int) error {
	if len(s.Mean) != n || len(s.Std) != n {
		return fmt.Errorf("scaler mean/std length must be %d", n)
	}
	for i, sd := range s.Std {
		if sd <= 0 {
			return fmt.Errorf("scaler std[%d] must be > 0", i)
		}
	}
	return nil
}

// LoadRegressor reads and validates a regressor artifact from disk.
func LoadRegressor(path string) (*Regressor, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, ErrModelUnavailable)
		}
		return nil, err
	}
	var a RegressorArtifact
	if err := yaml.Unmarshal(raw, &a); err != nil {
		return nil, fmt.Errorf("parse artifact %s: %w", path, err)
	}
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("invalid artifact %s: %w", path, err)
	}
	return NewRegressor(a), nil
}

// LoadClassifier reads and validates a classifier artifact from disk.
func LoadClassifier(path string) (*Classifier, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, ErrModelUnavailable)
		}
		return nil, err
	}
	var a ClassifierArtifact
	if err := yaml.Unmarshal(raw, &a); err != nil {
		return nil, fmt.Errorf("parse artifact %s: %w", path, err)
	}
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("invalid artifact %s: %w", path, err)
	}
	return NewClassifier(a), nil
}
