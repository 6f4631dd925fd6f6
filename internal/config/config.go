package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk generator configuration shape (YAML). All
// fields are optional; Default() supplies the values the shipped
// datasets were produced with.
type Config struct {
	Seed      int64             `yaml:"seed"`
	OutputDir string            `yaml:"output_dir"`
	Drivers   DriverGenConfig   `yaml:"drivers"`
	Vehicles  VehicleGenConfig  `yaml:"vehicles"`
	Demand    DemandGenConfig   `yaml:"demand"`
}

type DriverGenConfig struct {
	Count         int     `yaml:"count"`
	MinOnTimeRate float64 `yaml:"min_on_time_rate"`
	MaxOnTimeRate float64 `yaml:"max_on_time_rate"`
}

type VehicleGenConfig struct {
	Count int `yaml:"count"`
}

type DemandGenConfig struct {
	Days        int      `yaml:"days"`
	BaseDemand  float64  `yaml:"base_demand"`
	DailyGrowth float64  `yaml:"daily_growth"`
	// Holidays are YYYY-MM-DD dates with halved demand.
	Holidays []string `yaml:"holidays"`
}

// Default returns the generator parameters matching the reference
// training datasets.
func Default() *Config {
	return &Config{
		Seed:      42,
		OutputDir: "./data",
		Drivers: DriverGenConfig{
			Count:         150,
			MinOnTimeRate: 0.5,
			MaxOnTimeRate: 0.99,
		},
		Vehicles: VehicleGenConfig{
			Count: 100,
		},
		Demand: DemandGenConfig{
			Days:        730,
			BaseDemand:  50,
			DailyGrowth: 0.0005,
			Holidays: []string{
				"2024-01-26", "2024-03-25", "2024-08-15", "2024-10-02",
				"2024-10-31", "2024-11-01", "2024-12-25",
				"2025-01-26", "2025-03-14", "2025-08-15", "2025-10-02",
			},
		},
	}
}

// Load reads a YAML config, overlays it onto the defaults and
// validates the result.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fileCfg Config
	if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return Merge(Default(), fileCfg), nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Drivers.Count <= 0 {
		return errors.New("drivers.count must be > 0")
	}
	if c.Drivers.MinOnTimeRate <= 0 || c.Drivers.MaxOnTimeRate > 1 ||
		c.Drivers.MinOnTimeRate >= c.Drivers.MaxOnTimeRate {
		return errors.New("drivers on-time rate bounds must satisfy 0<min<max<=1")
	}
	if c.Vehicles.Count <= 0 {
		return errors.New("vehicles.count must be > 0")
	}
	if c.Demand.Days <= 0 {
		return errors.New("demand.days must be > 0")
	}
	if c.Demand.BaseDemand <= 0 {
		return errors.New("demand.base_demand must be > 0")
	}
	if c.Demand.DailyGrowth < 0 {
		return errors.New("demand.daily_growth must be >= 0")
	}
	return nil
}

// Merge overlays non-zero fields from override onto base.
func Merge(base *Config, override Config) *Config {
	out := *base
	if override.Seed != 0 {
		out.Seed = override.Seed
	}
	if override.OutputDir != "" {
		out.OutputDir = override.OutputDir
	}
	if override.Drivers.Count != 0 {
		out.Drivers.Count = override.Drivers.Count
	}
	if override.Drivers.MinOnTimeRate != 0 {
		out.Drivers.MinOnTimeRate = override.Drivers.MinOnTimeRate
	}
	if override.Drivers.MaxOnTimeRate != 0 {
		out.Drivers.MaxOnTimeRate = override.Drivers.MaxOnTimeRate
	}
	if override.Vehicles.Count != 0 {
		out.Vehicles.Count = override.Vehicles.Count
	}
	if override.Demand.Days != 0 {
		out.Demand.Days = override.Demand.Days
	}
	if override.Demand.BaseDemand != 0 {
		out.Demand.BaseDemand = override.Demand.BaseDemand
	}
	if override.Demand.DailyGrowth != 0 {
		out.Demand.DailyGrowth = override.Demand.DailyGrowth
	}
	if len(override.Demand.Holidays) > 0 {
		out.Demand.Holidays = override.Demand.Holidays
	}
	return &out
}
