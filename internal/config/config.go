package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultBackend    = "cpu"
	DefaultModel      = "redshift_powerlaw"
	DefaultZMax       = 1.0
	DefaultGridPoints = 1000
)

type Config struct {
	Backend    string             `yaml:"backend"`
	Model      string             `yaml:"model"`
	ZMax       float64            `yaml:"z_max"`
	GridPoints int                `yaml:"grid_points"`
	Params     map[string]float64 `yaml:"params"`
}

func DefaultConfig() *Config {
	return &Config{
		Backend:    DefaultBackend,
		Model:      DefaultModel,
		ZMax:       DefaultZMax,
		GridPoints: DefaultGridPoints,
		Params:     map[string]float64{"alpha": 2.7},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
