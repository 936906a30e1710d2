package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultMass         = 1.0
	DefaultStiffness    = 10.0
	DefaultDisplacement = 1.0
	DefaultDamping      = 0.1
	DefaultDuration     = 10.0
	DefaultFPS          = 60
)

type Config struct {
	Mass         float64 `yaml:"mass"`
	Stiffness    float64 `yaml:"stiffness"`
	Displacement float64 `yaml:"displacement"`
	Damping      float64 `yaml:"damping"`
	Duration     float64 `yaml:"duration"`
	FPS          int     `yaml:"fps"`
}

func DefaultConfig() *Config {
	return &Config{
		Mass:         DefaultMass,
		Stiffness:    DefaultStiffness,
		Displacement: DefaultDisplacement,
		Damping:      DefaultDamping,
		Duration:     DefaultDuration,
		FPS:          DefaultFPS,
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
