// Package config loads and saves run configuration for the dynsys CLI.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/dynsys/internal/evolve"
	"github.com/san-kum/dynsys/internal/ode"
)

const (
	DefaultTime   = 10.0
	DefaultDt     = evolve.DefaultDt
	DefaultSolver = "dp5"
)

type Config struct {
	System string    `yaml:"system"`
	Solver string    `yaml:"solver"`
	Time   float64   `yaml:"time"`
	Dt     float64   `yaml:"dt"`
	AbsTol float64   `yaml:"abstol"`
	RelTol float64   `yaml:"reltol"`
	State  []float64 `yaml:"state"`
	TStops []float64 `yaml:"tstops"`
}

func DefaultConfig() *Config {
	return &Config{
		System: "lorenz",
		Solver: DefaultSolver,
		Time:   DefaultTime,
		Dt:     DefaultDt,
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

// knownAlgorithms maps config names to solver choices. Names outside the
// map pass through as ode.Alg and fail at the solve boundary, not here.
var knownAlgorithms = map[string]ode.Algorithm{
	"dp5":   ode.DP5{},
	"rk4":   ode.RK4{},
	"euler": ode.Euler{},
}

// Algorithm resolves the configured solver name. An empty name selects
// the default algorithm by returning nil.
func (c *Config) Algorithm() ode.Algorithm {
	if c.Solver == "" {
		return nil
	}
	if alg, ok := knownAlgorithms[c.Solver]; ok {
		return alg
	}
	return ode.Alg(c.Solver)
}

// EvolveConfig assembles the adapter configuration from the file values.
func (c *Config) EvolveConfig() evolve.Config {
	return evolve.Config{
		Solver: c.Algorithm(),
		Options: ode.Options{
			AbsTol: c.AbsTol,
			RelTol: c.RelTol,
			TStops: c.TStops,
		},
	}
}
