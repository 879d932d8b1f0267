// Package config loads and saves evaluation scenarios as YAML.
package config

import (
	"fmt"
	"math"
	"os"

	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"
)

const (
	DefaultRho     = 0.5
	DefaultU       = 0.7
	DefaultV       = 0.3
	DefaultGridMin = -0.95
	DefaultGridMax = 0.95
	DefaultSteps   = 39
	DefaultWidth   = 40
	DefaultHeight  = 20
)

type Config struct {
	Rho         float64       `yaml:"rho"`
	Point       PointConfig   `yaml:"point"`
	Grid        GridConfig    `yaml:"grid"`
	Correlation [][]float64   `yaml:"correlation,omitempty"`
	Workers     int           `yaml:"workers"`
	Surface     SurfaceConfig `yaml:"surface"`
}

type PointConfig struct {
	U float64 `yaml:"u"`
	V float64 `yaml:"v"`
}

type GridConfig struct {
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
	Steps int     `yaml:"steps"`
}

type SurfaceConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		Rho:   DefaultRho,
		Point: PointConfig{U: DefaultU, V: DefaultV},
		Grid: GridConfig{
			Min:   DefaultGridMin,
			Max:   DefaultGridMax,
			Steps: DefaultSteps,
		},
		Surface: SurfaceConfig{Width: DefaultWidth, Height: DefaultHeight},
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

// CholeskyFactor converts the configured correlation matrix into its
// lower Cholesky factor. The matrix must be square, symmetric with
// unit diagonal, and positive definite.
func (c *Config) CholeskyFactor() (*mat.TriDense, error) {
	k := len(c.Correlation)
	if k == 0 {
		return nil, fmt.Errorf("config: no correlation matrix configured")
	}

	sym := mat.NewSymDense(k, nil)
	for i, row := range c.Correlation {
		if len(row) != k {
			return nil, fmt.Errorf("config: correlation row %d has %d entries, want %d", i, len(row), k)
		}
		if math.Abs(row[i]-1) > 1e-12 {
			return nil, fmt.Errorf("config: correlation diagonal entry %d is %v, want 1", i, row[i])
		}
		for j := i; j < k; j++ {
			if math.Abs(row[j]-c.Correlation[j][i]) > 1e-12 {
				return nil, fmt.Errorf("config: correlation matrix not symmetric at (%d,%d)", i, j)
			}
			sym.SetSym(i, j, row[j])
		}
	}

	var ch mat.Cholesky
	if !ch.Factorize(sym) {
		return nil, fmt.Errorf("config: correlation matrix not positive definite")
	}
	l := mat.NewTriDense(k, mat.Lower, nil)
	ch.LTo(l)
	return l, nil
}
