// Package projectconfig loads optional .stresscale.yaml coefficient
// overrides, with environment variables taking precedence over the file.
package projectconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/calmhq/stresscale/internal/estimator"
)

// ConfigFileName is the per-directory override file.
const ConfigFileName = ".stresscale.yaml"

// EnvPrefix prefixes environment overrides, e.g. STRESSCALE_SLEEP_WEIGHT.
const EnvPrefix = "stresscale"

// Config holds coefficient overrides. Pointer fields distinguish "unset"
// from a legitimate zero or negative weight.
type Config struct {
	HeartRateWeight   *float64 `yaml:"heart_rate_weight,omitempty" envconfig:"HEART_RATE_WEIGHT"`
	SleepWeight       *float64 `yaml:"sleep_weight,omitempty" envconfig:"SLEEP_WEIGHT"`
	WorkWeight        *float64 `yaml:"work_weight,omitempty" envconfig:"WORK_WEIGHT"`
	Bias              *float64 `yaml:"bias,omitempty" envconfig:"BIAS"`
	HeartRateBaseline *float64 `yaml:"heart_rate_baseline,omitempty" envconfig:"HEART_RATE_BASELINE"`
	WorkBaseline      *float64 `yaml:"work_baseline,omitempty" envconfig:"WORK_BASELINE"`
}

// Load resolves the coefficient set for a run: estimator defaults, overlaid
// with .stresscale.yaml from dir (if present), overlaid with STRESSCALE_*
// environment variables. A missing file is fine; a malformed one is an error.
func Load(dir string) (estimator.Coefficients, error) {
	cfg := &Config{}

	path := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return estimator.Coefficients{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
		slog.Debug("loaded coefficient overrides", "path", path)
	case errors.Is(err, fs.ErrNotExist):
		// No file, defaults apply.
	default:
		return estimator.Coefficients{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return estimator.Coefficients{}, fmt.Errorf("config: environment: %w", err)
	}

	return cfg.Coefficients(), nil
}

// Coefficients applies the overrides on top of the estimator defaults.
func (c *Config) Coefficients() estimator.Coefficients {
	out := estimator.DefaultCoefficients()
	if c.HeartRateWeight != nil {
		out.HeartRateWeight = *c.HeartRateWeight
	}
	if c.SleepWeight != nil {
		out.SleepWeight = *c.SleepWeight
	}
	if c.WorkWeight != nil {
		out.WorkWeight = *c.WorkWeight
	}
	if c.Bias != nil {
		out.Bias = *c.Bias
	}
	if c.HeartRateBaseline != nil {
		out.HeartRateBaseline = *c.HeartRateBaseline
	}
	if c.WorkBaseline != nil {
		out.WorkBaseline = *c.WorkBaseline
	}
	return out
}
