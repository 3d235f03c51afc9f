// Package appconfig loads hostexpand configuration: defaults, then an
// optional hostexpand.yaml in the working directory, then environment
// variables on top.
package appconfig

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v9"
	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/hostexpand/internal/domain"
)

const fileName = "hostexpand.yaml"

// Load resolves the effective configuration for root. A missing config
// file is not an error; a malformed one is.
func Load(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, fileName)
	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		var y yamlConfig
		if uerr := yaml.Unmarshal(b, &y); uerr != nil {
			return cfg, &domain.OpError{
				Op:   "appconfig.load",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  uerr,
			}
		}
		applyYAML(&cfg, y)
	case errors.Is(err, fs.ErrNotExist):
		// Defaults apply.
	default:
		return cfg, &domain.OpError{
			Op:   "appconfig.load",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	var e envOverrides
	if err := env.Parse(&e); err != nil {
		return cfg, &domain.OpError{
			Op:   "appconfig.load",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}
	applyEnv(&cfg, e)

	return cfg, nil
}

type yamlConfig struct {
	Hostexpand struct {
		Logging struct {
			Debug *bool `yaml:"debug"`
		} `yaml:"logging"`

		Output struct {
			Force *bool `yaml:"force"`
		} `yaml:"output"`

		Diagnostics struct {
			Quiet *bool `yaml:"quiet"`
		} `yaml:"diagnostics"`
	} `yaml:"hostexpand"`
}

type envOverrides struct {
	Debug *bool `env:"HOSTEXPAND_DEBUG"`
	Force *bool `env:"HOSTEXPAND_FORCE"`
	Quiet *bool `env:"HOSTEXPAND_QUIET"`
}

// Apply parsed values on top of defaults.
func applyYAML(cfg *domain.Config, y yamlConfig) {
	if y.Hostexpand.Logging.Debug != nil {
		cfg.Logging.Debug = *y.Hostexpand.Logging.Debug
	}
	if y.Hostexpand.Output.Force != nil {
		cfg.Output.Force = *y.Hostexpand.Output.Force
	}
	if y.Hostexpand.Diagnostics.Quiet != nil {
		cfg.Diagnostics.Quiet = *y.Hostexpand.Diagnostics.Quiet
	}
}

func applyEnv(cfg *domain.Config, e envOverrides) {
	if e.Debug != nil {
		cfg.Logging.Debug = *e.Debug
	}
	if e.Force != nil {
		cfg.Output.Force = *e.Force
	}
	if e.Quiet != nil {
		cfg.Diagnostics.Quiet = *e.Quiet
	}
}
