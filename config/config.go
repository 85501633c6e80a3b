// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package config

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/holiman/uint256"
	"github.com/pelletier/go-toml"
	"github.com/spf13/viper"
	"gitlab.com/accumulatenetwork/runtime/internal/logging"
	"gitlab.com/accumulatenetwork/runtime/pkg/errors"
	"gitlab.com/accumulatenetwork/runtime/pkg/runtime"
)

// EnvPrefix is the prefix of environment variables that override the
// configuration file, for example RUNTIMED_LOGGING_LEVEL.
const EnvPrefix = "RUNTIMED"

// DefaultLogLevels logs errors, and block summaries from the runtime.
const DefaultLogLevels = "error;runtime=info"

type Config struct {
	Logging Logging `toml:"logging" mapstructure:"logging"`
	Genesis Genesis `toml:"genesis" mapstructure:"genesis"`
}

type Logging struct {
	// Format is plain, text, or json.
	Format string `toml:"format" mapstructure:"format" validate:"omitempty,oneof=plain text json"`

	// Level is the default and per-module levels, for example
	// "error;runtime=debug".
	Level string `toml:"level" mapstructure:"level"`

	// Color enables colored console output.
	Color bool `toml:"color" mapstructure:"color"`
}

type Genesis struct {
	Accounts []GenesisAccount `toml:"accounts,omitempty" mapstructure:"accounts" validate:"dive"`
}

type GenesisAccount struct {
	ID      string `toml:"id" mapstructure:"id" validate:"required"`
	Balance string `toml:"balance" mapstructure:"balance" validate:"required,number"`
}

// Default returns the default configuration.
func Default() *Config {
	c := new(Config)
	c.Logging.Format = "plain"
	c.Logging.Level = DefaultLogLevels
	return c
}

var validate = validator.New()

// Validate checks the configuration.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err != nil {
		return errors.BadRequest.WithFormat("invalid config: %w", err)
	}
	_, err = logging.ParseLevels(c.Logging.Level)
	if err != nil {
		return errors.BadRequest.Wrap(err)
	}

	seen := map[string]bool{}
	for _, a := range c.Genesis.Accounts {
		if seen[a.ID] {
			return errors.BadRequest.WithFormat("genesis account %q is listed twice", a.ID)
		}
		seen[a.ID] = true
	}
	return nil
}

// Load reads the configuration file, applies environment overrides, and
// validates the result.
func Load(file string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(file)
	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := Default()
	v.SetDefault("logging.format", def.Logging.Format)
	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.color", def.Logging.Color)

	err := v.ReadInConfig()
	if err != nil {
		return nil, errors.BadRequest.WithFormat("read %s: %w", file, err)
	}

	c := new(Config)
	err = v.Unmarshal(c)
	if err != nil {
		return nil, errors.EncodingError.WithFormat("unmarshal %s: %w", file, err)
	}

	err = c.Validate()
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Store writes the configuration file.
func Store(c *Config, file string) error {
	f, err := os.Create(file)
	if err != nil {
		return errors.UnknownError.Wrap(err)
	}
	defer f.Close()

	err = toml.NewEncoder(f).Encode(c)
	if err != nil {
		return errors.EncodingError.WithFormat("encode config: %w", err)
	}
	return nil
}

// Apply seeds the genesis balances. It must be called before the runtime
// executes its first block.
func (g *Genesis) Apply(r *runtime.Runtime) error {
	if r.System().BlockNumber() != 0 {
		return errors.BadRequest.WithFormat("cannot apply genesis at block %d", r.System().BlockNumber())
	}

	for _, a := range g.Accounts {
		amount, err := uint256.FromDecimal(a.Balance)
		if err != nil {
			return errors.BadRequest.WithFormat("genesis balance of %q: %w", a.ID, err)
		}
		r.Balances().SetBalance(a.ID, amount)
	}
	return nil
}

// Handler returns a log handler writing to w according to the logging
// configuration.
func (l *Logging) Handler(w io.Writer) (slog.Handler, error) {
	levels, err := logging.ParseLevels(l.Level)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(l.Format) {
	case "", "plain", "text":
		return logging.NewSlogHandler(levels, logging.ConsoleSlogWriter(w, l.Color))
	case "json":
		return logging.NewSlogHandler(levels, w)
	default:
		return nil, errors.BadRequest.WithFormat("log format %q is not supported", l.Format)
	}
}
