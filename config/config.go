// Package config loads the settings of the lev tool.
//
// Settings come, by increasing precedence, from built-in defaults, a YAML
// file, a .env file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/etnz/leverage"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const (
	EnvSnapshot = "LEV_SNAPSHOT"
	EnvCurrency = "LEV_CURRENCY"
	EnvMode     = "LEV_MODE"
	EnvPolicy   = "LEV_POLICY"
	EnvFutures  = "LEV_FUTURES"
	EnvStrict   = "LEV_STRICT"
	EnvLogLevel = "LEV_LOG_LEVEL"
)

// Config holds the lev settings.
type Config struct {
	Snapshot string    `yaml:"snapshot"` // path to the portfolio JSON file
	Currency string    `yaml:"currency"` // ISO code, used for formatting only
	Mode     string    `yaml:"mode"`     // cost-basis or manual
	Policy   string    `yaml:"policy"`   // auto-sum or keep-override
	Futures  bool      `yaml:"futures"`  // track futures and the futures account
	Strict   bool      `yaml:"strict"`   // reject negative counts and prices
	Log      LogConfig `yaml:"log"`
}

// LogConfig holds the logger settings.
type LogConfig struct {
	Level  string `yaml:"level"` // debug, info, warn, error
	Pretty bool   `yaml:"pretty"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Snapshot: "portfolio.json",
		Currency: "TWD",
		Mode:     leverage.ManualOverride.String(),
		Policy:   leverage.AutoSum.String(),
		Futures:  true,
		Log: LogConfig{
			Level:  "warn",
			Pretty: true,
		},
	}
}

// Load reads the YAML file at path over the defaults, then applies the
// environment, and validates the result.
//
// An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parse yaml: %w", err)
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}
	return cfg, Validate(cfg)
}

// ApplyEnv overrides settings from the environment. A .env file in the
// current folder is loaded first, if it exists; it never overrides variables
// that are already set.
func (c *Config) ApplyEnv() error {
	_ = godotenv.Load()

	if v := os.Getenv(EnvSnapshot); v != "" {
		c.Snapshot = v
	}
	if v := os.Getenv(EnvCurrency); v != "" {
		c.Currency = v
	}
	if v := os.Getenv(EnvMode); v != "" {
		c.Mode = v
	}
	if v := os.Getenv(EnvPolicy); v != "" {
		c.Policy = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	for name, dst := range map[string]*bool{EnvFutures: &c.Futures, EnvStrict: &c.Strict} {
		v := os.Getenv(name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s=%q: %w", name, v, err)
		}
		*dst = b
	}
	return nil
}

// Validate ensures settings are usable.
func Validate(c Config) error {
	if c.Snapshot == "" {
		return errors.New("snapshot is required")
	}
	if c.Currency == "" {
		return errors.New("currency is required")
	}
	if _, err := leverage.ParseValuationMode(c.Mode); err != nil {
		return fmt.Errorf("mode: %w", err)
	}
	if _, err := leverage.ParseTotalsPolicy(c.Policy); err != nil {
		return fmt.Errorf("policy: %w", err)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// Options converts the settings into book options, logging to log.
func (c Config) Options(log *zerolog.Logger) (leverage.Options, error) {
	mode, err := leverage.ParseValuationMode(c.Mode)
	if err != nil {
		return leverage.Options{}, err
	}
	policy, err := leverage.ParseTotalsPolicy(c.Policy)
	if err != nil {
		return leverage.Options{}, err
	}
	return leverage.Options{
		Currency:     c.Currency,
		Mode:         mode,
		Policy:       policy,
		TrackFutures: c.Futures,
		Strict:       c.Strict,
		Logger:       log,
	}, nil
}

// YAML returns the settings as a YAML document.
func (c Config) YAML() (string, error) {
	raw, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("encode yaml: %w", err)
	}
	return string(raw), nil
}
