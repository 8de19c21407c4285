package greenhouse

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"pineapples/pkg/garden"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix marks greenhouse keys in env files.
const EnvPrefix = "PINEAPPLES_"

// Config controls the greenhouse dimensions, seeding and command variant.
type Config struct {
	Width  int
	Height int

	// RandomSize draws the dimensions from the seed instead of Width/Height.
	RandomSize bool

	// Uniform skips capacity randomization; every cell gets the default capacity.
	Uniform bool

	Seed int64

	Mode garden.Mode
	Pool int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:      8,
		Height:     8,
		RandomSize: true,
		Seed:       1337,
		Mode:       garden.ModeBudget,
		Pool:       int(garden.DefaultPool),
	}
}

// FromMap populates the default config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().Apply(cfg)
}

// Apply overrides c with any recognised keys from cfg. Malformed values are ignored.
func (c Config) Apply(cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
			c.RandomSize = false
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
			c.RandomSize = false
		}
	}
	if v, ok := cfg["random_size"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.RandomSize = parsed
		}
	}
	if v, ok := cfg["uniform"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Uniform = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["mode"]; ok {
		if parsed, err := garden.ParseMode(v); err == nil {
			c.Mode = parsed
		}
	}
	if v, ok := cfg["pool"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Pool = parsed
		}
	}
	return c
}

// fileConfig mirrors Config for YAML files. Pointers distinguish unset keys.
type fileConfig struct {
	Width      int               `yaml:"width"`
	Height     int               `yaml:"height"`
	RandomSize *bool             `yaml:"randomSize"`
	Uniform    *bool             `yaml:"uniform"`
	Seed       *int64            `yaml:"seed"`
	Mode       string            `yaml:"mode"`
	Pool       *int              `yaml:"pool"`
	LogLevel   string            `yaml:"logLevel"`
	Scale      int               `yaml:"scale"`
	Extra      map[string]string `yaml:"extra"`
}

// LoadYAML reads a YAML config file and flattens it into FromMap keys.
// logLevel and scale are passed through for the front ends.
func LoadYAML(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read greenhouse config %s: %w", path, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse greenhouse config %s: %w", path, err)
	}

	out := map[string]string{}
	for k, v := range fc.Extra {
		out[k] = v
	}
	if fc.Width > 0 {
		out["w"] = strconv.Itoa(fc.Width)
	}
	if fc.Height > 0 {
		out["h"] = strconv.Itoa(fc.Height)
	}
	if fc.RandomSize != nil {
		out["random_size"] = strconv.FormatBool(*fc.RandomSize)
	}
	if fc.Uniform != nil {
		out["uniform"] = strconv.FormatBool(*fc.Uniform)
	}
	if fc.Seed != nil {
		out["seed"] = strconv.FormatInt(*fc.Seed, 10)
	}
	if fc.Mode != "" {
		if _, err := garden.ParseMode(fc.Mode); err != nil {
			return nil, fmt.Errorf("greenhouse config %s: %w", path, err)
		}
		out["mode"] = fc.Mode
	}
	if fc.Pool != nil {
		out["pool"] = strconv.Itoa(*fc.Pool)
	}
	if fc.LogLevel != "" {
		out["log_level"] = fc.LogLevel
	}
	if fc.Scale > 0 {
		out["scale"] = strconv.Itoa(fc.Scale)
	}
	return out, nil
}

// LoadEnvFile reads PINEAPPLES_* keys from a dotenv file. PINEAPPLES_SEED=9
// becomes seed=9.
func LoadEnvFile(path string) (map[string]string, error) {
	env, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
	}
	out := map[string]string{}
	for k, v := range env {
		if !strings.HasPrefix(k, EnvPrefix) {
			continue
		}
		out[strings.ToLower(strings.TrimPrefix(k, EnvPrefix))] = v
	}
	return out, nil
}

// Merge combines maps; later maps win.
func Merge(maps ...map[string]string) map[string]string {
	out := map[string]string{}
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}
