package app

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"pineapples/internal/sims/greenhouse"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim      string
	Scale    int
	Seed     int64
	HUDWidth int

	ConfigFile string
	EnvFile    string
	LogLevel   string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: greenhouse.NameBudget, Scale: 64, HUDWidth: 240, LogLevel: "info"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "greenhouse variant to run (greenhouse, radiators, counters)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for grid generation (0 uses the config seed)")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "optional YAML greenhouse config")
	fs.StringVar(&c.EnvFile, "env", c.EnvFile, "optional dotenv file with PINEAPPLES_* keys")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
}

// SimOptions loads the optional config and env files and merges them into the
// key/value map handed to the sim factory. Env files win over YAML. The
// log_level and scale keys also update c unless set on the command line.
func (c *Config) SimOptions(explicit map[string]bool) (map[string]string, error) {
	var fromFile, fromEnv map[string]string
	var err error
	if c.ConfigFile != "" {
		if fromFile, err = greenhouse.LoadYAML(c.ConfigFile); err != nil {
			return nil, err
		}
	}
	if c.EnvFile != "" {
		if fromEnv, err = greenhouse.LoadEnvFile(c.EnvFile); err != nil {
			return nil, err
		}
	}
	opts := greenhouse.Merge(fromFile, fromEnv)
	if v, ok := opts["log_level"]; ok && !explicit["log-level"] {
		c.LogLevel = v
	}
	if v, ok := opts["scale"]; ok && !explicit["scale"] {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Scale = parsed
		}
	}
	if c.Seed != 0 {
		opts["seed"] = strconv.FormatInt(c.Seed, 10)
	}
	return opts, nil
}

// ExplicitFlags reports which flags were set on the command line.
func ExplicitFlags(fs *flag.FlagSet) map[string]bool {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// ParseLevel maps a level name onto slog levels.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}

// NewLogger builds a text logger at the named level.
func NewLogger(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
