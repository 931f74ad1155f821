// Package config loads graphpad settings from defaults, an optional TOML file,
// GRAPHPAD_ environment variables and command-line flags, in that order of
// increasing priority.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	tomlparser "github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"graphpad/hittest"
	"graphpad/logging"
)

// EnvPrefix is the prefix of environment overrides, e.g. GRAPHPAD_NODES_BOUNDS_RADIUS.
const EnvPrefix = "GRAPHPAD_"

// DefaultFile is read from the working directory when no file is named.
const DefaultFile = "graphpad.toml"

// Config holds all configuration for graphpad.
type Config struct {
	Nodes    NodeConfig     `koanf:"nodes" toml:"nodes"`
	Edges    EdgeConfig     `koanf:"edges" toml:"edges"`
	Events   EventConfig    `koanf:"events" toml:"events"`
	Terminal TerminalConfig `koanf:"terminal" toml:"terminal"`
	Log      LogConfig      `koanf:"log" toml:"log"`
}

type NodeConfig struct {
	Radius       float64 `koanf:"radius" toml:"radius" validate:"gt=0,finite"`
	BoundsRadius float64 `koanf:"bounds_radius" toml:"bounds_radius" validate:"gt=0,finite"`
}

type EdgeConfig struct {
	BoundsDistance float64 `koanf:"bounds_distance" toml:"bounds_distance" validate:"gt=0,finite"`
}

// EventConfig controls input handling. Resolution is the hover throttle in ms.
type EventConfig struct {
	Resolution int `koanf:"resolution" toml:"resolution" validate:"gte=0"`
}

// TerminalConfig maps terminal cells to render-target units.
type TerminalConfig struct {
	CellWidth  float64 `koanf:"cell_width" toml:"cell_width" validate:"gt=0,finite"`
	CellHeight float64 `koanf:"cell_height" toml:"cell_height" validate:"gt=0,finite"`
}

type LogConfig struct {
	Level       string `koanf:"level" toml:"level" validate:"oneof=debug info warn error"`
	Development bool   `koanf:"development" toml:"development"`
	File        string `koanf:"file" toml:"file"`
}

// Defaults returns the built-in configuration.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"nodes.radius":          20.0,
		"nodes.bounds_radius":   25.0,
		"edges.bounds_distance": 10.0,
		"events.resolution":     20,
		"terminal.cell_width":   8.0,
		"terminal.cell_height":  16.0,
		"log.level":             "info",
		"log.development":       false,
		"log.file":              "",
	}
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"node-bounds":      "nodes.bounds_radius",
	"edge-bounds":      "edges.bounds_distance",
	"hover-resolution": "events.resolution",
	"log-level":        "log.level",
	"log-file":         "log.file",
}

// RegisterFlags adds the overridable settings to f.
func RegisterFlags(f *pflag.FlagSet) {
	f.String("config", "", "Path to a TOML config file (default "+DefaultFile+" if present)")
	f.Float64("node-bounds", 25, "Clickable radius around a node")
	f.Float64("edge-bounds", 10, "Clickable distance around an edge")
	f.Int("hover-resolution", 20, "Minimum milliseconds between hover updates")
	f.String("log-level", "info", "Log level: debug, info, warn, error")
	f.String("log-file", "", "Write logs to this file")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// gt=0 lets +Inf through
	v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsInf(f, 0) && !math.IsNaN(f)
	})
	return v
}

// Load builds the configuration. path names the TOML file; when empty,
// DefaultFile is used if it exists. f may be nil.
func Load(path string, f *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(mapProvider(Defaults()), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	if err := k.Load(file.Provider(path), tomlparser.Parser()); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if f != nil {
		if err := k.Load(posflag.ProviderWithFlag(f, ".", k, flagValue(f)), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey turns GRAPHPAD_NODES_BOUNDS_RADIUS into nodes.bounds_radius: the
// first underscore separates the section, the rest belong to the field.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(s, "_", ".", 1)
}

func flagValue(f *pflag.FlagSet) func(*pflag.Flag) (string, interface{}) {
	return func(fl *pflag.Flag) (string, interface{}) {
		key, ok := flagKeys[fl.Name]
		if !ok {
			return "", nil
		}
		return key, posflag.FlagVal(f, fl)
	}
}

// Validate checks the configuration against its constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, formatFieldError(fe))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func formatFieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Namespace())
	switch fe.Tag() {
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "finite":
		return fmt.Sprintf("%s must be a finite number", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// Tolerance returns the hit-test tolerances.
func (c *Config) Tolerance() hittest.Tolerance {
	return hittest.Tolerance{
		NodeRadius:   c.Nodes.BoundsRadius,
		EdgeDistance: c.Edges.BoundsDistance,
	}
}

// HoverResolution returns the hover throttle interval.
func (c *Config) HoverResolution() time.Duration {
	return time.Duration(c.Events.Resolution) * time.Millisecond
}

// LogOptions returns the logger settings. fallback is used as the output
// when no log file is configured; an empty fallback means stderr.
func (c *Config) LogOptions(fallback ...string) logging.Options {
	opts := logging.Options{
		Level:       c.Log.Level,
		Development: c.Log.Development,
		OutputPaths: fallback,
	}
	if c.Log.File != "" {
		opts.OutputPaths = []string{c.Log.File}
	}
	return opts
}

// WriteTOML encodes the configuration as TOML.
func (c *Config) WriteTOML(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// mapProvider feeds a flat key map into koanf.
type mapProvider map[string]interface{}

func (p mapProvider) Read() (map[string]interface{}, error) {
	out := make(map[string]interface{}, len(p))
	for key, v := range p {
		insert(out, strings.Split(key, "."), v)
	}
	return out, nil
}

func (p mapProvider) ReadBytes() ([]byte, error) {
	return nil, errors.New("config: map provider does not support ReadBytes")
}

func insert(m map[string]interface{}, path []string, v interface{}) {
	if len(path) == 1 {
		m[path[0]] = v
		return
	}
	sub, ok := m[path[0]].(map[string]interface{})
	if !ok {
		sub = make(map[string]interface{})
		m[path[0]] = sub
	}
	insert(sub, path[1:], v)
}
