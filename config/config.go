package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/philipp01105/levelgate/core"
)

// Sink kinds accepted in Config.Sink
const (
	SinkConsole = "console"
	SinkSlog    = "slog"
	SinkZap     = "zap"
	SinkLogrus  = "logrus"
	SinkZerolog = "zerolog"
	SinkDiscard = "discard"
)

// Defaults applied by Parse
const (
	DefaultLevel = "debug"
	DefaultSink  = SinkConsole
)

var sinkKinds = []string{SinkConsole, SinkSlog, SinkZap, SinkLogrus, SinkZerolog, SinkDiscard}

// ErrUnknownSink is returned for a sink kind this package cannot build
var ErrUnknownSink = errors.New("unknown sink")

// Config defines the configuration for a logger and its sink.
type Config struct {
	// Level is the threshold name: none, trace, debug, info, warn or error
	Level string `yaml:"level"`

	// Prefix labels every forwarded call when set
	Prefix string `yaml:"prefix"`

	// Sink selects the backend (see the Sink* constants)
	Sink string `yaml:"sink"`

	// NoColor disables colored level tags (console only)
	NoColor bool `yaml:"no_color"`

	// MetricsNamespace, when set, counts forwarded calls per level and
	// exposes them as <namespace>_log_calls_total
	MetricsNamespace string `yaml:"metrics_namespace"`

	// Mapping holds per-key level overrides for keyed loggers
	Mapping map[string]string `yaml:"mapping"`
}

// Load reads and parses the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML, applies defaults and validates the result. Unknown
// fields are rejected. Empty input yields the defaults.
func Parse(data []byte) (Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.Level) == "" {
		c.Level = DefaultLevel
	}
	if strings.TrimSpace(c.Sink) == "" {
		c.Sink = DefaultSink
	}
	c.Sink = strings.ToLower(strings.TrimSpace(c.Sink))
}

// Validate checks the level names and the sink kind.
func (c Config) Validate() error {
	if _, err := c.Threshold(); err != nil {
		return err
	}
	if !slices.Contains(sinkKinds, c.Sink) {
		return fmt.Errorf("%w %q, expected one of %v", ErrUnknownSink, c.Sink, sinkKinds)
	}
	if _, err := Overrides[string](c); err != nil {
		return err
	}
	return nil
}

// Threshold returns the parsed level
func (c Config) Threshold() (core.Level, error) {
	level, err := core.ParseLevel(c.Level)
	if err != nil {
		return core.NoneLevel, fmt.Errorf("level: %w", err)
	}
	return level, nil
}

// Overrides parses the mapping section into keyed logger overrides.
func Overrides[K ~string](c Config) (map[K]core.Level, error) {
	if len(c.Mapping) == 0 {
		return nil, nil
	}
	out := make(map[K]core.Level, len(c.Mapping))
	for key, name := range c.Mapping {
		level, err := core.ParseLevel(name)
		if err != nil {
			return nil, fmt.Errorf("mapping %q: %w", key, err)
		}
		out[K(key)] = level
	}
	return out, nil
}
