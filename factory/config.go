package factory

import (
	"fmt"
	"os"
	"regexp"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/philipp01105/levellog/core"
	"github.com/philipp01105/levellog/formatter"
	"github.com/philipp01105/levellog/handler"
	"github.com/philipp01105/levellog/logger"
)

// Config is the file/environment form of Options
type Config struct {
	// Level is the threshold for names no rule matches
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	// Type is the sink for names no rule matches
	Type string `yaml:"type" env:"LOG_TYPE" env-default:"console"`
	// TimestampFormat is a Go time layout for text output
	TimestampFormat string `yaml:"timestampFormat" env:"LOG_TIMESTAMP_FORMAT"`
	// BufferCapacity bounds MessageBuffer loggers
	BufferCapacity int `yaml:"bufferCapacity" env:"LOG_BUFFER_CAPACITY"`
	// Rules are read from the file only
	Rules []RuleConfig `yaml:"rules"`
}

// RuleConfig is the file form of Rule
type RuleConfig struct {
	Pattern string `yaml:"pattern"`
	Level   string `yaml:"level"`
	Type    string `yaml:"type"`
}

// LoadConfig reads a YAML config file, then applies environment overrides
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("read logging config %q: %w", path, err)
	}
	return cfg, nil
}

// ConfigFromEnv reads the configuration from environment variables only
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read logging config from env: %w", err)
	}
	return cfg, nil
}

// Options converts the config into factory options. callback serves
// every logger of type custom and may be nil when none is configured.
func (c Config) Options(callback handler.CallbackFunc) (Options, error) {
	level, err := parseLevelOr(c.Level, core.InfoLevel)
	if err != nil {
		return Options{}, err
	}
	typ, err := parseTypeOr(c.Type, Console)
	if err != nil {
		return Options{}, err
	}

	opts := Options{
		DefaultLevel:    level,
		DefaultType:     typ,
		DefaultCallback: callback,
		Formatter:       formatter.NewTextFormatter(formatter.Config{TimestampFormat: c.TimestampFormat}),
		BufferCapacity:  c.BufferCapacity,
		ErrorHandler:    logger.WriterErrorHandler(os.Stderr),
		Rules:           make([]Rule, 0, len(c.Rules)),
	}

	for i, rc := range c.Rules {
		re, err := regexp.Compile(rc.Pattern)
		if err != nil {
			return Options{}, fmt.Errorf("%w: rule %d: %w", ErrInvalidRule, i, err)
		}
		rl, err := parseLevelOr(rc.Level, level)
		if err != nil {
			return Options{}, fmt.Errorf("rule %d: %w", i, err)
		}
		rt, err := parseTypeOr(rc.Type, typ)
		if err != nil {
			return Options{}, fmt.Errorf("rule %d: %w", i, err)
		}
		opts.Rules = append(opts.Rules, Rule{Pattern: re, Level: rl, Type: rt, Callback: callback})
	}

	return opts, nil
}

// NewFromConfig builds a Factory from a Config
func NewFromConfig(c Config, callback handler.CallbackFunc) (*Factory, error) {
	opts, err := c.Options(callback)
	if err != nil {
		return nil, err
	}
	return New(opts)
}

func parseLevelOr(s string, def core.Level) (core.Level, error) {
	if s == "" {
		return def, nil
	}
	return core.ParseLevel(s)
}

func parseTypeOr(s string, def LoggerType) (LoggerType, error) {
	if s == "" {
		return def, nil
	}
	return ParseLoggerType(s)
}
