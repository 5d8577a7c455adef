package factory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/levellog/core"
)

var configEnv = []string{"LOG_LEVEL", "LOG_TYPE", "LOG_TIMESTAMP_FORMAT", "LOG_BUFFER_CAPACITY"}

// clearEnv unsets the config variables for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnv {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "logging.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

const sampleConfig = `
level: warn
type: console
bufferCapacity: 5
rules:
  - pattern: "^db\\."
    level: debug
    type: messagebuffer
  - pattern: "^noisy"
    level: error
`

func TestLoadConfig(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Level)
	assert.Equal(t, "console", cfg.Type)
	assert.Equal(t, 5, cfg.BufferCapacity)
	require.Len(t, cfg.Rules, 2)
	assert.Equal(t, RuleConfig{Pattern: `^db\.`, Level: "debug", Type: "messagebuffer"}, cfg.Rules[0])

	opts, err := cfg.Options(nil)
	require.NoError(t, err)
	assert.Equal(t, core.WarnLevel, opts.DefaultLevel)
	assert.Equal(t, Console, opts.DefaultType)
	require.Len(t, opts.Rules, 2)
	assert.Equal(t, MessageBuffer, opts.Rules[0].Type)
	assert.Equal(t, core.ErrorLevel, opts.Rules[1].Level)
	assert.Equal(t, Console, opts.Rules[1].Type, "rule type falls back to the default type")
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "trace")

	cfg, err := LoadConfig(writeConfig(t, sampleConfig))
	require.NoError(t, err)
	assert.Equal(t, "trace", cfg.Level)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestConfigFromEnv(t *testing.T) {
	clearEnv(t)

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "console", cfg.Type)

	t.Setenv("LOG_TYPE", "messagebuffer")
	t.Setenv("LOG_LEVEL", "error")
	cfg, err = ConfigFromEnv()
	require.NoError(t, err)

	f, err := NewFromConfig(cfg, nil)
	require.NoError(t, err)
	l := f.GetLogger("env")
	assert.Equal(t, core.ErrorLevel, l.LogLevel())

	l.Error("kept")
	buf, ok := f.Buffer("env")
	require.True(t, ok)
	assert.Equal(t, 1, buf.Len())
}

func TestConfig_OptionsErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"bad level", Config{Level: "loud"}, core.ErrUnknownLevel},
		{"bad type", Config{Type: "syslog"}, ErrUnknownLoggerType},
		{"bad pattern", Config{Rules: []RuleConfig{{Pattern: "("}}}, ErrInvalidRule},
		{"bad rule level", Config{Rules: []RuleConfig{{Pattern: ".", Level: "x"}}}, core.ErrUnknownLevel},
		{"bad rule type", Config{Rules: []RuleConfig{{Pattern: ".", Type: "x"}}}, ErrUnknownLoggerType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.cfg.Options(nil)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewFromConfig_CustomNeedsCallback(t *testing.T) {
	_, err := NewFromConfig(Config{Type: "custom"}, nil)
	assert.ErrorIs(t, err, ErrMissingCallback)

	var got []core.Entry
	f, err := NewFromConfig(Config{Type: "custom", Level: "debug"}, func(e core.Entry) { got = append(got, e) })
	require.NoError(t, err)

	f.GetLogger("cb").Debug("hello")
	require.Len(t, got, 1)
	assert.Equal(t, "hello", got[0].Message)
}
