package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"firestige.xyz/evdump/internal/core"
	"firestige.xyz/evdump/internal/log"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	require.Len(t, cfg.Log.Appenders, 1)
	assert.Equal(t, log.AppenderConsole, cfg.Log.Appenders[0].Type)
	assert.Equal(t, FormatLine, cfg.Decode.Format)
	assert.Equal(t, 0, cfg.Decode.MaxRecords)
	assert.False(t, cfg.Decode.StrictLength)
	assert.Empty(t, cfg.Metrics.Textfile)
}

func TestLoadValidConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "evdump.yml")
	configContent := `
log:
  level: debug
  appenders:
    - type: file
      options:
        filename: /tmp/evdump.log
        max_size: 10
decode:
  max_records: 42
  format: detail
  strict_length: true
  link_type_override: 216
metrics:
  textfile: /tmp/evdump.prom
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	cfg, err := Load(configPath, nil)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	require.Len(t, cfg.Log.Appenders, 1)
	assert.Equal(t, log.AppenderFile, cfg.Log.Appenders[0].Type)
	assert.Equal(t, "/tmp/evdump.log", cfg.Log.Appenders[0].Options["filename"])
	assert.Equal(t, 42, cfg.Decode.MaxRecords)
	assert.Equal(t, FormatDetail, cfg.Decode.Format)
	assert.True(t, cfg.Decode.StrictLength)
	assert.Equal(t, uint32(216), cfg.Decode.LinkTypeOverride)
	assert.Equal(t, "/tmp/evdump.prom", cfg.Metrics.Textfile)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("EVDUMP_DECODE_MAX_RECORDS", "7")
	t.Setenv("EVDUMP_LOG_LEVEL", "warn")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Decode.MaxRecords)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadFlagsOverrideFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "evdump.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("decode:\n  max_records: 10\n"), 0644))

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.IntP("count", "n", 0, "")
	flags.String("format", FormatLine, "")
	require.NoError(t, flags.Parse([]string{"-n", "3", "--format", "detail"}))

	cfg, err := Load(configPath, flags)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Decode.MaxRecords)
	assert.Equal(t, FormatDetail, cfg.Decode.Format)
}

func TestLoadInvalid(t *testing.T) {
	tests := map[string]string{
		"log level": "log:\n  level: loud\n",
		"format":    "decode:\n  format: xml\n",
		"negative":  "decode:\n  max_records: -1\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "evdump.yml")
			require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

			_, err := Load(configPath, nil)
			assert.ErrorIs(t, err, core.ErrConfigInvalid)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"), nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
