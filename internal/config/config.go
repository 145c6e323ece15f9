// Package config handles configuration loading using viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"firestige.xyz/evdump/internal/core"
	"firestige.xyz/evdump/internal/log"
)

// Config is the complete evdump configuration.
type Config struct {
	Log     *log.LoggerConfig `mapstructure:"log"`
	Decode  DecodeConfig      `mapstructure:"decode"`
	Metrics MetricsConfig     `mapstructure:"metrics"`
}

// DecodeConfig controls a capture session.
type DecodeConfig struct {
	MaxRecords       int    `mapstructure:"max_records"`        // per dump call, 0 = default batch
	Format           string `mapstructure:"format"`             // line | detail
	StrictLength     bool   `mapstructure:"strict_length"`      // abort when cap_len exceeds the payload size
	SkipMagicCheck   bool   `mapstructure:"skip_magic_check"`   // accept any magic number
	LinkTypeOverride uint32 `mapstructure:"link_type_override"` // 0 = use the file header
}

// MetricsConfig controls metric export.
type MetricsConfig struct {
	Textfile string `mapstructure:"textfile"` // node-exporter textfile path, empty = disabled
}

const (
	FormatLine   = "line"
	FormatDetail = "detail"

	envPrefix = "EVDUMP"
)

// flagKeys maps command line flags onto configuration keys.
var flagKeys = map[string]string{
	"count":            "decode.max_records",
	"format":           "decode.format",
	"strict-length":    "decode.strict_length",
	"skip-magic-check": "decode.skip_magic_check",
	"link-type":        "decode.link_type_override",
	"log-level":        "log.level",
	"metrics-textfile": "metrics.textfile",
}

// Load reads the optional config file at path, applies EVDUMP_* environment
// overrides and the flags present in flags, in increasing precedence.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.ValidateAndApplyDefaults(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pattern", log.DefaultPattern)
	v.SetDefault("log.time", log.DefaultTime)
	v.SetDefault("log.appenders", []map[string]interface{}{{"type": log.AppenderConsole}})

	v.SetDefault("decode.max_records", 0)
	v.SetDefault("decode.format", FormatLine)
	v.SetDefault("decode.strict_length", false)
	v.SetDefault("decode.skip_magic_check", false)
	v.SetDefault("decode.link_type_override", 0)

	v.SetDefault("metrics.textfile", "")
}

// ValidateAndApplyDefaults checks enumerations and ranges.
func (cfg *Config) ValidateAndApplyDefaults() error {
	if cfg.Log == nil {
		cfg.Log = log.DefaultConfig()
	}
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	if !validLevels[cfg.Log.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug/info/warn/error): %w", cfg.Log.Level, core.ErrConfigInvalid)
	}

	switch cfg.Decode.Format {
	case FormatLine, FormatDetail:
	default:
		return fmt.Errorf("invalid decode format: %s (must be line/detail): %w", cfg.Decode.Format, core.ErrConfigInvalid)
	}
	if cfg.Decode.MaxRecords < 0 {
		return fmt.Errorf("decode.max_records must not be negative: %w", core.ErrConfigInvalid)
	}
	return nil
}
