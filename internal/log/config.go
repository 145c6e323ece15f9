package log

// LoggerConfig configures the process logger.
type LoggerConfig struct {
	Level     string           `mapstructure:"level"`
	Pattern   string           `mapstructure:"pattern"`
	Time      string           `mapstructure:"time"`
	Appenders []AppenderConfig `mapstructure:"appenders"`
	Formatter *FormatterConfig `mapstructure:"formatter"`
}

// AppenderConfig selects one log destination. Options are decoded per type.
type AppenderConfig struct {
	Type    string                 `mapstructure:"type"`
	Options map[string]interface{} `mapstructure:"options"`
}

// FormatterConfig switches from the pattern formatter to the prefixed text formatter.
type FormatterConfig struct {
	Type           string `mapstructure:"type"` // pattern | prefixed
	EnableColors   bool   `mapstructure:"enable_colors"`
	FullTimestamp  bool   `mapstructure:"full_timestamp"`
	DisableSorting bool   `mapstructure:"disable_sorting"`
}

const (
	AppenderConsole = "console"
	AppenderFile    = "file"

	FormatterPattern  = "pattern"
	FormatterPrefixed = "prefixed"

	DefaultPattern = "%time [%level] %field %msg%n"
	DefaultTime    = "2006-01-02 15:04:05"
)

// DefaultConfig logs info and above to the console.
func DefaultConfig() *LoggerConfig {
	return &LoggerConfig{
		Level:     "info",
		Pattern:   DefaultPattern,
		Time:      DefaultTime,
		Appenders: []AppenderConfig{{Type: AppenderConsole}},
	}
}
