package log

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

type logrusAdapter struct {
	entry *logrus.Entry
}

// New builds a logrus-backed Logger. A nil cfg means DefaultConfig.
func New(cfg *LoggerConfig) (Logger, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	out, err := buildOutput(cfg.Appenders)
	if err != nil {
		return nil, err
	}
	return newWithOutput(cfg, out)
}

func newWithOutput(cfg *LoggerConfig, out io.Writer) (Logger, error) {
	l := logrus.New()
	l.SetFormatter(buildFormatter(cfg))

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	l.SetLevel(level)
	l.SetOutput(out)

	return &logrusAdapter{entry: logrus.NewEntry(l)}, nil
}

func buildFormatter(cfg *LoggerConfig) logrus.Formatter {
	if cfg.Formatter != nil && cfg.Formatter.Type == FormatterPrefixed {
		return &prefixed.TextFormatter{
			ForceColors:     cfg.Formatter.EnableColors,
			DisableColors:   !cfg.Formatter.EnableColors,
			FullTimestamp:   cfg.Formatter.FullTimestamp,
			TimestampFormat: cfg.Time,
			DisableSorting:  cfg.Formatter.DisableSorting,
		}
	}
	pattern, layout := cfg.Pattern, cfg.Time
	if pattern == "" {
		pattern = DefaultPattern
	}
	if layout == "" {
		layout = DefaultTime
	}
	return &formatter{pattern: pattern, time: layout}
}

func (l *logrusAdapter) Debug(args ...interface{})                 { l.entry.Debug(args...) }
func (l *logrusAdapter) Debugf(format string, args ...interface{}) { l.entry.Debugf(format, args...) }

func (l *logrusAdapter) Info(args ...interface{})                 { l.entry.Info(args...) }
func (l *logrusAdapter) Infof(format string, args ...interface{}) { l.entry.Infof(format, args...) }

func (l *logrusAdapter) Warn(args ...interface{})                 { l.entry.Warn(args...) }
func (l *logrusAdapter) Warnf(format string, args ...interface{}) { l.entry.Warnf(format, args...) }

func (l *logrusAdapter) Error(args ...interface{})                 { l.entry.Error(args...) }
func (l *logrusAdapter) Errorf(format string, args ...interface{}) { l.entry.Errorf(format, args...) }

func (l *logrusAdapter) WithField(field string, value interface{}) Logger {
	return &logrusAdapter{entry: l.entry.WithField(field, value)}
}
func (l *logrusAdapter) WithFields(fields map[string]interface{}) Logger {
	return &logrusAdapter{entry: l.entry.WithFields(fields)}
}
func (l *logrusAdapter) WithError(err error) Logger {
	return &logrusAdapter{entry: l.entry.WithError(err)}
}

func (l *logrusAdapter) IsDebugEnabled() bool {
	return l.entry.Logger.IsLevelEnabled(logrus.DebugLevel)
}
