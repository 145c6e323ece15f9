package log

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatterPattern(t *testing.T) {
	f := &formatter{pattern: DefaultPattern, time: DefaultTime}
	entry := &logrus.Entry{
		Time:    time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Level:   logrus.WarnLevel,
		Message: "record skipped",
		Data:    logrus.Fields{"record": 3, "code": "84"},
	}

	out, err := f.Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-02 03:04:05 [warning] code=84,record=3 record skipped\n", string(out))
}

func TestFormatterAppendsNewline(t *testing.T) {
	f := &formatter{pattern: "%level:%msg", time: DefaultTime}
	out, err := f.Format(&logrus.Entry{Level: logrus.InfoLevel, Message: "x", Data: logrus.Fields{}})
	require.NoError(t, err)
	assert.Equal(t, "info:x\n", string(out))
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Level = "warn"

	l, err := newWithOutput(cfg, &buf)
	require.NoError(t, err)

	l.Info("hidden")
	l.WithField("path", "a.pcap").WithError(errors.New("boom")).Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "path=a.pcap")
	assert.Contains(t, out, "error=boom")
	assert.False(t, l.IsDebugEnabled())
}

func TestNewInvalidLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Level = "loud"
	_, err := New(cfg)
	assert.Error(t, err)
}

func TestPrefixedFormatter(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Formatter = &FormatterConfig{Type: FormatterPrefixed}

	l, err := newWithOutput(cfg, &buf)
	require.NoError(t, err)
	l.Info("prefixed output")
	assert.Contains(t, buf.String(), "prefixed output")
}

func TestFileAppender(t *testing.T) {
	path := filepath.Join(t.TempDir(), "evdump.log")
	cfg := DefaultConfig()
	cfg.Appenders = []AppenderConfig{{
		Type:    AppenderFile,
		Options: map[string]interface{}{"filename": path, "max_size": "10", "compress": true},
	}}

	out, err := buildOutput(cfg.Appenders)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Len())

	opt, err := decodeFileAppenderOpt(cfg.Appenders[0].Options)
	require.NoError(t, err)
	assert.Equal(t, path, opt.Filename)
	assert.Equal(t, 10, opt.MaxSize)
	assert.True(t, opt.Compress)
	assert.Equal(t, 5, opt.MaxBackups)
}

func TestFileAppenderRejectsBadOptions(t *testing.T) {
	_, err := decodeFileAppenderOpt(nil)
	assert.Error(t, err)

	_, err = decodeFileAppenderOpt(map[string]interface{}{"filename": "x.log", "colour": true})
	assert.Error(t, err)

	_, err = buildOutput([]AppenderConfig{{Type: "loki"}})
	assert.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "unsupported"))
}

func TestGetLoggerDefault(t *testing.T) {
	SetLogger(nil)
	assert.NotNil(t, GetLogger())
}
