package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"firestige.xyz/evdump/internal/config"
	"firestige.xyz/evdump/internal/core"
	"firestige.xyz/evdump/internal/evdev"
	"firestige.xyz/evdump/internal/metrics"
)

func writeFixture(t *testing.T, linkType uint32, events ...evdev.Payload) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kbd.pcap")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := pcapgo.NewWriter(f)
	require.NoError(t, w.WriteFileHeader(65535, layers.LinkType(linkType)))
	for i, e := range events {
		data := e.Encode()
		ci := gopacket.CaptureInfo{Timestamp: time.Unix(int64(i), 0), CaptureLength: len(data), Length: len(data)}
		require.NoError(t, w.WritePacket(ci, data))
	}
	return path
}

func defaultConfig(t *testing.T) *config.Config {
	t.Helper()
	c, err := config.Load("", nil)
	require.NoError(t, err)
	return c
}

func TestRunDump(t *testing.T) {
	path := writeFixture(t, core.LinkTypeLinuxEvdev,
		evdev.Payload{Type: 1, Code: 30, Value: 1},
		evdev.Payload{Type: 0, Code: 0, Value: 0},
		evdev.Payload{Type: 2, Code: 0, Value: 5},
	)

	var buf bytes.Buffer
	err := runDump(context.Background(), defaultConfig(t), path, false, &buf)
	require.NoError(t, err)
	assert.Equal(t, "EV_KEY:\tKEY_A\t1\nEV_SYN:\tSYN_REPORT\t0\n(ev_code:2) not supported\n", buf.String())
}

func TestRunDumpAllBatches(t *testing.T) {
	events := make([]evdev.Payload, 7)
	path := writeFixture(t, core.LinkTypeLinuxEvdev, events...)

	c := defaultConfig(t)
	c.Decode.MaxRecords = 3

	var buf bytes.Buffer
	require.NoError(t, runDump(context.Background(), c, path, false, &buf))
	assert.Equal(t, 3, bytes.Count(buf.Bytes(), []byte("\n")))

	buf.Reset()
	require.NoError(t, runDump(context.Background(), c, path, true, &buf))
	assert.Equal(t, 7, bytes.Count(buf.Bytes(), []byte("\n")))
}

func TestRunDumpTruncated(t *testing.T) {
	path := writeFixture(t, core.LinkTypeLinuxEvdev, evdev.Payload{Type: 1, Code: 2, Value: 1})
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0)
	require.NoError(t, err)
	_, err = f.Write(make([]byte, 8))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	metricsPath := filepath.Join(t.TempDir(), "evdump.prom")
	c := defaultConfig(t)
	c.Metrics.Textfile = metricsPath

	var buf bytes.Buffer
	err = runDump(context.Background(), c, path, false, &buf)
	require.ErrorIs(t, err, core.ErrTruncatedRead)
	assert.Equal(t, "EV_KEY:\tKEY_1\t1\n", buf.String(), "records before the damage are still printed")

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `evdump_decode_runs_total{outcome="aborted"}`)
}

func TestRunDumpUnsupportedLinkType(t *testing.T) {
	path := writeFixture(t, uint32(layers.LinkTypeEthernet), evdev.Payload{})

	err := runDump(context.Background(), defaultConfig(t), path, false, &bytes.Buffer{})
	assert.ErrorIs(t, err, core.ErrUnsupportedLinkType)
}

func TestRunHeader(t *testing.T) {
	path := writeFixture(t, core.LinkTypeLinuxEvdev)

	var buf bytes.Buffer
	require.NoError(t, runHeader(path, "text", &buf))
	assert.Contains(t, buf.String(), "magic number : 0xa1b2c3d4")
	assert.Contains(t, buf.String(), "snapshot length : 65535")
	assert.Contains(t, buf.String(), "link-layer header type : 216 (LINUX_EVDEV)")

	buf.Reset()
	require.NoError(t, runHeader(path, "yaml", &buf))
	assert.Contains(t, buf.String(), "link_type: 216")
	assert.Contains(t, buf.String(), "version_major: 2")

	assert.Error(t, runHeader(path, "xml", &buf))
}

func TestRootCommandDump(t *testing.T) {
	path := writeFixture(t, core.LinkTypeLinuxEvdev,
		evdev.Payload{Type: 1, Code: 28, Value: 1},
		evdev.Payload{Type: 1, Code: 28, Value: 0},
	)

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"dump", "-n", "1", "--log-level", "error", path})

	require.NoError(t, root.Execute())
	assert.Equal(t, "EV_KEY:\tKEY_ENTER\t1\n", out.String())
}

func TestRootCommandValidate(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "evdump.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("decode:\n  format: detail\n"), 0644))

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"validate", "-c", configPath})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "VALID")
	assert.Contains(t, out.String(), "format: detail")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestRunDumpReportsOutputError(t *testing.T) {
	path := writeFixture(t, core.LinkTypeLinuxEvdev,
		evdev.Payload{Type: 1, Code: 30, Value: 1},
		evdev.Payload{Type: 0, Code: 0, Value: 0},
	)

	err := runDump(context.Background(), defaultConfig(t), path, false, failingWriter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write output")
	assert.Contains(t, err.Error(), "broken pipe")
}

func TestRunDumpCountsDecodeRuns(t *testing.T) {
	events := make([]evdev.Payload, 5)
	path := writeFixture(t, core.LinkTypeLinuxEvdev, events...)

	c := defaultConfig(t)
	c.Decode.MaxRecords = 2
	c.Metrics.Textfile = filepath.Join(t.TempDir(), "evdump.prom")

	before := testutil.ToFloat64(metrics.DecodeRunsTotal.WithLabelValues("limit"))
	require.NoError(t, runDump(context.Background(), c, path, true, new(bytes.Buffer)))
	assert.Equal(t, before+2, testutil.ToFloat64(metrics.DecodeRunsTotal.WithLabelValues("limit")))

	data, err := os.ReadFile(c.Metrics.Textfile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `evdump_decode_runs_total{outcome="limit"}`)
}
