package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(RecordsTotal.WithLabelValues("test"))
	RecordsTotal.WithLabelValues("test").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(RecordsTotal.WithLabelValues("test")))
}

func TestWriteTextfile(t *testing.T) {
	DecodeRunsTotal.WithLabelValues("exhausted").Inc()

	path := filepath.Join(t.TempDir(), "evdump.prom")
	require.NoError(t, WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "evdump_decode_runs_total")
}
