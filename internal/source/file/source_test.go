package file

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAndRewind(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.pcap")
	require.NoError(t, os.WriteFile(path, []byte("capture-bytes"), 0644))

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()
	assert.Equal(t, path, s.Path())

	data, err := io.ReadAll(s)
	require.NoError(t, err)
	assert.Equal(t, "capture-bytes", string(data))

	require.NoError(t, s.SeekTo(8))
	data, err = io.ReadAll(s)
	require.NoError(t, err)
	assert.Equal(t, "bytes", string(data))

	assert.NoError(t, s.Close())
	assert.NoError(t, s.Close(), "second close is a no-op")
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.pcap"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open capture file")

	_, err = Open("")
	assert.Error(t, err)
}
