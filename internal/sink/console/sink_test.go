package console

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSinkEmit(t *testing.T) {
	var buf bytes.Buffer
	s := NewSink(&buf)

	require.NoError(t, s.Emit("EV_SYN:\tSYN_REPORT\t0"))
	require.NoError(t, s.Emit("(ev_code:4) not supported"))
	assert.Empty(t, buf.String(), "output is buffered until flush")

	require.NoError(t, s.Close())
	assert.Equal(t, "EV_SYN:\tSYN_REPORT\t0\n(ev_code:4) not supported\n", buf.String())
}
