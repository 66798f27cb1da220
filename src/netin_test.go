package tactile

import (
	"errors"
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NetSource(t *testing.T) {
	var ns, err = ListenNetSource("127.0.0.1:0", 3, 100)
	require.NoError(t, err)
	assert.Positive(t, ns.Port())

	for _, frames := range [][]float32{{0.5, 0, -0.5}, {0.25, 0.125, -1}} {
		var conn, dialErr = net.Dial("tcp", ns.Addr().String())
		require.NoError(t, dialErr)

		var raw = make([]byte, FrameBytes(3))
		EncodeFrames(raw, frames)
		var _, writeErr = conn.Write(raw)
		require.NoError(t, writeErr)
		require.NoError(t, conn.Close())
	}

	// Both clients feed the same stream, one after the other.
	var got = waitForFrames(t, ns, 3, 2)
	assert.Equal(t, []float32{0.5, 0, -0.5, 0.25, 0.125, -1}, got)

	require.NoError(t, ns.Close())

	assert.Eventually(t, func() bool {
		var n, readErr = ns.ReadFrames(make([]float32, 3))
		return n == 0 && errors.Is(readErr, io.EOF)
	}, 5*time.Second, time.Millisecond)
}
