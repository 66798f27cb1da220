package tactile

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ToneSourceLimitAndPulse(t *testing.T) {
	// 10 frames per second, keyed 0.2 s on and off, 1 second long.
	var ts = NewToneSource(2, 10, []Tone{{Channel: 1, Hz: 0, Amplitude: 0.5}}, 0.2, 1)

	var buf = make([]float32, 2*4)
	var all []float32

	for {
		var n, err = ts.ReadFrames(buf)
		all = append(all, buf[:n*2]...)
		if err != nil {
			require.ErrorIs(t, err, io.EOF)
			break
		}
	}

	require.Len(t, all, 20)

	var expected = []float32{0.5, 0.5, 0, 0, 0.5, 0.5, 0, 0, 0.5, 0.5}
	for f := range 10 {
		assert.Zero(t, all[f*2], "channel 0 frame %d", f)
		assert.InDelta(t, expected[f], all[f*2+1], 1e-7, "channel 1 frame %d", f)
	}

	var n, err = ts.ReadFrames(buf)
	assert.Zero(t, n)
	assert.ErrorIs(t, err, io.EOF)
	assert.NoError(t, ts.Close())
}

func Test_FrameQueueDropsOldest(t *testing.T) {
	var q = newFrameQueue(2, 3)

	for i := range 5 {
		q.push([]float32{float32(i), float32(-i)})
	}
	assert.Equal(t, 2, q.Dropped())

	var dst = make([]float32, 10)
	var n, err = q.pop(dst)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []float32{2, -2, 3, -3, 4, -4}, dst[:6])

	n, err = q.pop(dst)
	assert.Zero(t, n)
	assert.NoError(t, err)

	q.push([]float32{7, 8})
	q.finish(io.EOF)

	n, err = q.pop(dst)
	assert.Equal(t, 1, n)
	assert.ErrorIs(t, err, io.EOF)
}

func waitForFrames(t *testing.T, src Source, channels int, want int) []float32 {
	t.Helper()

	var got []float32
	var buf = make([]float32, channels*16)
	var deadline = time.Now().Add(5 * time.Second)

	for len(got) < want*channels && time.Now().Before(deadline) {
		var n, err = src.ReadFrames(buf)
		got = append(got, buf[:n*channels]...)
		if err != nil {
			break
		}
		if n == 0 {
			time.Sleep(time.Millisecond)
		}
	}

	return got
}

func Test_StreamSource(t *testing.T) {
	var raw = make([]byte, 3*FrameBytes(2)+1) // Partial frame at the end.
	EncodeFrames(raw, []float32{0.5, -0.5, 0.25, -0.25, 0, 0.75})

	var ss = NewStreamSource(bytes.NewReader(raw), 2, 100)
	var got = waitForFrames(t, ss, 2, 3)

	assert.Equal(t, []float32{0.5, -0.5, 0.25, -0.25, 0, 0.75}, got)
	assert.Zero(t, ss.Dropped())

	assert.Eventually(t, func() bool {
		var n, err = ss.ReadFrames(make([]float32, 2))
		return n == 0 && errors.Is(err, io.EOF)
	}, 5*time.Second, time.Millisecond)
	assert.NoError(t, ss.Close())
}

func Test_FrameQueueNeedsCapacity(t *testing.T) {
	assert.Panics(t, func() { newFrameQueue(2, 0) })
	assert.Panics(t, func() { newFrameQueue(2, -1) })
	assert.Panics(t, func() { newFrameQueue(0, 10) })
}
