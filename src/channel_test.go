package tactile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func Test_ChannelHistoryIsLastInputs(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var x = rapid.SliceOfN(rapid.Float64Range(-1, 1), 1, 40).Draw(t, "x")

		var f, err = NewFilter(triangleTaps, 0.125, 0)
		if err != nil {
			t.Fatalf("filter: %v", err)
		}
		var fb, _ = NewFilterBank(f, 4)

		// No down-conversion: history holds the inputs themselves.
		var c = newChannel(0, fb, 0, 0)
		var size = f.NumTaps()

		for n, v := range x {
			c.Step(v)

			var h = c.History()
			if len(h) != size {
				t.Fatalf("history length %d", len(h))
			}

			for k := range size {
				var idx = n - (size - 1) + k
				var expected = 0.0
				if idx >= 0 {
					expected = x[idx]
				}
				if h[k] != complex(expected, 0) {
					t.Fatalf("after %d inputs history[%d] = %v, want %v", n+1, k, h[k], expected)
				}
			}
		}
	})
}

func Test_ChannelReset(t *testing.T) {
	var fb, err = NewFilterBank(triangleFilter(t), 4)
	require.NoError(t, err)

	var c = newChannel(2, fb, 0.1, 0.2)
	assert.Equal(t, 2, c.Index())

	var first = make([]complex128, 0)
	for _, x := range []float64{1, -0.5, 0.25} {
		first = append(first, c.Step(x)...)
	}

	c.Reset()
	for _, h := range c.History() {
		assert.Zero(t, h)
	}

	var second = make([]complex128, 0)
	for _, x := range []float64{1, -0.5, 0.25} {
		second = append(second, c.Step(x)...)
	}

	assert.Equal(t, first, second)
}

func Test_ChannelUpConvert(t *testing.T) {
	var fb, err = NewFilterBank(triangleFilter(t), 4)
	require.NoError(t, err)

	// Up-converter at a quarter of the audio rate: multiplies by 1, j, -1, -j.
	var c = newChannel(0, fb, 0, 0.25)

	assert.InDelta(t, 2.0, c.UpConvert(2+3i), 1e-12)
	assert.InDelta(t, -3.0, c.UpConvert(2+3i), 1e-12)
	assert.InDelta(t, -2.0, c.UpConvert(2+3i), 1e-12)
	assert.InDelta(t, 3.0, c.UpConvert(2+3i), 1e-12)
}
