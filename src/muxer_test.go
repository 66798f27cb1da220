package tactile

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// One passthrough channel, rate factor 4, 7 tap triangle.  Small enough to
// work out by hand.
func passthroughMuxer(t *testing.T) *Muxer {
	t.Helper()

	var m, err = NewMuxer(MuxerConfig{ //nolint:exhaustruct
		NumChannels: 1,
		TactileRate: 100,
		RateFactor:  4,
		Carriers:    []Carrier{{DownHz: 0, UpHz: 0}},
	}, triangleFilter(t))
	require.NoError(t, err)

	return m
}

func defaultMuxer(t *testing.T) *Muxer {
	t.Helper()

	var m, err = DefaultConfig().NewMuxer()
	require.NoError(t, err)

	return m
}

func Test_MuxerImpulse(t *testing.T) {
	var m = passthroughMuxer(t)

	var input = []float32{1, 0, 0, 0}
	var output = make([]float32, 16)
	m.ProcessSamples(input, 4, output)

	var expected = []float32{0.25, 0.5, 0.75, 1, 0.75, 0.5, 0.25, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	assert.InDeltaSlice(t, expected, output, 1e-7)
}

func Test_MuxerImpulseSplitAcrossBlocks(t *testing.T) {
	var m = passthroughMuxer(t)

	var a = make([]float32, 8)
	var b = make([]float32, 8)
	m.ProcessSamples([]float32{1, 0}, 2, a)
	m.ProcessSamples([]float32{0, 0}, 2, b)

	var expected = []float32{0.25, 0.5, 0.75, 1, 0.75, 0.5, 0.25, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	assert.InDeltaSlice(t, expected, append(a, b...), 1e-7)
}

func Test_MuxerZeroInZeroOut(t *testing.T) {
	var m = defaultMuxer(t)

	var input = make([]float32, 50*m.NumChannels())
	var output = make([]float32, 50*m.RateFactor())
	m.ProcessSamples(input, 50, output)

	for _, s := range output {
		assert.Zero(t, s) //nolint:testifylint
	}
}

func Test_MuxerInitIdempotent(t *testing.T) {
	var m = defaultMuxer(t)
	var frames = 40

	var input = make([]float32, frames*m.NumChannels())
	for i := range input {
		input[i] = float32(math.Sin(float64(i) * 0.37))
	}

	var first = make([]float32, frames*m.RateFactor())
	m.ProcessSamples(input, frames, first)

	m.Init()
	m.Init()

	for c := range m.NumChannels() {
		var ch = m.Channel(c)
		assert.Equal(t, make([]complex128, len(ch.history)), ch.history, "channel %d history", c)
		assert.Zero(t, ch.down.Phase(), "channel %d down-converter phase", c) //nolint:testifylint
		assert.Zero(t, ch.up.Phase(), "channel %d up-converter phase", c)     //nolint:testifylint
	}

	var second = make([]float32, frames*m.RateFactor())
	m.ProcessSamples(input, frames, second)

	assert.Equal(t, first, second)
}

func Test_MuxerProcessSamplesDoesNotAllocate(t *testing.T) {
	var m = defaultMuxer(t)
	var frames = 64

	var input = make([]float32, frames*m.NumChannels())
	for i := range input {
		input[i] = float32(math.Sin(float64(i) * 0.11))
	}
	var output = make([]float32, frames*m.RateFactor())

	var allocs = testing.AllocsPerRun(100, func() {
		m.ProcessSamples(input, frames, output)
	})

	assert.Zero(t, allocs) //nolint:testifylint
}

func Test_MuxerPlanarMatchesInterleaved(t *testing.T) {
	var config = MuxerConfig{
		NumChannels: 3,
		TactileRate: 2000,
		RateFactor:  24,
		Carriers:    PlanCarriers(3, 500, 250, 500),
		OutputGain:  0.5,
		Layout:      LayoutInterleaved,
	}

	var interleaved, err = NewMuxer(config, DefaultFilter())
	require.NoError(t, err)

	config.Layout = LayoutPlanar
	var planar, planarErr = NewMuxer(config, DefaultFilter())
	require.NoError(t, planarErr)

	var frames = 30
	var in = make([]float32, frames*3)
	var inPlanar = make([]float32, frames*3)
	for f := range frames {
		for c := range 3 {
			var v = float32(math.Cos(float64(f*(c+1)) * 0.2))
			in[f*3+c] = v
			inPlanar[c*frames+f] = v
		}
	}

	var a = make([]float32, frames*24)
	var b = make([]float32, frames*24)
	interleaved.ProcessSamples(in, frames, a)
	planar.ProcessSamples(inPlanar, frames, b)

	assert.Equal(t, a, b)
	assert.Equal(t, "planar", planar.Layout().String())
}

func Test_MuxerBufferMismatchPanics(t *testing.T) {
	var m = passthroughMuxer(t)

	assert.ErrorIs(t, m.CheckBuffers(3, 4, 16), ErrBufferSize)
	assert.ErrorIs(t, m.CheckBuffers(4, 4, 15), ErrBufferSize)
	assert.ErrorIs(t, m.CheckBuffers(0, -1, 0), ErrBufferSize)
	assert.NoError(t, m.CheckBuffers(0, 0, 0))

	assert.Panics(t, func() {
		m.ProcessSamples(make([]float32, 3), 4, make([]float32, 16))
	})
}

func Test_MuxerConfigErrors(t *testing.T) {
	var good = MuxerConfig{
		NumChannels: 2,
		TactileRate: 2000,
		RateFactor:  24,
		Carriers:    PlanCarriers(2, 500, 250, 500),
		OutputGain:  1,
		Layout:      LayoutInterleaved,
	}

	var _, err = NewMuxer(good, DefaultFilter())
	require.NoError(t, err)

	var cases = []struct {
		name     string
		mutate   func(*MuxerConfig)
		filter   *Filter
		expected error
	}{
		{"no channels", func(c *MuxerConfig) { c.NumChannels = 0; c.Carriers = nil }, DefaultFilter(), ErrChannelCount},
		{"carrier count", func(c *MuxerConfig) { c.NumChannels = 3 }, DefaultFilter(), ErrChannelCount},
		{"rate factor", func(c *MuxerConfig) { c.RateFactor = 0 }, DefaultFilter(), ErrRateFactor},
		{"tactile rate", func(c *MuxerConfig) { c.TactileRate = 0 }, DefaultFilter(), ErrRateFactor},
		{"no filter", func(*MuxerConfig) {}, nil, ErrEmptyFilter},
		{"overlap", func(c *MuxerConfig) { c.Carriers[1].UpHz = c.Carriers[0].UpHz + 100 }, DefaultFilter(), ErrSlotOverlap},
		{"above nyquist", func(c *MuxerConfig) { c.Carriers[1].UpHz = 23990 }, DefaultFilter(), ErrSlotRange},
		{"down beyond nyquist", func(c *MuxerConfig) { c.Carriers[0].DownHz = -1500 }, DefaultFilter(), ErrSlotRange},
		{"layout", func(c *MuxerConfig) { c.Layout = Layout(7) }, DefaultFilter(), ErrBufferSize},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var config = good
			config.Carriers = PlanCarriers(2, 500, 250, 500)
			tc.mutate(&config)

			var m, err = NewMuxer(config, tc.filter)
			assert.Nil(t, m)
			assert.ErrorIs(t, err, tc.expected)
			assert.ErrorIs(t, err, ErrConfig)
		})
	}
}

func Test_MuxerDefaultPlan(t *testing.T) {
	var m = defaultMuxer(t)

	assert.Equal(t, 12, m.NumChannels())
	assert.Equal(t, 24, m.RateFactor())
	assert.InDelta(t, 48000.0, m.AudioRate(), 0)

	var slots = m.Slots()
	require.Len(t, slots, 12)
	assert.InDelta(t, 750.0, slots[0].Center, 1e-9)
	assert.InDelta(t, 9000.0, slots[11].Center, 1e-9)
	assert.Greater(t, slots[0].HalfWidth, 250.0)
	assert.Less(t, slots[0].High(), slots[1].Low())

	// Default output gain 1/12 times 12 channels leaves the peak sub-filter gain.
	assert.InDelta(t, m.Bank().PeakGain(), m.Headroom(), 1e-9)
	assert.Greater(t, m.Headroom(), 2.0)
	assert.Less(t, m.Headroom(), 4.0)
}

func Test_MuxerOutputLengthAndBound(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var n = rapid.IntRange(1, 3).Draw(t, "channels")
		var L = rapid.IntRange(1, 6).Draw(t, "L")
		var frames = rapid.IntRange(0, 20).Draw(t, "frames")
		var gain = rapid.Float64Range(0.1, 2).Draw(t, "gain")

		// Small filter and widely spaced slots so any L works.
		var f, err = NewFilter([]float64{0.5, 1, 0.5}, 0.01, 0)
		if err != nil {
			t.Fatalf("filter: %v", err)
		}

		var tactileRate = 1000.0
		var audioRate = tactileRate * float64(L)
		var carriers = make([]Carrier, n)
		for c := range carriers {
			carriers[c] = Carrier{DownHz: 0, UpHz: audioRate * (0.05 + 0.1*float64(c))}
		}

		var m, muxErr = NewMuxer(MuxerConfig{
			NumChannels: n,
			TactileRate: tactileRate,
			RateFactor:  L,
			Carriers:    carriers,
			OutputGain:  gain,
			Layout:      LayoutInterleaved,
		}, f)
		if muxErr != nil {
			t.Fatalf("muxer: %v", muxErr)
		}

		var input = rapid.SliceOfN(rapid.Float32Range(-1, 1), frames*n, frames*n).Draw(t, "input")
		var output = make([]float32, frames*L)

		if m.CheckBuffers(len(input), frames, len(output)) != nil {
			t.Fatalf("buffers of %d and %d rejected for %d frames", len(input), len(output), frames)
		}

		m.ProcessSamples(input, frames, output)

		for i, s := range output {
			if math.Abs(float64(s)) > m.Headroom()+1e-5 {
				t.Fatalf("output[%d] = %v exceeds headroom %v", i, s, m.Headroom())
			}
		}
	})
}
