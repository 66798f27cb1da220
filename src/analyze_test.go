package tactile

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// driveOneChannel feeds a steady tone into one channel of the default plan
// for a second and returns the output with the filter start-up removed.
func driveOneChannel(t *testing.T, channel int, hz float64) ([]float32, *Muxer) {
	t.Helper()

	var config = DefaultConfig()
	config.OutputGain = 1

	var m, err = config.NewMuxer()
	require.NoError(t, err)

	var frames = int(m.TactileRate())
	var source = NewToneSource(m.NumChannels(), m.TactileRate(), []Tone{{Channel: channel, Hz: hz, Amplitude: 1}}, 0, 1)

	var input = make([]float32, frames*m.NumChannels())
	var got, _ = source.ReadFrames(input)
	require.Equal(t, frames, got)

	var output = make([]float32, frames*m.RateFactor())
	m.ProcessSamples(input, frames, output)

	return output[2048:], m
}

func Test_WeaverToneLandsInSlot(t *testing.T) {
	var output, m = driveOneChannel(t, 3, 100)

	var spec = PowerSpectrum(output, m.AudioRate())

	// Band midpoint (250 Hz) maps to the slot center, 3000 Hz.
	assert.InDelta(t, 2850.0, spec.PeakHz(), 2.0)

	var sumSquares float64
	for _, s := range output {
		sumSquares += float64(s) * float64(s)
	}
	var rms = math.Sqrt(sumSquares / float64(len(output)))
	assert.InDelta(t, 1/math.Sqrt2, rms, 0.02)
}

// Slot power from the spectrum of the whole output.
func Test_SlotIsolation(t *testing.T) {
	for _, driven := range []int{0, 5, 11} {
		var output, m = driveOneChannel(t, driven, 60)

		var energies = MeasureSlots(output, m.AudioRate(), m.Slots())
		assert.Equal(t, driven, Strongest(energies))

		var report = Isolation(energies, driven)
		assert.InDelta(t, 0.0, report.RelDB[driven], 1e-9)
		assert.NotEqual(t, driven, report.WorstAt)
		assert.Less(t, report.Worst, -40.0, "crosstalk from channel %d into %d", driven, report.WorstAt)
	}
}

// heterodyneLevel moves centerHz to DC, low pass filters with taps and
// returns the mean power of what is left.  The filter output is only
// evaluated every stride samples.
func heterodyneLevel(samples []float32, audioRate float64, centerHz float64, taps []float64, stride int) float64 {
	var osc = NewOscillator(-centerHz / audioRate)
	var shifted = make([]complex128, len(samples))
	for i, s := range samples {
		shifted[i] = osc.Next() * complex(float64(s), 0)
	}

	var total float64
	var count = 0
	for n := len(taps) - 1; n < len(shifted); n += stride {
		var re, im float64
		for k, h := range taps {
			re += real(shifted[n-k]) * h
			im += imag(shifted[n-k]) * h
		}
		total += re*re + im*im
		count++
	}

	return total / float64(count)
}

// Receiver view of isolation: shift each slot down to DC and low pass it.
// Only the driven slot may have anything left.
func Test_SlotIsolationAfterHeterodyne(t *testing.T) {
	var lpf, err = DesignLowpass(WindowBlackman, 1024, 280/48000.0, 1)
	require.NoError(t, err)
	var taps = lpf.Taps()

	for _, driven := range []int{0, 5, 11} {
		var output, m = driveOneChannel(t, driven, 60)
		var slots = m.Slots()

		// Unit tone, so half amplitude once shifted to DC.
		var ref = heterodyneLevel(output, m.AudioRate(), slots[driven].Center, taps, 48)
		assert.InDelta(t, 0.25, ref, 0.05, "channel %d", driven)

		for c, slot := range slots {
			if c == driven {
				continue
			}
			var leak = heterodyneLevel(output, m.AudioRate(), slot.Center, taps, 48)
			assert.Less(t, powerDB(leak, ref), -40.0, "crosstalk from channel %d into %d", driven, c)
		}
	}
}

func Test_PowerSpectrumBands(t *testing.T) {
	var rate = 8000.0
	var samples = make([]float32, 8000)
	for i := range samples {
		samples[i] = float32(math.Sin(2 * math.Pi * 1000 * float64(i) / rate))
	}

	var spec = PowerSpectrum(samples, rate)
	assert.InDelta(t, 1000.0, spec.PeakHz(), 1)
	assert.InDelta(t, 4000.0, spec.Hz[len(spec.Hz)-1], 1e-9)

	var inBand = spec.Band(990, 1010)
	assert.Greater(t, inBand/spec.Total(), 0.999)

	assert.Empty(t, PowerSpectrum(nil, rate).Power)
	assert.Zero(t, PowerSpectrum(nil, rate).PeakHz())
}

func Test_IsolationSilentSlots(t *testing.T) {
	var energies = []SlotEnergy{
		{Slot: Slot{Center: 100, HalfWidth: 10}, Power: 4, PeakHz: 100},
		{Slot: Slot{Center: 200, HalfWidth: 10}, Power: 0.04, PeakHz: 200},
		{Slot: Slot{Center: 300, HalfWidth: 10}, Power: 0, PeakHz: 0},
	}

	var report = Isolation(energies, 0)
	assert.InDelta(t, -20.0, report.RelDB[1], 1e-9)
	assert.True(t, math.IsInf(report.RelDB[2], -1))
	assert.Equal(t, 1, report.WorstAt)
	assert.Equal(t, 0, Strongest(energies))
	assert.Equal(t, -1, Strongest(nil))
}
