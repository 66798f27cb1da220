package tactile

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func assertComplexNear(t *testing.T, expected complex128, actual complex128, delta float64) {
	t.Helper()

	assert.InDelta(t, real(expected), real(actual), delta, "real part of %v", actual)
	assert.InDelta(t, imag(expected), imag(actual), delta, "imaginary part of %v", actual)
}

func Test_OscillatorQuarterCycle(t *testing.T) {
	var o = NewOscillator(0.25)

	for _, expected := range []complex128{1, 1i, -1, -1i, 1} {
		assertComplexNear(t, expected, o.Next(), 1e-12)
	}
}

func Test_OscillatorNegativeFrequency(t *testing.T) {
	var o = NewOscillator(-0.25)

	for _, expected := range []complex128{1, -1i, -1, 1i} {
		assertComplexNear(t, expected, o.Next(), 1e-12)
	}
}

func Test_OscillatorAlias(t *testing.T) {
	var o = NewOscillator(1.25)
	assert.InDelta(t, 0.25, o.Frequency(), 1e-12)

	o.SetFrequency(-0.75)
	assert.InDelta(t, 0.25, o.Frequency(), 1e-12)
}

func Test_OscillatorReset(t *testing.T) {
	var o = NewOscillator(0.1)
	o.Next()
	o.Next()
	assert.NotZero(t, o.Phase())

	o.Reset()
	assert.Zero(t, o.Phase())
	assertComplexNear(t, 1, o.Next(), 0)
}

func Test_OscillatorPhaseStaysInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var f = rapid.Float64Range(-3, 3).Draw(t, "f")
		var steps = rapid.IntRange(1, 2000).Draw(t, "steps")

		var o = NewOscillator(f)
		for range steps {
			var v = o.Next()
			var p = o.Phase()
			if p < 0 || p >= 1 {
				t.Fatalf("phase %v out of range after frequency %v", p, f)
			}
			if math.Abs(math.Hypot(real(v), imag(v))-1) > 1e-12 {
				t.Fatalf("magnitude of %v not 1", v)
			}
		}
	})
}
