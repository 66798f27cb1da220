package tactile

/*------------------------------------------------------------------
 *
 * Purpose:   	Complex exponential oscillator used for frequency
 *		translation of each tactile channel.
 *
 * Description:	The phase is kept in cycles, in the range [0, 1).
 *		Every call to Next adds exactly one increment and
 *		reduces modulo 1, so the error stays at the level of
 *		one rounding step no matter how long the device runs.
 *		Recomputing the phase from a sample count would lose
 *		precision once the count gets large.
 *
 *---------------------------------------------------------------*/

import (
	"math"
)

type Oscillator struct {
	phase     float64 // Cycles, [0, 1).
	increment float64 // Cycles per sample.  Negative to shift down.
}

// NewOscillator returns an oscillator at phase zero.  The frequency is
// expressed as a fraction of the sample rate it will be stepped at.
func NewOscillator(frequency float64) Oscillator {
	var o = Oscillator{phase: 0, increment: 0}
	o.SetFrequency(frequency)

	return o
}

func (o *Oscillator) SetFrequency(frequency float64) {
	// Aliases are equivalent; keep the increment small.
	o.increment = frequency - math.Round(frequency)
}

func (o *Oscillator) Frequency() float64 {
	return o.increment
}

func (o *Oscillator) Phase() float64 {
	return o.phase
}

func (o *Oscillator) Reset() {
	o.phase = 0
}

/*------------------------------------------------------------------
 *
 * Name:        Next
 *
 * Purpose:     Return exp(j 2 pi phase) and advance by one sample.
 *
 *----------------------------------------------------------------*/

func (o *Oscillator) Next() complex128 {
	var s, c = math.Sincos(2 * math.Pi * o.phase)

	o.phase += o.increment
	o.phase -= math.Floor(o.phase)

	// Floor can leave exactly 1.0 when phase was a tiny negative number.
	if o.phase >= 1 {
		o.phase = 0
	}

	return complex(c, s)
}
