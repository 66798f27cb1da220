package tactile

/*------------------------------------------------------------------
 *
 * Purpose:   	State and per-sample processing for one tactile
 *		channel.
 *
 * Description:	Weaver style single sideband:
 *
 *		1. Shift the middle of the channel's band down to DC
 *		   by multiplying the real input by a complex
 *		   exponential.
 *		2. Low pass filter and interpolate up to the audio
 *		   rate in one polyphase pass.
 *		3. Shift back up to the channel's carrier slot.  The
 *		   Muxer takes the real part of the sum of channels.
 *
 *		History is a ring with every sample written twice,
 *		at cursor and cursor+size, so the most recent size
 *		samples are always one contiguous slice.  Inserting
 *		is O(1) instead of shifting the whole buffer.
 *
 *---------------------------------------------------------------*/

type Channel struct {
	index int

	down Oscillator // Tactile rate.
	up   Oscillator // Audio rate.

	history []complex128 // 2 * size.
	size    int          // Filter taps, 2R+1.
	cursor  int          // Oldest sample of the window.

	bank *FilterBank
	out  []complex128 // RateFactor results of the last Step.
}

func newChannel(index int, bank *FilterBank, downFreq float64, upFreq float64) *Channel {
	var size = bank.Filter().NumTaps()

	var c = &Channel{
		index:   index,
		down:    NewOscillator(downFreq),
		up:      NewOscillator(upFreq),
		history: make([]complex128, 2*size),
		size:    size,
		cursor:  0,
		bank:    bank,
		out:     make([]complex128, bank.RateFactor()),
	}

	return c
}

func (c *Channel) Index() int {
	return c.index
}

// Reset is the only way back to a known state: zero phase, empty history.
func (c *Channel) Reset() {
	c.down.Reset()
	c.up.Reset()
	clear(c.history)
	c.cursor = 0
	clear(c.out)
}

// History returns the most recent 2R+1 down-converted samples, oldest
// first.  The slice aliases internal state and is only valid until the
// next Step.
func (c *Channel) History() []complex128 {
	return c.history[c.cursor : c.cursor+c.size]
}

/*------------------------------------------------------------------
 *
 * Name:        Step
 *
 * Purpose:     Process one tactile rate input sample.
 *
 * Inputs:	x	- New input sample.
 *
 * Returns:	RateFactor complex baseband outputs, in time order.
 *		The slice is reused by the next call.
 *
 *----------------------------------------------------------------*/

func (c *Channel) Step(x float64) []complex128 {
	/* Shift band midpoint down to DC. */
	var lo = c.down.Next()
	var s = complex(real(lo)*x, imag(lo)*x)

	c.history[c.cursor] = s
	c.history[c.cursor+c.size] = s
	c.cursor++
	if c.cursor == c.size {
		c.cursor = 0
	}

	c.bank.Interpolate(c.History(), c.out)

	return c.out
}

// UpConvert returns the real part of y shifted to the channel's slot and
// advances the up-converter by one audio sample.
func (c *Channel) UpConvert(y complex128) float64 {
	var lo = c.up.Next()

	return real(y)*real(lo) - imag(y)*imag(lo)
}
