package tactile

/*------------------------------------------------------------------
 *
 * Purpose:   	Polyphase view of the interpolation filter.
 *
 * Description:	Upsampling by L would normally insert L-1 zeros after
 *		every input sample and run the whole filter at the
 *		output rate.  Only every L-th tap ever lines up with a
 *		real sample, so output instant j (0 <= j < L) after the
 *		newest input n is
 *
 *			y[nL+j] = sum over i of h[j + iL] * x[n - i]
 *
 *		i.e. the sub-filter made of the taps at stride L
 *		starting at offset j.
 *
 *		Each sub-filter is stored reversed so it can be dotted
 *		directly with the tail of the oldest-first history
 *		window kept by a Channel.
 *
 *---------------------------------------------------------------*/

import (
	"math"
)

type FilterBank struct {
	filter     *Filter
	rateFactor int
	phases     [][]float64 // phases[j][t] = h[j + (len-1-t)L]
	peakGain   float64
}

func NewFilterBank(filter *Filter, rateFactor int) (*FilterBank, error) {
	if rateFactor <= 0 {
		return nil, ErrRateFactor
	}
	if filter == nil || filter.NumTaps() == 0 {
		return nil, ErrEmptyFilter
	}

	var fb = &FilterBank{
		filter:     filter,
		rateFactor: rateFactor,
		phases:     make([][]float64, rateFactor),
		peakGain:   0,
	}

	var n = filter.NumTaps()

	for j := range rateFactor {
		var count = 0
		if j < n {
			count = (n-1-j)/rateFactor + 1
		}

		var sub = make([]float64, count)
		var l1 float64
		for i := range count {
			var h = filter.Tap(j + i*rateFactor)
			sub[count-1-i] = h
			l1 += math.Abs(h)
		}

		fb.phases[j] = sub
		fb.peakGain = math.Max(fb.peakGain, l1)
	}

	return fb, nil
}

func (fb *FilterBank) RateFactor() int {
	return fb.rateFactor
}

func (fb *FilterBank) Filter() *Filter {
	return fb.filter
}

// Phase returns the sub-filter for output phase p in tap order,
// h[p], h[p+L], h[p+2L], ...
func (fb *FilterBank) Phase(p int) []float64 {
	Assert(p >= 0 && p < fb.rateFactor)

	var rev = fb.phases[p]
	var out = make([]float64, len(rev))
	for i := range rev {
		out[i] = rev[len(rev)-1-i]
	}

	return out
}

// Longest sub-filter; how much input history the bank actually reads.
func (fb *FilterBank) Span() int {
	return len(fb.phases[0])
}

// PeakGain is the largest output magnitude one channel can produce
// from inputs bounded by 1: the biggest L1 norm of any sub-filter.
func (fb *FilterBank) PeakGain() float64 {
	return fb.peakGain
}

// Interpolate writes the RateFactor outputs for the newest sample of
// window, which is oldest-first and at least Span() long.
func (fb *FilterBank) Interpolate(window []complex128, out []complex128) {
	var w = len(window)

	for j, sub := range fb.phases {
		var tail = window[w-len(sub):]
		var re, im float64
		for t, h := range sub {
			var x = tail[t]
			re += real(x) * h
			im += imag(x) * h
		}
		out[j] = complex(re, im)
	}
}
