package tactile

//go:generate go run ../cmd/gen_lpf -o lpf_table.go

import (
	"fmt"
	"math"
	"slices"
)

// Filter is an odd length, symmetric, real FIR kernel.  It is never
// modified after construction and may be shared by any number of channels.
type Filter struct {
	taps       []float64
	cutoff     float64 // Passband edge, fraction of the sample rate it runs at.
	transition float64 // Transition band width, same units.
}

// NewFilter checks the shape of taps and keeps a private copy.
func NewFilter(taps []float64, cutoff float64, transition float64) (*Filter, error) {
	if len(taps) == 0 {
		return nil, ErrEmptyFilter
	}
	if len(taps)%2 == 0 {
		return nil, fmt.Errorf("%d taps: %w", len(taps), ErrFilterShape)
	}

	var scale float64
	for _, t := range taps {
		scale = math.Max(scale, math.Abs(t))
	}

	var n = len(taps)
	for k := range n / 2 {
		if math.Abs(taps[k]-taps[n-1-k]) > 1e-9*scale {
			return nil, fmt.Errorf("tap %d = %g but tap %d = %g: %w", k, taps[k], n-1-k, taps[n-1-k], ErrFilterShape)
		}
	}

	if cutoff < 0 || transition < 0 {
		return nil, fmt.Errorf("negative cutoff or transition width: %w", ErrFilterShape)
	}

	return &Filter{
		taps:       slices.Clone(taps),
		cutoff:     cutoff,
		transition: transition,
	}, nil
}

// DefaultFilter is the compiled in table.  It assumes a 48 kHz audio rate,
// rate factor 24 and 500 Hz of bandwidth per channel.
func DefaultFilter() *Filter {
	var f, err = NewFilter(weaverLpfTaps[:], float64(weaverLpfCutoffHz)/weaverLpfAudioRate,
		transitionWidth(WindowHamming, weaverLpfNumTaps))
	Assert(err == nil)

	return f
}

func (f *Filter) Radius() int {
	return len(f.taps) / 2
}

func (f *Filter) NumTaps() int {
	return len(f.taps)
}

// Tap returns coefficient k, 0 <= k < NumTaps().
func (f *Filter) Tap(k int) float64 {
	return f.taps[k]
}

// Taps returns a copy of the coefficients.
func (f *Filter) Taps() []float64 {
	return slices.Clone(f.taps)
}

func (f *Filter) Cutoff() float64 {
	return f.cutoff
}

func (f *Filter) Transition() float64 {
	return f.transition
}

// HalfWidth is how far either side of its carrier a channel's energy
// reaches after filtering: the cutoff plus half the transition band.
func (f *Filter) HalfWidth() float64 {
	return f.cutoff + f.transition/2
}
