package tactile

/*------------------------------------------------------------------
 *
 * Purpose:     Generate the interpolation low pass filter shared by
 *		all of the tactile channels.
 *
 *----------------------------------------------------------------*/

import (
	"fmt"
	"math"
)

type WindowType int

func ParseWindowType(s string) (WindowType, error) {
	switch s {
	case "truncated":
		return WindowTruncated, nil
	case "cosine":
		return WindowCosine, nil
	case "hamming":
		return WindowHamming, nil
	case "blackman":
		return WindowBlackman, nil
	case "flattop":
		return WindowFlattop, nil
	default:
		return WindowHamming, fmt.Errorf("window %q: %w", s, ErrFilterShape)
	}
}

func (w WindowType) String() string {
	switch w {
	case WindowTruncated:
		return "truncated"
	case WindowCosine:
		return "cosine"
	case WindowHamming:
		return "hamming"
	case WindowBlackman:
		return "blackman"
	case WindowFlattop:
		return "flattop"
	default:
		return fmt.Sprintf("WindowType(%d)", int(w))
	}
}

const (
	WindowTruncated WindowType = iota
	WindowCosine
	WindowHamming
	WindowBlackman
	WindowFlattop
)

/*------------------------------------------------------------------
 *
 * Name:        window
 *
 * Purpose:     Filter window shape functions.
 *
 * Inputs:   	windowType	- WindowHamming, etc.
 *		size		- Number of filter taps.
 *		j		- Index in range of 0 to size-1.
 *
 * Returns:     Multiplier for the window shape.
 *
 *----------------------------------------------------------------*/

func window(windowType WindowType, _size int, _j int) float64 {

	var size = float64(_size) // Save on a lot of casting later
	var j = float64(_j)

	var center = 0.5 * (size - 1)
	var w float64

	switch windowType {

	case WindowCosine:
		w = math.Cos(float64(j-center) / size * math.Pi)

	case WindowHamming:
		w = 0.53836 - 0.46164*math.Cos((j*2*math.Pi)/(size-1))

	case WindowBlackman:
		w = 0.42659 - 0.49656*math.Cos((j*2*math.Pi)/(size-1)) +
			0.076849*math.Cos((j*4*math.Pi)/(size-1))

	case WindowFlattop:
		w = 1.0 - 1.93*math.Cos((j*2*math.Pi)/(size-1)) +
			1.29*math.Cos((j*4*math.Pi)/(size-1)) -
			0.388*math.Cos((j*6*math.Pi)/(size-1)) +
			0.028*math.Cos((j*8*math.Pi)/(size-1))

	case WindowTruncated:
		fallthrough
	default:
		w = 1.0
	}

	return w
}

// Approximate transition width of a windowed sinc, in cycles per sample,
// for a filter of the given length.
func transitionWidth(windowType WindowType, size int) float64 {
	switch windowType {
	case WindowBlackman:
		return 5.5 / float64(size)
	case WindowFlattop:
		return 7.6 / float64(size)
	case WindowCosine:
		return 2.0 / float64(size)
	case WindowHamming:
		return 3.3 / float64(size)
	case WindowTruncated:
		fallthrough
	default:
		return 0.9 / float64(size)
	}
}

/*------------------------------------------------------------------
 *
 * Name:        DesignWeaverLowpass
 *
 * Purpose:     Generate the low pass kernel used to band limit and
 *		interpolate each channel.
 *
 * Inputs:   	radius		- Taps each side of the center.  Filter size is 2*radius+1.
 *		cutoff		- Cutoff frequency as fraction of the (audio) sampling frequency.
 *		gain		- DC gain.  Use 2 * rate factor: the rate factor
 *				  makes up for the zeros of interpolation and
 *				  the 2 for the sideband lost taking the real part.
 *
 * Returns:	Filter, or error if parameters make no sense.
 *
 * Description:	Hamming windowed sinc.  Only one half is computed and
 *		the other half is mirrored so the result is exactly
 *		symmetric.
 *
 *----------------------------------------------------------------*/

func DesignWeaverLowpass(radius int, cutoff float64, gain float64) (*Filter, error) {
	return DesignLowpass(WindowHamming, radius, cutoff, gain)
}

// DesignLowpass is DesignWeaverLowpass with a choice of window.
func DesignLowpass(windowType WindowType, radius int, cutoff float64, gain float64) (*Filter, error) {
	if radius < 1 {
		return nil, fmt.Errorf("filter radius %d: %w", radius, ErrEmptyFilter)
	}
	if cutoff <= 0 || cutoff >= 0.5 {
		return nil, fmt.Errorf("filter cutoff %g not between 0 and 0.5: %w", cutoff, ErrFilterShape)
	}

	var size = 2*radius + 1
	var half = make([]float64, radius+1)

	for d := 0; d <= radius; d++ {
		var sinc float64

		if d == 0 {
			sinc = 2 * cutoff
		} else {
			sinc = math.Sin(2*math.Pi*cutoff*float64(d)) / (math.Pi * float64(d))
		}

		half[d] = sinc * window(windowType, size, radius+d)
	}

	var taps = make([]float64, size)
	for k := range size {
		var d = k - radius
		if d < 0 {
			d = -d
		}
		taps[k] = half[d]
	}

	/*
	 * Normalize for requested gain at DC.
	 */
	var G float64 = 0
	for _, t := range taps {
		G += t
	}
	for k := range taps {
		taps[k] = taps[k] / G * gain
	}

	return NewFilter(taps, cutoff, transitionWidth(windowType, size))
} /* end DesignLowpass */
