package tactile

/*------------------------------------------------------------------
 *
 * Purpose:   	Frequency plan: where each channel sits in the
 *		audio spectrum.
 *
 * Description:	After up-conversion a channel occupies
 *
 *			[center - halfWidth, center + halfWidth]
 *
 *		and, because only the real part is transmitted, the
 *		mirror image of that range at negative frequency.
 *		Two channels are separable only if neither range nor
 *		mirror of one touches the other.  Everything has to
 *		stay below Nyquist of the audio rate.
 *
 *		A channel that is neither shifted down nor up is
 *		plain interpolation of a real signal; it may sit
 *		across DC because its real part loses nothing.
 *
 *---------------------------------------------------------------*/

import (
	"fmt"
)

type Carrier struct {
	DownHz float64 // Down-converter frequency at the tactile rate.  Usually -bandwidth/2.
	UpHz   float64 // Slot center at the audio rate.
}

func (c Carrier) passthrough() bool {
	return c.DownHz == 0 && c.UpHz == 0
}

type Slot struct {
	Center    float64 // Hz
	HalfWidth float64 // Hz
}

func (s Slot) Low() float64 {
	return s.Center - s.HalfWidth
}

func (s Slot) High() float64 {
	return s.Center + s.HalfWidth
}

/*------------------------------------------------------------------
 *
 * Name:        PlanCarriers
 *
 * Purpose:     Lay out evenly spaced Weaver carriers.
 *
 * Inputs:	numChannels	- How many.
 *		bandwidth	- Hz of tactile signal carried per channel.
 *		guard		- Hz of empty space between adjacent slots.
 *		base		- Lower edge of the first slot, Hz.
 *
 * Returns:	One Carrier per channel.  Each down-converts by half
 *		the bandwidth so the band [0, bandwidth] is centered
 *		on DC, and up-converts to the middle of its slot.
 *
 *----------------------------------------------------------------*/

func PlanCarriers(numChannels int, bandwidth float64, guard float64, base float64) []Carrier {
	var carriers = make([]Carrier, numChannels)

	for c := range carriers {
		carriers[c] = Carrier{
			DownHz: -bandwidth / 2,
			UpHz:   base + bandwidth/2 + float64(c)*(bandwidth+guard),
		}
	}

	return carriers
}

/*------------------------------------------------------------------
 *
 * Name:        ValidateSlots
 *
 * Purpose:     Make sure every channel can be recovered by a
 *		receiver.
 *
 * Inputs:	carriers	- Frequency assignment.
 *		halfWidth	- Hz either side of each carrier the filtered
 *				  signal can reach.
 *		audioRate	- Output sample rate, Hz.
 *
 * Returns:	nil, or an error wrapping ErrSlotRange or ErrSlotOverlap.
 *
 *----------------------------------------------------------------*/

func ValidateSlots(carriers []Carrier, halfWidth float64, audioRate float64) error {
	var nyquist = audioRate / 2

	for i, c := range carriers {
		var s = Slot{Center: c.UpHz, HalfWidth: halfWidth}

		if s.High() > nyquist {
			return fmt.Errorf("channel %d slot %.1f..%.1f Hz above Nyquist %.1f Hz: %w",
				i, s.Low(), s.High(), nyquist, ErrSlotRange)
		}
		if s.Low() < 0 && !c.passthrough() {
			return fmt.Errorf("channel %d slot %.1f..%.1f Hz crosses DC: %w",
				i, s.Low(), s.High(), ErrSlotRange)
		}
	}

	for i := range carriers {
		for j := i + 1; j < len(carriers); j++ {
			var a = carriers[i].UpHz
			var b = carriers[j].UpHz

			var gap = a - b
			if gap < 0 {
				gap = -gap
			}

			if gap < 2*halfWidth {
				return fmt.Errorf("channels %d and %d at %.1f and %.1f Hz need %.1f Hz spacing: %w",
					i, j, a, b, 2*halfWidth, ErrSlotOverlap)
			}

			// Mirror image of one against the other.
			if a+b < 2*halfWidth {
				return fmt.Errorf("channel %d at %.1f Hz overlaps mirror of channel %d at %.1f Hz: %w",
					i, a, j, b, ErrSlotOverlap)
			}
		}
	}

	return nil
}

// Slots returns the occupied range of each carrier.
func Slots(carriers []Carrier, halfWidth float64) []Slot {
	var slots = make([]Slot, len(carriers))
	for i, c := range carriers {
		slots[i] = Slot{Center: c.UpHz, HalfWidth: halfWidth}
	}

	return slots
}
