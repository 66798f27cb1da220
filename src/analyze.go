package tactile

/*------------------------------------------------------------------
 *
 * Purpose:	Measure how much of a multiplexed signal falls in each
 *		carrier slot.
 *
 * Description:	One windowed FFT over the whole capture.  Power in a
 *		slot is the sum of |X[k]|^2 over bins inside it.  Used
 *		by mux_analyze and by the crosstalk tests.
 *
 *---------------------------------------------------------------*/

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
	gwindow "gonum.org/v1/gonum/dsp/window"
	"gonum.org/v1/gonum/floats"
)

type Spectrum struct {
	Hz    []float64
	Power []float64
}

// PowerSpectrum of real samples at audioRate, Hann windowed.  Bins run
// from DC to Nyquist.
func PowerSpectrum(samples []float32, audioRate float64) Spectrum {
	var n = len(samples)
	if n == 0 {
		return Spectrum{Hz: nil, Power: nil}
	}

	var seq = make([]float64, n)
	for i, s := range samples {
		seq[i] = float64(s)
	}
	gwindow.Hann(seq)

	var fft = fourier.NewFFT(n)
	var coeffs = fft.Coefficients(nil, seq)

	var spec = Spectrum{
		Hz:    make([]float64, len(coeffs)),
		Power: make([]float64, len(coeffs)),
	}
	for k, c := range coeffs {
		spec.Hz[k] = fft.Freq(k) * audioRate
		spec.Power[k] = real(c)*real(c) + imag(c)*imag(c)
	}

	return spec
}

// PeakHz is the frequency of the strongest bin.
func (s Spectrum) PeakHz() float64 {
	if len(s.Power) == 0 {
		return 0
	}

	return s.Hz[floats.MaxIdx(s.Power)]
}

// Band sums power over [lo, hi] Hz.
func (s Spectrum) Band(lo float64, hi float64) float64 {
	var total float64
	for k, hz := range s.Hz {
		if hz >= lo && hz <= hi {
			total += s.Power[k]
		}
	}

	return total
}

func (s Spectrum) Total() float64 {
	return floats.Sum(s.Power)
}

type SlotEnergy struct {
	Slot   Slot
	Power  float64
	PeakHz float64 // Strongest bin inside the slot.
}

func MeasureSlots(samples []float32, audioRate float64, slots []Slot) []SlotEnergy {
	var spec = PowerSpectrum(samples, audioRate)
	var result = make([]SlotEnergy, len(slots))

	for i, slot := range slots {
		result[i] = SlotEnergy{Slot: slot, Power: 0, PeakHz: 0}

		var best = -1.0
		for k, hz := range spec.Hz {
			if hz < slot.Low() || hz > slot.High() {
				continue
			}
			result[i].Power += spec.Power[k]
			if spec.Power[k] > best {
				best = spec.Power[k]
				result[i].PeakHz = hz
			}
		}
	}

	return result
}

/*------------------------------------------------------------------
 *
 * Name:        Isolation
 *
 * Purpose:     Crosstalk from one driven channel into the others.
 *
 * Inputs:	energies	- From MeasureSlots.
 *		driven		- Index of the only channel with input.
 *
 * Returns:	Power in each slot relative to the driven slot, dB.
 *		The driven slot itself is 0.  Worst is the largest
 *		of the others, -Inf if there are none.
 *
 *----------------------------------------------------------------*/

type IsolationReport struct {
	Driven  int
	RelDB   []float64
	Worst   float64
	WorstAt int // -1 if only one slot.
}

func Isolation(energies []SlotEnergy, driven int) IsolationReport {
	var report = IsolationReport{
		Driven:  driven,
		RelDB:   make([]float64, len(energies)),
		Worst:   math.Inf(-1),
		WorstAt: -1,
	}

	var ref = energies[driven].Power

	for i, e := range energies {
		report.RelDB[i] = powerDB(e.Power, ref)
		if i != driven && report.RelDB[i] > report.Worst {
			report.Worst = report.RelDB[i]
			report.WorstAt = i
		}
	}

	return report
}

// Strongest is the slot with the most power, -1 for none.
func Strongest(energies []SlotEnergy) int {
	if len(energies) == 0 {
		return -1
	}

	var powers = make([]float64, len(energies))
	for i, e := range energies {
		powers[i] = e.Power
	}

	return floats.MaxIdx(powers)
}

func powerDB(p float64, ref float64) float64 {
	if p <= 0 {
		return math.Inf(-1)
	}
	if ref <= 0 {
		return math.Inf(1)
	}

	return 10 * math.Log10(p/ref)
}
