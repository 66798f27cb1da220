package tactile

/*------------------------------------------------------------------
 *
 * Purpose:   	Frequency division multiplexer combining several slow
 *		tactile actuator signals into one real audio signal.
 *
 * Description:	Every tactile frame (one sample per channel) becomes
 *		RateFactor audio samples.  Each channel is moved into
 *		its own carrier slot, the channels are summed and the
 *		real part is the transmitted waveform.
 *
 *		Configuration is checked once, in NewMuxer.  After
 *		that ProcessSamples can not fail; it does no allocation
 *		and no logging so it is safe to call from the
 *		real-time loop.
 *
 *		Not safe for concurrent use.  The caller serializes.
 *
 *---------------------------------------------------------------*/

import (
	"fmt"
	"math"
)

type Layout int

const (
	LayoutInterleaved Layout = iota // input[frame*channels + c]
	LayoutPlanar                    // input[c*frames + frame]
)

func (l Layout) String() string {
	switch l {
	case LayoutInterleaved:
		return "interleaved"
	case LayoutPlanar:
		return "planar"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

type MuxerConfig struct {
	NumChannels int
	TactileRate float64 // Hz
	RateFactor  int     // Audio rate / tactile rate.
	Carriers    []Carrier
	OutputGain  float64 // 0 is taken as 1.
	Layout      Layout
}

func (mc MuxerConfig) AudioRate() float64 {
	return mc.TactileRate * float64(mc.RateFactor)
}

type Muxer struct {
	config   MuxerConfig
	bank     *FilterBank
	channels []*Channel
	gain     float64
	acc      []float64 // One frame of output, RateFactor long.
}

/*------------------------------------------------------------------
 *
 * Name:        NewMuxer
 *
 * Purpose:     Validate configuration and build all channels.
 *
 * Inputs:	config	- Channel count, rates, carrier plan.
 *		filter	- Interpolation low pass, shared by all channels.
 *			  Its gain should be 2 * RateFactor.
 *
 * Returns:	Muxer ready for ProcessSamples, already Init'ed, or an
 *		error wrapping ErrConfig.
 *
 *----------------------------------------------------------------*/

func NewMuxer(config MuxerConfig, filter *Filter) (*Muxer, error) {
	if config.NumChannels <= 0 {
		return nil, fmt.Errorf("%d channels: %w", config.NumChannels, ErrChannelCount)
	}
	if config.RateFactor <= 0 {
		return nil, fmt.Errorf("rate factor %d: %w", config.RateFactor, ErrRateFactor)
	}
	if !(config.TactileRate > 0) {
		return nil, fmt.Errorf("tactile rate %g Hz: %w", config.TactileRate, ErrRateFactor)
	}
	if filter == nil || filter.NumTaps() == 0 {
		return nil, ErrEmptyFilter
	}
	if len(config.Carriers) != config.NumChannels {
		return nil, fmt.Errorf("%d carriers for %d channels: %w", len(config.Carriers), config.NumChannels, ErrChannelCount)
	}
	if config.Layout != LayoutInterleaved && config.Layout != LayoutPlanar {
		return nil, fmt.Errorf("layout %v: %w", config.Layout, ErrBufferSize)
	}

	var audioRate = config.AudioRate()

	for c, carrier := range config.Carriers {
		if math.Abs(carrier.DownHz) > config.TactileRate/2 {
			return nil, fmt.Errorf("channel %d down-conversion %.1f Hz beyond tactile Nyquist %.1f Hz: %w",
				c, carrier.DownHz, config.TactileRate/2, ErrSlotRange)
		}
	}

	var slotErr = ValidateSlots(config.Carriers, filter.HalfWidth()*audioRate, audioRate)
	if slotErr != nil {
		return nil, slotErr
	}

	var bank, bankErr = NewFilterBank(filter, config.RateFactor)
	if bankErr != nil {
		return nil, bankErr
	}

	var m = &Muxer{
		config:   config,
		bank:     bank,
		channels: make([]*Channel, config.NumChannels),
		gain:     IfThenElse(config.OutputGain == 0, 1.0, config.OutputGain),
		acc:      make([]float64, config.RateFactor),
	}

	for c, carrier := range config.Carriers {
		m.channels[c] = newChannel(c, bank, carrier.DownHz/config.TactileRate, carrier.UpHz/audioRate)
	}

	m.Init()

	return m, nil
}

/*------------------------------------------------------------------
 *
 * Name:        Init
 *
 * Purpose:     Zero every oscillator phase and clear every history.
 *
 * Description:	Safe to call any number of times; the result is
 *		always the same state NewMuxer returned.
 *
 *----------------------------------------------------------------*/

func (m *Muxer) Init() {
	for _, c := range m.channels {
		c.Reset()
	}
	clear(m.acc)
}

func (m *Muxer) NumChannels() int {
	return m.config.NumChannels
}

func (m *Muxer) RateFactor() int {
	return m.config.RateFactor
}

func (m *Muxer) TactileRate() float64 {
	return m.config.TactileRate
}

func (m *Muxer) AudioRate() float64 {
	return m.config.AudioRate()
}

func (m *Muxer) Layout() Layout {
	return m.config.Layout
}

func (m *Muxer) Channel(c int) *Channel {
	return m.channels[c]
}

func (m *Muxer) Bank() *FilterBank {
	return m.bank
}

// Slots is where each channel lands in the output spectrum.
func (m *Muxer) Slots() []Slot {
	return Slots(m.config.Carriers, m.bank.Filter().HalfWidth()*m.AudioRate())
}

// Headroom bounds |output| for any input in [-1, 1]: output gain times
// the sum over channels of each channel's peak gain.
func (m *Muxer) Headroom() float64 {
	return math.Abs(m.gain) * float64(m.config.NumChannels) * m.bank.PeakGain()
}

// CheckBuffers reports whether buffers of these sizes can be handed to
// ProcessSamples for numFrames frames.  Callers check once when they
// allocate; ProcessSamples itself treats a mismatch as a bug.
func (m *Muxer) CheckBuffers(inputLen int, numFrames int, outputLen int) error {
	if numFrames < 0 {
		return fmt.Errorf("%d frames: %w", numFrames, ErrBufferSize)
	}
	if inputLen != numFrames*m.config.NumChannels {
		return fmt.Errorf("input holds %d samples, need %d frames x %d channels: %w",
			inputLen, numFrames, m.config.NumChannels, ErrBufferSize)
	}
	if outputLen != numFrames*m.config.RateFactor {
		return fmt.Errorf("output holds %d samples, need %d frames x %d: %w",
			outputLen, numFrames, m.config.RateFactor, ErrBufferSize)
	}

	return nil
}

/*------------------------------------------------------------------
 *
 * Name:        ProcessSamples
 *
 * Purpose:     Multiplex a block of tactile frames.
 *
 * Inputs:	input		- numFrames * NumChannels samples, in the
 *				  configured Layout, nominally in [-1, 1].
 *		numFrames	- Tactile frames in this block.
 *
 * Outputs:	output		- Exactly numFrames * RateFactor audio
 *				  samples, in time order.
 *
 *----------------------------------------------------------------*/

func (m *Muxer) ProcessSamples(input []float32, numFrames int, output []float32) {
	Assert(m.CheckBuffers(len(input), numFrames, len(output)) == nil)

	var n = m.config.NumChannels
	var L = m.config.RateFactor

	for f := range numFrames {
		clear(m.acc)

		for c, ch := range m.channels {
			var x float32
			if m.config.Layout == LayoutPlanar {
				x = input[c*numFrames+f]
			} else {
				x = input[f*n+c]
			}

			var ys = ch.Step(float64(x))
			for j, y := range ys {
				m.acc[j] += ch.UpConvert(y)
			}
		}

		var out = output[f*L : (f+1)*L]
		for j, a := range m.acc {
			out[j] = float32(a * m.gain)
		}
	}
}
