package tactile

/*------------------------------------------------------------------
 *
 * Purpose:   	The real-time loop: source -> muxer -> sink.
 *
 * Description:	One block at a time.  The sink paces the loop (a sound
 *		card Write blocks until there is room) so the only
 *		timing we have to watch is that processing a block
 *		takes less than playing it.
 *
 *		Cancellation is checked between blocks, never inside
 *		ProcessSamples.
 *
 *---------------------------------------------------------------*/

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"time"
)

type Sink interface {
	Write(samples []float32) error
	Close() error
}

type FaultPolicy int

const (
	FaultSilence FaultPolicy = iota // Mute, reset the muxer, carry on.
	FaultReset                      // Reset the muxer, carry on.
	FaultStop                       // Return ErrDeadlineMiss from Run.
)

func ParseFaultPolicy(s string) (FaultPolicy, error) {
	switch s {
	case "silence", "":
		return FaultSilence, nil
	case "reset":
		return FaultReset, nil
	case "stop":
		return FaultStop, nil
	default:
		return FaultSilence, fmt.Errorf("fault policy %q not silence, reset or stop: %w", s, ErrConfig)
	}
}

type RunnerConfig struct {
	Muxer          *Muxer
	Source         Source
	Sink           Sink
	FramesPerBlock int
	RealTime       bool // Watch deadlines.  False for file output.
	MaxMisses      int  // Consecutive late blocks tolerated.
	Policy         FaultPolicy
	Mute           MuteLine    // nil for none.
	Metrics        *Metrics    // nil for none.
	Stats          *AudioStats // nil for none.
}

type Runner struct {
	config  RunnerConfig
	monitor *DeadlineMonitor
	in      []float32
	out     []float32
	muted   bool
	frames  int
	elapsed func(start time.Time) time.Duration
}

func NewRunner(config RunnerConfig) (*Runner, error) {
	if config.Muxer == nil || config.Source == nil || config.Sink == nil {
		return nil, fmt.Errorf("runner needs a muxer, a source and a sink: %w", ErrConfig)
	}
	if config.FramesPerBlock <= 0 {
		return nil, fmt.Errorf("%d frames per block: %w", config.FramesPerBlock, ErrBufferSize)
	}
	if config.Mute == nil {
		config.Mute = NoMute{}
	}

	var m = config.Muxer
	var in = make([]float32, config.FramesPerBlock*m.NumChannels())
	var out = make([]float32, config.FramesPerBlock*m.RateFactor())

	var bufErr = m.CheckBuffers(len(in), config.FramesPerBlock, len(out))
	if bufErr != nil {
		return nil, bufErr
	}

	if config.Metrics != nil {
		config.Metrics.Headroom.Set(m.Headroom())
	}

	return &Runner{
		config:  config,
		monitor: NewDeadlineMonitor(config.FramesPerBlock, m.TactileRate(), config.MaxMisses),
		in:      in,
		out:     out,
		muted:   false,
		frames:  0,
		elapsed: time.Since,
	}, nil
}

// Frames multiplexed so far.
func (r *Runner) Frames() int {
	return r.frames
}

func (r *Runner) Monitor() *DeadlineMonitor {
	return r.monitor
}

/*------------------------------------------------------------------
 *
 * Name:        Run
 *
 * Purpose:     Multiplex until the source ends or ctx is cancelled.
 *
 * Returns:	nil at end of source or on cancellation.  An error
 *		wrapping ErrDeadlineMiss if the fault policy is
 *		FaultStop.  Source or sink errors otherwise.
 *
 *----------------------------------------------------------------*/

func (r *Runner) Run(ctx context.Context) error {
	var m = r.config.Muxer
	var n = m.NumChannels()

	for {
		if ctx.Err() != nil {
			return nil
		}

		var got, readErr = r.config.Source.ReadFrames(r.in)
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("tactile source: %w", readErr)
		}
		if got == 0 && readErr != nil {
			return nil
		}

		if got < r.config.FramesPerBlock {
			clear(r.in[got*n:])
			if r.config.Metrics != nil && r.config.RealTime {
				r.config.Metrics.Underruns.Add(float64(r.config.FramesPerBlock - got))
			}
		}

		var faultErr = r.processBlock()
		if faultErr != nil {
			return faultErr
		}

		// At end of source only the frames actually read are written.
		var produced = IfThenElse(readErr != nil, got, r.config.FramesPerBlock)
		var out = r.out[:produced*m.RateFactor()]

		var clipped = 0
		var peak float64
		for _, s := range out {
			var a = math.Abs(float64(s))
			if a > 1 {
				clipped++
			}
			peak = math.Max(peak, a)
		}

		if r.config.Metrics != nil {
			r.config.Metrics.Blocks.Inc()
			r.config.Metrics.Frames.Add(float64(produced))
			r.config.Metrics.ClippedSamples.Add(float64(clipped))
			r.config.Metrics.PeakLevel.Set(peak)
		}
		if r.config.Stats != nil {
			r.config.Stats.Add(out, clipped)
		}

		var writeErr = r.config.Sink.Write(out)
		if writeErr != nil {
			return writeErr
		}

		r.frames += produced

		if readErr != nil {
			return nil
		}
	}
}

// processBlock runs the muxer over r.in into r.out and applies the fault
// policy when the deadline monitor gives up.
func (r *Runner) processBlock() error {
	var m = r.config.Muxer

	var start = time.Now()
	m.ProcessSamples(r.in, r.config.FramesPerBlock, r.out)
	var elapsed = r.elapsed(start)

	if r.config.Metrics != nil {
		r.config.Metrics.ProcessSeconds.Observe(elapsed.Seconds())
	}

	if !r.config.RealTime {
		return nil
	}

	var late, missErr = r.monitor.Observe(elapsed)

	if late && r.config.Metrics != nil {
		r.config.Metrics.DeadlineMisses.Inc()
	}

	if missErr == nil {
		if !late && r.muted {
			r.setMuted(false)
			logger.Info("Output back on time, unmuted")
		}
		if r.muted {
			clear(r.out)
		}
		return nil
	}

	if r.config.Metrics != nil {
		r.config.Metrics.Faults.Inc()
	}

	logger.Error("Real-time deadline fault", "err", missErr, "policy", r.config.Policy)

	switch r.config.Policy {
	case FaultStop:
		r.setMuted(true)
		return missErr
	case FaultReset:
		m.Init()
	case FaultSilence:
		r.setMuted(true)
		clear(r.out)
		m.Init()
	}

	r.monitor.Reset()

	return nil
}

func (r *Runner) setMuted(muted bool) {
	r.muted = muted

	var err = r.config.Mute.SetMuted(muted)
	if err != nil {
		logger.Error("Could not drive mute line", "err", err)
	}
}

func (p FaultPolicy) String() string {
	switch p {
	case FaultSilence:
		return "silence"
	case FaultReset:
		return "reset"
	case FaultStop:
		return "stop"
	default:
		return fmt.Sprintf("FaultPolicy(%d)", int(p))
	}
}
