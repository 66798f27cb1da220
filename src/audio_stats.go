package tactile

/*------------------------------------------------------------------
 *
 * Purpose:   	Print statistics for the audio output stream.
 *
 * 		Without this there is no indication anything is
 *		happening until someone puts the actuators on.  Each
 *		interval we print something like this:
 *
 *		Output: Sample rate approx. 48.0 k, peak 0.41, rms 0.12, 0 clipped
 *
 *		A sample rate well below nominal means the loop is
 *		falling behind; a peak stuck at zero means the source
 *		is not delivering.
 *
 *---------------------------------------------------------------*/

import (
	"math"
	"time"
)

type AudioStats struct {
	interval      time.Duration // 0 to turn off.
	lastTime      time.Time
	sampleCount   int
	sumSquares    float64
	peak          float64
	clipped       int
	suppressFirst bool
	now           func() time.Time
}

func NewAudioStats(interval time.Duration) *AudioStats {
	return &AudioStats{ //nolint:exhaustruct
		interval: interval,
		now:      time.Now,
	}
}

/*------------------------------------------------------------------
*
* Name:        Add
*
* Purpose:     Add one buffer to the statistics.
*		Print if specified amount of time has passed.
*
* Inputs:	samples	- Audio just produced.
*
*		clipped	- How many of them are outside [-1, 1].
*
* Returns:     True if a report was printed.
*
*----------------------------------------------------------------*/

func (as *AudioStats) Add(samples []float32, clipped int) bool {
	if as.interval <= 0 {
		return false
	}

	if as.lastTime.IsZero() {
		/* suppressing the first one could mean a rather */
		/* long wait for the first message.  We make the */
		/* first collection interval 3 seconds. */
		as.lastTime = as.now().Add(-as.interval + 3*time.Second)
		as.suppressFirst = true
		as.reset()

		return false
	}

	for _, s := range samples {
		var v = float64(s)
		as.sumSquares += v * v
		as.peak = math.Max(as.peak, math.Abs(v))
	}
	as.sampleCount += len(samples)
	as.clipped += clipped

	var thisTime = as.now()
	if thisTime.Before(as.lastTime.Add(as.interval)) {
		return false
	}

	var printed = false

	if as.suppressFirst {
		/* The first time the rate would be off considerably */
		/* because we didn't start on a boundary. */
		as.suppressFirst = false
	} else {
		var seconds = thisTime.Sub(as.lastTime).Seconds()
		var aveRate = float64(as.sampleCount) / 1000.0 / seconds
		var rms = math.Sqrt(as.sumSquares / float64(max(as.sampleCount, 1)))

		logger.Infof("Output: Sample rate approx. %.1f k, peak %.2f, rms %.2f, %d clipped",
			aveRate, as.peak, rms, as.clipped)
		printed = true
	}

	as.lastTime = thisTime
	as.reset()

	return printed
}

func (as *AudioStats) reset() {
	as.sampleCount = 0
	as.sumSquares = 0
	as.peak = 0
	as.clipped = 0
}
