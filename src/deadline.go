package tactile

/*------------------------------------------------------------------
 *
 * Purpose:   	Watch the real-time loop for blocks that take longer
 *		to process than they take to play.
 *
 * Description:	The muxer can't detect this itself; it has no clock.
 *		An occasional late block is absorbed by the audio
 *		device buffer.  Several in a row means the output is
 *		already broken up and the device must be treated as
 *		faulty.
 *
 *---------------------------------------------------------------*/

import (
	"fmt"
	"time"
)

type DeadlineMonitor struct {
	period         time.Duration // Playing time of one block.
	maxConsecutive int           // Misses tolerated in a row.
	consecutive    int
	total          int
}

// NewDeadlineMonitor for blocks of frames tactile frames at tactileRate.
func NewDeadlineMonitor(frames int, tactileRate float64, maxConsecutive int) *DeadlineMonitor {
	return &DeadlineMonitor{
		period:         time.Duration(float64(frames) / tactileRate * float64(time.Second)),
		maxConsecutive: maxConsecutive,
		consecutive:    0,
		total:          0,
	}
}

func (dm *DeadlineMonitor) Period() time.Duration {
	return dm.period
}

/*------------------------------------------------------------------
 *
 * Name:        Observe
 *
 * Purpose:     Record how long one block took.
 *
 * Returns:	(true, nil) for a late block still within tolerance.
 *		(true, error wrapping ErrDeadlineMiss) once more than
 *		maxConsecutive blocks in a row were late.
 *		(false, nil) for a block on time, which also clears
 *		the run of misses.
 *
 *----------------------------------------------------------------*/

func (dm *DeadlineMonitor) Observe(elapsed time.Duration) (bool, error) {
	if elapsed <= dm.period {
		dm.consecutive = 0
		return false, nil
	}

	dm.consecutive++
	dm.total++

	if dm.consecutive > dm.maxConsecutive {
		return true, fmt.Errorf("%w: %d blocks in a row over %v, last took %v",
			ErrDeadlineMiss, dm.consecutive, dm.period, elapsed)
	}

	return true, nil
}

func (dm *DeadlineMonitor) Reset() {
	dm.consecutive = 0
}

func (dm *DeadlineMonitor) Total() int {
	return dm.total
}
