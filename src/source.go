package tactile

/*------------------------------------------------------------------
 *
 * Purpose:   	Where tactile frames come from.
 *
 * Description:	A Source hands the real-time loop whatever frames it
 *		has.  It must not block for long: a source that is
 *		fed by some other device (network, serial port) is
 *		decoupled by a frameQueue filled from its own
 *		goroutine, and the loop pads any shortfall with
 *		silence.
 *
 *---------------------------------------------------------------*/

import (
	"bufio"
	"errors"
	"io"
	"sync"
)

type Source interface {
	// ReadFrames fills dst, which holds a whole number of interleaved
	// frames, and returns how many frames were written.  io.EOF, possibly
	// along with the last few frames, means nothing more will arrive.
	ReadFrames(dst []float32) (int, error)
	Close() error
}

/*------------------------------------------------------------------
 *
 * Tone source.  Calibration signal: each channel gets its own sine
 * wave, optionally keyed on and off.
 *
 *----------------------------------------------------------------*/

type Tone struct {
	Channel   int
	Hz        float64
	Amplitude float64
}

type ToneSource struct {
	channels int
	osc      []Oscillator
	amp      []float64
	onFrames int // Keyed on for this many frames, then off as long.  0 for steady.
	frame    int
	limit    int // Total frames to produce, 0 for no limit.
}

func NewToneSource(channels int, tactileRate float64, tones []Tone, pulseSeconds float64, seconds float64) *ToneSource {
	var ts = &ToneSource{
		channels: channels,
		osc:      make([]Oscillator, channels),
		amp:      make([]float64, channels),
		onFrames: int(pulseSeconds * tactileRate),
		frame:    0,
		limit:    int(seconds * tactileRate),
	}

	for _, t := range tones {
		Assert(t.Channel >= 0 && t.Channel < channels)
		ts.osc[t.Channel] = NewOscillator(t.Hz / tactileRate)
		ts.amp[t.Channel] = t.Amplitude
	}

	return ts
}

func (ts *ToneSource) ReadFrames(dst []float32) (int, error) {
	var frames = len(dst) / ts.channels

	if ts.limit > 0 {
		frames = min(frames, ts.limit-ts.frame)
		if frames <= 0 {
			return 0, io.EOF
		}
	}

	for f := range frames {
		var on = ts.onFrames == 0 || (ts.frame/ts.onFrames)%2 == 0

		for c := range ts.channels {
			var v = real(ts.osc[c].Next()) * ts.amp[c]
			dst[f*ts.channels+c] = IfThenElse(on, float32(v), 0)
		}
		ts.frame++
	}

	if ts.limit > 0 && ts.frame >= ts.limit {
		return frames, io.EOF
	}

	return frames, nil
}

func (ts *ToneSource) Close() error {
	return nil
}

/*------------------------------------------------------------------
 *
 * frameQueue.  Bounded FIFO of frames between a producer goroutine
 * and the real-time loop.  When full the oldest frames are dropped;
 * stale actuation is worse than a gap.
 *
 *----------------------------------------------------------------*/

type frameQueue struct {
	mu       sync.Mutex
	channels int
	buf      []float32
	head     int // First sample.
	count    int // Samples queued.
	dropped  int // Frames discarded because the queue was full.
	err      error
}

func newFrameQueue(channels int, capacityFrames int) *frameQueue {
	Assert(channels > 0 && capacityFrames > 0)

	return &frameQueue{ //nolint:exhaustruct
		channels: channels,
		buf:      make([]float32, channels*capacityFrames),
	}
}

func (q *frameQueue) push(frame []float32) {
	Assert(len(frame) == q.channels)

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.count == len(q.buf) {
		q.head = (q.head + q.channels) % len(q.buf)
		q.count -= q.channels
		q.dropped++
	}

	var tail = (q.head + q.count) % len(q.buf)
	copy(q.buf[tail:tail+q.channels], frame)
	q.count += q.channels
}

func (q *frameQueue) pop(dst []float32) (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	var frames = min(len(dst)/q.channels, q.count/q.channels)

	for f := range frames {
		copy(dst[f*q.channels:(f+1)*q.channels], q.buf[q.head:q.head+q.channels])
		q.head = (q.head + q.channels) % len(q.buf)
	}
	q.count -= frames * q.channels

	if q.count == 0 && q.err != nil {
		return frames, q.err
	}

	return frames, nil
}

// finish records why the producer stopped.  Queued frames are still
// delivered before the error is reported.
func (q *frameQueue) finish(err error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.err == nil {
		q.err = err
	}
}

func (q *frameQueue) Dropped() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.dropped
}

/*------------------------------------------------------------------
 *
 * Stream source.  Q15 frames from any byte stream.
 *
 *----------------------------------------------------------------*/

type StreamSource struct {
	queue  *frameQueue
	closer io.Closer
}

// NewStreamSource starts reading r in the background.  If r is also an
// io.Closer it is closed by Close.
func NewStreamSource(r io.Reader, channels int, capacityFrames int) *StreamSource {
	var ss = &StreamSource{
		queue:  newFrameQueue(channels, capacityFrames),
		closer: nil,
	}

	if c, ok := r.(io.Closer); ok {
		ss.closer = c
	}

	go func() {
		ss.queue.finish(copyFrames(r, ss.queue))
	}()

	return ss
}

// copyFrames decodes frames from r into q until r fails.  Returns io.EOF
// for a clean end of stream.
func copyFrames(r io.Reader, q *frameQueue) error {
	var br = bufio.NewReader(r)
	var raw = make([]byte, FrameBytes(q.channels))
	var frame = make([]float32, q.channels)

	for {
		var _, readErr = io.ReadFull(br, raw)
		if readErr != nil {
			if errors.Is(readErr, io.ErrUnexpectedEOF) {
				logger.Warn("Partial frame at end of stream discarded")
				return io.EOF
			}
			return readErr
		}

		DecodeFrames(frame, raw)
		q.push(frame)
	}
}

func (ss *StreamSource) ReadFrames(dst []float32) (int, error) {
	return ss.queue.pop(dst)
}

// Dropped is the number of frames discarded because the loop fell behind.
func (ss *StreamSource) Dropped() int {
	return ss.queue.Dropped()
}

func (ss *StreamSource) Close() error {
	if ss.closer != nil {
		return ss.closer.Close()
	}
	return nil
}
