package tactile

/*------------------------------------------------------------------
 *
 * Purpose:   	Interface to audio device commonly called a "sound card" for
 *		historical reasons.
 *
 * Description:	Blocking output through PortAudio.  Write does not
 *		return until the device has room, which is what paces
 *		the real-time loop to the audio clock.
 *
 *---------------------------------------------------------------*/

import (
	"errors"
	"fmt"

	"github.com/gordonklaus/portaudio"
)

type PortAudioSink struct {
	stream *portaudio.Stream
	buf    []float32 // Bound to the stream; Write copies into it.
}

/*------------------------------------------------------------------
 *
 * Name:        OpenPortAudioSink
 *
 * Purpose:     Open the default output device, mono float32.
 *
 * Inputs:	sampleRate	- Audio rate, Hz.
 *		blockSamples	- Samples per Write.  Matching the muxer
 *				  output block avoids extra copies.
 *
 *----------------------------------------------------------------*/

func OpenPortAudioSink(sampleRate float64, blockSamples int) (*PortAudioSink, error) {
	var initErr = portaudio.Initialize()
	if initErr != nil {
		return nil, fmt.Errorf("portaudio: %w", initErr)
	}

	var s = &PortAudioSink{
		stream: nil,
		buf:    make([]float32, blockSamples),
	}

	var stream, openErr = portaudio.OpenDefaultStream(0, 1, sampleRate, blockSamples, &s.buf)
	if openErr != nil {
		portaudio.Terminate() //nolint:errcheck
		return nil, fmt.Errorf("could not open audio device for output: %w", openErr)
	}

	var startErr = stream.Start()
	if startErr != nil {
		stream.Close()        //nolint:errcheck
		portaudio.Terminate() //nolint:errcheck
		return nil, fmt.Errorf("could not start audio output: %w", startErr)
	}

	s.stream = stream

	logger.Info("Audio output opened", "rate", sampleRate, "block", blockSamples)

	return s, nil
}

func (s *PortAudioSink) Write(samples []float32) error {
	for len(samples) > 0 {
		var n = copy(s.buf, samples)
		clear(s.buf[n:])
		samples = samples[n:]

		var err = s.stream.Write()
		if err != nil {
			// An underflow has already been heard; keep going.
			if errors.Is(err, portaudio.OutputUnderflowed) {
				logger.Warn("Audio output underflowed")
				continue
			}
			return fmt.Errorf("audio output: %w", err)
		}
	}

	return nil
}

func (s *PortAudioSink) Close() error {
	var stopErr = s.stream.Stop()
	var closeErr = s.stream.Close()
	var termErr = portaudio.Terminate()

	return errors.Join(stopErr, closeErr, termErr)
}
