package tactile

/*------------------------------------------------------------------
 *
 * Purpose:   	Write the multiplexed signal to a .WAV file instead of
 *		a sound device, and read one back for analysis.
 *
 * Description:	16 bit PCM, mono.  Full scale is +-1.0; anything
 *		beyond is clipped and counted.
 *
 *---------------------------------------------------------------*/

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const wavBitDepth = 16

// PCM16 converts one sample, reporting whether it had to be clipped.
func PCM16(x float32) (int, bool) {
	var v = math.Round(float64(x) * 32767)

	if v > 32767 {
		return 32767, true
	}
	if v < -32768 {
		return -32768, true
	}

	return int(v), false
}

type WavSink struct {
	path    string
	file    *os.File
	encoder *wav.Encoder
	buf     *audio.IntBuffer
	samples int
	clipped int
}

func CreateWavSink(path string, sampleRate int) (*WavSink, error) {
	var f, err = os.Create(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("can't create output file %s: %w", path, err)
	}

	return &WavSink{
		path:    path,
		file:    f,
		encoder: wav.NewEncoder(f, sampleRate, wavBitDepth, 1, 1),
		buf: &audio.IntBuffer{
			Format: &audio.Format{
				NumChannels: 1,
				SampleRate:  sampleRate,
			},
			Data:           nil,
			SourceBitDepth: wavBitDepth,
		},
		samples: 0,
		clipped: 0,
	}, nil
}

func (ws *WavSink) Write(samples []float32) error {
	if cap(ws.buf.Data) < len(samples) {
		ws.buf.Data = make([]int, len(samples))
	}
	ws.buf.Data = ws.buf.Data[:len(samples)]

	for i, s := range samples {
		var v, c = PCM16(s)
		if c {
			ws.clipped++
		}
		ws.buf.Data[i] = v
	}

	ws.samples += len(samples)

	return ws.encoder.Write(ws.buf)
}

// Samples written so far.
func (ws *WavSink) Samples() int {
	return ws.samples
}

func (ws *WavSink) Clipped() int {
	return ws.clipped
}

func (ws *WavSink) Path() string {
	return ws.path
}

// Close fills in the header sizes and closes the file.
func (ws *WavSink) Close() error {
	var encErr = ws.encoder.Close()
	var fileErr = ws.file.Close()

	return errors.Join(encErr, fileErr)
}

/*------------------------------------------------------------------
 *
 * Name:        ReadWav
 *
 * Purpose:     Read a whole .WAV file.
 *
 * Returns:	First channel as float32 in [-1, 1], and the sample rate.
 *
 *----------------------------------------------------------------*/

func ReadWav(path string) ([]float32, int, error) {
	var f, err = os.Open(path) //nolint:gosec
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	var decoder = wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, 0, fmt.Errorf("%s is not a valid .WAV file", path)
	}

	var buf, bufErr = decoder.FullPCMBuffer()
	if bufErr != nil {
		return nil, 0, fmt.Errorf("reading %s: %w", path, bufErr)
	}

	var nchan = max(buf.Format.NumChannels, 1)
	var scale = math.Exp2(float64(decoder.BitDepth) - 1)
	var frames = len(buf.Data) / nchan
	var out = make([]float32, frames)

	for i := range frames {
		out[i] = float32(float64(buf.Data[i*nchan]) / scale)
	}

	return out, buf.Format.SampleRate, nil
}
