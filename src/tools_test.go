package tactile

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pflag assumes it is only set up once per process; the tool entry points
// are run repeatedly here.
func setupPflag(args []string) {
	os.Args = args
	pflag.CommandLine = pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
}

func Test_GenTactileThenAnalyze(t *testing.T) {
	var file = filepath.Join(t.TempDir(), "tone4.wav")

	setupPflag([]string{"gen_tactile", "-t", "4:120", "-s", "0.5", "-o", file})
	AssertOutputContains(t, GenTactileMain, "Wrote 1000 frames, 24000 samples at 48000 Hz")

	var samples, rate, err = ReadWav(file)
	require.NoError(t, err)
	assert.Equal(t, 48000, rate)
	assert.Len(t, samples, 1000*24)

	setupPflag([]string{"mux_analyze", "-d", "4", file})
	var report = CaptureOutput(t, MuxAnalyzeMain)

	assert.Contains(t, report, "Strongest slot: channel 4")
	assert.Contains(t, report, "Worst crosstalk from channel 4")
}

func Test_GenTactileFewerChannels(t *testing.T) {
	var file = filepath.Join(t.TempDir(), "pulsed.wav")

	setupPflag([]string{"gen_tactile", "-n", "2", "-t", "1:200:0.5", "-p", "0.1", "-s", "0.25", "-o", file})
	AssertOutputContains(t, GenTactileMain, "Wrote 500 frames, 12000 samples")
}

func Test_GenLpf(t *testing.T) {
	var file = filepath.Join(t.TempDir(), "lpf.go")

	setupPflag([]string{"gen_lpf", "-r", "8", "-f", "100", "-a", "8000", "-L", "4", "-p", "lpf", "-o", file})
	GenLpfMain()

	var source, err = os.ReadFile(file)
	require.NoError(t, err)

	var text = string(source)
	assert.True(t, strings.HasPrefix(text, "// Code generated by gen_lpf; DO NOT EDIT.\n"))
	assert.Contains(t, text, "package lpf\n")
	assert.Contains(t, text, "weaverLpfRadius     = 8\n")
	assert.Contains(t, text, "weaverLpfAudioRate  = 8000\n")
	assert.Contains(t, text, "weaverLpfGain       = 8\n")
	assert.Contains(t, text, "// Hamming-windowed sinc")
	assert.Equal(t, 17, strings.Count(text, "e-")+strings.Count(text, "e+"))
}

func Test_WriteLpfTableDefault(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteLpfTable(&buf, LpfTableParams{
		Package:    "tactile",
		Radius:     weaverLpfRadius,
		CutoffHz:   weaverLpfCutoffHz,
		AudioRate:  weaverLpfAudioRate,
		RateFactor: weaverLpfRateFactor,
		Window:     WindowHamming,
	}))

	var lines = strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, "var weaverLpfTaps = [weaverLpfNumTaps]float64{", lines[15])
	assert.Equal(t, "}", lines[len(lines)-1])
	assert.Len(t, lines, 16+(weaverLpfNumTaps+3)/4+1)

	assert.ErrorIs(t, WriteLpfTable(&buf, LpfTableParams{}), ErrRateFactor) //nolint:exhaustruct
}

func Test_ParseToneSpec(t *testing.T) {
	var tone, err = ParseToneSpec("3:120.5")
	require.NoError(t, err)
	assert.Equal(t, Tone{Channel: 3, Hz: 120.5, Amplitude: 1}, tone)

	tone, err = ParseToneSpec("0:40:0.25")
	require.NoError(t, err)
	assert.Equal(t, Tone{Channel: 0, Hz: 40, Amplitude: 0.25}, tone)

	for _, bad := range []string{"", "3", "x:100", "1:fast", "1:100:loud", "1:2:3:4"} {
		_, err = ParseToneSpec(bad)
		assert.Error(t, err, bad)
	}
}

func Test_CheckSignalLength(t *testing.T) {
	assert.NoError(t, checkSignalLength(0.5))
	assert.ErrorIs(t, checkSignalLength(0), ErrConfig)
	assert.ErrorIs(t, checkSignalLength(-2), ErrConfig)
	assert.ErrorIs(t, checkSignalLength(math.NaN()), ErrConfig)
}
