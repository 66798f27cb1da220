package tactile

/*------------------------------------------------------------------
 *
 * Name:	mux_analyze
 *
 * Purpose:	Show how much signal is in each carrier slot of a
 *		multiplexed recording.
 *
 * Description:	Reads a .WAV file, takes one FFT over all of it
 *		(after skipping the filter start-up) and prints the
 *		power in each slot relative to the strongest one.
 *
 *		With -d, one channel is known to be the only one
 *		driven and the others are reported as crosstalk.
 *
 * Examples:	gen_tactile -t 3:120 -o z.wav
 *		mux_analyze -d 3 z.wav
 *
 *------------------------------------------------------------------*/

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/pflag"
)

func MuxAnalyzeMain() {
	var configFileName = pflag.StringP("config-file", "c", "", "Configuration file name.")
	var channels = pflag.IntP("channels", "n", 0, "Number of tactile channels.")
	var driven = pflag.IntP("driven", "d", -1, "Only this channel carries signal; report crosstalk into the others.")
	var skip = pflag.Float64P("skip", "s", -1, "Seconds to skip at the start.  Default is the filter length.")
	var help = pflag.BoolP("help", "h", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s - Measure carrier slot power in a multiplexed recording.\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Usage: %s [options] file.wav\n", os.Args[0])
		pflag.PrintDefaults()
	}

	// !!! PARSE !!!
	pflag.Parse()

	if *help || pflag.NArg() != 1 {
		pflag.Usage()
		os.Exit(1)
	}

	var config, configErr = LoadConfig(*configFileName)
	if configErr != nil {
		logger.Error("Can't read configuration", "err", configErr)
		os.Exit(1)
	}

	if *channels > 0 {
		config.Channels = *channels
		config.CarriersHz = nil
	}

	var m, muxErr = config.NewMuxer()
	if muxErr != nil {
		logger.Error("Can't build multiplexer", "err", muxErr)
		os.Exit(1)
	}

	if *driven >= m.NumChannels() {
		logger.Error("Driven channel out of range", "driven", *driven, "channels", m.NumChannels())
		os.Exit(1)
	}

	var samples, rate, readErr = ReadWav(pflag.Arg(0))
	if readErr != nil {
		logger.Error("Can't read recording", "err", readErr)
		os.Exit(1)
	}

	if float64(rate) != m.AudioRate() {
		logger.Warn("Recording sample rate differs from configuration", "file", rate, "config", m.AudioRate())
	}

	var skipSamples = m.Bank().Filter().NumTaps()
	if *skip >= 0 {
		skipSamples = int(*skip * float64(rate))
	}
	if skipSamples >= len(samples) {
		logger.Error("Recording too short", "samples", len(samples), "skip", skipSamples)
		os.Exit(1)
	}

	var energies = MeasureSlots(samples[skipSamples:], float64(rate), m.Slots())
	var strongest = Strongest(energies)
	var rel = Isolation(energies, strongest)

	fmt.Printf("%d samples at %d Hz, %d channels\n", len(samples)-skipSamples, rate, m.NumChannels())
	fmt.Printf("\n")
	fmt.Printf("chan   slot Hz          dB   peak Hz\n")
	fmt.Printf("----  ---------------  ------  -------\n")
	for c, e := range energies {
		fmt.Printf("%4d  %6.0f - %6.0f  %6s  %7.1f\n", c, e.Slot.Low(), e.Slot.High(), formatDB(rel.RelDB[c]), e.PeakHz)
	}
	fmt.Printf("\n")
	fmt.Printf("Strongest slot: channel %d\n", strongest)

	if *driven >= 0 {
		var report = Isolation(energies, *driven)
		if report.WorstAt >= 0 {
			fmt.Printf("Worst crosstalk from channel %d: %s dB into channel %d\n", *driven, formatDB(report.Worst), report.WorstAt)
		}
	}
}

func formatDB(db float64) string {
	if math.IsInf(db, -1) {
		return "-inf"
	}

	return fmt.Sprintf("%.1f", db)
}
