package tactile

/*------------------------------------------------------------------
 *
 * Name:	gen_tactile
 *
 * Purpose:	Generate a multiplexed test signal.
 *
 * Description:	Tone sources on selected channels are run through the
 *		multiplexer and written to a .WAV file.  Useful for
 *		checking a receiver or for listening to what the
 *		carrier plan sounds like.
 *
 * Examples:	Default plan, 100 Hz on channel 0 for 2 seconds:
 *
 *			gen_tactile -o z.wav
 *			mux_analyze z.wav
 *
 *		Several channels, pulsed on and off every 0.25 s:
 *
 *			gen_tactile -t 0:100 -t 3:250:0.5 -t 11:40 -p 0.25 -o z.wav
 *
 *		Output name may contain strftime conversions:
 *
 *			gen_tactile -o 'cal-%Y%m%d-%H%M.wav'
 *
 *------------------------------------------------------------------*/

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lestrrat-go/strftime"
	"github.com/spf13/pflag"
)

func GenTactileMain() {
	var configFileName = pflag.StringP("config-file", "c", "", "Configuration file name.")
	var outputFile = pflag.StringP("output-file", "o", "", "Send output to .wav file.  strftime conversions are expanded.")
	var seconds = pflag.Float64P("seconds", "s", 2, "Length of signal in seconds.")
	var toneSpecs = pflag.StringArrayP("tone", "t", nil, "channel:hz[:amplitude] Tone on a channel.  Repeat for more channels.")
	var pulse = pflag.Float64P("pulse", "p", 0, "Key tones on and off with this period in seconds.  0 for steady.")
	var channels = pflag.IntP("channels", "n", 0, "Number of tactile channels.")
	var outputGain = pflag.Float64P("output-gain", "g", 0, "Scale the summed output.  Default is 1/channels.")
	var logLevel = pflag.StringP("log-level", "l", "info", "Log level: debug, info, warn, error.")
	var help = pflag.BoolP("help", "h", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s - Generate a multiplexed tactile test signal.\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Usage: %s [options] -o file.wav\n", os.Args[0])
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Example:  gen_tactile -t 0:100 -t 5:200:0.5 -o x.wav\n")
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "    100 Hz full scale on channel 0, 200 Hz half scale on channel 5.\n")
	}

	// !!! PARSE !!!
	pflag.Parse()

	if *help {
		pflag.Usage()
		os.Exit(1)
	}

	var levelErr = SetLogLevel(*logLevel)
	if levelErr != nil {
		fmt.Fprintf(os.Stderr, "%s\n", levelErr)
		os.Exit(1)
	}

	var lengthErr = checkSignalLength(*seconds)
	if lengthErr != nil {
		logger.Error("Bad signal length", "err", lengthErr)
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
	if *outputGain != 0 {
		config.OutputGain = *outputGain
	}

	var tones []Tone
	for _, spec := range *toneSpecs {
		var tone, toneErr = ParseToneSpec(spec)
		if toneErr != nil {
			logger.Error("Bad tone", "tone", spec, "err", toneErr)
			os.Exit(1)
		}
		tones = append(tones, tone)
	}
	if len(tones) == 0 {
		for _, tc := range config.Source.Tones {
			tones = append(tones, Tone{Channel: tc.Channel, Hz: tc.Hz, Amplitude: tc.Amplitude})
		}
	}
	if len(tones) == 0 {
		tones = []Tone{{Channel: 0, Hz: 100, Amplitude: 1}}
	}

	config.Source.Tones = config.Source.Tones[:0]
	for _, t := range tones {
		config.Source.Tones = append(config.Source.Tones, ToneConfig{Channel: t.Channel, Hz: t.Hz, Amplitude: t.Amplitude})
	}

	var validateErr = config.Validate()
	if validateErr != nil {
		logger.Error("Invalid configuration", "err", validateErr)
		os.Exit(1)
	}

	var pattern = *outputFile
	if pattern == "" {
		pattern = config.Sink.Path
	}

	var fileName, nameErr = strftime.Format(pattern, time.Now())
	if nameErr != nil {
		logger.Error("Bad output file name", "pattern", pattern, "err", nameErr)
		os.Exit(1)
	}

	var m, muxErr = config.NewMuxer()
	if muxErr != nil {
		logger.Error("Can't build multiplexer", "err", muxErr)
		os.Exit(1)
	}

	var sink, sinkErr = CreateWavSink(fileName, int(m.AudioRate()))
	if sinkErr != nil {
		logger.Error("Can't open output", "err", sinkErr)
		os.Exit(1)
	}

	var source = NewToneSource(m.NumChannels(), m.TactileRate(), tones, *pulse, *seconds)

	var runner, runnerErr = NewRunner(RunnerConfig{ //nolint:exhaustruct
		Muxer:          m,
		Source:         source,
		Sink:           sink,
		FramesPerBlock: config.FramesPerBlock,
		RealTime:       false,
	})
	if runnerErr != nil {
		logger.Error("Can't start", "err", runnerErr)
		os.Exit(1)
	}

	var runErr = runner.Run(context.Background())

	var closeErr = sink.Close()
	if runErr != nil || closeErr != nil {
		logger.Error("Failed writing output", "file", fileName, "run", runErr, "close", closeErr)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d frames, %d samples at %.0f Hz to %s\n", runner.Frames(), sink.Samples(), m.AudioRate(), fileName)
	if sink.Clipped() > 0 {
		fmt.Printf("Warning: %d samples clipped.  Reduce amplitude or output gain.\n", sink.Clipped())
	}
}

// checkSignalLength rejects lengths a ToneSource would take as "forever".
func checkSignalLength(seconds float64) error {
	if !(seconds > 0) {
		return fmt.Errorf("signal length %g seconds must be positive: %w", seconds, ErrConfig)
	}

	return nil
}

// ParseToneSpec reads channel:hz[:amplitude].  Amplitude defaults to 1.
func ParseToneSpec(spec string) (Tone, error) {
	var parts = strings.Split(spec, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return Tone{}, fmt.Errorf("tone %q should be channel:hz[:amplitude]: %w", spec, ErrConfig) //nolint:exhaustruct
	}

	var channel, chErr = strconv.Atoi(parts[0])
	if chErr != nil {
		return Tone{}, fmt.Errorf("tone channel %q: %w", parts[0], chErr) //nolint:exhaustruct
	}

	var hz, hzErr = strconv.ParseFloat(parts[1], 64)
	if hzErr != nil {
		return Tone{}, fmt.Errorf("tone frequency %q: %w", parts[1], hzErr) //nolint:exhaustruct
	}

	var amplitude = 1.0
	if len(parts) == 3 {
		var a, aErr = strconv.ParseFloat(parts[2], 64)
		if aErr != nil {
			return Tone{}, fmt.Errorf("tone amplitude %q: %w", parts[2], aErr) //nolint:exhaustruct
		}
		amplitude = a
	}

	return Tone{Channel: channel, Hz: hz, Amplitude: amplitude}, nil
}
