package tactile

/*------------------------------------------------------------------
 *
 * Name:	tactile_mux
 *
 * Purpose:	Real-time tactile channel multiplexer.
 *
 * Description:	Reads tactile frames from one of
 *
 *			- built in calibration tones
 *			- stdin
 *			- a TCP client (announced with DNS-SD)
 *			- a serial port
 *
 *		multiplexes them and plays the result on the sound
 *		card, or records it to a .WAV file.
 *
 *		Frames are little endian signed 16 bit, one sample
 *		per channel, channels interleaved.
 *
 * Examples:	tactile_mux -i tcp -A
 *		some_producer | tactile_mux -i stdin
 *		tactile_mux -i tone -t 0:100 -t 1:150 -o 'rec-%H%M%S.wav' -s 10
 *
 *------------------------------------------------------------------*/

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lestrrat-go/strftime"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"
)

func MuxMain() {
	var configFileName = pflag.StringP("config-file", "c", "", "Configuration file name.")
	var channels = pflag.IntP("channels", "n", 0, "Number of tactile channels.")
	var sourceType = pflag.StringP("input", "i", "", "Frame source: tone, stdin, tcp, serial.")
	var listenAddr = pflag.StringP("listen", "L", "", "Address for tcp input, e.g. :8010.")
	var serialDevice = pflag.StringP("serial-device", "D", "", "Serial port for serial input.")
	var baud = pflag.IntP("baud", "b", 0, "Serial port speed.")
	var toneSpecs = pflag.StringArrayP("tone", "t", nil, "channel:hz[:amplitude] Tone for tone input.  Repeat for more channels.")
	var seconds = pflag.Float64P("seconds", "s", 0, "Stop tone input after this long.  0 to run until interrupted.")
	var outputFile = pflag.StringP("output-file", "o", "", "Record to .wav file instead of playing.  strftime conversions are expanded.")
	var metricsAddr = pflag.StringP("metrics", "m", "", "Serve Prometheus metrics on this address, e.g. :9110.")
	var announce = pflag.BoolP("announce", "A", false, "Announce tcp input with DNS-SD.")
	var lockMem = pflag.BoolP("lock-memory", "M", false, "Lock process memory to avoid page faults.")
	var statsInterval = pflag.IntP("audio-stats-interval", "a", -1, "Audio statistics interval in seconds.  0 to disable.")
	var onFault = pflag.StringP("on-fault", "f", "", "After too many late blocks: silence, reset or stop.")
	var logLevel = pflag.StringP("log-level", "l", "info", "Log level: debug, info, warn, error.")
	var help = pflag.BoolP("help", "h", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s - Multiplex tactile actuator channels onto one audio signal.\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Options override the configuration file, which is looked for\n")
		fmt.Fprintf(os.Stderr, "as tactile-mux.yaml in the usual places if -c is not given.\n")
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

	var config, configErr = LoadConfig(*configFileName)
	if configErr != nil {
		logger.Error("Can't read configuration", "err", configErr)
		os.Exit(1)
	}

	/*
	 * Command line overrides.
	 */
	if *channels > 0 {
		config.Channels = *channels
		config.CarriersHz = nil
	}
	if *sourceType != "" {
		config.Source.Type = *sourceType
	}
	if *listenAddr != "" {
		config.Source.Listen = *listenAddr
	}
	if *serialDevice != "" {
		config.Source.Device = *serialDevice
	}
	if *baud != 0 {
		config.Source.Baud = *baud
	}
	for _, spec := range *toneSpecs {
		var tone, toneErr = ParseToneSpec(spec)
		if toneErr != nil {
			logger.Error("Bad tone", "tone", spec, "err", toneErr)
			os.Exit(1)
		}
		config.Source.Tones = append(config.Source.Tones, ToneConfig{Channel: tone.Channel, Hz: tone.Hz, Amplitude: tone.Amplitude})
	}
	if *outputFile != "" {
		config.Sink.Type = "wav"
		config.Sink.Path = *outputFile
	}
	if *metricsAddr != "" {
		config.MetricsAddr = *metricsAddr
	}
	if *announce {
		config.Announce = true
	}
	if *lockMem {
		config.LockMemory = true
	}
	if *statsInterval >= 0 {
		config.StatsInterval = *statsInterval
	}
	if *onFault != "" {
		config.Deadline.OnFault = *onFault
	}

	var validateErr = config.Validate()
	if validateErr != nil {
		logger.Error("Invalid configuration", "err", validateErr)
		os.Exit(1)
	}

	var err = runMux(config, *seconds)
	if err != nil {
		logger.Error("Stopped", "err", err)
		os.Exit(1)
	}
}

/*------------------------------------------------------------------
 *
 * Name:        runMux
 *
 * Purpose:     Set everything up according to config and run until
 *		the source ends, an interrupt arrives or a fault stops
 *		it.
 *
 *----------------------------------------------------------------*/

func runMux(config Config, seconds float64) error {
	if config.LockMemory {
		var lockErr = lockMemory()
		if lockErr != nil {
			logger.Warn("Could not lock memory", "err", lockErr)
		} else {
			logger.Info("Memory locked")
		}
	}

	var m, muxErr = config.NewMuxer()
	if muxErr != nil {
		return muxErr
	}

	logger.Info("Multiplexer ready",
		"channels", m.NumChannels(),
		"tactile_rate", m.TactileRate(),
		"audio_rate", m.AudioRate(),
		"taps", m.Bank().Filter().NumTaps())
	for c, slot := range m.Slots() {
		logger.Debug("Carrier slot", "channel", c, "low_hz", slot.Low(), "center_hz", slot.Center, "high_hz", slot.High())
	}
	if m.Headroom() > 1 {
		logger.Warn("Full scale input on every channel can clip", "headroom", m.Headroom())
	}

	var ctx, stop = signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var metrics *Metrics
	if config.MetricsAddr != "" {
		var reg = prometheus.NewRegistry()
		metrics = NewMetrics(reg)

		var server = ServeMetrics(config.MetricsAddr, reg)
		defer func() {
			var shutdownCtx, cancel = context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			_ = server.Shutdown(shutdownCtx)
		}()
	}

	var source, sourceErr = openSource(ctx, config, m, seconds)
	if sourceErr != nil {
		return sourceErr
	}
	defer source.Close()

	var sink, realTime, sinkErr = openSink(config, m)
	if sinkErr != nil {
		return sinkErr
	}
	defer func() {
		var closeErr = sink.Close()
		if closeErr != nil {
			logger.Error("Closing output", "err", closeErr)
		}
	}()

	var mute MuteLine = NoMute{}
	if config.MuteGPIO.Chip != "" {
		var gpio, gpioErr = OpenGPIOMute(config.MuteGPIO.Chip, config.MuteGPIO.Line, config.MuteGPIO.ActiveLow)
		if gpioErr != nil {
			return gpioErr
		}
		mute = gpio
	}
	defer mute.Close()

	var policy, _ = config.FaultPolicy()

	var runner, runnerErr = NewRunner(RunnerConfig{
		Muxer:          m,
		Source:         source,
		Sink:           sink,
		FramesPerBlock: config.FramesPerBlock,
		RealTime:       realTime,
		MaxMisses:      config.Deadline.MaxConsecutiveMisses,
		Policy:         policy,
		Mute:           mute,
		Metrics:        metrics,
		Stats:          NewAudioStats(time.Duration(config.StatsInterval) * time.Second),
	})
	if runnerErr != nil {
		return runnerErr
	}

	var runErr = runner.Run(ctx)

	logger.Info("Finished", "frames", runner.Frames(), "late_blocks", runner.Monitor().Total())

	if errors.Is(runErr, ErrDeadlineMiss) {
		return fmt.Errorf("giving up after %d consecutive late blocks: %w", config.Deadline.MaxConsecutiveMisses+1, runErr)
	}

	return runErr
}

func openSource(ctx context.Context, config Config, m *Muxer, seconds float64) (Source, error) {
	var n = m.NumChannels()

	switch config.Source.Type {
	case "tone":
		var tones []Tone
		for _, tc := range config.Source.Tones {
			tones = append(tones, Tone{Channel: tc.Channel, Hz: tc.Hz, Amplitude: tc.Amplitude})
		}
		return NewToneSource(n, m.TactileRate(), tones, config.Source.PulseSeconds, seconds), nil

	case "stdin":
		return NewStreamSource(os.Stdin, n, config.Source.QueueFrames), nil

	case "tcp":
		var ns, listenErr = ListenNetSource(config.Source.Listen, n, config.Source.QueueFrames)
		if listenErr != nil {
			return nil, listenErr
		}

		logger.Info("Waiting for tactile frames", "addr", ns.Addr().String())

		if config.Announce {
			var mc, _ = config.MuxerConfig()
			var announceErr = dnsSDAnnounce(ctx, config.AnnounceName, ns.Port(), mc)
			if announceErr != nil {
				logger.Warn("Not announcing", "err", announceErr)
			}
		}

		return ns, nil

	case "serial":
		return OpenSerialSource(config.Source.Device, config.Source.Baud, n, m.TactileRate(), config.Source.QueueFrames)

	default:
		return nil, fmt.Errorf("source type %q not tone, stdin, tcp or serial: %w", config.Source.Type, ErrConfig)
	}
}

// openSink also reports whether the sink runs off the sound card clock.
func openSink(config Config, m *Muxer) (Sink, bool, error) {
	switch config.Sink.Type {
	case "audio":
		var pa, paErr = OpenPortAudioSink(m.AudioRate(), config.FramesPerBlock*m.RateFactor())
		if paErr != nil {
			return nil, false, paErr
		}
		return pa, true, nil

	case "wav":
		var fileName, nameErr = strftime.Format(config.Sink.Path, time.Now())
		if nameErr != nil {
			return nil, false, fmt.Errorf("output file name %q: %w", config.Sink.Path, nameErr)
		}

		var ws, wavErr = CreateWavSink(fileName, int(m.AudioRate()))
		if wavErr != nil {
			return nil, false, wavErr
		}

		logger.Info("Recording", "file", fileName)

		if config.Source.Type == "tone" {
			return ws, false, nil
		}

		// A live source has to be paced by the clock or the file
		// fills with padding as fast as the disk allows.
		return newPacedSink(ws, config.BlockDuration()), false, nil

	default:
		return nil, false, fmt.Errorf("sink type %q not audio or wav: %w", config.Sink.Type, ErrConfig)
	}
}

type pacedSink struct {
	sink   Sink
	ticker *time.Ticker
}

func newPacedSink(sink Sink, period time.Duration) *pacedSink {
	return &pacedSink{sink: sink, ticker: time.NewTicker(period)}
}

func (ps *pacedSink) Write(samples []float32) error {
	<-ps.ticker.C
	return ps.sink.Write(samples)
}

func (ps *pacedSink) Close() error {
	ps.ticker.Stop()
	return ps.sink.Close()
}
