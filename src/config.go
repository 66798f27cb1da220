package tactile

/*------------------------------------------------------------------
 *
 * Purpose:	Read the multiplexer configuration file.
 *
 * Description: YAML.  Every field has a default so an empty file, or
 *		no file at all, gives the standard 12 channel plan:
 *
 *			channels: 12
 *			tactile_rate: 2000
 *			rate_factor: 24		# 48 kHz audio
 *			bandwidth_hz: 500
 *			guard_hz: 250
 *			base_hz: 500
 *
 *		Command line options override the file.
 *
 *------------------------------------------------------------------*/

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type ToneConfig struct {
	Channel   int     `yaml:"channel"`
	Hz        float64 `yaml:"hz"`
	Amplitude float64 `yaml:"amplitude"`
}

type SourceConfig struct {
	Type         string       `yaml:"type"` // tone, stdin, tcp, serial
	Listen       string       `yaml:"listen"`
	Device       string       `yaml:"device"`
	Baud         int          `yaml:"baud"`
	QueueFrames  int          `yaml:"queue_frames"`
	Tones        []ToneConfig `yaml:"tones"`
	PulseSeconds float64      `yaml:"pulse_seconds"`
}

type SinkConfig struct {
	Type string `yaml:"type"` // audio, wav
	Path string `yaml:"path"` // strftime pattern for wav
}

type DeadlineConfig struct {
	MaxConsecutiveMisses int    `yaml:"max_consecutive_misses"`
	OnFault              string `yaml:"on_fault"` // silence, reset, stop
}

type MuteGPIOConfig struct {
	Chip      string `yaml:"chip"` // Empty for no mute line.
	Line      int    `yaml:"line"`
	ActiveLow bool   `yaml:"active_low"`
}

type Config struct {
	Channels       int       `yaml:"channels"`
	TactileRate    float64   `yaml:"tactile_rate"`
	RateFactor     int       `yaml:"rate_factor"`
	BandwidthHz    float64   `yaml:"bandwidth_hz"`
	GuardHz        float64   `yaml:"guard_hz"`
	BaseHz         float64   `yaml:"base_hz"`
	CarriersHz     []float64 `yaml:"carriers_hz"` // Slot centers; overrides the even plan.
	FilterRadius   int       `yaml:"filter_radius"`
	OutputGain     float64   `yaml:"output_gain"` // 0 for 1/channels.
	Layout         string    `yaml:"layout"`
	FramesPerBlock int       `yaml:"frames_per_block"`

	Deadline DeadlineConfig `yaml:"deadline"`
	Source   SourceConfig   `yaml:"source"`
	Sink     SinkConfig     `yaml:"sink"`
	MuteGPIO MuteGPIOConfig `yaml:"mute_gpio"`

	MetricsAddr   string `yaml:"metrics_addr"`
	Announce      bool   `yaml:"announce"`
	AnnounceName  string `yaml:"announce_name"`
	LockMemory    bool   `yaml:"lock_memory"`
	StatsInterval int    `yaml:"stats_interval"` // Seconds, 0 for none.
}

func DefaultConfig() Config {
	return Config{
		Channels:       12,
		TactileRate:    2000,
		RateFactor:     weaverLpfRateFactor,
		BandwidthHz:    2 * weaverLpfCutoffHz,
		GuardHz:        250,
		BaseHz:         500,
		CarriersHz:     nil,
		FilterRadius:   weaverLpfRadius,
		OutputGain:     0,
		Layout:         "interleaved",
		FramesPerBlock: 64,
		Deadline: DeadlineConfig{
			MaxConsecutiveMisses: 3,
			OnFault:              "silence",
		},
		Source: SourceConfig{ //nolint:exhaustruct
			Type:        "tone",
			Listen:      ":8010",
			Baud:        921600,
			QueueFrames: 2000,
		},
		Sink: SinkConfig{
			Type: "audio",
			Path: "tactile-%Y%m%d-%H%M%S.wav",
		},
		MuteGPIO:      MuteGPIOConfig{}, //nolint:exhaustruct
		MetricsAddr:   "",
		Announce:      false,
		AnnounceName:  "",
		LockMemory:    false,
		StatsInterval: 100,
	}
}

/*------------------------------------------------------------------
 *
 * Function:	LoadConfig
 *
 * Purpose:	Read configuration, starting from the defaults.
 *
 * Inputs:	path	- File name.  Empty to look in the usual places,
 *			  in which case not finding one is not an error.
 *
 *------------------------------------------------------------------*/

var search_locations = []string{
	"tactile-mux.yaml",    // Current working directory
	"../tactile-mux.yaml", // Source tree
	"/usr/local/etc/tactile-mux.yaml",
	"/etc/tactile-mux.yaml",
}

func LoadConfig(path string) (Config, error) {
	var config = DefaultConfig()

	if path == "" {
		for _, location := range search_locations {
			var _, statErr = os.Stat(location)
			if statErr == nil {
				path = location
				break
			}
		}

		if path == "" {
			logger.Debug("No configuration file found, using defaults")
			return config, nil
		}
	}

	var f, openErr = os.Open(path) //nolint:gosec
	if openErr != nil {
		return config, fmt.Errorf("configuration file: %w", openErr)
	}
	defer f.Close()

	var data, readErr = io.ReadAll(f)
	if readErr != nil {
		return config, fmt.Errorf("error reading configuration file %s: %w", path, readErr)
	}

	var unmarshallErr = yaml.Unmarshal(data, &config)
	if unmarshallErr != nil {
		return config, fmt.Errorf("error parsing configuration file %s: %w", path, unmarshallErr)
	}

	logger.Info("Read configuration", "file", path)

	return config, nil
}

func (c Config) AudioRate() float64 {
	return c.TactileRate * float64(c.RateFactor)
}

// Gain is the output gain to use.  Unless set, the sum of all channels at
// full scale is brought back to roughly full scale.
func (c Config) Gain() float64 {
	if c.OutputGain != 0 || c.Channels <= 0 {
		return c.OutputGain
	}

	return 1 / float64(c.Channels)
}

func (c Config) Carriers() []Carrier {
	if len(c.CarriersHz) == 0 {
		return PlanCarriers(c.Channels, c.BandwidthHz, c.GuardHz, c.BaseHz)
	}

	var carriers = make([]Carrier, len(c.CarriersHz))
	for i, hz := range c.CarriersHz {
		carriers[i] = Carrier{DownHz: -c.BandwidthHz / 2, UpHz: hz}
	}

	return carriers
}

func (c Config) ParsedLayout() (Layout, error) {
	switch c.Layout {
	case "interleaved", "":
		return LayoutInterleaved, nil
	case "planar":
		return LayoutPlanar, nil
	default:
		return LayoutInterleaved, fmt.Errorf("layout %q not interleaved or planar: %w", c.Layout, ErrConfig)
	}
}

func (c Config) MuxerConfig() (MuxerConfig, error) {
	var layout, layoutErr = c.ParsedLayout()
	if layoutErr != nil {
		return MuxerConfig{}, layoutErr //nolint:exhaustruct
	}

	return MuxerConfig{
		NumChannels: c.Channels,
		TactileRate: c.TactileRate,
		RateFactor:  c.RateFactor,
		Carriers:    c.Carriers(),
		OutputGain:  c.Gain(),
		Layout:      layout,
	}, nil
}

/*------------------------------------------------------------------
 *
 * Function:	Filter
 *
 * Purpose:	Pick the interpolation filter for this configuration.
 *
 * Description:	The compiled in table when the plan matches what it was
 *		designed for, otherwise design one now with the same
 *		method: cutoff at half the channel bandwidth, gain of
 *		twice the rate factor.
 *
 *------------------------------------------------------------------*/

func (c Config) Filter() (*Filter, error) {
	if !(c.BandwidthHz > 0) || c.BandwidthHz > c.TactileRate/2 {
		return nil, fmt.Errorf("bandwidth %.1f Hz must be between 0 and half the tactile rate: %w", c.BandwidthHz, ErrSlotRange)
	}
	if c.RateFactor <= 0 {
		return nil, fmt.Errorf("rate factor %d: %w", c.RateFactor, ErrRateFactor)
	}

	if c.FilterRadius == weaverLpfRadius &&
		c.RateFactor == weaverLpfRateFactor &&
		c.AudioRate() == weaverLpfAudioRate &&
		c.BandwidthHz/2 == weaverLpfCutoffHz {
		return DefaultFilter(), nil
	}

	logger.Info("Designing interpolation filter", "radius", c.FilterRadius, "cutoff_hz", c.BandwidthHz/2, "audio_rate", c.AudioRate())

	return DesignWeaverLowpass(c.FilterRadius, c.BandwidthHz/2/c.AudioRate(), 2*float64(c.RateFactor))
}

// NewMuxer builds the muxer this configuration describes.
func (c Config) NewMuxer() (*Muxer, error) {
	var mc, mcErr = c.MuxerConfig()
	if mcErr != nil {
		return nil, mcErr
	}

	var filter, filterErr = c.Filter()
	if filterErr != nil {
		return nil, filterErr
	}

	return NewMuxer(mc, filter)
}

func (c Config) BlockDuration() time.Duration {
	return time.Duration(float64(c.FramesPerBlock) / c.TactileRate * float64(time.Second))
}

func (c Config) FaultPolicy() (FaultPolicy, error) {
	return ParseFaultPolicy(c.Deadline.OnFault)
}

// Validate checks everything that can be checked without building the
// muxer.  NewMuxer still validates the frequency plan.
func (c Config) Validate() error {
	var errs []error

	if c.Channels <= 0 {
		errs = append(errs, fmt.Errorf("channels %d: %w", c.Channels, ErrChannelCount))
	}
	if len(c.CarriersHz) != 0 && len(c.CarriersHz) != c.Channels {
		errs = append(errs, fmt.Errorf("%d carriers_hz for %d channels: %w", len(c.CarriersHz), c.Channels, ErrChannelCount))
	}
	if c.RateFactor <= 0 {
		errs = append(errs, fmt.Errorf("rate_factor %d: %w", c.RateFactor, ErrRateFactor))
	}
	if !(c.TactileRate > 0) {
		errs = append(errs, fmt.Errorf("tactile_rate %g: %w", c.TactileRate, ErrRateFactor))
	}
	if c.FramesPerBlock <= 0 {
		errs = append(errs, fmt.Errorf("frames_per_block %d: %w", c.FramesPerBlock, ErrBufferSize))
	}
	switch c.Source.Type {
	case "stdin", "tcp", "serial":
		if c.Source.QueueFrames <= 0 {
			errs = append(errs, fmt.Errorf("source queue_frames %d: %w", c.Source.QueueFrames, ErrBufferSize))
		}
	}
	if _, err := c.ParsedLayout(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.FaultPolicy(); err != nil {
		errs = append(errs, err)
	}
	for _, t := range c.Source.Tones {
		if t.Channel < 0 || t.Channel >= c.Channels {
			errs = append(errs, fmt.Errorf("tone for channel %d of %d: %w", t.Channel, c.Channels, ErrConfig))
		}
	}

	return errors.Join(errs...)
}
