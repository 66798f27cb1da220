package tactile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, text string) string {
	t.Helper()

	var path = filepath.Join(t.TempDir(), "tactile-mux.yaml")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o600))

	return path
}

func Test_DefaultConfigIsValid(t *testing.T) {
	var config = DefaultConfig()

	require.NoError(t, config.Validate())
	assert.InDelta(t, 48000.0, config.AudioRate(), 0)
	assert.Equal(t, 32*time.Millisecond, config.BlockDuration())

	var filter, err = config.Filter()
	require.NoError(t, err)
	assert.Equal(t, DefaultFilter().Taps(), filter.Taps())

	var policy, policyErr = config.FaultPolicy()
	require.NoError(t, policyErr)
	assert.Equal(t, FaultSilence, policy)
}

func Test_LoadConfig(t *testing.T) {
	var path = writeConfig(t, `
channels: 3
tactile_rate: 1000
rate_factor: 16
bandwidth_hz: 300
carriers_hz: [1000, 2000, 3000]
filter_radius: 128
layout: planar
frames_per_block: 32
deadline:
  max_consecutive_misses: 5
  on_fault: reset
source:
  type: tcp
  listen: "127.0.0.1:9000"
  tones:
    - channel: 2
      hz: 80
      amplitude: 0.5
sink:
  type: wav
  path: out.wav
metrics_addr: ":9110"
`)

	var config, err = LoadConfig(path)
	require.NoError(t, err)
	require.NoError(t, config.Validate())

	assert.Equal(t, 3, config.Channels)
	assert.Equal(t, 16, config.RateFactor)
	assert.Equal(t, "reset", config.Deadline.OnFault)
	assert.Equal(t, 5, config.Deadline.MaxConsecutiveMisses)
	assert.Equal(t, "tcp", config.Source.Type)
	assert.Equal(t, []ToneConfig{{Channel: 2, Hz: 80, Amplitude: 0.5}}, config.Source.Tones)
	assert.Equal(t, ":9110", config.MetricsAddr)

	// Not in the file, so still the default.
	assert.Equal(t, 2000, config.Source.QueueFrames)
	assert.InDelta(t, 250.0, config.GuardHz, 0)

	var mc, mcErr = config.MuxerConfig()
	require.NoError(t, mcErr)
	assert.Equal(t, LayoutPlanar, mc.Layout)
	assert.Equal(t, []Carrier{{DownHz: -150, UpHz: 1000}, {DownHz: -150, UpHz: 2000}, {DownHz: -150, UpHz: 3000}}, mc.Carriers)

	var m, muxErr = config.NewMuxer()
	require.NoError(t, muxErr)
	assert.InDelta(t, 16000.0, m.AudioRate(), 0)
	assert.Equal(t, 257, m.Bank().Filter().NumTaps())
	assert.InDelta(t, 150.0/16000, m.Bank().Filter().Cutoff(), 1e-15)
}

func Test_LoadConfigErrors(t *testing.T) {
	var _, err = LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadConfig(writeConfig(t, "channels: [not a number"))
	assert.Error(t, err)
}

func Test_LoadConfigNoFile(t *testing.T) {
	var config, err = LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func Test_ConfigValidate(t *testing.T) {
	var config = DefaultConfig()
	config.Channels = 0
	config.FramesPerBlock = 0
	config.Layout = "diagonal"
	config.Deadline.OnFault = "shrug"
	config.Source.Tones = []ToneConfig{{Channel: 4, Hz: 10, Amplitude: 1}}

	var err = config.Validate()
	assert.ErrorIs(t, err, ErrChannelCount)
	assert.ErrorIs(t, err, ErrBufferSize)
	assert.ErrorIs(t, err, ErrConfig)

	config = DefaultConfig()
	config.CarriersHz = []float64{1000}
	assert.ErrorIs(t, config.Validate(), ErrChannelCount)
}

func Test_ConfigFilterErrors(t *testing.T) {
	var config = DefaultConfig()
	config.BandwidthHz = 1500

	var _, err = config.Filter()
	assert.ErrorIs(t, err, ErrSlotRange)

	config = DefaultConfig()
	config.RateFactor = 0
	_, err = config.NewMuxer()
	assert.ErrorIs(t, err, ErrConfig)
}

func Test_ConfigQueueFrames(t *testing.T) {
	for _, sourceType := range []string{"stdin", "tcp", "serial"} {
		for _, frames := range []int{0, -5} {
			var config = DefaultConfig()
			config.Source.Type = sourceType
			config.Source.QueueFrames = frames

			assert.ErrorIs(t, config.Validate(), ErrBufferSize, "%s with %d queue frames", sourceType, frames)
		}
	}

	// Tone input has no queue.
	var config = DefaultConfig()
	config.Source.QueueFrames = 0
	assert.NoError(t, config.Validate())
}

func Test_ConfigGain(t *testing.T) {
	var config = DefaultConfig()
	assert.InDelta(t, 1.0/12, config.Gain(), 1e-15)

	config.Channels = 4
	config.CarriersHz = nil
	assert.InDelta(t, 0.25, config.Gain(), 1e-15)

	var mc, err = config.MuxerConfig()
	require.NoError(t, err)
	assert.InDelta(t, 0.25, mc.OutputGain, 1e-15)

	config.OutputGain = 0.5
	assert.InDelta(t, 0.5, config.Gain(), 0)
}
