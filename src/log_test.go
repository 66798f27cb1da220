package tactile

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_SetLogLevel(t *testing.T) {
	defer func() { _ = SetLogLevel("info") }()

	require.NoError(t, SetLogLevel("debug"))
	assert.Equal(t, log.DebugLevel, Logger().GetLevel())

	assert.Error(t, SetLogLevel("chatty"))
	assert.Equal(t, log.DebugLevel, Logger().GetLevel())
}

func Test_SetLogOutput(t *testing.T) {
	var buf bytes.Buffer
	SetLogOutput(&buf)
	defer SetLogOutput(os.Stderr)

	logger.Warn("Hello", "channel", 3)
	assert.True(t, strings.Contains(buf.String(), "Hello"))
	assert.Contains(t, buf.String(), "channel=3")
}

func Test_NoMute(t *testing.T) {
	var m MuteLine = NoMute{}

	assert.NoError(t, m.SetMuted(true))
	assert.NoError(t, m.Close())
}

func Test_OpenGPIOMuteMissingChip(t *testing.T) {
	var _, err = OpenGPIOMute("/dev/gpiochip-does-not-exist", 4, false)
	assert.Error(t, err)
}

func Test_DNSSDDefaultServiceName(t *testing.T) {
	assert.True(t, strings.HasPrefix(dnsSDDefaultServiceName(), "Tactile mux"))
}
