package tactile

import (
	"errors"
)

// ErrConfig is wrapped by every error that stops a muxer from being built.
// Nothing in the per-sample path returns an error.
var ErrConfig = errors.New("invalid configuration")

var (
	ErrRateFactor   = newConfigError("rate factor must be positive")
	ErrChannelCount = newConfigError("channel count must be positive")
	ErrEmptyFilter  = newConfigError("filter has no taps")
	ErrFilterShape  = newConfigError("filter must be odd length and symmetric")
	ErrSlotOverlap  = newConfigError("carrier slots overlap")
	ErrSlotRange    = newConfigError("carrier slot outside the audio band")
	ErrBufferSize   = newConfigError("buffer size mismatch")
)

// ErrDeadlineMiss means the real-time loop fell behind the sample clock for
// longer than the configured limit.  It is deliberately not an ErrConfig.
var ErrDeadlineMiss = errors.New("real-time deadline missed")

type configError struct {
	msg string
}

func (e *configError) Error() string { return e.msg }

func (e *configError) Unwrap() error { return ErrConfig }

func newConfigError(msg string) error {
	return &configError{msg: msg}
}
