package tactile

/*------------------------------------------------------------------
 *
 * Purpose:   	Optional hardware mute of the output amplifier.
 *
 * Description:	When the real-time loop faults the audio it produces
 *		is garbage and actuators driven from it would buzz.
 *		Boards with an amplifier shutdown pin can have it
 *		driven from a GPIO line here, much like PTT on a radio.
 *
 *---------------------------------------------------------------*/

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"
)

type MuteLine interface {
	SetMuted(muted bool) error
	Close() error
}

// NoMute is used when no mute line is configured.
type NoMute struct{}

func (NoMute) SetMuted(bool) error { return nil }

func (NoMute) Close() error { return nil }

type GPIOMute struct {
	line      *gpiocdev.Line
	activeLow bool
	muted     bool
}

/*------------------------------------------------------------------
 *
 * Name:        OpenGPIOMute
 *
 * Inputs:	chip		- e.g. "gpiochip0".
 *		offset		- Line number on that chip.
 *		activeLow	- True if a low level mutes.
 *
 * Returns:	Mute line, initially not muted.
 *
 *----------------------------------------------------------------*/

func OpenGPIOMute(chip string, offset int, activeLow bool) (*GPIOMute, error) {
	var line, err = gpiocdev.RequestLine(chip, offset,
		gpiocdev.AsOutput(IfThenElse(activeLow, 1, 0)),
		gpiocdev.WithConsumer("tactile-mux"))
	if err != nil {
		return nil, fmt.Errorf("mute line %s:%d: %w", chip, offset, err)
	}

	return &GPIOMute{line: line, activeLow: activeLow, muted: false}, nil
}

func (g *GPIOMute) SetMuted(muted bool) error {
	if muted == g.muted {
		return nil
	}

	var level = IfThenElse(muted != g.activeLow, 1, 0)

	var err = g.line.SetValue(level)
	if err != nil {
		return fmt.Errorf("mute line: %w", err)
	}

	g.muted = muted

	return nil
}

func (g *GPIOMute) Close() error {
	return g.line.Close()
}
