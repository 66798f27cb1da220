package tactile

/*------------------------------------------------------------------
 *
 * Purpose:   	Tactile frames from a serial port, typically a
 *		microcontroller sampling sensors or a USB CDC device.
 *
 *---------------------------------------------------------------*/

import (
	"fmt"

	"github.com/pkg/term"
)

/*-------------------------------------------------------------------
 *
 * Name:	OpenSerialSource
 *
 * Purpose:	Open serial port and start decoding frames from it.
 *
 * Inputs:	devicename	- Usually /dev/tty...
 *				  Could be /dev/rfcomm0 for Bluetooth.
 *
 *		baud		- Speed.  9600 .. 921600 bps.
 *				  If 0, leave it alone.
 *
 *		channels	- Samples per frame.
 *
 *		tactileRate	- Frames per second expected.
 *
 *		capacity	- Frames buffered before the oldest is dropped.
 *
 * Returns 	Source, or error if the port could not be opened.
 *
 *---------------------------------------------------------------*/

func OpenSerialSource(devicename string, baud int, channels int, tactileRate float64, capacity int) (*StreamSource, error) {

	var fd, err = term.Open(devicename, term.RawMode)
	if err != nil {
		return nil, fmt.Errorf("could not open serial port %s: %w", devicename, err)
	}

	switch baud {
	case 0: /* Leave it alone. */
	case 9600, 19200, 38400, 57600, 115200, 230400, 460800, 921600:
		var speedErr = fd.SetSpeed(baud)
		if speedErr != nil {
			fd.Close()
			return nil, fmt.Errorf("serial port %s speed %d: %w", devicename, baud, speedErr)
		}
	default:
		fd.Close()
		return nil, fmt.Errorf("serial port %s: unsupported speed %d", devicename, baud)
	}

	/* 12 channels at 2000 frames/sec is 48000 bytes/sec.  With start */
	/* and stop bits that needs more than 460800 baud. */
	var needed = float64(FrameBytes(channels)) * tactileRate * 10
	if baud != 0 && float64(baud) < needed {
		logger.Warn("Serial port too slow for frame rate", "device", devicename, "baud", baud, "needed", needed)
	}

	logger.Info("Reading tactile frames from serial port", "device", devicename, "baud", baud)

	return NewStreamSource(fd, channels, capacity), nil
} /* OpenSerialSource */
