package tactile

/*------------------------------------------------------------------
 *
 * Purpose:	Console logging for the tools.
 *
 * Description: Everything goes to stderr so stdout stays free for
 *		raw frame or report output.  Nothing on the per-sample
 *		path logs.
 *
 *------------------------------------------------------------------*/

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{ //nolint:exhaustruct
	ReportTimestamp: true,
	Prefix:          "tactile",
})

// SetLogLevel accepts debug, info, warn, error or fatal.
func SetLogLevel(level string) error {
	var lvl, err = log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("log level %q: %w", level, err)
	}

	logger.SetLevel(lvl)

	return nil
}

// SetLogOutput redirects logging, mostly for tests.
func SetLogOutput(w io.Writer) {
	logger.SetOutput(w)
}

func Logger() *log.Logger {
	return logger
}
