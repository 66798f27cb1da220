package tactile

/*------------------------------------------------------------------
 *
 * Purpose:   	Announce the tactile frame TCP input using DNS-SD
 *
 * Description:
 *
 *     The phone or host application producing actuator signals should
 *     not need to be told an IP address and port; it can browse for
 *     the service on the local network instead.
 *
 *     This uses the pure-Go github.com/brutella/dnssd package for
 *     cross-platform mDNS/DNS-SD service announcement without requiring
 *     any system daemon or C library dependencies.
 */

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/brutella/dnssd"
)

const DNS_SD_SERVICE = "_tactile-mux._tcp"

/*------------------------------------------------------------------
 *
 * Name:        dnsSDAnnounce
 *
 * Purpose:     Start answering mDNS queries for the frame input.
 *
 * Inputs:	ctx	- Responder stops when this is cancelled.
 *		name	- Instance name, "" for the default.
 *		port	- TCP port of the frame input.
 *		config	- Published as TXT records so a client can
 *			  find out channel count and rate.
 *
 *----------------------------------------------------------------*/

func dnsSDAnnounce(ctx context.Context, name string, port int, config MuxerConfig) error {
	if name == "" {
		name = dnsSDDefaultServiceName()
	}

	var cfg = dnssd.Config{ //nolint:exhaustruct
		Name: name,
		Type: DNS_SD_SERVICE,
		Port: port,
		Text: map[string]string{
			"channels":     strconv.Itoa(config.NumChannels),
			"tactile_rate": strconv.FormatFloat(config.TactileRate, 'f', -1, 64),
			"format":       "s16le",
		},
	}

	var sv, svErr = dnssd.NewService(cfg)
	if svErr != nil {
		return fmt.Errorf("DNS-SD: failed to create service: %w", svErr)
	}

	var rp, rpErr = dnssd.NewResponder()
	if rpErr != nil {
		return fmt.Errorf("DNS-SD: failed to create responder: %w", rpErr)
	}

	var _, addErr = rp.Add(sv)
	if addErr != nil {
		return fmt.Errorf("DNS-SD: failed to add service: %w", addErr)
	}

	logger.Info("DNS-SD: Announcing tactile frame input", "port", port, "name", name)

	go func() {
		var respondErr = rp.Respond(ctx)
		if respondErr != nil && ctx.Err() == nil {
			logger.Error("DNS-SD: Responder error", "err", respondErr)
		}
	}()

	return nil
}

/* Get a default service name to publish. By default,
 * "Tactile mux on <hostname>", or just "Tactile mux" if hostname cannot
 * be obtained.
 */
func dnsSDDefaultServiceName() string {
	var hostname, hostnameErr = os.Hostname()
	if hostnameErr != nil {
		return "Tactile mux"
	}

	// on some systems, an FQDN is returned; remove domain part
	hostname, _, _ = strings.Cut(hostname, ".")

	return "Tactile mux on " + hostname
}
