package tactile

/*------------------------------------------------------------------
 *
 * Purpose:   	Accept tactile frames from a client application over
 *		TCP.
 *
 * Description:	One client is served at a time; others wait in the
 *		listen backlog until it disconnects.  Frames from
 *		successive clients all feed the same queue so the
 *		real-time loop never notices a change of client except
 *		as a gap of silence.
 *
 *---------------------------------------------------------------*/

import (
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/google/uuid"
)

type NetSource struct {
	listener net.Listener
	queue    *frameQueue
}

// ListenNetSource binds addr (for example ":8010") and starts accepting.
func ListenNetSource(addr string, channels int, capacityFrames int) (*NetSource, error) {
	var listener, listenErr = net.Listen("tcp", addr)
	if listenErr != nil {
		return nil, fmt.Errorf("tactile frame input: %w", listenErr)
	}

	var ns = &NetSource{
		listener: listener,
		queue:    newFrameQueue(channels, capacityFrames),
	}

	go ns.acceptLoop()

	return ns, nil
}

func (ns *NetSource) Addr() net.Addr {
	return ns.listener.Addr()
}

// Port the listener is bound to, useful when addr asked for port 0.
func (ns *NetSource) Port() int {
	var tcpAddr, ok = ns.listener.Addr().(*net.TCPAddr)
	if !ok {
		return 0
	}

	return tcpAddr.Port
}

func (ns *NetSource) acceptLoop() {
	for {
		logger.Info("Ready to accept tactile client application", "addr", ns.listener.Addr())

		var conn, acceptErr = ns.listener.Accept()
		if acceptErr != nil {
			if errors.Is(acceptErr, net.ErrClosed) {
				ns.queue.finish(io.EOF)
				return
			}
			logger.Error("Accept failed", "err", acceptErr)
			continue
		}

		var session = uuid.New().String()

		logger.Info("Attached to tactile client application", "session", session, "remote", conn.RemoteAddr())

		var copyErr = copyFrames(conn, ns.queue)
		conn.Close()

		if errors.Is(copyErr, io.EOF) {
			logger.Info("Tactile client closed connection", "session", session)
		} else {
			logger.Warn("Tactile client connection lost", "session", session, "err", copyErr)
		}
	}
}

func (ns *NetSource) ReadFrames(dst []float32) (int, error) {
	return ns.queue.pop(dst)
}

func (ns *NetSource) Dropped() int {
	return ns.queue.Dropped()
}

// Close stops accepting.  A client already attached is served until it
// disconnects.
func (ns *NetSource) Close() error {
	return ns.listener.Close()
}
