package tactile

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics of the real-time loop.  Updated once per block, never per sample.
type Metrics struct {
	Blocks         prometheus.Counter
	Frames         prometheus.Counter
	Underruns      prometheus.Counter
	ClippedSamples prometheus.Counter
	DeadlineMisses prometheus.Counter
	Faults         prometheus.Counter
	ProcessSeconds prometheus.Histogram
	Headroom       prometheus.Gauge
	PeakLevel      prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	var factory = promauto.With(reg)

	return &Metrics{
		Blocks: factory.NewCounter(prometheus.CounterOpts{ //nolint:exhaustruct
			Name: "tactile_mux_blocks_total",
			Help: "Blocks of tactile frames multiplexed.",
		}),
		Frames: factory.NewCounter(prometheus.CounterOpts{ //nolint:exhaustruct
			Name: "tactile_mux_frames_total",
			Help: "Tactile frames multiplexed.",
		}),
		Underruns: factory.NewCounter(prometheus.CounterOpts{ //nolint:exhaustruct
			Name: "tactile_mux_underrun_frames_total",
			Help: "Frames padded with silence because the source had nothing ready.",
		}),
		ClippedSamples: factory.NewCounter(prometheus.CounterOpts{ //nolint:exhaustruct
			Name: "tactile_mux_clipped_samples_total",
			Help: "Audio samples outside [-1, 1].",
		}),
		DeadlineMisses: factory.NewCounter(prometheus.CounterOpts{ //nolint:exhaustruct
			Name: "tactile_mux_deadline_misses_total",
			Help: "Blocks that took longer to process than their duration.",
		}),
		Faults: factory.NewCounter(prometheus.CounterOpts{ //nolint:exhaustruct
			Name: "tactile_mux_faults_total",
			Help: "Consecutive deadline misses exceeding the configured limit.",
		}),
		ProcessSeconds: factory.NewHistogram(prometheus.HistogramOpts{ //nolint:exhaustruct
			Name:    "tactile_mux_process_seconds",
			Help:    "Time spent in ProcessSamples per block.",
			Buckets: prometheus.ExponentialBuckets(50e-6, 2, 12),
		}),
		Headroom: factory.NewGauge(prometheus.GaugeOpts{ //nolint:exhaustruct
			Name: "tactile_mux_headroom",
			Help: "Largest possible output magnitude for full scale input.",
		}),
		PeakLevel: factory.NewGauge(prometheus.GaugeOpts{ //nolint:exhaustruct
			Name: "tactile_mux_peak_level",
			Help: "Peak output magnitude of the most recent block.",
		}),
	}
}

// ServeMetrics exposes reg on addr at /metrics until the server is shut down.
func ServeMetrics(addr string, reg *prometheus.Registry) *http.Server {
	var server = &http.Server{ //nolint:exhaustruct
		Addr:              addr,
		Handler:           metricsHandler(reg),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("Serving metrics", "addr", addr)
		var err = server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Metrics server failed", "err", err)
		}
	}()

	return server
}

func metricsHandler(reg *prometheus.Registry) http.Handler {
	var mux = http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{})) //nolint:exhaustruct

	return mux
}
