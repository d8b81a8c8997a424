// Package metrics provides Prometheus collectors for the decoder service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "netdecoder"

// Recorder holds the service collectors registered on its own registry.
type Recorder struct {
	Registry       *prometheus.Registry
	decodes        *prometheus.CounterVec
	decodeDuration *prometheus.HistogramVec
	requests       *prometheus.CounterVec
	pruned         prometheus.Counter
}

// NewRecorder creates collectors and registers them.
func NewRecorder() *Recorder {
	r := &Recorder{
		Registry: prometheus.NewRegistry(),
		decodes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "decode_total",
			Help:      "Decode attempts by scheme and outcome.",
		}, []string{"scheme", "outcome"}),
		decodeDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "decode_duration_seconds",
			Help:      "Time spent in the codec.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 8),
		}, []string{"scheme"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method and status code.",
		}, []string{"method", "code"}),
		pruned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "history_pruned_total",
			Help:      "History records removed by retention.",
		}),
	}
	r.Registry.MustRegister(r.decodes, r.decodeDuration, r.requests, r.pruned)
	return r
}

// ObserveDecode records one decode attempt.
func (r *Recorder) ObserveDecode(scheme string, success bool, elapsed time.Duration) {
	if r == nil {
		return
	}
	outcome := "failure"
	if success {
		outcome = "success"
	}
	r.decodes.WithLabelValues(scheme, outcome).Inc()
	r.decodeDuration.WithLabelValues(scheme).Observe(elapsed.Seconds())
}

// ObservePruned adds n to the pruned records counter.
func (r *Recorder) ObservePruned(n int64) {
	if r == nil {
		return
	}
	r.pruned.Add(float64(n))
}

// Handler exposes the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.Registry, promhttp.HandlerOpts{})
}

// statusWriter remembers the status code written by the next handler.
type statusWriter struct {
	http.ResponseWriter
	code int
}

func (w *statusWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}

// RequestsHandle serves as a middleware counting handled requests.
func (r *Recorder) RequestsHandle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(sw, req)
		r.requests.WithLabelValues(req.Method, strconv.Itoa(sw.code)).Inc()
	})
}
