package strategies

import (
	"errors"
	"io"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors shared by every Instrumented strategy
type Metrics struct {
	written *prometheus.CounterVec
	failed  *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg when it is not nil
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		written: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "logstrategy",
			Name:      "entries_written_total",
			Help:      "Log entries accepted by a sink, by strategy kind and level.",
		}, []string{"kind", "level"}),
		failed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "logstrategy",
			Name:      "sink_write_errors_total",
			Help:      "Log entries a sink failed to accept, by strategy kind and level.",
		}, []string{"kind", "level"}),
	}

	if reg == nil {
		return m, nil
	}

	var err error
	if m.written, err = register(reg, m.written); err != nil {
		return nil, err
	}
	if m.failed, err = register(reg, m.failed); err != nil {
		return nil, err
	}
	return m, nil
}

// register adds c to reg, reusing an identical collector that is already registered
func register(reg prometheus.Registerer, c *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}

	var already prometheus.AlreadyRegisteredError
	if errors.As(err, &already) {
		if existing, ok := already.ExistingCollector.(*prometheus.CounterVec); ok {
			return existing, nil
		}
	}
	return nil, err
}

// Wrap returns inner instrumented with these collectors
func (m *Metrics) Wrap(inner Strategy) *Instrumented {
	return &Instrumented{inner: inner, metrics: m}
}

// Instrumented counts successful and failed writes of an inner strategy
type Instrumented struct {
	inner   Strategy
	metrics *Metrics
}

// Log implements the Strategy interface
func (i *Instrumented) Log(entry Entry) error {
	err := i.inner.Log(entry)
	labels := prometheus.Labels{"kind": i.inner.Kind(), "level": entry.Level.String()}
	if err != nil {
		i.metrics.failed.With(labels).Inc()
		return err
	}
	i.metrics.written.With(labels).Inc()
	return nil
}

// Sync implements the Strategy interface
func (i *Instrumented) Sync() error {
	return i.inner.Sync()
}

// Close closes the inner strategy if it holds a resource
func (i *Instrumented) Close() error {
	if c, ok := i.inner.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Kind reports the inner strategy's kind
func (i *Instrumented) Kind() string {
	return i.inner.Kind()
}
