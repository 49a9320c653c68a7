package mapper

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"bean-mapper/errs"
	"bean-mapper/iterables"
)

// Metrics counts mapped objects and failures per provider.
type Metrics struct {
	mapped   *prometheus.CounterVec
	failures *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the mapper collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer, namespace string) (*Metrics, error) {
	m := &Metrics{
		mapped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "objects_mapped_total",
			Help:      "objects mapped successfully",
		}, []string{"provider"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mapping_failures_total",
			Help:      "objects that failed to map",
		}, []string{"provider"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "mapping_duration_seconds",
			Help:      "time spent constructing and populating a target",
			Buckets:   []float64{.00001, .0001, .001, .01, .1, 1},
		}, []string{"provider"}),
	}

	for _, c := range []prometheus.Collector{m.mapped, m.failures, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Instrumented is a Bean reporting to Metrics.
type Instrumented[T, U any] struct {
	bean    *Bean[T, U]
	metrics *Metrics
}

// Instrument wraps b so that every mapping is recorded in m.
func Instrument[T, U any](m *Metrics, b *Bean[T, U]) (*Instrumented[T, U], error) {
	if m == nil {
		return nil, errs.InvalidArgument("metrics")
	}

	if b == nil {
		return nil, errs.InvalidArgument("bean")
	}

	return &Instrumented[T, U]{bean: b, metrics: m}, nil
}

func (i *Instrumented[T, U]) TryMap(source T) (U, error) {
	provider := i.bean.Provider().String()
	start := time.Now()

	out, err := i.bean.TryMap(source)

	i.metrics.duration.WithLabelValues(provider).Observe(time.Since(start).Seconds())

	if err != nil {
		i.metrics.failures.WithLabelValues(provider).Inc()
		return out, err
	}

	i.metrics.mapped.WithLabelValues(provider).Inc()

	return out, nil
}

func (i *Instrumented[T, U]) Map(source T) U {
	out, err := i.TryMap(source)
	if err != nil {
		i.bean.log.Error("mapping failed", zap.Error(err))
	}

	return out
}

func (i *Instrumented[T, U]) MapAll(source iterables.Iterable[T]) (iterables.Iterable[U], error) {
	return MapAll[T, U](i, source, iterables.WithLogger(i.bean.log))
}
