package instrument

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/johnmwilson82/observable"
)

// Number covers the value types a Gauge can mirror.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Config configures the collectors built by this package.
type Config struct {
	// Namespace is the metrics namespace (default: "observable").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures the collectors built by this package.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

// defaultConfig returns the default collector configuration.
func defaultConfig() Config {
	return Config{
		Namespace: "observable",
		Registry:  prometheus.DefaultRegisterer,
	}
}

func buildConfig(opts []Option) Config {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return config
}

// Gauge registers a prometheus Gauge tracking the cell's value. The
// gauge is set immediately from the current value and again on every
// change. The returned subscription stops the tracking.
func Gauge[T Number](v *observable.Value[T], name, help string, opts ...Option) *observable.Subscription {
	config := buildConfig(opts)

	g := promauto.With(config.Registry).NewGauge(prometheus.GaugeOpts{
		Namespace:   config.Namespace,
		Subsystem:   config.Subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: config.ConstLabels,
	})

	return v.SubscribeValueAndCall(func(n T) {
		g.Set(float64(n))
	})
}

// SizeGauge registers a prometheus Gauge tracking a collection's
// element count across inserts, removals and bulk replacements. The
// returned subscription stops the tracking.
func SizeGauge[T any, C observable.Container[T]](col *observable.Collection[T, C], name, help string, opts ...Option) *observable.Subscription {
	config := buildConfig(opts)

	g := promauto.With(config.Registry).NewGauge(prometheus.GaugeOpts{
		Namespace:   config.Namespace,
		Subsystem:   config.Subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: config.ConstLabels,
	})

	g.Set(float64(col.Len()))
	return col.Subscribe(func() {
		g.Set(float64(col.Len()))
	})
}

// ChangeCounter registers a prometheus Counter incremented on every
// change the source announces. No-op mutations never count. The
// returned subscription stops the counting.
func ChangeCounter(src observable.Observable, name, help string, opts ...Option) *observable.Subscription {
	config := buildConfig(opts)

	c := promauto.With(config.Registry).NewCounter(prometheus.CounterOpts{
		Namespace:   config.Namespace,
		Subsystem:   config.Subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: config.ConstLabels,
	})

	return src.Subscribe(func() {
		c.Inc()
	})
}
