// Package instrument bridges observable state into Prometheus metrics
// and OpenTelemetry traces.
//
// # Prometheus
//
// Collectors mirror observable state, driven by the same notification
// channels every other observer uses:
//
//	queueDepth := observable.NewValue(0)
//	instrument.Gauge(queueDepth, "queue_depth", "Jobs waiting to run.")
//
//	peers := observable.NewSet[string]()
//	instrument.SizeGauge(peers, "peers", "Connected peers.")
//
// Each constructor returns the subscription keeping the collector
// current; unsubscribing freezes the collector at its last value. The
// collector itself stays registered, so reuse of a metric name needs a
// fresh Registry via WithRegistry.
//
// # OpenTelemetry
//
// TracedValue wraps a cell so every mutation runs inside a span:
//
//	cell := instrument.NewTracedValue(observable.NewValue(0), "inventory")
//	cell.Set(ctx, 42)
//
// The tracer comes from the global tracer provider. Configure it in
// main() before mutating traced cells.
//
// # Threading
//
// The bridges subscribe plain observers and add no synchronization of
// their own; they run on whatever goroutine mutates the source.
package instrument
