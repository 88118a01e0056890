// Package observability groups the logging, metrics and tracing support used
// by the catalog.
//
// Subpackages:
//   - logging: slog construction and context propagation
//   - metrics: Prometheus collectors for entity creation, domain errors and queries
//   - tracing: OpenTelemetry span helpers and a stdout exporter for the CLI
//
// Example usage:
//
//	import (
//	    "magazine-catalog/internal/observability/logging"
//	    "magazine-catalog/internal/observability/metrics"
//	)
//
//	func main() {
//	    logger := logging.NewLogger()
//	    logger.Info("catalog started")
//
//	    metrics.RecordEntityCreated(metrics.KindAuthor)
//	}
package observability
