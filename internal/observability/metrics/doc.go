// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes all catalog metrics including:
//   - Entities created, by kind
//   - Rejected operations, by kind and error class
//   - Registry sizes
//   - Relationship query latency
//
// All metrics are automatically registered with the Prometheus default registry.
// The CLI can dump them with WriteTextfile for node_exporter's textfile collector.
//
// Example usage:
//
//	import "magazine-catalog/internal/observability/metrics"
//
//	func addArticle() {
//	    start := time.Now()
//	    // ... add article ...
//	    metrics.RecordEntityCreated(metrics.KindArticle)
//	    metrics.RecordQuery("author_articles", time.Since(start))
//	}
package metrics
