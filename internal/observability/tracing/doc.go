// Package tracing provides OpenTelemetry tracing integration.
//
// Spans are created against the global tracer provider. Nothing is exported
// unless a provider is installed; the CLI installs a stdout exporter when
// tracing is enabled, and tests install an in-memory one.
//
// Example usage:
//
//	ctx, span := tracing.StartSpan(ctx, "catalog.AddArticle",
//	    attribute.String("author", name))
//	defer func() { tracing.EndSpan(span, err) }()
package tracing
