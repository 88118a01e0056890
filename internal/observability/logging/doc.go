// Package logging provides structured logging utilities with context propagation.
//
// This package wraps the standard library's log/slog package with helper functions
// for common logging patterns used throughout the application.
//
// Key features:
//   - JSON and text output formats
//   - Context-aware logging
//   - Configurable log levels
//
// Example usage:
//
//	import "magazine-catalog/internal/observability/logging"
//
//	func main() {
//	    logger := logging.New(os.Stderr, "text", "debug")
//	    ctx := logging.WithLogger(context.Background(), logger)
//	    logging.FromContext(ctx).Info("catalog loaded", slog.Int("authors", 3))
//	}
package logging
