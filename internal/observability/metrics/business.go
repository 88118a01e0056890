package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"magazine-catalog/internal/domain/entity"
)

// Error classes used as the "class" label.
const (
	ClassValidation = "validation"
	ClassImmutable  = "immutable"
	ClassType       = "type"
	ClassOther      = "other"
)

// RecordEntityCreated records a successful construction of the given kind.
func RecordEntityCreated(kind string) {
	EntitiesCreatedTotal.WithLabelValues(kind).Inc()
}

// RecordDomainError records a rejected operation, classifying err by the
// domain error it wraps.
func RecordDomainError(kind string, err error) {
	DomainErrorsTotal.WithLabelValues(kind, ErrorClass(err)).Inc()
}

// ErrorClass maps a domain error to its metric label.
func ErrorClass(err error) string {
	switch {
	case errors.Is(err, entity.ErrValidationFailed):
		return ClassValidation
	case errors.Is(err, entity.ErrImmutable):
		return ClassImmutable
	case errors.Is(err, entity.ErrInvalidType):
		return ClassType
	default:
		return ClassOther
	}
}

// RecordMagazineUpdate records an accepted update of a magazine field.
func RecordMagazineUpdate(field string) {
	MagazineUpdatesTotal.WithLabelValues(field).Inc()
}

// UpdateRegistrySize sets the registry gauges from the current counts.
func UpdateRegistrySize(authors, magazines, articles int) {
	RegistrySize.WithLabelValues(KindAuthor).Set(float64(authors))
	RegistrySize.WithLabelValues(KindMagazine).Set(float64(magazines))
	RegistrySize.WithLabelValues(KindArticle).Set(float64(articles))
}

// RecordQuery records the duration of a relationship query.
// Query should name the derived relation (e.g., "author_articles", "top_publisher").
func RecordQuery(query string, duration time.Duration) {
	QueryDuration.WithLabelValues(query).Observe(duration.Seconds())
}

// WriteTextfile writes the current state of every registered metric to path
// in the Prometheus text format.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
