// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Entity kinds used as the "kind" label.
const (
	KindAuthor   = "author"
	KindMagazine = "magazine"
	KindArticle  = "article"
)

// Business metrics track catalog operations
var (
	// EntitiesCreatedTotal counts successfully constructed entities by kind
	EntitiesCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_entities_created_total",
			Help: "Total number of entities registered in the catalog",
		},
		[]string{"kind"},
	)

	// DomainErrorsTotal counts rejected constructions and assignments by kind and error class
	DomainErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_domain_errors_total",
			Help: "Total number of rejected entity operations",
		},
		[]string{"kind", "class"},
	)

	// MagazineUpdatesTotal counts accepted magazine renames and recategorizations
	MagazineUpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_magazine_updates_total",
			Help: "Total number of accepted magazine field updates",
		},
		[]string{"field"},
	)

	// RegistrySize tracks the number of registered entities by kind
	RegistrySize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "catalog_registry_size",
			Help: "Number of entities currently registered",
		},
		[]string{"kind"},
	)

	// QueryDuration measures relationship query duration in seconds
	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_query_duration_seconds",
			Help:    "Relationship query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.000001, 10, 7),
		},
		[]string{"query"},
	)
)
