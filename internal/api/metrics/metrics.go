// Package metrics defines and registers all custom Prometheus metrics for
// the user/address API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// init time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "user_address"

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok" or "denied"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// UsersCreatedTotal counts successful user registrations.
var UsersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of users created.",
	},
)

// AddressesCreatedTotal counts successfully created addresses.
var AddressesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "addresses_created_total",
		Help:      "Total number of addresses created.",
	},
)

// PostalLookupDuration measures how long a single ViaCEP lookup takes.
// Label:
//   - result: "ok", "not_found" or "error"
var PostalLookupDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "postal_lookup_duration_seconds",
		Help:      "Duration of postal enrichment lookups against ViaCEP.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"result"},
)

// PostalCacheTotal counts postal cache decisions.
// Label:
//   - result: "hit" or "miss"
var PostalCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "postal_cache_total",
		Help:      "Total number of postal cache checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
