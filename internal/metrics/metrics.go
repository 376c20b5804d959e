package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	ItemsAdded = promauto.NewCounter(prometheus.CounterOpts{
		Name: MetricNameItemsAdded,
		Help: HelpTextItemsAdded,
	})

	ItemsMerged = promauto.NewCounter(prometheus.CounterOpts{
		Name: MetricNameItemsMerged,
		Help: HelpTextItemsMerged,
	})

	ItemsRemoved = promauto.NewCounter(prometheus.CounterOpts{
		Name: MetricNameItemsRemoved,
		Help: HelpTextItemsRemoved,
	})

	KeyItemRejections = promauto.NewCounter(prometheus.CounterOpts{
		Name: MetricNameKeyItemRejections,
		Help: HelpTextKeyItemRejections,
	})

	EnemiesLogged = promauto.NewCounter(prometheus.CounterOpts{
		Name: MetricNameEnemiesLogged,
		Help: HelpTextEnemiesLogged,
	})

	StatsAdjusted = promauto.NewCounter(prometheus.CounterOpts{
		Name: MetricNameStatsAdjusted,
		Help: HelpTextStatsAdjusted,
	})

	DiceRolled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDiceRolled,
			Help: HelpTextDiceRolled,
		},
		[]string{LabelSides},
	)

	CriticalRolls = promauto.NewCounter(prometheus.CounterOpts{
		Name: MetricNameCriticalRolls,
		Help: HelpTextCriticalRolls,
	})

	SearchesPerformed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSearchesPerformed,
			Help: HelpTextSearchesPerformed,
		},
		[]string{LabelCollection},
	)

	StoreDecodeFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStoreDecodeFailures,
			Help: HelpTextStoreDecodeFailures,
		},
		[]string{LabelCollection},
	)

	ValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameValidationFailures,
			Help: HelpTextValidationFailures,
		},
		[]string{LabelOperation},
	)
)
