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

// Notification Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)
)

// Game Metrics
var (
	GoldEarned = promauto.NewCounter(prometheus.CounterOpts{Name: MetricNameGoldEarned, Help: HelpTextGoldEarned})
	GoldSpent  = promauto.NewCounter(prometheus.CounterOpts{Name: MetricNameGoldSpent, Help: HelpTextGoldSpent})

	GoldBalance = promauto.NewGauge(prometheus.GaugeOpts{Name: MetricNameGoldBalance, Help: HelpTextGoldBalance})
	Reputation  = promauto.NewGauge(prometheus.GaugeOpts{Name: MetricNameReputation, Help: HelpTextReputation})
	GameDay     = promauto.NewGauge(prometheus.GaugeOpts{Name: MetricNameGameDay, Help: HelpTextGameDay})
	PlayerLevel = promauto.NewGauge(prometheus.GaugeOpts{Name: MetricNamePlayerLevel, Help: HelpTextPlayerLevel})

	CustomersServed = promauto.NewCounterVec(
		prometheus.CounterOpts{Name: MetricNameCustomersServed, Help: HelpTextCustomersServed},
		[]string{LabelCustomerType},
	)

	CustomersLeft = promauto.NewCounterVec(
		prometheus.CounterOpts{Name: MetricNameCustomersLeft, Help: HelpTextCustomersLeft},
		[]string{LabelReason},
	)

	Satisfaction = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    MetricNameSatisfaction,
		Help:    HelpTextSatisfaction,
		Buckets: SatisfactionBuckets,
	})

	PotionsCrafted = promauto.NewCounterVec(
		prometheus.CounterOpts{Name: MetricNamePotionsCrafted, Help: HelpTextPotionsCrafted},
		[]string{LabelPotion},
	)

	WorldEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{Name: MetricNameWorldEvents, Help: HelpTextWorldEvents},
		[]string{LabelType, LabelOutcome},
	)

	SaveOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{Name: MetricNameSaveOperations, Help: HelpTextSaveOperations},
		[]string{LabelOperation, LabelOutcome},
	)

	Battles = promauto.NewCounterVec(
		prometheus.CounterOpts{Name: MetricNameBattles, Help: HelpTextBattles},
		[]string{LabelOutcome},
	)

	RecipesMastered = promauto.NewCounter(prometheus.CounterOpts{Name: MetricNameRecipesMastered, Help: HelpTextRecipesMastered})
)
