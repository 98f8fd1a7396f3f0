package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const metricPrefix = "roombooking_"

var (
	registerOnce sync.Once

	bookingAttempts    *prometheus.CounterVec
	bookingConflicts   prometheus.Counter
	cancellations      prometheus.Counter
	forecastCache      *prometheus.CounterVec
	catalogLookups     *prometheus.CounterVec
	availabilityChecks *prometheus.CounterVec
)

// Init registers the booking workflow metrics. Safe to call more than once.
func Init(registry prometheus.Registerer) {
	registerOnce.Do(func() {
		if registry == nil {
			registry = prometheus.DefaultRegisterer
		}

		bookingAttempts = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "booking_attempts_total",
				Help: "Confirm attempts by result",
			},
			[]string{"result"},
		)
		bookingConflicts = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "booking_conflicts_total",
				Help: "Confirm attempts rejected because the slot was taken",
			},
		)
		cancellations = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "booking_cancellations_total",
				Help: "Successful cancellations",
			},
		)
		forecastCache = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "forecast_cache_total",
				Help: "Forecast store cache lookups by outcome",
			},
			[]string{"outcome"},
		)
		catalogLookups = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "catalog_lookups_total",
				Help: "Room catalog lookups by result",
			},
			[]string{"result"},
		)
		availabilityChecks = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "availability_checks_total",
				Help: "Availability checks by outcome",
			},
			[]string{"outcome"},
		)

		registry.MustRegister(
			bookingAttempts,
			bookingConflicts,
			cancellations,
			forecastCache,
			catalogLookups,
			availabilityChecks,
		)
	})
}

func BookingConfirmed() {
	if bookingAttempts != nil {
		bookingAttempts.WithLabelValues("confirmed").Inc()
	}
}

func BookingFailed() {
	if bookingAttempts != nil {
		bookingAttempts.WithLabelValues("error").Inc()
	}
}

func BookingConflict() {
	if bookingAttempts != nil {
		bookingAttempts.WithLabelValues("conflict").Inc()
	}
	if bookingConflicts != nil {
		bookingConflicts.Inc()
	}
}

func BookingCancelled() {
	if cancellations != nil {
		cancellations.Inc()
	}
}

func ForecastCacheHit() {
	if forecastCache != nil {
		forecastCache.WithLabelValues("hit").Inc()
	}
}

func ForecastCacheMiss() {
	if forecastCache != nil {
		forecastCache.WithLabelValues("miss").Inc()
	}
}

func CatalogLookup(result string) {
	if catalogLookups != nil {
		catalogLookups.WithLabelValues(result).Inc()
	}
}

func AvailabilityCheck(outcome string) {
	if availabilityChecks != nil {
		availabilityChecks.WithLabelValues(outcome).Inc()
	}
}
