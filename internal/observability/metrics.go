package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics - счетчики и гистограммы сервиса в реестре Prometheus.
type Metrics struct {
	ReportsCreated    *prometheus.CounterVec // label: type={regular,SOS}
	WarningsIssued    *prometheus.CounterVec // label: severity={low,medium,high}
	WebhookDeliveries *prometheus.CounterVec // label: outcome={success,failure}

	WeatherRequests    *prometheus.CounterVec // labels: mode={coords,city,zip,forecast}, outcome={success,error}
	WeatherCache       *prometheus.CounterVec // label: result={hit,miss}
	WeatherAPIDuration prometheus.Histogram
}

// NewMetrics создает метрики и регистрирует их в реестре по умолчанию.
func NewMetrics() *Metrics {
	m := &Metrics{
		ReportsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "snowshield",
			Name:      "reports_created_total",
			Help:      "Total incident reports created, by type.",
		}, []string{"type"}),
		WarningsIssued: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "snowshield",
			Name:      "warnings_issued_total",
			Help:      "Total area warnings issued, by severity.",
		}, []string{"severity"}),
		WebhookDeliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "snowshield",
			Name:      "webhook_deliveries_total",
			Help:      "Alert webhook delivery attempts by final outcome.",
		}, []string{"outcome"}),
		WeatherRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "snowshield",
			Name:      "weather_requests_total",
			Help:      "Weather API requests by lookup mode and outcome.",
		}, []string{"mode", "outcome"}),
		WeatherCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "snowshield",
			Name:      "weather_cache_total",
			Help:      "Weather response cache lookups by result.",
		}, []string{"result"}),
		WeatherAPIDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "snowshield",
			Name:      "weather_api_duration_seconds",
			Help:      "Upstream weather API request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
	}

	prometheus.MustRegister(
		m.ReportsCreated,
		m.WarningsIssued,
		m.WebhookDeliveries,
		m.WeatherRequests,
		m.WeatherCache,
		m.WeatherAPIDuration,
	)

	return m
}

// Инкременты терпимы к nil-получателю, чтобы юнит-тесты могли не поднимать
// реестр метрик.

func (m *Metrics) IncReportCreated(incidentType string) {
	if m == nil {
		return
	}
	m.ReportsCreated.WithLabelValues(incidentType).Inc()
}

func (m *Metrics) IncWarningIssued(severity string) {
	if m == nil {
		return
	}
	m.WarningsIssued.WithLabelValues(severity).Inc()
}

func (m *Metrics) IncWebhookDelivery(outcome string) {
	if m == nil {
		return
	}
	m.WebhookDeliveries.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncWeatherRequest(mode, outcome string) {
	if m == nil {
		return
	}
	m.WeatherRequests.WithLabelValues(mode, outcome).Inc()
}

func (m *Metrics) IncWeatherCache(result string) {
	if m == nil {
		return
	}
	m.WeatherCache.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveWeatherAPIDuration(seconds float64) {
	if m == nil {
		return
	}
	m.WeatherAPIDuration.Observe(seconds)
}
