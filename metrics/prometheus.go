package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	sellerApiRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seller_api_requests_total",
			Help: "Total number of requests to the Ozon seller API.",
		},
		[]string{"method", "endpoint", "status"},
	)
	sellerApiRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "seller_api_request_duration_seconds",
			Help:    "Histogram of Ozon seller API request durations.",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
		},
		[]string{"method", "endpoint", "status"},
	)
)

func init() {
	prometheus.MustRegister(sellerApiRequestsTotal)
	prometheus.MustRegister(sellerApiRequestDuration)
}

// RecordRequest записывает метрики для запроса к Ozon seller API.
func RecordRequest(method, endpoint string, statusCode int, duration time.Duration) {
	status := classifyStatus(statusCode)
	sellerApiRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	sellerApiRequestDuration.WithLabelValues(method, endpoint, status).Observe(duration.Seconds())
}

// classifyStatus классифицирует HTTP-статус код в строку.
func classifyStatus(statusCode int) string {
	if statusCode >= 200 && statusCode < 300 {
		return "2xx"
	} else if statusCode >= 300 && statusCode < 400 {
		return "3xx"
	} else if statusCode >= 400 && statusCode < 500 {
		return "4xx"
	} else if statusCode >= 500 && statusCode < 600 {
		return "5xx"
	}
	return "unknown"
}

// MetricsHandler возвращает HTTP-обработчик для экспорта метрик Prometheus.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
