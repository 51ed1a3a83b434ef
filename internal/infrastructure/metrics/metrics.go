package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"sien_official/internal/domain/entities"
	"sien_official/internal/usecase"
	"sien_official/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns the service collectors and the registry they are exposed from.
type Metrics struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	ordersCreated   prometheus.Counter
	notifications   *prometheus.CounterVec
	scans           *prometheus.CounterVec
	alertsSent      prometheus.Counter
	ordersChecked   prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sien",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "sien",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		ordersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sien",
			Name:      "orders_created_total",
			Help:      "Orders accepted by the intake endpoint.",
		}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sien",
			Name:      "notifications_total",
			Help:      "Notification attempts by template and result.",
		}, []string{"template", "result"}),
		scans: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sien",
			Name:      "deadline_scans_total",
			Help:      "Deadline scans by result.",
		}, []string{"result"}),
		alertsSent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sien",
			Name:      "deadline_alerts_sent_total",
			Help:      "Deadline alerts sent.",
		}),
		ordersChecked: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "sien",
			Name:      "deadline_orders_checked",
			Help:      "Open orders with a deadline seen by the last scan.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests, m.requestDuration, m.ordersCreated, m.notifications,
		m.scans, m.alertsSent, m.ordersChecked,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) OrderCreated() { m.ordersCreated.Inc() }

func (m *Metrics) ObserveScan(res usecase.ScanResult, err error) {
	if err != nil {
		m.scans.WithLabelValues("error").Inc()
		return
	}
	m.scans.WithLabelValues("ok").Inc()
	m.alertsSent.Add(float64(res.Sent))
	m.ordersChecked.Set(float64(res.Checked))
}

// InstrumentNotifier counts every notification attempt made through next.
func (m *Metrics) InstrumentNotifier(next interfaces.INotifier) interfaces.INotifier {
	return &countingNotifier{next: next, counter: m.notifications}
}

type countingNotifier struct {
	next    interfaces.INotifier
	counter *prometheus.CounterVec
}

func (n *countingNotifier) Notify(ctx context.Context, tpl interfaces.NotificationTemplate, o entities.Order) error {
	err := n.next.Notify(ctx, tpl, o)
	result := "sent"
	if err != nil {
		result = "failed"
	}
	n.counter.WithLabelValues(string(tpl), result).Inc()
	return err
}
