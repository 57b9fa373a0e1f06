package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// BusinessMetrics holds Prometheus metrics for business-level observability.
type BusinessMetrics struct {
	// Orders
	OrdersCreated      *prometheus.CounterVec
	OrderValue         *prometheus.HistogramVec
	OrderItemCount     *prometheus.HistogramVec
	OrderStatusChanges *prometheus.CounterVec

	// Payments
	PaymentsRecorded *prometheus.CounterVec

	// Inventory
	StockRejections  prometheus.Counter
	LowStockProducts prometheus.Gauge

	// Accounts
	Signups     prometheus.Counter
	Logins      prometheus.Counter
	LoginFailed prometheus.Counter

	// Reviews and wholesale
	ReviewsCreated          prometheus.Counter
	DistributorApplications *prometheus.CounterVec

	// Email delivery
	EmailSent   *prometheus.CounterVec
	EmailFailed *prometheus.CounterVec
}

// NewBusinessMetrics creates and registers all business metrics
func NewBusinessMetrics(namespace string) *BusinessMetrics {
	if namespace == "" {
		namespace = "saffron"
	}

	subsystem := "business"

	return &BusinessMetrics{
		OrdersCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "orders_created_total",
				Help:      "Total orders created",
			},
			[]string{"kind"}, // kind: retail, wholesale
		),
		OrderValue: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "order_value_dollars",
				Help:      "Distribution of order totals in dollars",
				Buckets:   []float64{10, 25, 50, 100, 250, 500, 1000, 2500},
			},
			[]string{"kind"},
		),
		OrderItemCount: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "order_item_count",
				Help:      "Distribution of line item counts per order",
				Buckets:   []float64{1, 2, 3, 5, 8, 13, 21},
			},
			[]string{"kind"},
		),
		OrderStatusChanges: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "order_status_changes_total",
				Help:      "Total order status transitions",
			},
			[]string{"from", "to"},
		),
		PaymentsRecorded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "payments_recorded_total",
				Help:      "Total payment records by outcome",
			},
			[]string{"status"}, // status: pending, completed, failed, refunded
		),
		StockRejections: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "stock_rejections_total",
				Help:      "Total order attempts rejected for insufficient stock",
			},
		),
		LowStockProducts: promauto.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "low_stock_products",
				Help:      "Number of products currently below the low stock threshold",
			},
		),
		Signups: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "signups_total",
				Help:      "Total account registrations",
			},
		),
		Logins: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "logins_total",
				Help:      "Total successful logins",
			},
		),
		LoginFailed: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "login_failed_total",
				Help:      "Total failed login attempts",
			},
		),
		ReviewsCreated: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "reviews_created_total",
				Help:      "Total product reviews created",
			},
		),
		DistributorApplications: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "distributor_applications_total",
				Help:      "Total distributor applications by outcome",
			},
			[]string{"status"}, // status: pending, approved, rejected
		),
		EmailSent: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "email_sent_total",
				Help:      "Total emails sent",
			},
			[]string{"kind"}, // kind: order_status, welcome
		),
		EmailFailed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "email_failed_total",
				Help:      "Total email send failures",
			},
			[]string{"kind"},
		),
	}
}
