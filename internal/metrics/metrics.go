package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	WebhookDeliveriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_deliveries_total",
			Help: "Webhook deliveries by result",
		},
		[]string{"result"},
	)

	StatusUpsertsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_status_upserts_total",
			Help: "Payment status snapshots stored, by status",
		},
		[]string{"status"},
	)

	PosDispatchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pos_dispatch_total",
			Help: "Reconciliation dispatches to the POS, by outcome",
		},
		[]string{"outcome"},
	)

	PosRetriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pos_dispatch_retries_total",
			Help: "Retry queue redeliveries, by result",
		},
		[]string{"result"},
	)

	KafkaPublishTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_publish_total",
			Help: "Kafka publishes by topic and result",
		},
		[]string{"topic", "result"},
	)

	PaymentAmounts = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "payment_amounts",
			Help:    "Distribution of amounts seen on webhook deliveries",
			Buckets: prometheus.LinearBuckets(0, 50, 20),
		},
	)
)

const (
	ResultAccepted     = "accepted"
	ResultUnauthorized = "unauthorized"
	ResultMalformed    = "malformed"
)

const (
	PublishOK      = "ok"
	PublishFailed  = "failed"
	PublishAborted = "aborted"
)

func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(
		WebhookDeliveriesTotal,
		StatusUpsertsTotal,
		PosDispatchTotal,
		PosRetriesTotal,
		KafkaPublishTotal,
		PaymentAmounts,
	)
}
