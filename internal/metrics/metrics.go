package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "billing_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "billing_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	InvoicesCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "billing_invoices_created_total",
			Help: "Total number of invoices created",
		},
	)

	PDFsGeneratedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "billing_pdfs_generated_total",
			Help: "Total number of invoice PDFs generated",
		},
	)

	HostCPUPercent = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "billing_host_cpu_percent",
			Help: "Host CPU utilisation percentage",
		},
	)

	HostMemoryPercent = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "billing_host_memory_percent",
			Help: "Host memory utilisation percentage",
		},
	)

	HostDiskPercent = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "billing_host_disk_percent",
			Help: "Host disk utilisation percentage for the root mount",
		},
	)
)
