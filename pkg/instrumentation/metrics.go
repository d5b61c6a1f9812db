package instrumentation

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameSpace                = "storefront"
	HttpStatusHistogram      = "http_status_histogram"
	BusinessesTotal          = "businesses_total"
	CustomDomainsTotal       = "custom_domains_total"
	DiscountCodesTotal       = "discount_codes_total"
	DiscountValidationsTotal = "discount_validations_total"
	DNSVerificationsTotal    = "dns_verifications_total"
)

type Metrics struct {
	HttpStatusHistogram prometheus.HistogramVec

	// Custom metrics
	BusinessesTotal          prometheus.Gauge
	CustomDomainsTotal       prometheus.GaugeVec
	DiscountCodesTotal       prometheus.Gauge
	DiscountValidationsTotal prometheus.CounterVec
	DNSVerificationsTotal    prometheus.CounterVec

	reg *prometheus.Registry
}

func NewMetrics(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		panic("reg cannot be nil")
	}
	metrics := &Metrics{
		reg: reg,
		HttpStatusHistogram: *promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Namespace: NameSpace,
			Name:      HttpStatusHistogram,
			Help:      "Duration of HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"status", "method", "path"}),

		BusinessesTotal: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Namespace: NameSpace,
			Name:      BusinessesTotal,
			Help:      "Number of registered businesses",
		}),
		CustomDomainsTotal: *promauto.With(reg).NewGaugeVec(prometheus.GaugeOpts{
			Namespace: NameSpace,
			Name:      CustomDomainsTotal,
			Help:      "Number of attached custom domains by domain status",
		}, []string{"status"}),
		DiscountCodesTotal: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Namespace: NameSpace,
			Name:      DiscountCodesTotal,
			Help:      "Number of discount codes",
		}),
		DiscountValidationsTotal: *promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: NameSpace,
			Name:      DiscountValidationsTotal,
			Help:      "Result of discount code validations",
		}, []string{"result"}),
		DNSVerificationsTotal: *promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: NameSpace,
			Name:      DNSVerificationsTotal,
			Help:      "Outcome of custom domain DNS verifications",
		}, []string{"outcome"}),
	}

	reg.MustRegister(collectors.NewBuildInfoCollector())

	return metrics
}

func (m *Metrics) RecordDiscountValidation(result string) {
	if m != nil {
		m.DiscountValidationsTotal.With(prometheus.Labels{"result": result}).Inc()
	}
}

func (m *Metrics) RecordDNSVerification(verified bool) {
	if m == nil {
		return
	}
	outcome := "missed"
	if verified {
		outcome = "verified"
	}
	m.DNSVerificationsTotal.With(prometheus.Labels{"outcome": outcome}).Inc()
}

func (m Metrics) Registry() *prometheus.Registry {
	return m.reg
}
