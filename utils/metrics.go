package utils

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics 服务指标
type Metrics struct {
	Requests        *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	Events          *prometheus.CounterVec
	FilteredRows    prometheus.Gauge
}

// NewMetrics 创建并注册服务指标
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sales_dashboard",
			Name:      "http_requests_total",
			Help:      "HTTP请求数",
		}, []string{"method", "route", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "sales_dashboard",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP请求耗时",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		Events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sales_dashboard",
			Name:      "view_events_total",
			Help:      "看板状态事件数",
		}, []string{"type", "result"}),
		FilteredRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "sales_dashboard",
			Name:      "filtered_representatives",
			Help:      "当前筛选结果中的销售人员数",
		}),
	}
	reg.MustRegister(m.Requests, m.RequestDuration, m.Events, m.FilteredRows)
	return m
}
