package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusCollector Prometheus 指标收集器.
type PrometheusCollector struct {
	config *Config

	opsTotal       *prometheus.CounterVec
	opDuration     *prometheus.HistogramVec
	verifyFailures prometheus.Counter

	registry *prometheus.Registry
}

// NewPrometheus 创建收集器，使用独立的注册表.
func NewPrometheus(cfg *Config) (*PrometheusCollector, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Namespace == "" {
		cfg.Namespace = "treemap"
	}

	c := &PrometheusCollector{
		config:   cfg,
		registry: prometheus.NewRegistry(),
	}

	c.opsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: "workload",
			Name:      "ops_total",
			Help:      "Workload operations executed, by operation and result",
		},
		[]string{"op", "result"},
	)
	c.opDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: cfg.Namespace,
			Subsystem: "workload",
			Name:      "op_duration_seconds",
			Help:      "Workload operation latency in seconds",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 4, 10),
		},
		[]string{"op"},
	)
	c.verifyFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: "workload",
			Name:      "verify_failures_total",
			Help:      "Invariant or model checks that failed",
		},
	)

	for _, collector := range []prometheus.Collector{c.opsTotal, c.opDuration, c.verifyFailures} {
		if err := c.registry.Register(collector); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRegisterMetric, err)
		}
	}
	return c, nil
}

// Track 注册一棵树的结构统计，name 作为 tree 标签区分多棵树.
func (c *PrometheusCollector) Track(name string, src StatsSource) error {
	if err := c.registry.Register(newTreeCollector(c.config.Namespace, name, src)); err != nil {
		return fmt.Errorf("%w: tree %q: %w", ErrRegisterMetric, name, err)
	}
	return nil
}

// RecordOp 记录一次操作.
func (c *PrometheusCollector) RecordOp(op string, err error, duration time.Duration) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	c.opsTotal.WithLabelValues(op, result).Inc()
	c.opDuration.WithLabelValues(op).Observe(duration.Seconds())
}

// RecordVerifyFailure 记录一次校验失败.
func (c *PrometheusCollector) RecordVerifyFailure() {
	c.verifyFailures.Inc()
}

// Registry 返回底层注册表.
func (c *PrometheusCollector) Registry() *prometheus.Registry {
	return c.registry
}

// GetHandler 返回 metrics 的 HTTP 处理器.
func (c *PrometheusCollector) GetHandler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// GetPath 返回 metrics 路径.
func (c *PrometheusCollector) GetPath() string {
	if c.config.Path == "" {
		return "/metrics"
	}
	return c.config.Path
}
