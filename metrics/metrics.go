// Package metrics 以 Prometheus 指标导出树的结构统计与负载执行情况.
package metrics

import (
	"errors"

	"github.com/Tsukikage7/navmap/collections/treemap"
)

var (
	// ErrNilConfig 配置为空.
	ErrNilConfig = errors.New("metrics: 配置为空")

	// ErrRegisterMetric 注册指标失败.
	ErrRegisterMetric = errors.New("metrics: 注册指标失败")
)

// StatsSource 提供树统计快照.
// Collect 可能在抓取协程中调用，实现方需要保证 Stats 的并发安全.
type StatsSource interface {
	Stats() treemap.Stats
}

// NewMetrics 创建指标收集器.
func NewMetrics(cfg *Config) (*PrometheusCollector, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	return NewPrometheus(cfg)
}

// MustNewMetrics 创建指标收集器，失败时 panic.
func MustNewMetrics(cfg *Config) *PrometheusCollector {
	c, err := NewMetrics(cfg)
	if err != nil {
		panic(err)
	}
	return c
}
