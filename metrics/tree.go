package metrics

import "github.com/prometheus/client_golang/prometheus"

// treeCollector 在每次抓取时读取 StatsSource 的快照.
type treeCollector struct {
	src StatsSource

	size      *prometheus.Desc
	height    *prometheus.Desc
	inserts   *prometheus.Desc
	removes   *prometheus.Desc
	rotations *prometheus.Desc
	fixups    *prometheus.Desc
}

func newTreeCollector(namespace, name string, src StatsSource) *treeCollector {
	labels := prometheus.Labels{"tree": name}
	desc := func(metric, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "tree", metric), help, nil, labels)
	}
	return &treeCollector{
		src:       src,
		size:      desc("size", "Number of entries in the tree"),
		height:    desc("height", "Height of the tree"),
		inserts:   desc("inserts_total", "Nodes inserted"),
		removes:   desc("removes_total", "Nodes removed"),
		rotations: desc("rotations_total", "Single rotations performed while rebalancing"),
		fixups:    desc("fixups_total", "Rebalance passes triggered by writes"),
	}
}

func (c *treeCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.size
	ch <- c.height
	ch <- c.inserts
	ch <- c.removes
	ch <- c.rotations
	ch <- c.fixups
}

func (c *treeCollector) Collect(ch chan<- prometheus.Metric) {
	st := c.src.Stats()
	ch <- prometheus.MustNewConstMetric(c.size, prometheus.GaugeValue, float64(st.Size))
	ch <- prometheus.MustNewConstMetric(c.height, prometheus.GaugeValue, float64(st.Height))
	ch <- prometheus.MustNewConstMetric(c.inserts, prometheus.CounterValue, float64(st.Inserts))
	ch <- prometheus.MustNewConstMetric(c.removes, prometheus.CounterValue, float64(st.Removes))
	ch <- prometheus.MustNewConstMetric(c.rotations, prometheus.CounterValue, float64(st.Rotations))
	ch <- prometheus.MustNewConstMetric(c.fixups, prometheus.CounterValue, float64(st.Fixups))
}
