// Copyright (c) 2025 Alexey Mayshev and contributors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package prometheus exports numbered.List statistics as Prometheus metrics.
package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/maypok86/numbered/stats"
)

// StatsProvider provides list statistics.
type StatsProvider interface {
	Stats() stats.Stats
}

// Collector collects statistics from a list and exposes them to Prometheus.
type Collector struct {
	provider         StatsProvider
	replacementsDesc *prometheus.Desc
	discardsDesc     *prometheus.Desc
	comparisonsDesc  *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a new collector for the given list statistics provider.
// Metric names are prefixed with the given namespace and subsystem,
// i.e "{namespace}_{subsystem}_{metric}".
// Supported metrics:
// - replacements
// - discards
// - comparisons
func NewCollector(namespace, subsystem string, provider StatsProvider) *Collector {
	return &Collector{
		provider: provider,
		replacementsDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "replacements"),
			"Number of candidates that replaced a record.",
			nil, nil,
		),
		discardsDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "discards"),
			"Number of candidates discarded because no record had a smaller id.",
			nil, nil,
		),
		comparisonsDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "comparisons"),
			"Number of id comparisons made while scanning for a replacement slot.",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(descs chan<- *prometheus.Desc) {
	descs <- c.replacementsDesc
	descs <- c.discardsDesc
	descs <- c.comparisonsDesc
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(metrics chan<- prometheus.Metric) {
	s := c.provider.Stats()
	metrics <- prometheus.MustNewConstMetric(
		c.replacementsDesc, prometheus.CounterValue, float64(s.Replacements()),
	)
	metrics <- prometheus.MustNewConstMetric(
		c.discardsDesc, prometheus.CounterValue, float64(s.Discards()),
	)
	metrics <- prometheus.MustNewConstMetric(
		c.comparisonsDesc, prometheus.CounterValue, float64(s.Comparisons()),
	)
}
