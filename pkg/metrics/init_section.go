package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initSectionMetrics() {
	r.SectionsExtractedTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "meshroute_sections_extracted_total",
			Help: "Total number of sections extracted around focus nodes",
		},
	)

	r.SectionNodes = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "meshroute_section_nodes",
			Help:    "Number of mesh nodes per extracted section",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500},
		},
	)

	r.SectionEdges = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "meshroute_section_edges",
			Help:    "Number of mesh edges per extracted section",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500},
		},
	)

	r.SectionTerminals = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "meshroute_section_terminals",
			Help:    "Number of trimmed connection terminals per section",
			Buckets: []float64{1, 2, 5, 10, 25, 50, 100},
		},
	)
}
