package command

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds every swatchbook metric. It is never served over the
// network; WriteMetrics dumps it for node_exporter's textfile collector.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

var (
	// MetricPalettesCreated counts archives written by create
	MetricPalettesCreated = factory.NewCounter(prometheus.CounterOpts{
		Name: "swatchbook_palettes_created_total",
		Help: "Total palettes created from text",
	})

	// MetricPalettesLoaded counts archives read by view
	MetricPalettesLoaded = factory.NewCounter(prometheus.CounterOpts{
		Name: "swatchbook_palettes_loaded_total",
		Help: "Total palettes loaded from archives",
	})

	// MetricSwatchesParsed counts swatches placed by create
	MetricSwatchesParsed = factory.NewCounter(prometheus.CounterOpts{
		Name: "swatchbook_swatches_parsed_total",
		Help: "Total swatches parsed from text",
	})

	// MetricArchiveBytes tracks the size of written archives
	MetricArchiveBytes = factory.NewHistogram(prometheus.HistogramOpts{
		Name:    "swatchbook_archive_size_bytes",
		Help:    "Size of written palette archives in bytes",
		Buckets: []float64{256, 512, 1024, 2048, 4096, 8192},
	})

	// MetricFailuresTotal counts failed commands by failure kind
	MetricFailuresTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "swatchbook_failures_total",
		Help: "Total failed commands by failure kind",
	}, []string{"kind"})
)

// WriteMetrics writes the registry in text exposition format to path.
// An empty path disables the dump.
func WriteMetrics(path string) error {
	if path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, Registry)
}
