package mainboilerplate

import (
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

// MetricsConfig configures export of collected metrics. Short-lived programs
// have no scrape endpoint, so metrics are written in the text exposition
// format for a node_exporter textfile collector.
type MetricsConfig struct {
	File string `long:"file" env:"FILE" description:"Write gathered metrics to this path on exit (node_exporter textfile format)"`
}

// WriteMetrics writes the default gatherer to cfg.File, if one is configured.
func WriteMetrics(cfg MetricsConfig) error {
	if cfg.File == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(cfg.File, prometheus.DefaultGatherer); err != nil {
		return err
	}
	log.WithField("path", cfg.File).Debug("wrote metrics")
	return nil
}
