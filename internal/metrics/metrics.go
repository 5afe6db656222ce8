package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gatherhub"

// Registry is the dedicated Prometheus registry for all server metrics.
var Registry = prometheus.NewRegistry()

// AppInfo exposes build information as labels (value is always 1).
var AppInfo = promauto.With(Registry).NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "app_info",
		Help:      "Application build information (always 1, details in labels)",
	},
	[]string{"version", "commit", "build_date"},
)

// Init records build information at startup.
func Init(version, commit, buildDate string) {
	AppInfo.WithLabelValues(version, commit, buildDate).Set(1)
}
