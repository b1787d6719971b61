package ioc

import "github.com/prometheus/client_golang/prometheus"

func InitPrometheusRegisterer() prometheus.Registerer {
	return prometheus.DefaultRegisterer
}

func InitPrometheusGatherer() prometheus.Gatherer {
	return prometheus.DefaultGatherer
}
