package config

import "strings"

// MetricsConfig controls the Prometheus scrape endpoint and optional OTLP push.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string // host:port, no scheme
	OtlpInsecure bool
}

func loadMetrics() MetricsConfig {
	endpoint, insecure := otlpEndpoint(envOrDefault(envOtelEndpoint, ""))
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, true),
		Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
		ServiceName:  envOrDefault(envOtelService, defaultServiceName),
		OtlpEndpoint: endpoint,
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, insecure),
	}
}

// otlpEndpoint strips a URL scheme from raw. The scheme, when present, sets
// the default for OTEL_EXPORTER_OTLP_INSECURE.
func otlpEndpoint(raw string) (string, bool) {
	switch {
	case strings.HasPrefix(raw, "https://"):
		return strings.TrimSuffix(strings.TrimPrefix(raw, "https://"), "/"), false
	case strings.HasPrefix(raw, "http://"):
		return strings.TrimSuffix(strings.TrimPrefix(raw, "http://"), "/"), true
	}
	return raw, true
}
