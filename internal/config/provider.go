package config

import "time"

// ProviderConfig controls how we talk to the NHL data source.
type ProviderConfig struct {
	Name          string
	BaseURL       string
	RatePerMinute int
	RetryAttempts int
	RetryBackoff  time.Duration
	Timeout       time.Duration
}

// OfficialsConfig controls the officiating confirmation gate.
type OfficialsConfig struct {
	URL      string
	Required bool
}

func loadProvider() ProviderConfig {
	return ProviderConfig{
		Name:          envOrDefault(envProvider, defaultProvider),
		BaseURL:       envOrDefault(envNHLBaseURL, defaultNHLBaseURL),
		RatePerMinute: intEnvOrDefault(envProviderRate, defaultProviderRate),
		RetryAttempts: intEnvOrDefault(envProviderAttempts, defaultProviderAttempts),
		RetryBackoff:  durationEnvOrDefault(envProviderBackoff, defaultProviderBackoff),
		Timeout:       durationEnvOrDefault(envProviderTimeout, defaultProviderTimeout),
	}
}

func loadOfficials() OfficialsConfig {
	return OfficialsConfig{
		URL:      envOrDefault(envOfficialsURL, defaultOfficialsURL),
		Required: boolEnvOrDefault(envOfficialsRequired, defaultOfficialsNeeded),
	}
}
