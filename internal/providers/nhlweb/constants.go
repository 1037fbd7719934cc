package nhlweb

import "time"

const (
	providerName       = "nhlweb"
	defaultBaseURL     = "https://api-web.nhle.com/v1"
	defaultHTTPTimeout = 10 * time.Second
	maxErrorBody       = 512
)
