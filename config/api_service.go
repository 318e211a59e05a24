package config

import (
	"time"
)

// ApiService describes how to reach the review service REST API.
type ApiService struct {
	// BaseUrl is the root of the API, e.g. https://review.example.com
	BaseUrl string `json:"base_url" yaml:"base_url"`

	// ApiKey is the static key sent on every request. Can be given directly or resolved from an environment
	// variable or file.
	ApiKey StringValue `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Timeout bounds each individual API call
	Timeout HumanDuration `json:"timeout,omitempty" yaml:"timeout,omitempty"`
}

const defaultApiTimeout = 30 * time.Second

func (a *ApiService) TimeoutOrDefault() time.Duration {
	if a.Timeout.Duration() > 0 {
		return a.Timeout.Duration()
	}

	return defaultApiTimeout
}
