package config

import "time"

const (
	defaultApiBaseUrl       = "https://api.warzone.gg/api"
	defaultApiTimeout       = 10 * time.Second
	defaultRetryAttempts    = 3
	defaultRetryBackoffBase = 600 * time.Millisecond
)

// Api configures access to the upstream game API.
type Api struct {
	BaseUrl          string         `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	Timeout          *HumanDuration `json:"timeout,omitempty" yaml:"timeout,omitempty"`
	RetryAttempts    *int           `json:"retry_attempts,omitempty" yaml:"retry_attempts,omitempty"`
	RetryBackoffBase *HumanDuration `json:"retry_backoff_base,omitempty" yaml:"retry_backoff_base,omitempty"`
}

func (a *Api) GetBaseUrlOrDefault() string {
	if a == nil || a.BaseUrl == "" {
		return defaultApiBaseUrl
	}
	return a.BaseUrl
}

// GetTimeoutOrDefault is the total per-attempt request timeout.
func (a *Api) GetTimeoutOrDefault() time.Duration {
	if a == nil || a.Timeout == nil || a.Timeout.Duration <= 0 {
		return defaultApiTimeout
	}
	return a.Timeout.Duration
}

// GetRetryAttemptsOrDefault is the total number of attempts per call, including the first.
func (a *Api) GetRetryAttemptsOrDefault() int {
	if a == nil || a.RetryAttempts == nil || *a.RetryAttempts < 1 {
		return defaultRetryAttempts
	}
	return *a.RetryAttempts
}

// GetRetryBackoffBaseOrDefault is the base delay for exponential backoff between attempts.
func (a *Api) GetRetryBackoffBaseOrDefault() time.Duration {
	if a == nil || a.RetryBackoffBase == nil || a.RetryBackoffBase.Duration <= 0 {
		return defaultRetryBackoffBase
	}
	return a.RetryBackoffBase.Duration
}
