package config

import "time"

const (
	defaultDashboardEndpoint = "rankings/overall"
	defaultDashboardInterval = 60 * time.Second
)

// Dashboard configures the periodically refreshed status message.
type Dashboard struct {
	// ChannelId is the channel hosting the dashboard message. Empty disables the dashboard.
	ChannelId string `json:"channel_id,omitempty" yaml:"channel_id,omitempty"`

	// Endpoint is the fixed upstream endpoint the dashboard displays.
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`

	// Params are fixed parameters sent with every dashboard fetch.
	Params map[string]interface{} `json:"params,omitempty" yaml:"params,omitempty"`

	RefreshInterval *HumanDuration `json:"refresh_interval,omitempty" yaml:"refresh_interval,omitempty"`
}

func (d *Dashboard) Enabled() bool {
	return d != nil && d.ChannelId != ""
}

func (d *Dashboard) GetEndpointOrDefault() string {
	if d == nil || d.Endpoint == "" {
		return defaultDashboardEndpoint
	}
	return d.Endpoint
}

func (d *Dashboard) GetRefreshIntervalOrDefault() time.Duration {
	if d == nil || d.RefreshInterval == nil || d.RefreshInterval.Duration <= 0 {
		return defaultDashboardInterval
	}
	return d.RefreshInterval.Duration
}
