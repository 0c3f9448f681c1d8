package config

import (
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tkarpov/warroom/internal/render"
)

type Root struct {
	Api       Api            `json:"api" yaml:"api"`
	Dashboard Dashboard      `json:"dashboard" yaml:"dashboard"`
	Discord   Discord        `json:"discord" yaml:"discord"`
	Logging   Logging        `json:"logging,omitempty" yaml:"logging,omitempty"`
	Render    *render.Policy `json:"render,omitempty" yaml:"render,omitempty"`
}

// GetRenderPolicy returns the configured formatter policy with unset fields filled
// from defaults.
func (r *Root) GetRenderPolicy() render.Policy {
	if r.Render == nil {
		return render.DefaultPolicy()
	}

	return r.Render.WithDefaults()
}

// applyEnv layers environment-style configuration over whatever was loaded from
// file. Environment values win.
func (r *Root) applyEnv() {
	if v := os.Getenv("WARROOM_API_BASE_URL"); v != "" {
		r.Api.BaseUrl = v
	}
	if d, ok := envSeconds("WARROOM_API_TIMEOUT_SECONDS"); ok {
		r.Api.Timeout = &HumanDuration{d}
	}
	if v := os.Getenv("WARROOM_API_RETRY_ATTEMPTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			r.Api.RetryAttempts = &n
		}
	}
	if d, ok := envSeconds("WARROOM_API_RETRY_BACKOFF_SECONDS"); ok {
		r.Api.RetryBackoffBase = &HumanDuration{d}
	}
	if d, ok := envSeconds("WARROOM_DASHBOARD_REFRESH_SECONDS"); ok {
		r.Dashboard.RefreshInterval = &HumanDuration{d}
	}
	if v := os.Getenv("WARROOM_DASHBOARD_CHANNEL_ID"); v != "" {
		r.Dashboard.ChannelId = v
	}
	if v := os.Getenv("WARROOM_DISCORD_GUILD_ID"); v != "" {
		r.Discord.GuildId = v
	}
	if _, present := os.LookupEnv("WARROOM_DISCORD_TOKEN"); present {
		r.Discord.Token = &StringValue{InnerVal: &StringValueEnvVar{EnvVar: "WARROOM_DISCORD_TOKEN"}}
	}
}

// envSeconds reads an environment variable expressed in (possibly fractional) seconds.
func envSeconds(key string) (time.Duration, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		return 0, false
	}

	return time.Duration(f * float64(time.Second)), true
}

func UnmarshallYamlRootString(data string) (*Root, error) {
	return UnmarshallYamlRoot([]byte(data))
}

func UnmarshallYamlRoot(data []byte) (*Root, error) {
	var root Root
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}

	return &root, nil
}
