package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tkarpov/warroom/internal/render"
)

func TestRoot(t *testing.T) {
	assert := require.New(t)

	t.Run("yaml parse", func(t *testing.T) {
		data := `
api:
  base_url: https://game.example.com/api
  timeout: 5s
  retry_attempts: 4
  retry_backoff_base: 250ms
dashboard:
  channel_id: "123456"
  endpoint: rankings/wealth
  params:
    limit: 10
  refresh_interval: 2m
discord:
  token:
    env_var: SOME_TOKEN_VAR
  guild_id: "987"
logging:
  format: json
  level: debug
`
		root, err := UnmarshallYamlRootString(data)
		assert.NoError(err)

		assert.Equal("https://game.example.com/api", root.Api.GetBaseUrlOrDefault())
		assert.Equal(5*time.Second, root.Api.GetTimeoutOrDefault())
		assert.Equal(4, root.Api.GetRetryAttemptsOrDefault())
		assert.Equal(250*time.Millisecond, root.Api.GetRetryBackoffBaseOrDefault())

		assert.True(root.Dashboard.Enabled())
		assert.Equal("rankings/wealth", root.Dashboard.GetEndpointOrDefault())
		assert.Equal(map[string]interface{}{"limit": 10}, root.Dashboard.Params)
		assert.Equal(2*time.Minute, root.Dashboard.GetRefreshIntervalOrDefault())

		assert.Equal(&StringValue{InnerVal: &StringValueEnvVar{EnvVar: "SOME_TOKEN_VAR"}}, root.Discord.Token)
		assert.Equal("987", root.Discord.GuildId)

		assert.Equal(LoggingFormatJson, root.Logging.GetFormatOrDefault())
	})

	t.Run("defaults for empty config", func(t *testing.T) {
		root := &Root{}

		assert.Equal("https://api.warzone.gg/api", root.Api.GetBaseUrlOrDefault())
		assert.Equal(10*time.Second, root.Api.GetTimeoutOrDefault())
		assert.Equal(3, root.Api.GetRetryAttemptsOrDefault())
		assert.Equal(600*time.Millisecond, root.Api.GetRetryBackoffBaseOrDefault())
		assert.False(root.Dashboard.Enabled())
		assert.Equal("rankings/overall", root.Dashboard.GetEndpointOrDefault())
		assert.Equal(60*time.Second, root.Dashboard.GetRefreshIntervalOrDefault())
		assert.Equal(render.DefaultPolicy(), root.GetRenderPolicy())
	})

	t.Run("render policy merges with defaults", func(t *testing.T) {
		root, err := UnmarshallYamlRootString(`
render:
  chunk_size: 5
`)
		assert.NoError(err)

		policy := root.GetRenderPolicy()
		assert.Equal(5, policy.ChunkSize)
		assert.Equal(render.DefaultPolicy().NameKeys, policy.NameKeys)
		assert.Equal(render.DefaultPolicy().Tiers, policy.Tiers)
	})

	t.Run("environment overrides file values", func(t *testing.T) {
		t.Setenv("WARROOM_API_BASE_URL", "https://env.example.com")
		t.Setenv("WARROOM_API_TIMEOUT_SECONDS", "2.5")
		t.Setenv("WARROOM_API_RETRY_ATTEMPTS", "7")
		t.Setenv("WARROOM_API_RETRY_BACKOFF_SECONDS", "0.2")
		t.Setenv("WARROOM_DASHBOARD_REFRESH_SECONDS", "30")
		t.Setenv("WARROOM_DASHBOARD_CHANNEL_ID", "42")
		t.Setenv("WARROOM_DISCORD_GUILD_ID", "777")

		root, err := UnmarshallYamlRootString(`
api:
  base_url: https://file.example.com
  retry_attempts: 2
`)
		assert.NoError(err)
		root.applyEnv()

		assert.Equal("https://env.example.com", root.Api.GetBaseUrlOrDefault())
		assert.Equal(2500*time.Millisecond, root.Api.GetTimeoutOrDefault())
		assert.Equal(7, root.Api.GetRetryAttemptsOrDefault())
		assert.Equal(200*time.Millisecond, root.Api.GetRetryBackoffBaseOrDefault())
		assert.Equal(30*time.Second, root.Dashboard.GetRefreshIntervalOrDefault())
		assert.Equal("42", root.Dashboard.ChannelId)
		assert.Equal("777", root.Discord.GuildId)
	})

	t.Run("invalid env numbers are ignored", func(t *testing.T) {
		t.Setenv("WARROOM_API_TIMEOUT_SECONDS", "not-a-number")
		t.Setenv("WARROOM_API_RETRY_ATTEMPTS", "lots")

		root := &Root{}
		root.applyEnv()

		assert.Equal(10*time.Second, root.Api.GetTimeoutOrDefault())
		assert.Equal(3, root.Api.GetRetryAttemptsOrDefault())
	})
}
