package config

// Discord configures the chat platform boundary.
type Discord struct {
	// Token is the bot credential. Resolvable from a direct value, base64, env var, or file.
	Token *StringValue `json:"token,omitempty" yaml:"token,omitempty"`

	// GuildId scopes slash command registration to a single guild when set. Global otherwise.
	GuildId string `json:"guild_id,omitempty" yaml:"guild_id,omitempty"`
}

// GetToken returns the configured token source, defaulting to the conventional
// environment variable when nothing is configured.
func (d *Discord) GetToken() *StringValue {
	if d == nil || d.Token == nil {
		return &StringValue{InnerVal: &StringValueEnvVar{EnvVar: "WARROOM_DISCORD_TOKEN"}}
	}
	return d.Token
}
