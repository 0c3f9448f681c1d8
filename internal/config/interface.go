package config

import (
	"context"
	"log/slog"
	"os"

	"github.com/pkg/errors"
)

type C interface {
	// GetRoot gets the root of the configuration; the data loaded from a configuration file
	// plus environment overrides.
	GetRoot() *Root

	// IsDebugMode tells the system if debug flags have been passed when running this service
	IsDebugMode() bool

	// GetRootLogger gets the process-wide logger configured from the logging section.
	GetRootLogger() *slog.Logger

	// GetBotToken resolves the chat platform credential from whatever source it is
	// configured with (direct value, env var, file).
	GetBotToken(ctx context.Context) (string, error)

	// Validate checks the configuration for conditions that should prevent startup.
	Validate(ctx context.Context) error
}

type config struct {
	root *Root
}

func (c *config) GetRoot() *Root {
	if c == nil {
		return nil
	}

	return c.root
}

func (c *config) IsDebugMode() bool {
	return os.Getenv("WARROOM_DEBUG_MODE") == "true"
}

func (c *config) GetRootLogger() *slog.Logger {
	return c.GetRoot().Logging.GetRootLogger()
}

func (c *config) GetBotToken(ctx context.Context) (string, error) {
	token := c.GetRoot().Discord.GetToken()
	if !token.HasValue(ctx) {
		return "", errors.New("bot token is not configured; set WARROOM_DISCORD_TOKEN or discord.token in config")
	}

	return token.GetValue(ctx)
}

// LoadConfig builds configuration from an optional yaml file plus environment
// overrides. An empty path yields an environment-only configuration.
func LoadConfig(path string) (C, error) {
	root := &Root{}

	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read configuration from '%s'", path)
		}

		root, err = UnmarshallYamlRoot(content)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse configuration from '%s'", path)
		}
	}

	root.applyEnv()

	return &config{root: root}, nil
}

// FromRoot wraps an already-constructed root config. Used in tests.
func FromRoot(root *Root) C {
	return &config{root: root}
}
