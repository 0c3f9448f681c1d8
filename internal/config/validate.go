package config

import (
	"context"
	"net/url"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/tkarpov/warroom/internal/util"
)

// Validate aggregates every startup-blocking configuration problem so operators see
// them all at once instead of one per restart.
func (c *config) Validate(ctx context.Context) error {
	var result *multierror.Error

	root := c.GetRoot()
	if root == nil {
		return errors.New("no configuration present")
	}

	if !root.Discord.GetToken().HasValue(ctx) {
		result = multierror.Append(result, errors.New(
			"bot token is not configured; set WARROOM_DISCORD_TOKEN or discord.token in config"))
	}

	if u, err := url.Parse(root.Api.GetBaseUrlOrDefault()); err != nil || u.Scheme == "" || u.Host == "" {
		result = multierror.Append(result, errors.Errorf(
			"api base url '%s' is not a valid absolute url", root.Api.GetBaseUrlOrDefault()))
	}

	if root.Api.RetryAttempts != nil && *root.Api.RetryAttempts < 1 {
		result = multierror.Append(result, errors.New("api retry_attempts must be at least 1"))
	}

	if root.Dashboard.Enabled() {
		if _, err := util.DurationToCronSpec(root.Dashboard.GetRefreshIntervalOrDefault()); err != nil {
			result = multierror.Append(result, errors.Wrap(err, "dashboard refresh_interval"))
		}
	}

	return result.ErrorOrNil()
}
