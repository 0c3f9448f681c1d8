package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tkarpov/warroom/internal/dashboard"
	"github.com/tkarpov/warroom/internal/discord"
	"github.com/tkarpov/warroom/internal/gameapi"
	"github.com/tkarpov/warroom/internal/paginate"
	"github.com/tkarpov/warroom/internal/wlog"
)

func cmdServe() *cobra.Command {
	var noBanner bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the bot",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(noBanner)
		},
	}

	cmd.Flags().BoolVar(&noBanner, "no-banner", false, "Don't show banner")

	return cmd
}

func serve(noBanner bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The only fatal startup condition: missing or unusable configuration,
	// reported as a clean diagnostic rather than a crash stack.
	if err := cfg.Validate(ctx); err != nil {
		return err
	}

	if !noBanner {
		banner()
	}

	root := cfg.GetRoot()
	logger := wlog.NewBuilder(cfg.GetRootLogger()).WithService("warroom").Build()

	client := gameapi.NewClient(gameapi.Options{
		BaseUrl:          root.Api.GetBaseUrlOrDefault(),
		Timeout:          root.Api.GetTimeoutOrDefault(),
		RetryAttempts:    root.Api.GetRetryAttemptsOrDefault(),
		RetryBackoffBase: root.Api.GetRetryBackoffBaseOrDefault(),
	}, wlog.NewBuilder(logger).WithComponent("gameapi").Build())

	sessions := paginate.NewManager(paginate.DefaultIdleTimeout, logger)

	bot, err := discord.NewBot(ctx, cfg, client, sessions, logger)
	if err != nil {
		return err
	}

	if err := bot.Start(ctx); err != nil {
		return err
	}
	defer bot.Stop()

	if root.Dashboard.Enabled() {
		refresher := dashboard.NewRefresher(dashboard.Options{
			ChannelId: root.Dashboard.ChannelId,
			Endpoint:  root.Dashboard.GetEndpointOrDefault(),
			Params:    root.Dashboard.Params,
			Interval:  root.Dashboard.GetRefreshIntervalOrDefault(),
		}, client, bot.Messenger(), root.GetRenderPolicy(), logger)

		if err := refresher.Start(ctx); err != nil {
			return err
		}
		defer refresher.Stop()
	} else {
		logger.Info("dashboard disabled; no channel configured")
	}

	logger.Info("warroom is running; press ctrl-c to stop")
	<-ctx.Done()
	logger.Info("shutting down")

	return nil
}
