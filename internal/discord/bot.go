package discord

import (
	"context"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/pkg/errors"

	"github.com/tkarpov/warroom/internal/config"
	"github.com/tkarpov/warroom/internal/gameapi"
	"github.com/tkarpov/warroom/internal/paginate"
	"github.com/tkarpov/warroom/internal/render"
	"github.com/tkarpov/warroom/internal/wlog"
)

// Bot wires the chat platform to the fetch/render/paginate pipeline.
type Bot struct {
	cfg       config.C
	logger    *slog.Logger
	client    gameapi.Client
	policy    render.Policy
	sessions  *paginate.Manager
	dg        *discordgo.Session
	messenger Messenger
}

func NewBot(
	ctx context.Context,
	cfg config.C,
	client gameapi.Client,
	sessions *paginate.Manager,
	logger *slog.Logger,
) (*Bot, error) {
	token, err := cfg.GetBotToken(ctx)
	if err != nil {
		return nil, err
	}

	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create discord session")
	}

	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	return &Bot{
		cfg:       cfg,
		logger:    wlog.NewBuilder(logger).WithComponent("discord").Build(),
		client:    client,
		policy:    cfg.GetRoot().GetRenderPolicy(),
		sessions:  sessions,
		dg:        dg,
		messenger: NewMessenger(dg),
	}, nil
}

// Messenger exposes the channel-message boundary for other components, notably the
// dashboard refresher.
func (b *Bot) Messenger() Messenger {
	return b.messenger
}

// Start opens the gateway connection and registers the command surface. Command
// registration is scoped to a guild when one is configured, global otherwise.
func (b *Bot) Start(ctx context.Context) error {
	b.dg.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		b.logger.Info("connected to gateway",
			"username", r.User.Username,
			"guilds", len(r.Guilds))
	})
	b.dg.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		b.handleInteraction(ctx, i)
	})

	if err := b.dg.Open(); err != nil {
		return errors.Wrap(err, "failed to open gateway connection")
	}

	guildId := b.cfg.GetRoot().Discord.GuildId
	if _, err := b.dg.ApplicationCommandBulkOverwrite(b.dg.State.User.ID, guildId, commandDefinitions()); err != nil {
		_ = b.dg.Close()
		return errors.Wrap(err, "failed to register commands")
	}

	b.logger.Info("commands registered", "guild", guildId)
	return nil
}

func (b *Bot) Stop() {
	b.sessions.CloseAll()
	if err := b.dg.Close(); err != nil {
		b.logger.Warn("error closing gateway connection", "error", err)
	}
}
