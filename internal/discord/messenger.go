package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/pkg/errors"

	"github.com/tkarpov/warroom/internal/wctx"
)

// messenger adapts a discordgo session to the Messenger boundary.
type messenger struct {
	s *discordgo.Session
}

func NewMessenger(s *discordgo.Session) Messenger {
	return &messenger{s: s}
}

func (m *messenger) Send(ctx context.Context, channelId string, view MessageView) (MessageRef, error) {
	send := &discordgo.MessageSend{
		Embeds: embedsFromView(view, wctx.GetClock(ctx).Now()),
	}
	if view.Nav != nil {
		send.Components = componentsForNav(*view.Nav)
	}

	msg, err := m.s.ChannelMessageSendComplex(channelId, send)
	if err != nil {
		return MessageRef{}, errors.Wrapf(err, "failed to send message to channel %s", channelId)
	}

	return MessageRef{ChannelId: channelId, MessageId: msg.ID}, nil
}

func (m *messenger) Edit(ctx context.Context, ref MessageRef, view MessageView) error {
	embeds := embedsFromView(view, wctx.GetClock(ctx).Now())

	edit := discordgo.NewMessageEdit(ref.ChannelId, ref.MessageId)
	edit.Embeds = &embeds

	if view.Nav != nil {
		components := componentsForNav(*view.Nav)
		edit.Components = &components
	}

	_, err := m.s.ChannelMessageEditComplex(edit)
	return errors.Wrapf(err, "failed to edit message %s in channel %s", ref.MessageId, ref.ChannelId)
}

var _ Messenger = (*messenger)(nil)
