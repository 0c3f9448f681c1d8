package discord

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/pkg/errors"

	"github.com/tkarpov/warroom/internal/paginate"
	"github.com/tkarpov/warroom/internal/render"
	"github.com/tkarpov/warroom/internal/wctx"
)

func (b *Bot) handleInteraction(ctx context.Context, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		b.handleCommand(ctx, i)
	case discordgo.InteractionMessageComponent:
		b.handleComponent(i)
	case discordgo.InteractionModalSubmit:
		b.handleModal(ctx, i)
	}
}

// fetchSpec maps a slash command to an upstream request and a page title.
type fetchSpec struct {
	endpoint string
	params   map[string]interface{}
	title    string
}

func specForCommand(data discordgo.ApplicationCommandInteractionData) (fetchSpec, bool) {
	switch data.Name {
	case cmdRankings:
		category := ""
		if len(data.Options) > 0 {
			category = data.Options[0].StringValue()
		}
		return fetchSpec{
			endpoint: "rankings",
			params:   map[string]interface{}{"type": category},
			title:    "Rankings — " + category,
		}, true
	case cmdCountries:
		return fetchSpec{endpoint: "countries", title: "Countries"}, true
	case cmdCompanies:
		return fetchSpec{endpoint: "companies", title: "Companies"}, true
	case cmdMilitaryUnits:
		return fetchSpec{endpoint: "military_units", title: "Military Units"}, true
	default:
		return fetchSpec{}, false
	}
}

func (b *Bot) handleCommand(ctx context.Context, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()

	if data.Name == cmdJsonEmbed {
		b.openJsonModal(i)
		return
	}

	spec, ok := specForCommand(data)
	if !ok {
		b.logger.Warn("unknown command", "name", data.Name)
		return
	}

	// Acknowledge immediately; the fetch may take several backoff cycles.
	err := b.dg.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		b.logger.Warn("failed to defer response", "command", data.Name, "error", err)
		return
	}

	payload, _ := b.client.Call(ctx, spec.endpoint, spec.params)
	out := render.Render(payload, b.policy, render.Options{Title: spec.title})

	if err := b.respondPaginated(ctx, i, out); err != nil {
		b.logger.Warn("failed to deliver command response", "command", data.Name, "error", err)
	}
}

// respondPaginated edits the deferred response to show the first page and opens a
// pagination session keyed by the hosting message.
func (b *Bot) respondPaginated(ctx context.Context, i *discordgo.InteractionCreate, out render.Output) error {
	nav := paginate.NavState{
		NextEnabled: len(out.Pretty) > 1,
		Count:       len(out.Pretty),
	}

	now := wctx.GetClock(ctx).Now()
	embeds := []*discordgo.MessageEmbed{embedFromPage(out.Pretty[0], now)}
	components := componentsForNav(nav)

	msg, err := b.dg.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds:     &embeds,
		Components: &components,
	})
	if err != nil {
		return errors.Wrap(err, "failed to edit deferred response")
	}

	ref := MessageRef{ChannelId: msg.ChannelID, MessageId: msg.ID}
	b.sessions.Open(ctx, msg.ID, out, func(page render.Page, nav paginate.NavState) error {
		return b.messenger.Edit(ctx, ref, MessageView{
			Pages: []render.Page{page},
			Nav:   &nav,
		})
	})

	return nil
}

// handleComponent routes a button click to the session owning the message. The
// session re-renders asynchronously, so the interaction itself is acknowledged with
// a no-op update.
func (b *Bot) handleComponent(i *discordgo.InteractionCreate) {
	ev, err := parseNavCustomId(i.MessageComponentData().CustomID)
	if err != nil {
		b.logger.Debug("ignoring component", "error", err)
		return
	}

	err = b.dg.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	})
	if err != nil {
		b.logger.Debug("failed to acknowledge component", "error", err)
	}

	if i.Message == nil || !b.sessions.Dispatch(i.Message.ID, ev) {
		b.logger.Debug("navigation on a message with no live session")
	}
}

func (b *Bot) openJsonModal(i *discordgo.InteractionCreate) {
	err := b.dg.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: modalJsonEmbedId,
			Title:    "Render JSON",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:    modalJsonInputId,
							Label:       "JSON payload",
							Style:       discordgo.TextInputParagraph,
							Placeholder: `{"name": "Alice", "tier": "Gold"}`,
							Required:    true,
						},
					},
				},
			},
		},
	})
	if err != nil {
		b.logger.Warn("failed to open modal", "error", err)
	}
}

func (b *Bot) handleModal(ctx context.Context, i *discordgo.InteractionCreate) {
	data := i.ModalSubmitData()
	if data.CustomID != modalJsonEmbedId {
		return
	}

	payload, err := parseJsonInput(extractModalInput(data))
	if err != nil {
		b.respondEphemeral(i, fmt.Sprintf("Could not parse that JSON: %v", err))
		return
	}

	out := render.Render(payload, b.policy, render.Options{Title: "JSON"})

	err = b.dg.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embedFromPage(out.Pretty[0], wctx.GetClock(ctx).Now())},
		},
	})
	if err != nil {
		b.logger.Warn("failed to respond to modal", "error", err)
	}
}

func (b *Bot) respondEphemeral(i *discordgo.InteractionCreate, msg string) {
	err := b.dg.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: msg,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		b.logger.Warn("failed to send ephemeral response", "error", err)
	}
}

// extractModalInput digs the free-text value out of the modal component tree.
func extractModalInput(data discordgo.ModalSubmitInteractionData) string {
	for _, row := range data.Components {
		ar, ok := row.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, c := range ar.Components {
			if ti, ok := c.(*discordgo.TextInput); ok && ti.CustomID == modalJsonInputId {
				return ti.Value
			}
		}
	}
	return ""
}

// parseJsonInput decodes user-pasted JSON. Malformed input is the user's problem to
// fix, reported inline; it never reaches the renderer.
func parseJsonInput(s string) (interface{}, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("empty input")
	}

	var payload interface{}
	if err := json.Unmarshal([]byte(s), &payload); err != nil {
		return nil, err
	}

	return payload, nil
}
