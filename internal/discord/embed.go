package discord

import (
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/pkg/errors"

	"github.com/tkarpov/warroom/internal/paginate"
	"github.com/tkarpov/warroom/internal/render"
)

const (
	colorDefault = 0x5865F2
	colorFailure = 0xED4245
)

const (
	customIdPrefix = "warroom"

	navActionPrev   = "prev"
	navActionNext   = "next"
	navActionToggle = "view"

	modalJsonEmbedId = customIdPrefix + ":modal:json_embed"
	modalJsonInputId = customIdPrefix + ":modal:json_input"
)

// embedFromPage converts a rendered page to a platform embed. Size limits were
// already enforced at render time.
func embedFromPage(p render.Page, now time.Time) *discordgo.MessageEmbed {
	color := colorDefault
	if strings.Contains(p.Description, render.NoDataMarker) {
		color = colorFailure
	}

	embed := &discordgo.MessageEmbed{
		Title:       p.Title,
		Description: p.Description,
		Color:       color,
		Timestamp:   now.UTC().Format(time.RFC3339),
	}

	if p.Footer != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: p.Footer}
	}

	for _, f := range p.Fields {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   f.Name,
			Value:  f.Value,
			Inline: f.Inline,
		})
	}

	return embed
}

func embedsFromView(view MessageView, now time.Time) []*discordgo.MessageEmbed {
	embeds := make([]*discordgo.MessageEmbed, 0, len(view.Pages))
	for _, p := range view.Pages {
		embeds = append(embeds, embedFromPage(p, now))
	}
	return embeds
}

// componentsForNav builds the navigation row. Controls at a sequence bound render
// disabled; an expired session disables everything.
func componentsForNav(nav paginate.NavState) []discordgo.MessageComponent {
	viewLabel := "Raw"
	if nav.View == paginate.ViewDev {
		viewLabel = "Pretty"
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "◀ Prev",
					Style:    discordgo.SecondaryButton,
					CustomID: navCustomId(navActionPrev),
					Disabled: nav.Expired || !nav.PrevEnabled,
				},
				discordgo.Button{
					Label:    "Next ▶",
					Style:    discordgo.SecondaryButton,
					CustomID: navCustomId(navActionNext),
					Disabled: nav.Expired || !nav.NextEnabled,
				},
				discordgo.Button{
					Label:    viewLabel,
					Style:    discordgo.PrimaryButton,
					CustomID: navCustomId(navActionToggle),
					Disabled: nav.Expired,
				},
			},
		},
	}
}

func navCustomId(action string) string {
	return customIdPrefix + ":nav:" + action
}

// parseNavCustomId maps a component custom id back to a navigation event.
func parseNavCustomId(customId string) (paginate.Event, error) {
	parts := strings.Split(customId, ":")
	if len(parts) != 3 || parts[0] != customIdPrefix || parts[1] != "nav" {
		return 0, errors.Errorf("not a navigation control: %s", customId)
	}

	switch parts[2] {
	case navActionPrev:
		return paginate.EventPrev, nil
	case navActionNext:
		return paginate.EventNext, nil
	case navActionToggle:
		return paginate.EventToggleView, nil
	default:
		return 0, errors.Errorf("unknown navigation action: %s", parts[2])
	}
}
