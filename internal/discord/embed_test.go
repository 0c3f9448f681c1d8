package discord

import (
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkarpov/warroom/internal/paginate"
	"github.com/tkarpov/warroom/internal/render"
)

func TestEmbedFromPage(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("maps page content", func(t *testing.T) {
		p := render.NewPage("Countries", "desc")
		p.AddField("gold", "1,500", true)
		p.Footer = "showing 1–8 of 19"

		e := embedFromPage(p, now)

		assert.Equal(t, "Countries", e.Title)
		assert.Equal(t, "desc", e.Description)
		assert.Equal(t, colorDefault, e.Color)
		assert.Equal(t, "2025-03-01T12:00:00Z", e.Timestamp)
		require.NotNil(t, e.Footer)
		assert.Equal(t, "showing 1–8 of 19", e.Footer.Text)
		require.Len(t, e.Fields, 1)
		assert.Equal(t, "gold", e.Fields[0].Name)
		assert.True(t, e.Fields[0].Inline)
	})

	t.Run("failure pages get the failure color", func(t *testing.T) {
		e := embedFromPage(render.NoDataPage("Rankings"), now)
		assert.Equal(t, colorFailure, e.Color)
	})

	t.Run("no footer when page has none", func(t *testing.T) {
		e := embedFromPage(render.NewPage("t", "d"), now)
		assert.Nil(t, e.Footer)
	})
}

func TestComponentsForNav(t *testing.T) {
	buttons := func(nav paginate.NavState) []discordgo.Button {
		rows := componentsForNav(nav)
		require.Len(t, rows, 1)
		row := rows[0].(discordgo.ActionsRow)

		out := make([]discordgo.Button, 0, len(row.Components))
		for _, c := range row.Components {
			out = append(out, c.(discordgo.Button))
		}
		return out
	}

	t.Run("first page disables prev", func(t *testing.T) {
		bs := buttons(paginate.NavState{PrevEnabled: false, NextEnabled: true})
		assert.True(t, bs[0].Disabled)
		assert.False(t, bs[1].Disabled)
	})

	t.Run("last page disables next", func(t *testing.T) {
		bs := buttons(paginate.NavState{PrevEnabled: true, NextEnabled: false})
		assert.False(t, bs[0].Disabled)
		assert.True(t, bs[1].Disabled)
	})

	t.Run("expiry disables everything", func(t *testing.T) {
		for _, b := range buttons(paginate.NavState{PrevEnabled: true, NextEnabled: true, Expired: true}) {
			assert.True(t, b.Disabled)
		}
	})

	t.Run("view toggle label follows the active view", func(t *testing.T) {
		assert.Equal(t, "Raw", buttons(paginate.NavState{View: paginate.ViewPretty})[2].Label)
		assert.Equal(t, "Pretty", buttons(paginate.NavState{View: paginate.ViewDev})[2].Label)
	})
}

func TestParseNavCustomId(t *testing.T) {
	t.Run("round trips every action", func(t *testing.T) {
		for id, want := range map[string]paginate.Event{
			navCustomId(navActionPrev):   paginate.EventPrev,
			navCustomId(navActionNext):   paginate.EventNext,
			navCustomId(navActionToggle): paginate.EventToggleView,
		} {
			got, err := parseNavCustomId(id)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("rejects foreign ids", func(t *testing.T) {
		for _, id := range []string{"", "other:nav:prev", "warroom:nav:sideways", "warroom:modal:json_embed"} {
			_, err := parseNavCustomId(id)
			assert.Error(t, err, id)
		}
	})
}

func TestParseJsonInput(t *testing.T) {
	t.Run("valid object", func(t *testing.T) {
		payload, err := parseJsonInput(`{"a": 1}`)
		require.NoError(t, err)
		assert.Equal(t, map[string]interface{}{"a": 1.0}, payload)
	})

	t.Run("surrounding whitespace tolerated", func(t *testing.T) {
		_, err := parseJsonInput("  [1, 2]\n")
		assert.NoError(t, err)
	})

	t.Run("malformed input is an error", func(t *testing.T) {
		_, err := parseJsonInput(`{"a":`)
		assert.Error(t, err)
	})

	t.Run("empty input is an error", func(t *testing.T) {
		_, err := parseJsonInput("   ")
		assert.Error(t, err)
	})
}

func TestSpecForCommand(t *testing.T) {
	t.Run("rankings carries the category parameter", func(t *testing.T) {
		spec, ok := specForCommand(discordgo.ApplicationCommandInteractionData{
			Name: cmdRankings,
			Options: []*discordgo.ApplicationCommandInteractionDataOption{
				{Name: "type", Type: discordgo.ApplicationCommandOptionString, Value: "damage"},
			},
		})

		require.True(t, ok)
		assert.Equal(t, "rankings", spec.endpoint)
		assert.Equal(t, map[string]interface{}{"type": "damage"}, spec.params)
	})

	t.Run("plain listing commands", func(t *testing.T) {
		for name, endpoint := range map[string]string{
			cmdCountries:     "countries",
			cmdCompanies:     "companies",
			cmdMilitaryUnits: "military_units",
		} {
			spec, ok := specForCommand(discordgo.ApplicationCommandInteractionData{Name: name})
			require.True(t, ok, name)
			assert.Equal(t, endpoint, spec.endpoint)
			assert.Nil(t, spec.params)
		}
	})

	t.Run("unknown command", func(t *testing.T) {
		_, ok := specForCommand(discordgo.ApplicationCommandInteractionData{Name: "nope"})
		assert.False(t, ok)
	})
}

func TestCommandDefinitions(t *testing.T) {
	defs := commandDefinitions()
	require.Len(t, defs, 5)

	byName := map[string]*discordgo.ApplicationCommand{}
	for _, d := range defs {
		byName[d.Name] = d
	}

	rankings, ok := byName[cmdRankings]
	require.True(t, ok)
	require.Len(t, rankings.Options, 1)
	assert.True(t, rankings.Options[0].Required)
	assert.Len(t, rankings.Options[0].Choices, len(rankingCategories))
}
