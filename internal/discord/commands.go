package discord

import (
	"github.com/bwmarrin/discordgo"
)

// RankingCategory is one of the fixed ranking leaderboards the upstream API serves.
type RankingCategory string

const (
	RankingOverall   RankingCategory = "overall"
	RankingDamage    RankingCategory = "damage"
	RankingLevel     RankingCategory = "level"
	RankingWealth    RankingCategory = "wealth"
	RankingInfluence RankingCategory = "influence"
)

var rankingCategories = []RankingCategory{
	RankingOverall,
	RankingDamage,
	RankingLevel,
	RankingWealth,
	RankingInfluence,
}

const (
	cmdRankings      = "rankings"
	cmdCountries     = "countries"
	cmdCompanies     = "companies"
	cmdMilitaryUnits = "military_units"
	cmdJsonEmbed     = "json_embed"
)

// commandDefinitions is the slash command surface registered with the platform.
func commandDefinitions() []*discordgo.ApplicationCommand {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(rankingCategories))
	for _, c := range rankingCategories {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  string(c),
			Value: string(c),
		})
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:        cmdRankings,
			Description: "Show a ranking leaderboard",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "type",
					Description: "Ranking category",
					Required:    true,
					Choices:     choices,
				},
			},
		},
		{
			Name:        cmdCountries,
			Description: "List countries",
		},
		{
			Name:        cmdCompanies,
			Description: "List companies",
		},
		{
			Name:        cmdMilitaryUnits,
			Description: "List military units",
		},
		{
			Name:        cmdJsonEmbed,
			Description: "Render pasted JSON as an embed",
		},
	}
}
