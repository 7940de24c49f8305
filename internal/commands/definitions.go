package commands

import "github.com/bwmarrin/discordgo"

func GetCommands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "help",
			Description: "How to split a bill with me",
		},
		{
			Name:        "split",
			Description: "Quick manual split: divide a total evenly",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionNumber,
					Name:        "total",
					Description: "Total amount of the bill",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "people",
					Description: "Number of people",
					Required:    true,
				},
			},
		},
		{
			Name:        "ask",
			Description: "Ask my AI brain anything",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "question",
					Description: "Your question",
					Required:    true,
				},
			},
		},
		{
			Name:        "cancel",
			Description: "Cancel the current bill splitting conversation",
		},
	}
}
