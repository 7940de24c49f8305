package commands

import "github.com/bwmarrin/discordgo"

func HandleUnknown(s *discordgo.Session, i *discordgo.InteractionCreate) {
	respondText(s, i, "Sorry, I don't understand that command. Use /help to see what I can do!")
}
