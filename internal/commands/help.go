package commands

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

func HandleHelp(s *discordgo.Session, i *discordgo.InteractionCreate) {
	name := "there"
	if i.Member != nil && i.Member.User != nil {
		name = i.Member.User.Username
	} else if i.User != nil {
		name = i.User.Username
	}

	welcome := fmt.Sprintf(
		"Hi %s! I'm your AI-powered Split Bill Bot.\n\n"+
			"**Here's how to split a bill:**\n\n"+
			"1.  **Send me a photo** of your itemized receipt.\n"+
			"2.  I'll read all the items, tax, and service charge.\n"+
			"3.  I'll ask you who ate what.\n"+
			"4.  You reply with who had which items (e.g., `Alice: Burger. Bob: Salad, Fries`)\n"+
			"5.  I'll calculate the *exact* amount each person owes, including their share of tax & service!\n\n"+
			"**Other commands:**\n"+
			"*/split total people* - Quick manual split.\n"+
			"*/ask question* - Ask my AI brain anything.\n"+
			"*/cancel* - Cancel the current bill splitting conversation.",
		name)

	respondText(s, i, welcome)
}
