package commands

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// HandleSplit divides a total evenly: the simple, manual way with no
// AI involvement.
func HandleSplit(s *discordgo.Session, i *discordgo.InteractionCreate) {
	options := i.ApplicationCommandData().Options
	total := getNumberOption(options, "total")
	people := getIntOption(options, "people")

	if total == nil || people == nil {
		respondText(s, i, "Oops! That's not right.\nPlease use: `/split total people`\nExample: `/split 150.75 3`")
		return
	}
	if *people <= 0 {
		respondText(s, i, "Number of people must be at least 1!")
		return
	}
	if *total < 0 {
		respondText(s, i, "The total can't be negative!")
		return
	}

	each := *total / float64(*people)
	msg := fmt.Sprintf("Total: $%s\nSplit between %d people:\nEach person pays: $%s",
		formatMoney(*total), *people, formatMoney(each))
	respondText(s, i, msg)
}
