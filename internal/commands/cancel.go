package commands

import (
	"github.com/bwmarrin/discordgo"
	"github.com/moriyama-t/splitbot/internal/split"
)

// HandleCancel clears any in-flight bill split. Works the same whether
// or not a split is pending.
func HandleCancel(s *discordgo.Session, i *discordgo.InteractionCreate, svc *split.Service) {
	svc.Cancel(i.ChannelID)
	respondEphemeral(s, i, "✅ Cancelled.")
}
