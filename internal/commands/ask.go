package commands

import (
	"context"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/moriyama-t/splitbot/internal/llm"
	"github.com/moriyama-t/splitbot/internal/split"
)

// HandleAsk forwards a single question to the AI and relays the answer.
func HandleAsk(s *discordgo.Session, i *discordgo.InteractionCreate, gen split.Generator) {
	options := i.ApplicationCommandData().Options
	question := getStringOption(options, "question")
	if question == nil || strings.TrimSpace(*question) == "" {
		respondText(s, i, "Please ask a question.\nExample: `/ask How to save money?`")
		return
	}

	// Acknowledge first; the model call can take a while.
	respondText(s, i, "Asking my AI brain... 🧠")

	answer, err := gen.Generate(context.Background(), []llm.Part{llm.TextPart(*question)})
	if err != nil {
		log.Printf("commands: /ask call failed: %v", err)
		s.ChannelMessageSend(i.ChannelID, "Sorry, my AI brain is a bit foggy. Please try again.")
		return
	}

	if _, err := s.ChannelMessageSend(i.ChannelID, answer); err != nil {
		log.Printf("commands: failed to send /ask answer: %v", err)
	}
}
