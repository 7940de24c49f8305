package bot

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/moriyama-t/splitbot/internal/split"
)

type Bot struct {
	session  *discordgo.Session
	splitter *split.Service
	gen      split.Generator
}

// channelNotifier sends plain channel messages. Outbound delivery is
// fire-and-forget; the split service logs failures and moves on.
type channelNotifier struct {
	session *discordgo.Session
}

func (n *channelNotifier) Notify(channelID, text string) error {
	_, err := n.session.ChannelMessageSend(channelID, text)
	return err
}

func New(token string, gen split.Generator) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}

	bot := &Bot{
		session:  session,
		splitter: split.NewService(gen, &channelNotifier{session: session}),
		gen:      gen,
	}

	// Register event handlers
	session.AddHandler(bot.onReady)
	session.AddHandler(bot.onGuildCreate)
	session.AddHandler(bot.onMessageCreate)
	session.AddHandler(bot.onInteractionCreate)

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	return bot, nil
}

// Splitter exposes the conversation service for the status API.
func (b *Bot) Splitter() *split.Service {
	return b.splitter
}

func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open discord session: %w", err)
	}
	log.Println("Discord bot is running")
	return nil
}

func (b *Bot) Stop() error {
	return b.session.Close()
}
