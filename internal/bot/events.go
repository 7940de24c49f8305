package bot

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/moriyama-t/splitbot/internal/commands"
	"github.com/moriyama-t/splitbot/internal/split"
)

func (b *Bot) onReady(s *discordgo.Session, event *discordgo.Ready) {
	log.Printf("%s is connected!", event.User.Username)

	// Register commands for all guilds
	for _, guild := range event.Guilds {
		if err := b.registerGuildCommands(guild.ID); err != nil {
			log.Printf("Failed to register commands for guild %s: %v", guild.ID, err)
		}
	}
}

func (b *Bot) onGuildCreate(s *discordgo.Session, event *discordgo.GuildCreate) {
	log.Printf("Guild available/joined: %s (id=%s), ensuring commands", event.Name, event.ID)
	if err := b.registerGuildCommands(event.ID); err != nil {
		log.Printf("Failed to register commands for guild %s: %v", event.ID, err)
	}
}

func (b *Bot) registerGuildCommands(guildID string) error {
	cmds := commands.GetCommands()
	// Delete existing commands and register new ones
	_, err := b.session.ApplicationCommandBulkOverwrite(b.session.State.User.ID, guildID, cmds)
	if err != nil {
		return err
	}

	log.Printf("Registered application commands for guild %s", guildID)
	return nil
}

// onMessageCreate routes the two conversation entry points: a photo
// starts (or restarts) a split, and free text answers a pending one.
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Ignore bot messages
	if m.Author.Bot {
		return
	}

	if attachment := firstImageAttachment(m.Attachments); attachment != nil {
		image, err := fetchAttachment(attachment.URL)
		if err != nil {
			log.Printf("Failed to download attachment %s: %v", attachment.URL, err)
			s.ChannelMessageSend(m.ChannelID, "Sorry, I couldn't download that photo. Please try sending it again.")
			return
		}
		b.splitter.HandlePhoto(context.Background(), m.ChannelID, image, attachment.ContentType)
		return
	}

	content := strings.TrimSpace(m.Content)
	if content == "" {
		return
	}

	// Plain text only matters while a split is waiting for assignments.
	if b.splitter.State(m.ChannelID) == split.StateAwaitingAssignments {
		b.splitter.HandleText(context.Background(), m.ChannelID, content)
	}
}

func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	data := i.ApplicationCommandData()
	switch data.Name {
	case "help":
		commands.HandleHelp(s, i)
	case "split":
		commands.HandleSplit(s, i)
	case "ask":
		commands.HandleAsk(s, i, b.gen)
	case "cancel":
		commands.HandleCancel(s, i, b.splitter)
	default:
		commands.HandleUnknown(s, i)
	}
}

func firstImageAttachment(attachments []*discordgo.MessageAttachment) *discordgo.MessageAttachment {
	for _, a := range attachments {
		if strings.HasPrefix(strings.ToLower(a.ContentType), "image/") {
			return a
		}
	}
	return nil
}

func fetchAttachment(url string) ([]byte, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("http.Get failed for %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status: %s for %s", resp.Status, url)
	}

	return io.ReadAll(resp.Body)
}
