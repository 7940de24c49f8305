package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/moriyama-t/splitbot/internal/api"
	"github.com/moriyama-t/splitbot/internal/bot"
	"github.com/moriyama-t/splitbot/internal/config"
	"github.com/moriyama-t/splitbot/internal/llm"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize inference client
	generator := llm.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)

	// Initialize Discord bot
	discordBot, err := bot.New(cfg.DiscordToken, generator)
	if err != nil {
		log.Fatalf("Failed to create discord bot: %v", err)
	}

	// Initialize API server
	apiServer := api.New(cfg, discordBot.Splitter())

	// Start Discord bot
	if err := discordBot.Start(); err != nil {
		log.Fatalf("Failed to start discord bot: %v", err)
	}
	defer discordBot.Stop()

	// Start API server
	go func() {
		if err := apiServer.Start(); err != nil {
			log.Printf("API server error: %v", err)
		}
	}()

	// Wait for signal to stop
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down...")
}
