// Package main is the entry point for the Discord spectator bot.
package main

import (
	"context"
	"log"

	"github.com/callegarimattia/battleship/internal/bot"
	"github.com/callegarimattia/battleship/internal/client"
	"github.com/callegarimattia/battleship/internal/env"
)

func main() {
	cfg, err := env.LoadBotConfig()
	if err != nil {
		log.Fatalf("failed to load bot config: %v", err)
	}

	statusBot, err := bot.New(cfg.DiscordToken, cfg.DiscordAppID, cfg.JudgeBaseURL)
	if err != nil {
		log.Fatalf("failed to create discord bot: %v", err)
	}

	feed, err := client.DialSpectator(cfg.JudgeBaseURL, "/watch")
	if err != nil {
		log.Fatalf("failed to connect to spectator feed at %s: %v", cfg.JudgeBaseURL, err)
	}
	go func() {
		for snap := range feed {
			statusBot.Observe(snap)
		}
	}()

	log.Println("starting discord spectator bot...")
	if err := statusBot.Start(context.Background()); err != nil {
		log.Fatalf("bot error: %v", err)
	}
}
