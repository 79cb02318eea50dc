// Package bot provides a read-only Discord spectator for an in-progress
// solve: a single slash command reports the latest snapshot pulled from
// a solver's spectator feed. It never accepts game moves over Discord.
package bot

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/callegarimattia/battleship/internal/dto"
)

// StatusBot posts solve progress to Discord on demand.
type StatusBot struct {
	session  *discordgo.Session
	appID    string
	watchURL string

	mu     sync.RWMutex
	latest dto.SpectatorSnapshot
}

// New creates a StatusBot that reports whatever snapshot last arrived
// from watchURL's spectator feed.
func New(token, appID, watchURL string) (*StatusBot, error) {
	if appID == "" {
		return nil, fmt.Errorf("app ID is required")
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	b := &StatusBot{session: session, appID: appID, watchURL: watchURL}
	session.AddHandler(b.handleInteraction)

	return b, nil
}

// Observe updates the snapshot reported by /solve-status, called by
// whatever goroutine is draining the spectator feed.
func (b *StatusBot) Observe(snap dto.SpectatorSnapshot) {
	b.mu.Lock()
	b.latest = snap
	b.mu.Unlock()
}

func (b *StatusBot) current() dto.SpectatorSnapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.latest
}

// Start opens the Discord connection, registers the slash command, and
// blocks until ctx is cancelled or the process receives SIGINT/SIGTERM.
func (b *StatusBot) Start(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}
	log.Println("discord spectator bot connected")

	if err := b.registerCommands(); err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}
	log.Println("slash commands registered")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("received shutdown signal")
	case <-ctx.Done():
		log.Println("context cancelled")
	}

	return b.Shutdown()
}

// Shutdown gracefully closes the Discord connection.
func (b *StatusBot) Shutdown() error {
	log.Println("shutting down discord spectator bot")
	return b.session.Close()
}
