package bot

import (
	"log"

	"github.com/bwmarrin/discordgo"
)

var commands = []*discordgo.ApplicationCommand{
	{
		Name:        "solve-status",
		Description: "Report the latest observed solver progress",
	},
}

// registerCommands registers all slash commands with Discord.
func (b *StatusBot) registerCommands() error {
	log.Println("registering slash commands...")

	for _, cmd := range commands {
		_, err := b.session.ApplicationCommandCreate(b.appID, "", cmd)
		if err != nil {
			return err
		}
		log.Printf("registered command: %s", cmd.Name)
	}

	return nil
}
