package bot

import (
	"log"

	"github.com/bwmarrin/discordgo"
)

// handleInteraction answers /solve-status with an embed built from the
// last snapshot observed on the spectator feed. It is the only command
// this bot registers: it never accepts a move.
func (b *StatusBot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	data := i.ApplicationCommandData()
	if data.Name != "solve-status" {
		return
	}

	snap := b.current()
	if snap.MapID == "" {
		respondError(s, i, "no solve in progress yet")
		return
	}

	respondEmbed(s, i, FormatSnapshot(snap), false)
}

func respondEmbed(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	embed *discordgo.MessageEmbed,
	ephemeral bool,
) {
	flags := discordgo.MessageFlags(0)
	if ephemeral {
		flags = discordgo.MessageFlagsEphemeral
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  flags,
		},
	})
	if err != nil {
		log.Printf("failed to respond to interaction: %v", err)
	}
}

func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	embed := &discordgo.MessageEmbed{
		Title:       "error",
		Description: message,
		Color:       0xff0000,
	}
	respondEmbed(s, i, embed, true)
}
