package bot

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/callegarimattia/battleship/internal/dto"
)

// FormatSnapshot creates a Discord embed for the latest spectator
// snapshot observed from the solve loop.
func FormatSnapshot(snap dto.SpectatorSnapshot) *discordgo.MessageEmbed {
	color := 0x0099ff
	title := fmt.Sprintf("solving %s", snap.MapID)
	if snap.Finished {
		color = 0x00ff00
		title = fmt.Sprintf("%s cleared", snap.MapID)
	}

	return &discordgo.MessageEmbed{
		Title: title,
		Color: color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "moves", Value: fmt.Sprintf("%d", snap.MoveCount), Inline: true},
			{Name: "score", Value: fmt.Sprintf("%d", snap.Score), Inline: true},
			{Name: "board", Value: formatGrid(snap.Grid), Inline: false},
		},
	}
}

func formatGrid(grid string) string {
	const size = 12
	if len(grid) != size*size {
		return "```\n(no data yet)\n```"
	}

	var sb strings.Builder
	sb.WriteString("```\n")
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			sb.WriteString(cellToEmoji(grid[y*size+x]))
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("```")
	return sb.String()
}

func cellToEmoji(c byte) string {
	switch c {
	case 'X':
		return "X"
	case '.':
		return "o"
	default:
		return "."
	}
}
