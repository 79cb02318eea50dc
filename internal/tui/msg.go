package tui

import "github.com/callegarimattia/battleship/internal/dto"

// Messages
type (
	SnapshotMsg   dto.SpectatorSnapshot
	FeedClosedMsg struct{}
	ErrMsg        struct{ Err error }
)
