package session

import (
	"encoding/json"

	"github.com/callegarimattia/battleship/internal/board"
)

func encodeSnapshot(s board.Snapshot) ([]byte, error) { return json.Marshal(s) }

func decodeSnapshot(raw []byte) (board.Snapshot, error) {
	var s board.Snapshot
	err := json.Unmarshal(raw, &s)
	return s, err
}
