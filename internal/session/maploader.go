package session

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"sort"
	"sync"

	"github.com/callegarimattia/battleship/internal/board"
)

// MapLoader serves pre-recorded boards (SPEC_FULL.md §10) from a
// directory of "submit_*.data" files, each a JSON-encoded board.Snapshot
// with its Discovered/MoveCount/AvengerAvailable fields reset to the
// unplayed state. It is used for reproducible-practice runs and
// regression tests instead of PlaceRandom.
type MapLoader struct {
	mu    sync.Mutex
	names []string
	next  int
	fsys  fs.FS
}

// NewMapLoader scans fsys for "submit_*.data" files and returns a loader
// that serves them in sorted order, wrapping around once exhausted.
func NewMapLoader(fsys fs.FS) (*MapLoader, error) {
	matches, err := fs.Glob(fsys, "submit_*.data")
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)
	return &MapLoader{names: matches, fsys: fsys}, nil
}

// Len reports how many reference games were found.
func (l *MapLoader) Len() int { return len(l.names) }

// Next decodes the next reference board in rotation, assigning it id.
func (l *MapLoader) Next(id string) (*board.Board, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.names) == 0 {
		return nil, fmt.Errorf("session: no reference maps loaded")
	}

	name := l.names[l.next%len(l.names)]
	l.next++

	raw, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, err
	}

	var snap board.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("session: decoding %s: %w", name, err)
	}

	snap.ID = id
	snap.Discovered = nil
	snap.MoveCount = 0
	snap.AvengerAvailable = false

	return board.FromSnapshot(snap)
}
