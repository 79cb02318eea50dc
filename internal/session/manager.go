package session

import (
	"context"
	"math/rand"

	"github.com/callegarimattia/battleship/internal/board"
	"github.com/callegarimattia/battleship/internal/storage"
	"github.com/google/uuid"
)

// Manager orchestrates UserData and Board persistence for one token at a
// time; it is the only thing in this repo that touches the storage.Store
// keys directly, per SPEC_FULL.md §8's namespacing.
type Manager struct {
	store storage.Store
	rng   *rand.Rand
	maps  *MapLoader // optional; nil falls back to random placement
}

// NewManager builds a Manager over store. If maps is non-nil, new boards
// are drawn from its reference games instead of random placement,
// matching SPEC_FULL.md §10's reproducible-practice loader.
func NewManager(store storage.Store, rng *rand.Rand, maps *MapLoader) *Manager {
	return &Manager{store: store, rng: rng, maps: maps}
}

// LoadUser returns the token's UserData, creating a fresh one on first
// contact.
func (m *Manager) LoadUser(ctx context.Context, token string) (UserData, error) {
	raw, err := m.store.Get(ctx, userKey(token))
	if err == storage.ErrNotFound {
		return NewUserData(), nil
	}
	if err != nil {
		return UserData{}, err
	}
	return unmarshalUserData(raw)
}

// SaveUser persists u under token.
func (m *Manager) SaveUser(ctx context.Context, token string, u UserData) error {
	raw, err := marshalUserData(u)
	if err != nil {
		return err
	}
	return m.store.Set(ctx, userKey(token), raw)
}

// LoadBoard returns the token's active board, creating one if none
// exists and the game isn't over. ErrGameOver is returned once
// RemainingMapCountInGame has reached zero and there is no board to
// resume.
func (m *Manager) LoadBoard(ctx context.Context, token string, user *UserData) (*board.Board, error) {
	raw, err := m.store.Get(ctx, mapKey(token))
	if err == nil {
		snap, decodeErr := decodeSnapshot(raw)
		if decodeErr != nil {
			return nil, decodeErr
		}
		return board.FromSnapshot(snap)
	}
	if err != storage.ErrNotFound {
		return nil, err
	}

	if user.GameOver() {
		return nil, ErrGameOver
	}

	id := uuid.NewString()
	var b *board.Board
	if m.maps != nil {
		b, err = m.maps.Next(id)
	}
	if m.maps == nil || err != nil {
		b, err = board.PlaceRandom(id, m.rng)
	}
	if err != nil {
		return nil, err
	}

	user.LastMapID = b.ID
	return b, nil
}

// SaveBoard persists b, or deletes it and rolls its move count into
// user's score if b is now fully discovered, per SPEC_FULL.md §5's Board
// lifecycle.
func (m *Manager) SaveBoard(ctx context.Context, token string, b *board.Board, user *UserData) error {
	if b.AllDiscovered() {
		user.CompleteBoard(b.MoveCount)
		return m.store.Delete(ctx, mapKey(token))
	}

	raw, err := encodeSnapshot(b.ToSnapshot())
	if err != nil {
		return err
	}
	return m.store.Set(ctx, mapKey(token), raw)
}

// Reset clears token's board, and additionally its UserData when wipe is
// true (GET /reset vs GET /reset?wipe).
func (m *Manager) Reset(ctx context.Context, token string, wipe bool) error {
	if err := m.store.Delete(ctx, mapKey(token)); err != nil {
		return err
	}
	if wipe {
		return m.store.Delete(ctx, userKey(token))
	}
	return nil
}
