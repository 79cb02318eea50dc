// Package session manages per-token game state: the UserData counters,
// the active Board lifecycle, token issuance for the local practice
// server, and the reference-game map loader. It is the "external shim"
// SPEC_FULL.md §2 keeps out of the Rules Engine proper.
package session

import (
	"encoding/json"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// MaxAttempts is the ceiling UserData.Attempts saturates at.
const MaxAttempts = 9999

// InitialMapCount is how many boards a fresh UserData starts a game with.
const InitialMapCount = 200

// UserData holds the persistent counters described in SPEC_FULL.md §5.
// It is JSON-encoded verbatim into storage under "user:<token>".
type UserData struct {
	Attempts               int    `json:"attempts"`
	LastMapID              string `json:"last_map_id"`
	RemainingMapCountInGame int   `json:"remaining_map_count_in_game"`
	BestScore              int    `json:"best_score"`
	CurrentGameScore       int    `json:"current_game_score"`
}

// NewUserData returns a fresh counter set for a brand new token: a full
// 200-board game, zero attempts and score.
func NewUserData() UserData {
	return UserData{RemainingMapCountInGame: InitialMapCount}
}

// RecordAttempt increments Attempts, saturating at MaxAttempts.
func (u *UserData) RecordAttempt() {
	if u.Attempts < MaxAttempts {
		u.Attempts++
	}
}

// CompleteBoard rolls a finished board's move count into the running
// game score and decrements the remaining board count, per SPEC_FULL.md
// §5's Board lifecycle ("deleted when fully discovered, move_count
// added to current_game_score, remaining_map_count_in_game
// decremented"). When the game itself ends (no boards left), BestScore
// is updated if this run beat it.
func (u *UserData) CompleteBoard(moveCount int) {
	u.CurrentGameScore += moveCount
	if u.RemainingMapCountInGame > 0 {
		u.RemainingMapCountInGame--
	}

	if u.RemainingMapCountInGame == 0 {
		if u.BestScore == 0 || u.CurrentGameScore < u.BestScore {
			u.BestScore = u.CurrentGameScore
		}
	}
}

// GameOver reports whether this token has no boards left to play.
func (u *UserData) GameOver() bool {
	return u.RemainingMapCountInGame <= 0
}

// userKey is the storage key namespace for UserData, per SPEC_FULL.md §8.
func userKey(token string) string { return "user:" + token }

// mapKey is the storage key namespace for a persisted Board.
func mapKey(token string) string { return "map:" + token }

// marshalUserData and unmarshalUserData centralize the JSON envelope so
// Manager's callers never touch encoding/json directly.
func marshalUserData(u UserData) ([]byte, error) { return json.Marshal(u) }

func unmarshalUserData(b []byte) (UserData, error) {
	var u UserData
	err := json.Unmarshal(b, &u)
	return u, err
}

// IssueToken mints a local-practice-server session token carrying no
// claims beyond subject and expiry, matching the teacher's
// MemoryIdentityService convention (internal/service/identity.go) but
// generalized to a bare session rather than a username/platform login.
func IssueToken(secret, subject string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub": subject,
		"exp": time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates a token minted by IssueToken and returns its
// subject.
func ParseToken(secret, raw string) (string, error) {
	token, err := jwt.Parse(raw, func(*jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrInvalidToken
	}

	return sub, nil
}
