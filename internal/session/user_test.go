package session_test

import (
	"testing"
	"time"

	"github.com/callegarimattia/battleship/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserData_StartsWithAFullGame(t *testing.T) {
	t.Parallel()

	u := session.NewUserData()
	assert.Equal(t, session.InitialMapCount, u.RemainingMapCountInGame)
	assert.Zero(t, u.Attempts)
	assert.False(t, u.GameOver())
}

func TestRecordAttempt_SaturatesAtMaxAttempts(t *testing.T) {
	t.Parallel()

	u := session.UserData{Attempts: session.MaxAttempts}
	u.RecordAttempt()
	assert.Equal(t, session.MaxAttempts, u.Attempts)
}

func TestCompleteBoard_RollsMoveCountIntoScoreAndDecrementsRemaining(t *testing.T) {
	t.Parallel()

	u := session.NewUserData()
	u.CompleteBoard(42)

	assert.Equal(t, 42, u.CurrentGameScore)
	assert.Equal(t, session.InitialMapCount-1, u.RemainingMapCountInGame)
	assert.False(t, u.GameOver())
}

func TestCompleteBoard_SetsBestScoreWhenGameEnds(t *testing.T) {
	t.Parallel()

	u := session.UserData{RemainingMapCountInGame: 1}
	u.CompleteBoard(17)

	assert.True(t, u.GameOver())
	assert.Equal(t, 17, u.BestScore)
}

func TestIssueTokenAndParseToken_RoundTrip(t *testing.T) {
	t.Parallel()

	token, err := session.IssueToken("secret", "player-1", time.Hour)
	require.NoError(t, err)

	subject, err := session.ParseToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "player-1", subject)
}

func TestParseToken_WrongSecretFails(t *testing.T) {
	t.Parallel()

	token, err := session.IssueToken("secret", "player-1", time.Hour)
	require.NoError(t, err)

	_, err = session.ParseToken("other-secret", token)
	assert.Error(t, err)
}
