package session

import "errors"

var (
	// ErrInvalidToken is returned when a bearer/query token fails
	// validation against the local practice server's secret.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrGameOver is returned when a token's RemainingMapCountInGame has
	// reached zero and no further board may be created.
	ErrGameOver = errors.New("game over: no boards remaining")
)
