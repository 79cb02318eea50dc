// Package api contains the http handlers serving the judge-compatible
// surface described by SPEC_FULL.md §8: GET /fire, GET
// /fire/{row}/{column}, GET /fire/{row}/{column}/avenger/{avenger}, and
// GET /reset, plus the practice server's own GET /token convenience
// endpoint.
package api

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/callegarimattia/battleship/internal/board"
	"github.com/callegarimattia/battleship/internal/dto"
	"github.com/callegarimattia/battleship/internal/session"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// tokenTTL is how long a /token-minted session stays valid.
const tokenTTL = 30 * 24 * time.Hour

// EchoHandler has the handlers for the judge-compatible http.Server,
// mirroring the teacher's one-struct-per-route-group pattern
// (internal/controller.AppController there, internal/session.Manager
// here).
type EchoHandler struct {
	manager   *session.Manager
	jwtSecret string

	mu  sync.Mutex
	rng *rand.Rand // avenger sampling source; guarded by mu, not safe for concurrent use unlocked
}

// NewEchoHandler creates a new http handler wrapping manager. jwtSecret
// signs and validates tokens minted by IssueToken; the judge surface
// itself still accepts any non-empty bearer/query token as an opaque
// storage key, per SPEC_FULL.md §8, so a caller authenticating against a
// real remote judge keeps working unchanged.
func NewEchoHandler(manager *session.Manager, rng *rand.Rand, jwtSecret string) *EchoHandler {
	return &EchoHandler{manager: manager, rng: rng, jwtSecret: jwtSecret}
}

// IssueToken handles GET /token: mints a fresh session token for a new
// random subject, for a human or script setting up against this local
// practice server to use as its JUDGE_TOKEN. Not part of the judge wire
// contract itself — purely a convenience this server controls.
func (h *EchoHandler) IssueToken(c echo.Context) error {
	token, err := session.IssueToken(h.jwtSecret, uuid.NewString(), tokenTTL)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"token": token})
}

// Status handles GET /fire: reports the current board without firing.
func (h *EchoHandler) Status(c echo.Context) error {
	token := h.resolveToken(c)
	ctx := c.Request().Context()

	user, b, err := h.loadOrCreate(ctx, token)
	if err != nil {
		return mapError(c, err)
	}

	return c.JSON(http.StatusOK, dto.FireResponse{
		Grid:             b.Grid(),
		Cell:             "",
		Result:           false,
		AvengerAvailable: b.AvengerAvailable,
		MapID:            mapIDOrdinal(user, b),
		MapCount:         user.RemainingMapCountInGame,
		MoveCount:        b.MoveCount,
		Finished:         b.AllDiscovered(),
	})
}

// Fire handles GET /fire/{row}/{column}: fires at (column, row) per the
// spec's axis convention.
func (h *EchoHandler) Fire(c echo.Context) error {
	token := h.resolveToken(c)
	ctx := c.Request().Context()

	row, column, err := rowColumnFrom(c)
	if err != nil {
		return mapError(c, err)
	}

	user, b, err := h.loadOrCreate(ctx, token)
	if err != nil {
		return mapError(c, err)
	}

	cell, err := b.Fire(column, row)
	if err != nil {
		return mapError(c, err)
	}

	if err := h.manager.SaveBoard(ctx, token, b, &user); err != nil {
		return mapError(c, err)
	}
	if err := h.manager.SaveUser(ctx, token, user); err != nil {
		return mapError(c, err)
	}

	return c.JSON(http.StatusOK, dto.FireResponse{
		Grid:             b.Grid(),
		Cell:             cell.String(),
		Result:           cell == board.Ship,
		AvengerAvailable: b.AvengerAvailable,
		MapID:            mapIDOrdinal(user, b),
		MapCount:         user.RemainingMapCountInGame,
		MoveCount:        b.MoveCount,
		Finished:         b.AllDiscovered(),
	})
}

// FireAvenger handles GET /fire/{row}/{column}/avenger/{avenger}.
func (h *EchoHandler) FireAvenger(c echo.Context) error {
	token := h.resolveToken(c)
	ctx := c.Request().Context()

	row, column, err := rowColumnFrom(c)
	if err != nil {
		return mapError(c, err)
	}

	avenger, err := board.ParseAvengerType(c.Param("avenger"))
	if err != nil {
		return mapError(c, err)
	}

	user, b, err := h.loadOrCreate(ctx, token)
	if err != nil {
		return mapError(c, err)
	}

	h.mu.Lock()
	cell, results, err := b.FireAvenger(column, row, avenger, h.rng)
	h.mu.Unlock()
	if err != nil {
		return mapError(c, err)
	}

	if err := h.manager.SaveBoard(ctx, token, b, &user); err != nil {
		return mapError(c, err)
	}
	if err := h.manager.SaveUser(ctx, token, user); err != nil {
		return mapError(c, err)
	}

	avengerHits := make([]dto.AvengerHit, len(results))
	for i, r := range results {
		// Critical axis flip: mapPoint.x is the row (engine's y),
		// mapPoint.y is the column (engine's x).
		avengerHits[i] = dto.AvengerHit{
			MapPoint: dto.MapPoint{X: r.Y, Y: r.X},
			Hit:      r.Hit,
		}
	}

	return c.JSON(http.StatusOK, dto.AvengerFireResponse{
		FireResponse: dto.FireResponse{
			Grid:             b.Grid(),
			Cell:             cell.String(),
			Result:           cell == board.Ship,
			AvengerAvailable: b.AvengerAvailable,
			MapID:            mapIDOrdinal(user, b),
			MapCount:         user.RemainingMapCountInGame,
			MoveCount:        b.MoveCount,
			Finished:         b.AllDiscovered(),
		},
		AvengerResult: avengerHits,
	})
}

// Reset handles GET /reset[?wipe].
func (h *EchoHandler) Reset(c echo.Context) error {
	token := h.resolveToken(c)
	ctx := c.Request().Context()

	_, wipe := c.QueryParams()["wipe"]
	if err := h.manager.Reset(ctx, token, wipe); err != nil {
		return mapError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]bool{"reset": true})
}

// loadOrCreate loads token's UserData and active Board, creating a fresh
// board when none is active and boards remain. It records the attempt
// before returning, per spec.md S6 ("subsequent GET /fire starts a
// fresh UserData with attempts=1").
func (h *EchoHandler) loadOrCreate(ctx context.Context, token string) (session.UserData, *board.Board, error) {
	user, err := h.manager.LoadUser(ctx, token)
	if err != nil {
		return session.UserData{}, nil, err
	}

	b, err := h.manager.LoadBoard(ctx, token, &user)
	if err != nil {
		return session.UserData{}, nil, err
	}

	user.RecordAttempt()
	if err := h.manager.SaveUser(ctx, token, user); err != nil {
		return session.UserData{}, nil, err
	}
	// Persist eagerly so a freshly placed board survives even if the
	// caller only ever issues status checks (GET /fire with no
	// coordinates) and never actually fires.
	if err := h.manager.SaveBoard(ctx, token, b, &user); err != nil {
		return session.UserData{}, nil, err
	}

	return user, b, nil
}

// mapIDOrdinal reports which board, 1-indexed, this is within the
// current 200-board game.
func mapIDOrdinal(user session.UserData, _ *board.Board) int {
	return session.InitialMapCount - user.RemainingMapCountInGame + 1
}

func tokenFrom(c echo.Context) string {
	if auth := c.Request().Header.Get(echo.HeaderAuthorization); auth != "" {
		const prefix = "Bearer "
		if len(auth) > len(prefix) && auth[:len(prefix)] == prefix {
			return auth[len(prefix):]
		}
	}
	return c.QueryParam("token")
}

// resolveToken extracts the caller's bearer/query token and, when it
// parses as a token this server minted via IssueToken, canonicalizes it
// to its signed subject. Any other opaque token — including a real
// judge's own token scheme — is used as-is, so this stays a strict
// superset of the bare opaque-key contract SPEC_FULL.md §8 describes.
func (h *EchoHandler) resolveToken(c echo.Context) string {
	raw := tokenFrom(c)
	if sub, err := session.ParseToken(h.jwtSecret, raw); err == nil {
		return sub
	}
	return raw
}

func rowColumnFrom(c echo.Context) (row, column int, err error) {
	row, err = strconv.Atoi(c.Param("row"))
	if err != nil {
		return 0, 0, board.ErrOutOfBounds
	}
	column, err = strconv.Atoi(c.Param("column"))
	if err != nil {
		return 0, 0, board.ErrOutOfBounds
	}
	return row, column, nil
}

// mapError translates a package error into the HTTP error taxonomy of
// SPEC_FULL.md §9: OutOfBounds/EngineError -> 400, game over (no boards
// remaining) -> 404, everything else -> 500.
func mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, board.ErrOutOfBounds),
		errors.Is(err, board.ErrAvengerUnavailable),
		errors.Is(err, board.ErrUnknownAvengerType):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, session.ErrGameOver):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, board.ErrInvariantViolation):
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
