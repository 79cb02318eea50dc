package board

import "errors"

// Sentinel errors surfaced by the authoritative rules engine. They map
// onto the error taxonomy of SPEC_FULL.md §9: OutOfBounds and EngineError
// become 400s at the transport boundary, Fatal becomes a 500 and is never
// recovered from locally.
var (
	// ErrOutOfBounds indicates coordinates outside [0, size).
	ErrOutOfBounds = errors.New("board: coordinates out of bounds")
	// ErrAvengerUnavailable indicates fire_avenger was called without a
	// granted avenger.
	ErrAvengerUnavailable = errors.New("board: no avenger available")
	// ErrUnknownAvengerType indicates an avenger value outside {thor, ironman, hulk}.
	ErrUnknownAvengerType = errors.New("board: unknown avenger type")
	// ErrPlacementFailed indicates the fleet could not be placed; it
	// should never occur on a 12x12 board with the canonical fleet and
	// indicates a Fatal invariant violation if it does.
	ErrPlacementFailed = errors.New("board: unable to place fleet")
	// ErrInvariantViolation is a Fatal error: authoritative state
	// contradicts an invariant the engine must never allow.
	ErrInvariantViolation = errors.New("board: invariant violation")
)
