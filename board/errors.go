package board

import "errors"

var (
	// ErrIllegalMove is returned by Apply for a move that is not among the
	// legal moves of the player to move.
	ErrIllegalMove  = errors.New("illegal move")
	// ErrInvalidState is returned when an operation is asked about an empty
	// square.
	ErrInvalidState = errors.New("invalid state")
	ErrGameOver     = errors.New("game over")
)
