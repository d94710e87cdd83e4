package bots

import (
	"github.com/rs/zerolog/log"

	"checkersGo/board"
)

// Turn is everything one player does before the opponent moves, together
// with the position it leads to.
type Turn struct {
	Moves  []board.Move
	Result board.Board
}

// Turns expands every legal move of the player to move into complete
// turns, following forced continuations until the turn passes. The order
// is square scan order, then move generation order, then continuation
// order.
func Turns(pos board.Board) []Turn {
	if pos.GameOver() {
		return nil
	}
	var turns []Turn
	expand(pos, nil, &turns)
	return turns
}

func expand(pos board.Board, prefix []board.Move, out *[]Turn) {
	for _, m := range pos.AllLegalMoves() {
		next := pos
		if err := next.Apply(m); err != nil {
			log.Error().Err(err).Str("board", pos.String()).Msg("generated move rejected")
			continue
		}
		path := append(prefix[:len(prefix):len(prefix)], m)
		if _, forced := next.ForcedContinuation(); forced {
			expand(next, path, out)
			continue
		}
		*out = append(*out, Turn{Moves: path, Result: next})
	}
}
