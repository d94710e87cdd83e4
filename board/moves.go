package board

import (
	"fmt"

	"golang.org/x/exp/slices"
)

type direction struct {
	dr, dc int
}

// Diagonals in generation order. Move order within a square follows this
// table, so ties in the search are broken by it.
var diagonals = [4]direction{
	{1, -1}, {1, 1}, {-1, -1}, {-1, 1},
}

// directions returns the step vectors of p. Jumps use the same vectors
// doubled.
func (p Piece) directions() []direction {
	if p.Kind == King {
		return diagonals[:]
	}
	dirs := make([]direction, 0, 2)
	for _, d := range diagonals {
		if d.dr == p.Owner.Forward() {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

func (b *Board) isEmpty(sq Square) bool {
	return sq.InBounds() && b.cells[sq.index()].empty()
}

func (b *Board) isEnemyOf(sq Square, player Player) bool {
	p, ok := b.PieceAt(sq)
	return ok && p.Owner != player
}

func (b *Board) jumps(from Square, p Piece) []Move {
	var moves []Move
	for _, d := range p.directions() {
		to := from.add(d, 2)
		if b.isEmpty(to) && b.isEnemyOf(from.add(d, 1), p.Owner) {
			moves = append(moves, Move{from, to})
		}
	}
	return moves
}

func (b *Board) steps(from Square, p Piece) []Move {
	var moves []Move
	for _, d := range p.directions() {
		to := from.add(d, 1)
		if b.isEmpty(to) {
			moves = append(moves, Move{from, to})
		}
	}
	return moves
}

// movesFrom applies the forced-capture rule for a single piece: if it can
// jump, only its jumps are legal.
func (b *Board) movesFrom(from Square, p Piece) []Move {
	if jumps := b.jumps(from, p); len(jumps) > 0 {
		return jumps
	}
	return b.steps(from, p)
}

// CaptureAvailable reports whether the piece on sq has at least one jump.
// Empty and out-of-bounds squares have none.
func (b *Board) CaptureAvailable(sq Square) bool {
	p, ok := b.PieceAt(sq)
	if !ok {
		return false
	}
	return len(b.jumps(sq, p)) > 0
}

// LegalMoves returns the moves available to the piece on sq, regardless of
// whose turn it is. Only jumps are returned when any jump exists.
func (b *Board) LegalMoves(sq Square) ([]Move, error) {
	p, ok := b.PieceAt(sq)
	if !ok {
		return nil, fmt.Errorf("legal moves from %v: %w", sq, ErrInvalidState)
	}
	return b.movesFrom(sq, p), nil
}

// AllLegalMoves returns every move the player to move may make, in square
// scan order. While a continuation is pending only the capturing piece may
// move. There is no board-wide capture obligation: a piece without a jump
// may still make a quiet move when another piece could capture.
func (b *Board) AllLegalMoves() []Move {
	if sq, ok := b.ForcedContinuation(); ok {
		return b.jumps(sq, b.cells[sq.index()])
	}
	var moves []Move
	for _, sq := range b.PiecesOf(b.turn) {
		moves = append(moves, b.movesFrom(sq, b.cells[sq.index()])...)
	}
	return moves
}

// IsLegal reports whether m may be applied on the current board.
func (b *Board) IsLegal(m Move) bool {
	return b.checkMove(m) == nil
}

func (b *Board) checkMove(m Move) error {
	if b.GameOver() {
		return fmt.Errorf("apply %v: %w", m, ErrGameOver)
	}
	p, ok := b.PieceAt(m.From)
	if !ok {
		return fmt.Errorf("apply %v: empty source square: %w", m, ErrInvalidState)
	}
	if p.Owner != b.turn {
		return fmt.Errorf("apply %v: %s piece on %s's turn: %w", m, p.Owner, b.turn, ErrIllegalMove)
	}
	if sq, ok := b.ForcedContinuation(); ok && m.From != sq {
		return fmt.Errorf("apply %v: continuation pending on %v: %w", m, sq, ErrIllegalMove)
	}
	if !slices.Contains(b.movesFrom(m.From, p), m) {
		return fmt.Errorf("apply %v: %w", m, ErrIllegalMove)
	}
	return nil
}
