package board

import "strings"

// Board is a plain value: copying it yields an independent position, which
// is what the search relies on.
type Board struct {
	cells    [Size * Size]Piece
	turn     Player
	selected Square
	forced   Square
}

// NewBoard returns the standard starting layout with Black to move.
func NewBoard() Board {
	b := NewEmptyBoard(Black)
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			sq := Square{row, col}
			if !sq.Dark() {
				continue
			}
			switch {
			case row < 3:
				b.cells[sq.index()] = Piece{Man, Black}
			case row >= Size-3:
				b.cells[sq.index()] = Piece{Man, Red}
			}
		}
	}
	return b
}

// NewEmptyBoard returns a board with no pieces, used to set up positions.
func NewEmptyBoard(turn Player) Board {
	return Board{
		turn:     turn,
		selected: NoSquare,
		forced:   NoSquare,
	}
}

func (b *Board) Reset() {
	*b = NewBoard()
}

// Set places p on sq, crowning a man that lands on its promotion row.
// Out-of-bounds squares are ignored.
func (b *Board) Set(sq Square, p Piece) {
	if !sq.InBounds() {
		return
	}
	if p.Kind == Man && sq.Row == p.Owner.PromotionRow() {
		p.Kind = King
	}
	b.cells[sq.index()] = p
}

func (b *Board) Remove(sq Square) {
	if sq.InBounds() {
		b.cells[sq.index()] = Piece{}
	}
}

// PieceAt reports the piece on sq. Out-of-bounds squares read as empty.
func (b *Board) PieceAt(sq Square) (Piece, bool) {
	if !sq.InBounds() {
		return Piece{}, false
	}
	p := b.cells[sq.index()]
	return p, !p.empty()
}

// PiecesOf lists the squares occupied by player in row-major order.
func (b *Board) PiecesOf(player Player) []Square {
	var squares []Square
	for i, p := range b.cells {
		if !p.empty() && p.Owner == player {
			squares = append(squares, Square{i / Size, i % Size})
		}
	}
	return squares
}

func (b *Board) Count(player Player) (men, kings int) {
	for _, p := range b.cells {
		if p.empty() || p.Owner != player {
			continue
		}
		if p.Kind == King {
			kings++
		} else {
			men++
		}
	}
	return men, kings
}

func (b *Board) Turn() Player {
	return b.turn
}

// ForcedContinuation returns the square of the piece that must keep
// capturing, if any.
func (b *Board) ForcedContinuation() (Square, bool) {
	return b.forced, b.forced != NoSquare
}

func (b *Board) Select(sq Square) {
	b.selected = sq
}

func (b *Board) Deselect() {
	b.selected = NoSquare
}

func (b *Board) Selected() (Square, bool) {
	return b.selected, b.selected != NoSquare
}

// GameOver is true when either player has no pieces left.
func (b *Board) GameOver() bool {
	blackMen, blackKings := b.Count(Black)
	redMen, redKings := b.Count(Red)
	return blackMen+blackKings == 0 || redMen+redKings == 0
}

// Outcome decides the game. Besides elimination, a player to move who has
// pieces but no legal move loses.
func (b *Board) Outcome() Outcome {
	blackMen, blackKings := b.Count(Black)
	redMen, redKings := b.Count(Red)
	switch {
	case blackMen+blackKings == 0:
		return RedWon
	case redMen+redKings == 0:
		return BlackWon
	case len(b.AllLegalMoves()) == 0:
		if b.turn == Black {
			return RedWon
		}
		return BlackWon
	}
	return NoOutcome
}

// Apply validates and plays m. On error the board is unchanged.
func (b *Board) Apply(m Move) error {
	if err := b.checkMove(m); err != nil {
		return err
	}
	b.play(m)
	return nil
}

func (b *Board) play(m Move) {
	p := b.cells[m.From.index()]
	b.cells[m.To.index()] = p
	b.cells[m.From.index()] = Piece{}
	b.selected = NoSquare

	continues := false
	if m.IsJump() {
		b.cells[m.Captured().index()] = Piece{}
		// Checked before crowning: a man reaching the last row ends the turn.
		continues = len(b.jumps(m.To, p)) > 0
	}
	if continues {
		b.forced = m.To
	} else {
		b.forced = NoSquare
		b.turn = b.turn.Other()
	}

	if p.Kind == Man && m.To.Row == p.Owner.PromotionRow() {
		b.cells[m.To.index()] = Piece{King, p.Owner}
	}
}

func (b Board) String() string {
	var sb strings.Builder
	sb.WriteString(b.turn.String())
	sb.WriteString(" to move")
	if sq, ok := b.ForcedContinuation(); ok {
		sb.WriteString(", continue from ")
		sb.WriteString(sq.String())
	}
	sb.WriteByte('\n')
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			sb.WriteByte(glyph(b.cells[row*Size+col]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func glyph(p Piece) byte {
	switch {
	case p.empty():
		return '.'
	case p.Owner == Black && p.Kind == King:
		return 'B'
	case p.Owner == Black:
		return 'b'
	case p.Kind == King:
		return 'R'
	}
	return 'r'
}
