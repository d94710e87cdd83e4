package board

import "fmt"

const Size = 8

// Square is a (row, col) coordinate. NoSquare marks "nothing selected" or
// "no continuation pending".
type Square struct {
	Row, Col int
}

var NoSquare = Square{-1, -1}

func (s Square) InBounds() bool {
	return s.Row >= 0 && s.Row < Size && s.Col >= 0 && s.Col < Size
}

// Dark squares are the playable ones.
func (s Square) Dark() bool {
	return (s.Row+s.Col)%2 == 1
}

func (s Square) index() int {
	return s.Row*Size + s.Col
}

func (s Square) add(d direction, n int) Square {
	return Square{s.Row + d.dr*n, s.Col + d.dc*n}
}

func (s Square) String() string {
	return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
}

type Player int

const (
	// Black starts on rows 0-2, moves toward increasing rows and moves first.
	Black Player = iota
	// Red starts on rows 5-7 and moves toward decreasing rows.
	Red
)

func (p Player) Other() Player {
	if p == Black {
		return Red
	}
	return Black
}

// Forward is the row delta of a man's step.
func (p Player) Forward() int {
	if p == Black {
		return 1
	}
	return -1
}

func (p Player) PromotionRow() int {
	if p == Black {
		return Size - 1
	}
	return 0
}

func (p Player) String() string {
	if p == Black {
		return "black"
	}
	return "red"
}

// Kind starts at 1 so that the zero Piece means an empty square.
type Kind int

const (
	Man Kind = iota + 1
	King
)

func (k Kind) String() string {
	switch k {
	case Man:
		return "man"
	case King:
		return "king"
	}
	return "none"
}

type Piece struct {
	Kind  Kind
	Owner Player
}

func (p Piece) empty() bool {
	return p.Kind == 0
}

func (p Piece) String() string {
	return p.Owner.String() + " " + p.Kind.String()
}

// Move relocates the piece on From to To. A jump spans two rows and two
// columns and captures the piece on the midpoint.
type Move struct {
	From, To Square
}

func (m Move) IsJump() bool {
	return abs(m.To.Row-m.From.Row) == 2 && abs(m.To.Col-m.From.Col) == 2
}

func (m Move) Captured() Square {
	return Square{(m.From.Row + m.To.Row) / 2, (m.From.Col + m.To.Col) / 2}
}

func (m Move) String() string {
	sep := "-"
	if m.IsJump() {
		sep = "x"
	}
	return m.From.String() + sep + m.To.String()
}

type Outcome int

const (
	NoOutcome Outcome = iota
	BlackWon
	RedWon
)

func (o Outcome) String() string {
	switch o {
	case BlackWon:
		return "black wins"
	case RedWon:
		return "red wins"
	}
	return "*"
}

// Winner reports the winning player when the game has been decided.
func (o Outcome) Winner() (Player, bool) {
	switch o {
	case BlackWon:
		return Black, true
	case RedWon:
		return Red, true
	}
	return Black, false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
