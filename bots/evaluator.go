package bots

import "checkersGo/board"

// PositionEvaluator scores a position: positive favours Red, negative
// favours Black.
type PositionEvaluator interface {
	Evaluate(pos *board.Board) float64
}

const (
	ManValue  = 1
	KingValue = 2
)

type MaterialEvaluator struct{}

func (e MaterialEvaluator) Evaluate(pos *board.Board) float64 {
	redMen, redKings := pos.Count(board.Red)
	blackMen, blackKings := pos.Count(board.Black)
	return float64((redMen-blackMen)*ManValue + (redKings-blackKings)*KingValue)
}

// StaticValue is the material balance of pos.
func StaticValue(pos board.Board) float64 {
	return MaterialEvaluator{}.Evaluate(&pos)
}
