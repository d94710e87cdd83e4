package bots

import "checkersGo/board"

// NewbornBot always plays the first turn it finds.
type NewbornBot struct{}

func NewNewbornBot() *NewbornBot {
	return &NewbornBot{}
}

func (b *NewbornBot) BestTurn(pos board.Board) ([]board.Move, error) {
	if err := checkPlayable(&pos); err != nil {
		return nil, err
	}
	return Turns(pos)[0].Moves, nil
}

func (b *NewbornBot) Name() string {
	return "Newborn"
}
