// bot.go
package bots

import (
	"errors"
	"fmt"
	"strings"

	"checkersGo/board"
)

// CheckersBot picks a complete turn for the player to move: one step, one
// jump, or a chain of jumps by the same piece.
type CheckersBot interface {
	BestTurn(pos board.Board) ([]board.Move, error)
	Name() string
}

var ErrUnknownBot = errors.New("unknown bot")

// Names of the bots New understands.
const (
	MinimaxName = "minimax"
	NewbornName = "newborn"
	RandomName  = "random"
)

func Names() []string {
	return []string{MinimaxName, NewbornName, RandomName}
}

func New(name string, depth int) (CheckersBot, error) {
	switch strings.ToLower(name) {
	case MinimaxName:
		return NewMinimaxBot(depth), nil
	case NewbornName:
		return NewNewbornBot(), nil
	case RandomName:
		return NewRandomBot(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBot, name)
}

// BestMove returns the first move of the bot's chosen turn. The remaining
// jumps of a chain are found again when the bot is asked mid-chain.
func BestMove(bot CheckersBot, pos board.Board) (board.Move, error) {
	turn, err := bot.BestTurn(pos)
	if err != nil {
		return board.Move{}, err
	}
	return turn[0], nil
}

// ChooseBotMove searches pos at DefaultDepth.
func ChooseBotMove(pos board.Board) (board.Move, error) {
	return BestMove(NewMinimaxBot(DefaultDepth), pos)
}

func checkPlayable(pos *board.Board) error {
	if outcome := pos.Outcome(); outcome != board.NoOutcome {
		return fmt.Errorf("bot move requested after result %q: %w", outcome, board.ErrInvalidState)
	}
	return nil
}
