package bots

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"checkersGo/board"
)

const (
	// DefaultDepth is measured in turns, not single jumps.
	DefaultDepth = 5
	// WinScore is the value of a decided game, minus the plies needed to
	// reach it.
	WinScore = 1000.0
)

// MinimaxBot searches complete turns with alpha-beta pruning. Red
// maximizes, Black minimizes. Searches may run concurrently; each works on
// its own copies of the board.
type MinimaxBot struct {
	Depth     int
	Evaluator PositionEvaluator

	mu    sync.Mutex
	stats SearchStats
}

func NewMinimaxBot(depth int) *MinimaxBot {
	return &MinimaxBot{
		Depth:     depth,
		Evaluator: MaterialEvaluator{},
	}
}

func (b *MinimaxBot) Name() string {
	return fmt.Sprintf("Minimax Bot (depth %d)", b.Depth)
}

// Stats describes the most recently finished search.
func (b *MinimaxBot) Stats() SearchStats {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.stats
}

func (b *MinimaxBot) BestTurn(pos board.Board) ([]board.Move, error) {
	if err := checkPlayable(&pos); err != nil {
		return nil, err
	}

	start := time.Now()
	score, turn := b.Search(pos, b.Depth, math.Inf(-1), math.Inf(1))
	log.Debug().
		Str("bot", b.Name()).
		Stringer("player", pos.Turn()).
		Interface("turn", turn).
		Float64("score", score).
		Stringer("stats", b.Stats()).
		Dur("elapsed", time.Since(start)).
		Msg("search finished")

	if turn == nil {
		return nil, fmt.Errorf("search found no turn: %w", board.ErrInvalidState)
	}
	return turn, nil
}

type scoredTurn struct {
	turn  []board.Move
	score float64
}

// Search returns the minimax value of pos and the turn achieving it. The
// turn is nil at the depth limit and in decided positions. Ties keep the
// first turn in Turns order.
//
// Only depth-limit leaves are scored by the evaluator. Decided positions
// (no pieces, or no legal move for the player to move) score
// ±(WinScore - ply) regardless of material.
func (b *MinimaxBot) Search(pos board.Board, depth int, alpha, beta float64) (float64, []board.Move) {
	s := searcher{evaluator: b.Evaluator}
	if s.evaluator == nil {
		s.evaluator = MaterialEvaluator{}
	}
	result := s.alphaBeta(pos, depth, 0, alpha, beta)

	b.mu.Lock()
	b.stats = s.stats
	b.mu.Unlock()
	return result.score, result.turn
}

// searcher holds the state of a single search.
type searcher struct {
	evaluator PositionEvaluator
	stats     SearchStats
}

func (s *searcher) alphaBeta(pos board.Board, depth, ply int, alpha, beta float64) scoredTurn {
	s.stats.Nodes++

	if pos.GameOver() {
		s.stats.Leaves++
		return scoredTurn{score: terminalScore(&pos, ply)}
	}
	if depth <= 0 {
		s.stats.Leaves++
		return scoredTurn{score: s.evaluator.Evaluate(&pos)}
	}

	turns := Turns(pos)
	if len(turns) == 0 {
		// Blocked with pieces left: the player to move has lost.
		s.stats.Leaves++
		return scoredTurn{score: lossScore(pos.Turn(), ply)}
	}

	var best scoredTurn
	if pos.Turn() == board.Red {
		best.score = math.Inf(-1)
		for _, t := range turns {
			current := s.alphaBeta(t.Result, depth-1, ply+1, alpha, beta)
			if best.turn == nil || current.score > best.score {
				best = scoredTurn{t.Moves, current.score}
			}
			alpha = math.Max(alpha, best.score)
			if alpha >= beta {
				s.stats.Cutoffs++
				break
			}
		}
	} else {
		best.score = math.Inf(1)
		for _, t := range turns {
			current := s.alphaBeta(t.Result, depth-1, ply+1, alpha, beta)
			if best.turn == nil || current.score < best.score {
				best = scoredTurn{t.Moves, current.score}
			}
			beta = math.Min(beta, best.score)
			if alpha >= beta {
				s.stats.Cutoffs++
				break
			}
		}
	}
	return best
}

func terminalScore(pos *board.Board, ply int) float64 {
	if len(pos.PiecesOf(board.Black)) == 0 {
		return lossScore(board.Black, ply)
	}
	return lossScore(board.Red, ply)
}

// lossScore is the value of a position lost by loser; earlier losses are
// worse for the loser.
func lossScore(loser board.Player, ply int) float64 {
	if loser == board.Red {
		return -(WinScore - float64(ply))
	}
	return WinScore - float64(ply)
}
