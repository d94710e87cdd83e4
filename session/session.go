// Package session drives one human-versus-bot game: it owns the board,
// validates the human's clicks and plays the bot's turns.
package session

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"

	"checkersGo/board"
	"checkersGo/bots"
)

var ErrNoBots = errors.New("no bots configured")

type botResult struct {
	turn []board.Move
	err  error
}

// Session is used from a single goroutine. Bot searches run on a copy of
// the board in their own goroutine and hand their turn back over a
// channel, so the board is only mutated by the session's owner.
type Session struct {
	board      board.Board
	botSide    board.Player
	bots       []bots.CheckersBot
	currentBot int
	thinkDelay time.Duration

	botThinking bool
	results     chan botResult
	pending     []board.Move
	nextStep    time.Time
	// botErr stops the bot after a failed search until Reset or CycleBot.
	botErr error
}

type Options struct {
	BotSide board.Player
	// Bots can be cycled with CycleBot; the first one starts.
	Bots []bots.CheckersBot
	// ThinkDelay is the minimum time a bot turn takes. Jumps of a chain
	// are played half of it apart.
	ThinkDelay time.Duration
}

func New(opts Options) (*Session, error) {
	if len(opts.Bots) == 0 {
		return nil, ErrNoBots
	}
	return &Session{
		board:      board.NewBoard(),
		botSide:    opts.BotSide,
		bots:       opts.Bots,
		thinkDelay: opts.ThinkDelay,
		results:    make(chan botResult, 1),
	}, nil
}

// Board returns a snapshot of the current position.
func (s *Session) Board() board.Board {
	return s.board
}

func (s *Session) BotSide() board.Player {
	return s.botSide
}

func (s *Session) Bot() bots.CheckersBot {
	return s.bots[s.currentBot]
}

// Thinking reports whether the bot is searching or still playing out a
// chain of jumps.
func (s *Session) Thinking() bool {
	return s.botThinking || len(s.pending) > 0
}

// Err returns the error of the last failed bot search, if any.
func (s *Session) Err() error {
	return s.botErr
}

func (s *Session) Outcome() board.Outcome {
	return s.board.Outcome()
}

// CycleBot switches to the next bot unless one is busy.
func (s *Session) CycleBot() bool {
	if s.Thinking() {
		return false
	}
	s.currentBot = (s.currentBot + 1) % len(s.bots)
	s.botErr = nil
	log.Info().Str("bot", s.Bot().Name()).Msg("bot switched")
	return true
}

func (s *Session) Reset() {
	// A search still running reports into the old buffered channel and is
	// forgotten.
	if s.botThinking {
		s.results = make(chan botResult, 1)
	}
	s.board.Reset()
	s.botThinking = false
	s.pending = nil
	s.botErr = nil
	log.Info().Msg("new game")
}

// Tick advances the bot when it is its turn: it starts a search, collects
// the result, and plays the chosen turn one move at a time.
func (s *Session) Tick(now time.Time) {
	if s.botErr != nil || s.board.Outcome() != board.NoOutcome || s.board.Turn() != s.botSide {
		return
	}

	if len(s.pending) > 0 {
		if now.Before(s.nextStep) {
			return
		}
		s.play(s.pending[0])
		s.pending = s.pending[1:]
		s.nextStep = now.Add(s.thinkDelay / 2)
		return
	}

	if !s.botThinking {
		s.botThinking = true
		go think(s.Bot(), s.board, s.thinkDelay, s.results)
		return
	}

	select {
	case res := <-s.results:
		s.botThinking = false
		if res.err != nil {
			s.botErr = res.err
			log.Error().Err(res.err).Str("bot", s.Bot().Name()).Msg("bot failed to move, waiting for reset")
			return
		}
		s.pending = res.turn
		s.nextStep = now
	default:
	}
}

func think(bot bots.CheckersBot, pos board.Board, delay time.Duration, out chan<- botResult) {
	start := time.Now()
	turn, err := bot.BestTurn(pos)
	if wait := delay - time.Since(start); wait > 0 {
		time.Sleep(wait)
	}
	out <- botResult{turn, err}
}

// Click handles a human click on sq: it selects one of the human's pieces
// or moves the selected piece there. It reports whether a move was played.
func (s *Session) Click(sq board.Square) bool {
	if !sq.InBounds() || s.board.Outcome() != board.NoOutcome || s.board.Turn() == s.botSide {
		return false
	}
	forced, isForced := s.board.ForcedContinuation()

	if p, ok := s.board.PieceAt(sq); ok && p.Owner == s.board.Turn() {
		if isForced && sq != forced {
			log.Debug().Stringer("square", sq).Msg("continuation pending elsewhere")
			return false
		}
		s.board.Select(sq)
		return false
	}

	from, ok := s.board.Selected()
	if !ok {
		return false
	}
	m := board.Move{From: from, To: sq}
	moves, err := s.board.LegalMoves(from)
	if err != nil || !slices.Contains(moves, m) {
		log.Debug().Stringer("move", m).Msg("rejected")
		return false
	}
	if !s.play(m) {
		return false
	}
	if next, ok := s.board.ForcedContinuation(); ok {
		s.board.Select(next)
	}
	return true
}

func (s *Session) play(m board.Move) bool {
	player := s.board.Turn()
	if err := s.board.Apply(m); err != nil {
		log.Error().Err(err).Stringer("move", m).Msg("apply failed")
		return false
	}
	log.Debug().Stringer("player", player).Stringer("move", m).Msg("played")
	if outcome := s.board.Outcome(); outcome != board.NoOutcome {
		log.Info().Stringer("outcome", outcome).Msg("game over")
	}
	return true
}

// Highlights lists the squares worth marking: a pending continuation, the
// selected piece and its legal destinations.
func (s *Session) Highlights() []board.Square {
	var marked []board.Square
	if sq, ok := s.board.ForcedContinuation(); ok {
		marked = append(marked, sq)
	}
	if sel, ok := s.board.Selected(); ok {
		marked = append(marked, sel)
		if moves, err := s.board.LegalMoves(sel); err == nil {
			for _, m := range moves {
				marked = append(marked, m.To)
			}
		}
	}
	return marked
}
