package board_test

import (
	"math/rand"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"checkersGo/board"
)

func sq(row, col int) board.Square {
	return board.Square{Row: row, Col: col}
}

func man(p board.Player) board.Piece {
	return board.Piece{Kind: board.Man, Owner: p}
}

func king(p board.Player) board.Piece {
	return board.Piece{Kind: board.King, Owner: p}
}

func TestNewBoardLayout(t *testing.T) {
	b := board.NewBoard()

	require.Equal(t, board.Black, b.Turn())
	require.Len(t, b.PiecesOf(board.Black), 12)
	require.Len(t, b.PiecesOf(board.Red), 12)

	for _, s := range b.PiecesOf(board.Black) {
		require.True(t, s.Dark(), "black piece on light square %v", s)
		require.Less(t, s.Row, 3)
	}
	for _, s := range b.PiecesOf(board.Red) {
		require.True(t, s.Dark(), "red piece on light square %v", s)
		require.GreaterOrEqual(t, s.Row, 5)
	}

	_, forced := b.ForcedContinuation()
	require.False(t, forced)
	_, selected := b.Selected()
	require.False(t, selected)
	require.False(t, b.GameOver())
	require.Equal(t, board.NoOutcome, b.Outcome())
}

func TestPiecesOfRowMajorOrder(t *testing.T) {
	b := board.NewBoard()
	squares := b.PiecesOf(board.Black)
	require.Equal(t, sq(0, 1), squares[0])
	require.Equal(t, sq(2, 7), squares[len(squares)-1])
}

func TestPieceAtOutOfBounds(t *testing.T) {
	b := board.NewBoard()
	for _, s := range []board.Square{sq(-1, 0), sq(0, 8), sq(8, 8), board.NoSquare} {
		_, ok := b.PieceAt(s)
		require.False(t, ok, "square %v", s)
		require.False(t, b.CaptureAvailable(s))
	}

	p, ok := b.PieceAt(sq(0, 1))
	require.True(t, ok)
	require.Equal(t, man(board.Black), p)
}

func TestLegalMovesEmptySquare(t *testing.T) {
	b := board.NewBoard()
	_, err := b.LegalMoves(sq(3, 0))
	require.ErrorIs(t, err, board.ErrInvalidState)

	require.False(t, b.CaptureAvailable(sq(3, 0)))
}

func TestLegalMovesManSteps(t *testing.T) {
	b := board.NewBoard()

	moves, err := b.LegalMoves(sq(2, 1))
	require.NoError(t, err)
	require.ElementsMatch(t, []board.Move{
		{From: sq(2, 1), To: sq(3, 0)},
		{From: sq(2, 1), To: sq(3, 2)},
	}, moves)

	// Blocked by its own pieces.
	moves, err = b.LegalMoves(sq(1, 0))
	require.NoError(t, err)
	require.Empty(t, moves)

	// Red moves toward row 0 and is queryable on black's turn.
	moves, err = b.LegalMoves(sq(5, 0))
	require.NoError(t, err)
	require.Equal(t, []board.Move{{From: sq(5, 0), To: sq(4, 1)}}, moves)
}

func TestLegalMovesForcedCapture(t *testing.T) {
	b := board.NewBoard()
	b.Set(sq(3, 2), man(board.Red))

	moves, err := b.LegalMoves(sq(2, 1))
	require.NoError(t, err)
	require.Equal(t, []board.Move{{From: sq(2, 1), To: sq(4, 3)}}, moves)
	require.True(t, b.CaptureAvailable(sq(2, 1)))

	// The per-piece rule does not bind other pieces.
	moves, err = b.LegalMoves(sq(2, 7))
	require.NoError(t, err)
	require.Equal(t, []board.Move{{From: sq(2, 7), To: sq(3, 6)}}, moves)

	err = b.Apply(board.Move{From: sq(2, 1), To: sq(3, 0)})
	require.ErrorIs(t, err, board.ErrIllegalMove)
	require.NoError(t, b.Apply(board.Move{From: sq(2, 7), To: sq(3, 6)}))
}

func TestLegalMovesKing(t *testing.T) {
	b := board.NewEmptyBoard(board.Red)
	b.Set(sq(4, 3), king(board.Red))
	b.Set(sq(0, 7), man(board.Black))

	moves, err := b.LegalMoves(sq(4, 3))
	require.NoError(t, err)
	require.ElementsMatch(t, []board.Move{
		{From: sq(4, 3), To: sq(5, 2)},
		{From: sq(4, 3), To: sq(5, 4)},
		{From: sq(4, 3), To: sq(3, 2)},
		{From: sq(4, 3), To: sq(3, 4)},
	}, moves)

	// A king captures backwards too.
	b.Set(sq(5, 4), man(board.Black))
	moves, err = b.LegalMoves(sq(4, 3))
	require.NoError(t, err)
	require.Equal(t, []board.Move{{From: sq(4, 3), To: sq(6, 5)}}, moves)
}

func TestJumpOverOwnPieceIsNotACapture(t *testing.T) {
	b := board.NewEmptyBoard(board.Black)
	b.Set(sq(2, 1), man(board.Black))
	b.Set(sq(3, 2), man(board.Black))
	b.Set(sq(7, 0), man(board.Red))

	require.False(t, b.CaptureAvailable(sq(2, 1)))
	moves, err := b.LegalMoves(sq(2, 1))
	require.NoError(t, err)
	require.Equal(t, []board.Move{{From: sq(2, 1), To: sq(3, 0)}}, moves)
}

func TestApplyStepFlipsTurn(t *testing.T) {
	b := board.NewBoard()
	b.Select(sq(2, 1))

	require.NoError(t, b.Apply(board.Move{From: sq(2, 1), To: sq(3, 2)}))
	require.Equal(t, board.Red, b.Turn())
	_, selected := b.Selected()
	require.False(t, selected)

	_, ok := b.PieceAt(sq(2, 1))
	require.False(t, ok)
	p, ok := b.PieceAt(sq(3, 2))
	require.True(t, ok)
	require.Equal(t, man(board.Black), p)
}

func TestApplySingleJump(t *testing.T) {
	b := board.NewBoard()
	b.Set(sq(3, 2), man(board.Red))

	require.NoError(t, b.Apply(board.Move{From: sq(2, 1), To: sq(4, 3)}))

	_, ok := b.PieceAt(sq(3, 2))
	require.False(t, ok, "captured piece still on board:\n%s", b)
	require.Equal(t, board.Red, b.Turn())
	_, forced := b.ForcedContinuation()
	require.False(t, forced)
}

func multiJumpBoard() board.Board {
	b := board.NewEmptyBoard(board.Black)
	b.Set(sq(2, 1), man(board.Black))
	b.Set(sq(0, 7), man(board.Black))
	b.Set(sq(3, 2), man(board.Red))
	b.Set(sq(5, 4), man(board.Red))
	b.Set(sq(7, 0), man(board.Red))
	return b
}

func TestApplyMultiJumpContinuation(t *testing.T) {
	b := multiJumpBoard()

	require.NoError(t, b.Apply(board.Move{From: sq(2, 1), To: sq(4, 3)}))
	forcedSq, forced := b.ForcedContinuation()
	require.True(t, forced)
	require.Equal(t, sq(4, 3), forcedSq)
	require.Equal(t, board.Black, b.Turn())
	require.True(t, b.CaptureAvailable(forcedSq))
	require.Equal(t, []board.Move{{From: sq(4, 3), To: sq(6, 5)}}, b.AllLegalMoves())

	// Other pieces stay queryable but may not move.
	moves, err := b.LegalMoves(sq(0, 7))
	require.NoError(t, err)
	require.NotEmpty(t, moves)
	before := b
	err = b.Apply(moves[0])
	require.ErrorIs(t, err, board.ErrIllegalMove)
	require.Equal(t, before, b)

	require.NoError(t, b.Apply(board.Move{From: sq(4, 3), To: sq(6, 5)}))
	_, forced = b.ForcedContinuation()
	require.False(t, forced)
	require.Equal(t, board.Red, b.Turn())
	require.Len(t, b.PiecesOf(board.Red), 1)
}

func TestApplyPromotion(t *testing.T) {
	b := board.NewEmptyBoard(board.Black)
	b.Set(sq(6, 1), man(board.Black))
	b.Set(sq(1, 6), man(board.Red))

	require.NoError(t, b.Apply(board.Move{From: sq(6, 1), To: sq(7, 0)}))
	p, _ := b.PieceAt(sq(7, 0))
	require.Equal(t, king(board.Black), p)

	require.NoError(t, b.Apply(board.Move{From: sq(1, 6), To: sq(0, 7)}))
	p, _ = b.PieceAt(sq(0, 7))
	require.Equal(t, king(board.Red), p)
}

func TestCrowningJumpEndsTurn(t *testing.T) {
	b := board.NewEmptyBoard(board.Black)
	b.Set(sq(5, 2), man(board.Black))
	b.Set(sq(6, 3), man(board.Red))
	// Only a king on (7,4) could take this one.
	b.Set(sq(6, 5), man(board.Red))

	require.NoError(t, b.Apply(board.Move{From: sq(5, 2), To: sq(7, 4)}))
	p, _ := b.PieceAt(sq(7, 4))
	require.Equal(t, king(board.Black), p)
	require.Equal(t, board.Red, b.Turn())
	_, forced := b.ForcedContinuation()
	require.False(t, forced)
}

func TestApplyRejectsCallerErrors(t *testing.T) {
	b := board.NewBoard()
	before := b

	err := b.Apply(board.Move{From: sq(3, 0), To: sq(4, 1)})
	require.ErrorIs(t, err, board.ErrInvalidState)

	err = b.Apply(board.Move{From: sq(5, 0), To: sq(4, 1)})
	require.ErrorIs(t, err, board.ErrIllegalMove, "red moved on black's turn")

	err = b.Apply(board.Move{From: sq(2, 1), To: sq(4, 3)})
	require.ErrorIs(t, err, board.ErrIllegalMove, "jump over nothing")

	err = b.Apply(board.Move{From: sq(2, 1), To: sq(2, 2)})
	require.ErrorIs(t, err, board.ErrIllegalMove)

	require.Equal(t, before, b)
	require.False(t, b.IsLegal(board.Move{From: sq(2, 1), To: sq(3, 1)}))
	require.True(t, b.IsLegal(board.Move{From: sq(2, 1), To: sq(3, 0)}))
}

func TestApplyAfterGameOver(t *testing.T) {
	b := board.NewEmptyBoard(board.Black)
	b.Set(sq(2, 1), man(board.Black))

	require.True(t, b.GameOver())
	require.Equal(t, board.BlackWon, b.Outcome())
	err := b.Apply(board.Move{From: sq(2, 1), To: sq(3, 0)})
	require.ErrorIs(t, err, board.ErrGameOver)
}

func TestGameOverMatchesPieceCounts(t *testing.T) {
	b := board.NewEmptyBoard(board.Black)
	b.Set(sq(2, 1), man(board.Black))
	b.Set(sq(3, 2), man(board.Red))
	require.False(t, b.GameOver())

	require.NoError(t, b.Apply(board.Move{From: sq(2, 1), To: sq(4, 3)}))
	require.Empty(t, b.PiecesOf(board.Red))
	require.True(t, b.GameOver())
	require.Equal(t, board.BlackWon, b.Outcome())
	winner, ok := b.Outcome().Winner()
	require.True(t, ok)
	require.Equal(t, board.Black, winner)
}

func TestOutcomeStalemateIsLoss(t *testing.T) {
	b := board.NewEmptyBoard(board.Black)
	b.Set(sq(0, 1), man(board.Black))
	b.Set(sq(1, 0), man(board.Red))
	b.Set(sq(1, 2), man(board.Red))
	b.Set(sq(2, 3), man(board.Red))

	require.False(t, b.GameOver())
	require.Empty(t, b.AllLegalMoves())
	require.Equal(t, board.RedWon, b.Outcome())
}

func TestSetCrownsManOnPromotionRow(t *testing.T) {
	b := board.NewEmptyBoard(board.Red)
	b.Set(sq(0, 1), man(board.Red))
	b.Set(sq(8, 1), man(board.Red))

	p, ok := b.PieceAt(sq(0, 1))
	require.True(t, ok)
	require.Equal(t, board.King, p.Kind)
	men, kings := b.Count(board.Red)
	require.Equal(t, 0, men)
	require.Equal(t, 1, kings)

	b.Remove(sq(0, 1))
	require.True(t, b.GameOver())
}

func TestResetIsIdempotent(t *testing.T) {
	b := multiJumpBoard()
	require.NoError(t, b.Apply(board.Move{From: sq(2, 1), To: sq(4, 3)}))

	b.Reset()
	first := b
	b.Reset()
	require.Equal(t, first, b)
	require.Equal(t, board.NewBoard(), b)
}

func TestCopyIsIndependent(t *testing.T) {
	b := board.NewBoard()
	c := b
	require.NoError(t, c.Apply(board.Move{From: sq(2, 1), To: sq(3, 0)}))

	require.Equal(t, board.Black, b.Turn())
	_, ok := b.PieceAt(sq(2, 1))
	require.True(t, ok)
}

func TestBoardString(t *testing.T) {
	b := board.NewEmptyBoard(board.Red)
	b.Set(sq(0, 1), man(board.Black))
	b.Set(sq(7, 0), king(board.Red))

	want := "red to move\n" +
		".b......\n" +
		"........\n" +
		"........\n" +
		"........\n" +
		"........\n" +
		"........\n" +
		"........\n" +
		"R.......\n"
	require.Equal(t, want, b.String())
}

// Random playouts must never break the board invariants.
func TestRandomPlayoutInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for game := 0; game < 50; game++ {
		b := board.NewBoard()
		for ply := 0; ply < 300 && b.Outcome() == board.NoOutcome; ply++ {
			moves := b.AllLegalMoves()
			m := moves[rng.Intn(len(moves))]

			blackBefore := len(b.PiecesOf(board.Black))
			redBefore := len(b.PiecesOf(board.Red))
			turnBefore := b.Turn()

			if err := b.Apply(m); err != nil {
				t.Fatalf("game %d ply %d: %v\n%s\nlegal moves:\n%s", game, ply, err, b, spew.Sdump(moves))
			}

			blackAfter := len(b.PiecesOf(board.Black))
			redAfter := len(b.PiecesOf(board.Red))
			require.LessOrEqual(t, blackAfter, blackBefore)
			require.LessOrEqual(t, redAfter, redBefore)
			require.LessOrEqual(t, blackAfter, 12)
			require.LessOrEqual(t, redAfter, 12)
			if m.IsJump() {
				require.Equal(t, 1, blackBefore+redBefore-blackAfter-redAfter)
			}

			checkInvariants(t, b, m)

			if forcedSq, forced := b.ForcedContinuation(); forced {
				require.True(t, m.IsJump())
				require.Equal(t, m.To, forcedSq)
				require.Equal(t, turnBefore, b.Turn())
			} else {
				require.Equal(t, turnBefore.Other(), b.Turn())
			}
		}
	}
}

func checkInvariants(t *testing.T, b board.Board, last board.Move) {
	t.Helper()
	for _, player := range []board.Player{board.Black, board.Red} {
		for _, s := range b.PiecesOf(player) {
			p, _ := b.PieceAt(s)
			require.True(t, s.Dark(), "piece on light square %v", s)
			if p.Kind == board.Man {
				require.NotEqual(t, player.PromotionRow(), s.Row, "uncrowned man on %v after %v\n%s", s, last, b)
			}
		}
	}
	if s, ok := b.ForcedContinuation(); ok {
		p, occupied := b.PieceAt(s)
		require.True(t, occupied, "continuation on empty %v after %v\n%s", s, last, b)
		require.Equal(t, b.Turn(), p.Owner, "continuation by %v after %v\n%s", p, last, b)
		require.True(t, b.CaptureAvailable(s), "continuation without capture after %v\n%s", last, b)
	}
}
