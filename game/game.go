package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"checkersGo/board"
	"checkersGo/session"
)

const (
	ScreenSize  = 800
	squareSize  = ScreenSize / board.Size
	pieceRadius = 30
	crownRadius = pieceRadius / 5
)

var (
	lightTile  = color.RGBA{240, 217, 181, 255}
	darkTile   = color.RGBA{181, 136, 99, 255}
	redPiece   = color.RGBA{200, 30, 30, 255}
	blackPiece = color.RGBA{90, 90, 90, 255}
	crown      = color.RGBA{255, 203, 0, 255}
	highlight  = color.RGBA{50, 205, 50, 255}
)

type Game struct {
	session *session.Session
}

func NewGame(s *session.Session) *Game {
	return &Game{session: s}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Reset()
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.session.CycleBot()
	}

	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	if g.session.Outcome() != board.NoOutcome {
		if clicked {
			g.session.Reset()
		}
		return nil
	}

	g.session.Tick(time.Now())
	if clicked {
		g.session.Click(squareAt(ebiten.CursorPosition()))
	}
	return nil
}

// squareAt maps window coordinates to a board square, row 0 at the top.
func squareAt(x, y int) board.Square {
	if x < 0 || y < 0 {
		return board.NoSquare
	}
	return board.Square{Row: y / squareSize, Col: x / squareSize}
}

func (g *Game) Draw(screen *ebiten.Image) {
	pos := g.session.Board()
	g.drawTiles(screen)
	drawPieces(screen, &pos)

	status := "Your move"
	switch outcome := pos.Outcome(); {
	case outcome != board.NoOutcome:
		status = fmt.Sprintf("Result: %s (click to play again)", outcome)
	case g.session.Err() != nil:
		status = "Bot failed: " + g.session.Err().Error() + " ([R] restart, [B] switch)"
	case g.session.Thinking():
		status = "Bot is thinking..."
	}
	ebitenutil.DebugPrintAt(screen, status, 10, 10)
	ebitenutil.DebugPrintAt(screen, "Bot: "+g.session.Bot().Name()+"  [B] switch  [R] restart", 10, ScreenSize-20)
}

func (g *Game) drawTiles(screen *ebiten.Image) {
	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			clr := lightTile
			if (board.Square{Row: row, Col: col}).Dark() {
				clr = darkTile
			}
			vector.DrawFilledRect(screen, float32(col*squareSize), float32(row*squareSize), squareSize, squareSize, clr, false)
		}
	}
	for _, sq := range g.session.Highlights() {
		vector.StrokeRect(screen, float32(sq.Col*squareSize), float32(sq.Row*squareSize), squareSize, squareSize, 7.5, highlight, false)
	}
}

func drawPieces(screen *ebiten.Image, pos *board.Board) {
	for _, player := range []board.Player{board.Black, board.Red} {
		clr := blackPiece
		if player == board.Red {
			clr = redPiece
		}
		for _, sq := range pos.PiecesOf(player) {
			p, _ := pos.PieceAt(sq)
			cx := float32(sq.Col*squareSize + squareSize/2)
			cy := float32(sq.Row*squareSize + squareSize/2)
			vector.DrawFilledCircle(screen, cx, cy, pieceRadius, clr, true)
			if p.Kind == board.King {
				vector.DrawFilledCircle(screen, cx, cy, crownRadius, crown, true)
			}
		}
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenSize, ScreenSize
}

func Run(g *Game) error {
	ebiten.SetWindowSize(ScreenSize, ScreenSize)
	ebiten.SetWindowTitle("Checkers")
	return ebiten.RunGame(g)
}
