package snake

import (
	"fmt"

	"github.com/vovakirdan/lemon-snake/internal/core"
)

const hudHeight = 1

// layout is where the board lands on a screen of a given size.
type layout struct {
	board      core.Rect // Frame around the grid
	fits       bool
	showDigits bool
	digitsY    int
}

func (g *Game) layoutFor(dst *core.Screen) layout {
	boardW := g.grid.Width*pixelCols + 2
	boardH := g.grid.Height + 2
	l := layout{
		board: core.NewRect((dst.Width()-boardW)/2, hudHeight, boardW, boardH),
		fits:  dst.Width() >= boardW && dst.Height() >= hudHeight+boardH,
	}
	l.digitsY = l.board.Bottom() + 1
	l.showDigits = dst.Height() >= l.digitsY+glyphHeight
	return l
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	l := g.layoutFor(dst)
	if !l.fits {
		renderOverlay(dst, dst.Bounds(),
			overlayLine{"Window too small", core.ColorYellow},
			overlayLine{fmt.Sprintf("Need %dx%d", l.board.W, hudHeight+l.board.H), core.ColorDefault},
		)
		return
	}

	dst.DrawBox(l.board, core.ColorGray)
	inner := core.NewRect(l.board.X+1, l.board.Y+1, l.board.W-2, l.board.H-2)

	if g.GameOver() {
		g.renderGameOver(dst, inner)
		return
	}

	g.renderCell(dst, inner, g.food, core.ColorBrightYellow)
	body := g.snake.Cells()
	for i := len(body) - 1; i >= 0; i-- {
		color := core.ColorGreen
		if i == 0 {
			color = core.ColorBrightGreen
		}
		g.renderCell(dst, inner, body[i], color)
	}

	if l.showDigits {
		score := g.Score()
		x := l.board.X + (l.board.W-digitsWidth(score))/2
		drawDigits(dst, x, l.digitsY, score, core.ColorBrightWhite)
	}

	if g.Paused() {
		renderOverlay(dst, inner,
			overlayLine{"PAUSED", core.ColorBrightYellow},
			overlayLine{"-PRESS P TO RESUME-", core.ColorWhite},
		)
	}
}

// renderHUD draws the top status line.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s  Score: %d  Best: %s", g.variant.Title, g.Score(), highScoreText(g.highScore))
	dst.DrawText(0, 0, hud, core.ColorDefault)
}

// renderCell paints one grid cell as a solid block.
func (g *Game) renderCell(dst *core.Screen, inner core.Rect, c Cell, color core.Color) {
	if !g.grid.Contains(c) {
		return
	}
	x := inner.X + c.X*pixelCols
	for k := range pixelCols {
		dst.SetColored(x+k, inner.Y+c.Y, '█', color)
	}
}

// renderGameOver replaces the board with the end-of-round banner.
func (g *Game) renderGameOver(dst *core.Screen, inner core.Rect) {
	center := func(y int, text string, c core.Color) {
		x := inner.X + (inner.W-len([]rune(text)))/2
		dst.DrawText(x, y, text, c)
	}
	center(inner.Y+inner.H/8, "HIGH SCORE: "+highScoreText(g.highScore), core.ColorWhite)
	center(inner.Y+inner.H/2, "GAME OVER", core.ColorBrightRed)
	center(inner.Y+inner.H/2+1, fmt.Sprintf("SCORE: %d", g.Score()), core.ColorWhite)
	center(inner.Y+inner.H*5/8+1, "-PRESS R TO RESTART-", core.ColorWhite)
}

func highScoreText(hs int) string {
	if hs < 0 {
		return "---"
	}
	return fmt.Sprintf("%d", hs)
}

type overlayLine struct {
	text  string
	color core.Color
}

// renderOverlay draws a framed message box centered in area.
func renderOverlay(dst *core.Screen, area core.Rect, lines ...overlayLine) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len([]rune(l.text)))
	}
	boxW := maxLen + 4
	boxH := len(lines)*2 + 1
	cx, cy := area.Center()
	box := core.NewRect(cx-boxW/2, cy-boxH/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorGray)
	for i, l := range lines {
		x := box.X + (box.W-len([]rune(l.text)))/2
		dst.DrawText(x, box.Y+1+i*2, l.text, l.color)
	}
}
