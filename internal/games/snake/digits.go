package snake

import (
	"strconv"

	"github.com/vovakirdan/lemon-snake/internal/core"
)

// Block digits used for the score panel, 3 pixels wide and 5 tall.
var digitGlyphs = [10][5]string{
	{"###", "#.#", "#.#", "#.#", "###"},
	{".#.", ".#.", ".#.", ".#.", ".#."},
	{"###", "..#", "###", "#..", "###"},
	{"###", "..#", ".##", "..#", "###"},
	{"#.#", "#.#", "###", "..#", "..#"},
	{"###", "#..", "###", "..#", "###"},
	{"###", "#..", "###", "#.#", "###"},
	{"###", "..#", "..#", "..#", "..#"},
	{"###", "#.#", "###", "#.#", "###"},
	{"###", "#.#", "###", "..#", "..#"},
}

const (
	glyphHeight = 5
	glyphWidth  = 3
	pixelCols   = 2 // terminal columns per pixel, keeps pixels roughly square
	glyphGap    = 1 // blank pixels between digits
)

// digitsWidth returns the rendered width in columns of n as block digits.
func digitsWidth(n int) int {
	count := len(strconv.Itoa(n))
	return (count*glyphWidth + (count-1)*glyphGap) * pixelCols
}

// drawDigits renders n as block digits with its top-left corner at (x, y).
func drawDigits(dst *core.Screen, x, y, n int, c core.Color) {
	for _, ch := range strconv.Itoa(n) {
		if ch < '0' || ch > '9' {
			continue
		}
		glyph := digitGlyphs[ch-'0']
		for row, line := range glyph {
			for col, px := range line {
				if px != '#' {
					continue
				}
				for k := range pixelCols {
					dst.SetColored(x+col*pixelCols+k, y+row, '█', c)
				}
			}
		}
		x += (glyphWidth + glyphGap) * pixelCols
	}
}
