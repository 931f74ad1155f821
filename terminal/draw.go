package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"graphpad/geometry"
)

// Grid maps terminal cells to render-target coordinates. Each cell stands for
// a CellWidth x CellHeight rectangle and is addressed by its center.
type Grid struct {
	CellWidth  float64
	CellHeight float64
}

// ToPoint returns the render-target coordinates of the center of cell (cx, cy).
func (g Grid) ToPoint(cx, cy int) (x, y float64) {
	return (float64(cx) + 0.5) * g.CellWidth, (float64(cy) + 0.5) * g.CellHeight
}

// ToCell returns the cell containing (x, y).
func (g Grid) ToCell(x, y float64) (cx, cy int) {
	return int(math.Floor(x / g.CellWidth)), int(math.Floor(y / g.CellHeight))
}

// setClipped writes a cell, ignoring positions off screen.
func setClipped(s tcell.Screen, x, y int, r rune, style tcell.Style) {
	w, h := s.Size()
	if x < 0 || x >= w || y < 0 || y >= h {
		return
	}
	s.SetContent(x, y, r, nil, style)
}

// drawLine draws from (x1,y1) to (x2,y2) with Bresenham's algorithm.
func drawLine(s tcell.Screen, x1, y1, x2, y2 int, r rune, style tcell.Style) {
	dx := geometry.Abs(x2 - x1)
	dy := geometry.Abs(y2 - y1)

	x, y := x1, y1

	xInc := 1
	if x1 > x2 {
		xInc = -1
	}
	yInc := 1
	if y1 > y2 {
		yInc = -1
	}

	if dx > dy {
		err := dx / 2
		for x != x2 {
			setClipped(s, x, y, r, style)
			err -= dy
			if err < 0 {
				y += yInc
				err += dx
			}
			x += xInc
		}
	} else {
		err := dy / 2
		for y != y2 {
			setClipped(s, x, y, r, style)
			err -= dx
			if err < 0 {
				x += xInc
				err += dy
			}
			y += yInc
		}
	}

	setClipped(s, x2, y2, r, style)
}

// drawText writes text starting at (x, y) and returns the column after it.
func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		width := runewidth.RuneWidth(r)
		if width == 0 {
			continue
		}
		setClipped(s, x, y, r, style)
		x += width
	}
	return x
}

// drawTextCentered writes text centered on column cx.
func drawTextCentered(s tcell.Screen, cx, y int, text string, style tcell.Style) {
	drawText(s, cx-runewidth.StringWidth(text)/2, y, text, style)
}
