// Package render draws game snapshots, either into terminal cells or into a
// raster image.
package render

import (
	"fmt"

	"github.com/battlesnakeio/snake/board"
	"github.com/battlesnakeio/snake/rules"
	runewidth "github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
)

const (
	defaultColor = termbox.ColorDefault
	bgColor      = termbox.ColorDefault
	gridColor    = termbox.ColorBlack | termbox.AttrBold
	headColor    = termbox.ColorGreen | termbox.AttrBold
	bodyColor    = termbox.ColorGreen
	foodColor    = termbox.ColorRed
	scoreColor   = termbox.ColorYellow
	overColor    = termbox.ColorRed | termbox.AttrBold
)

// Screen is the subset of termbox the terminal renderer draws through.
type Screen interface {
	SetCell(x, y int, ch rune, fg, bg termbox.Attribute)
	Size() (w, h int)
	Clear(fg, bg termbox.Attribute) error
	Flush() error
}

type termboxScreen struct{}

// TermboxScreen draws straight to the terminal. termbox must be initialised.
func TermboxScreen() Screen {
	return termboxScreen{}
}

func (termboxScreen) SetCell(x, y int, ch rune, fg, bg termbox.Attribute) {
	termbox.SetCell(x, y, ch, fg, bg)
}

func (termboxScreen) Size() (int, int) {
	return termbox.Size()
}

func (termboxScreen) Clear(fg, bg termbox.Attribute) error {
	return termbox.Clear(fg, bg)
}

func (termboxScreen) Flush() error {
	return termbox.Flush()
}

// Terminal paints snapshots into a character grid. Every board cell takes
// two columns so the board looks square.
type Terminal struct {
	Screen Screen
	Grid   board.Grid
	Left   int
	Top    int
}

// NewTerminal returns a renderer for grid drawing to s.
func NewTerminal(s Screen, grid board.Grid) *Terminal {
	return &Terminal{Screen: s, Grid: grid, Left: 2, Top: 2}
}

// Draw paints st and flushes the screen.
func (t *Terminal) Draw(st rules.GameState) error {
	if err := t.Screen.Clear(defaultColor, bgColor); err != nil {
		return err
	}

	t.renderTitle(st)
	t.renderBoard()
	t.renderFood(st.Food)
	t.renderSnake(st.Snake)
	t.renderStatus(st)

	return t.Screen.Flush()
}

// cell returns the screen position of the left column of c.
func (t *Terminal) cell(c board.Cell) (int, int) {
	return t.Left + 2*c.X, t.Top + 1 + c.Y
}

func (t *Terminal) width() int  { return 2 * t.Grid.N }
func (t *Terminal) bottom() int { return t.Top + t.Grid.N + 1 }

func (t *Terminal) renderTitle(st rules.GameState) {
	t.print(t.Left, t.Top-1, defaultColor, bgColor, "Snake!")
	score := fmt.Sprintf("Score %d  High %d", st.Score, st.HighScore)
	t.print(t.Left+t.width()-runewidth.StringWidth(score), t.Top-1, scoreColor, bgColor, score)
}

func (t *Terminal) renderBoard() {
	left, right, bottom := t.Left-1, t.Left+t.width(), t.bottom()
	for y := t.Top + 1; y < bottom; y++ {
		t.Screen.SetCell(left, y, '│', defaultColor, bgColor)
		t.Screen.SetCell(right, y, '│', defaultColor, bgColor)
	}
	t.Screen.SetCell(left, t.Top, '┌', defaultColor, bgColor)
	t.Screen.SetCell(left, bottom, '└', defaultColor, bgColor)
	t.Screen.SetCell(right, t.Top, '┐', defaultColor, bgColor)
	t.Screen.SetCell(right, bottom, '┘', defaultColor, bgColor)

	t.fill(t.Left, t.Top, t.width(), 1, '─', defaultColor)
	t.fill(t.Left, bottom, t.width(), 1, '─', defaultColor)

	for _, c := range t.Grid.Cells() {
		x, y := t.cell(c)
		t.Screen.SetCell(x, y, '·', gridColor, bgColor)
	}
}

func (t *Terminal) renderSnake(s board.Snake) {
	for i := len(s) - 1; i >= 0; i-- {
		if !t.Grid.InBounds(s[i]) {
			continue
		}
		x, y := t.cell(s[i])
		if i == 0 {
			t.Screen.SetCell(x, y, '@', headColor, bgColor)
			t.Screen.SetCell(x+1, y, ' ', bgColor, bgColor)
			continue
		}
		t.Screen.SetCell(x, y, ' ', bodyColor, bodyColor)
		t.Screen.SetCell(x+1, y, ' ', bodyColor, bodyColor)
	}
}

func (t *Terminal) renderFood(food board.Cell) {
	x, y := t.cell(food)
	t.Screen.SetCell(x, y, '●', foodColor, bgColor)
}

func (t *Terminal) renderStatus(st rules.GameState) {
	var (
		msg = "arrows steer, q quits"
		fg  = defaultColor
	)
	switch st.Status {
	case rules.StatusIdle:
		msg = "press enter to start"
	case rules.StatusGameOver:
		cause := ""
		if st.Death != nil {
			cause = " (" + st.Death.Cause + ")"
		}
		msg = fmt.Sprintf("game over%s, scored %d, press r to restart", cause, st.Score)
		fg = overColor
	}
	t.print(t.Left, t.bottom()+1, fg, bgColor, msg)
}

func (t *Terminal) fill(x, y, w, h int, ch rune, fg termbox.Attribute) {
	for ly := 0; ly < h; ly++ {
		for lx := 0; lx < w; lx++ {
			t.Screen.SetCell(x+lx, y+ly, ch, fg, bgColor)
		}
	}
}

func (t *Terminal) print(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		t.Screen.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}
