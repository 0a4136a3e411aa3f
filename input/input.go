// Package input turns key presses from the clients into game actions.
package input

import (
	"context"

	"github.com/battlesnakeio/snake/board"
	termbox "github.com/nsf/termbox-go"
)

// Action is something the player asked for.
type Action int

// Known actions. None is what unmapped keys turn into.
const (
	None Action = iota
	Up
	Down
	Left
	Right
	Start
	Restart
	Quit
)

var actionNames = map[Action]string{
	None:    "none",
	Up:      "up",
	Down:    "down",
	Left:    "left",
	Right:   "right",
	Start:   "start",
	Restart: "restart",
	Quit:    "quit",
}

func (a Action) String() string {
	if n, ok := actionNames[a]; ok {
		return n
	}
	return "none"
}

// Direction maps the four directional actions to their heading.
func Direction(a Action) (board.Heading, bool) {
	switch a {
	case Up:
		return board.Up, true
	case Down:
		return board.Down, true
	case Left:
		return board.Left, true
	case Right:
		return board.Right, true
	}
	return board.None, false
}

// FromTermbox maps a terminal event to an action.
func FromTermbox(ev termbox.Event) Action {
	if ev.Type != termbox.EventKey {
		return None
	}
	switch ev.Key {
	case termbox.KeyArrowUp:
		return Up
	case termbox.KeyArrowDown:
		return Down
	case termbox.KeyArrowLeft:
		return Left
	case termbox.KeyArrowRight:
		return Right
	case termbox.KeyEnter, termbox.KeySpace:
		return Start
	case termbox.KeyEsc, termbox.KeyCtrlC:
		return Quit
	}
	switch ev.Ch {
	case 'r', 'R':
		return Restart
	case 'q', 'Q':
		return Quit
	}
	return None
}

// Target is what actions are dispatched to. Each method reports whether
// the game changed.
type Target interface {
	Turn(h board.Heading) bool
	Start() bool
	Restart(ctx context.Context) bool
}

// Dispatch forwards a to t and reports whether t changed. Quit and None are
// left to the caller and never change t.
func Dispatch(ctx context.Context, t Target, a Action) bool {
	if h, ok := Direction(a); ok {
		return t.Turn(h)
	}
	switch a {
	case Start:
		return t.Start()
	case Restart:
		return t.Restart(ctx)
	}
	return false
}
