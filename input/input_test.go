package input

import (
	"context"
	"testing"

	"github.com/battlesnakeio/snake/board"
	termbox "github.com/nsf/termbox-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirection(t *testing.T) {
	tests := []struct {
		action Action
		want   board.Heading
		ok     bool
	}{
		{Up, board.Up, true},
		{Down, board.Down, true},
		{Left, board.Left, true},
		{Right, board.Right, true},
		{Start, board.None, false},
		{Restart, board.None, false},
		{Quit, board.None, false},
		{None, board.None, false},
	}
	for _, test := range tests {
		got, ok := Direction(test.action)
		assert.Equal(t, test.want, got, test.action.String())
		assert.Equal(t, test.ok, ok, test.action.String())
	}
}

func TestFromTermbox(t *testing.T) {
	key := func(k termbox.Key) termbox.Event {
		return termbox.Event{Type: termbox.EventKey, Key: k}
	}
	char := func(r rune) termbox.Event {
		return termbox.Event{Type: termbox.EventKey, Ch: r}
	}
	tests := []struct {
		name string
		ev   termbox.Event
		want Action
	}{
		{"arrow up", key(termbox.KeyArrowUp), Up},
		{"arrow down", key(termbox.KeyArrowDown), Down},
		{"arrow left", key(termbox.KeyArrowLeft), Left},
		{"arrow right", key(termbox.KeyArrowRight), Right},
		{"enter", key(termbox.KeyEnter), Start},
		{"space", key(termbox.KeySpace), Start},
		{"esc", key(termbox.KeyEsc), Quit},
		{"ctrl-c", key(termbox.KeyCtrlC), Quit},
		{"r", char('r'), Restart},
		{"R", char('R'), Restart},
		{"q", char('q'), Quit},
		{"x", char('x'), None},
		{"tab", key(termbox.KeyTab), None},
		{"resize", termbox.Event{Type: termbox.EventResize}, None},
		{"mouse", termbox.Event{Type: termbox.EventMouse, Key: termbox.MouseLeft}, None},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, FromTermbox(test.ev), test.name)
	}
}

func TestActionString(t *testing.T) {
	require.Equal(t, "restart", Restart.String())
	require.Equal(t, "none", Action(99).String())
}

type fakeTarget struct {
	turns    []board.Heading
	starts   int
	restarts int
	changed  bool
}

func (f *fakeTarget) Turn(h board.Heading) bool {
	f.turns = append(f.turns, h)
	return f.changed
}

func (f *fakeTarget) Start() bool {
	f.starts++
	return f.changed
}

func (f *fakeTarget) Restart(ctx context.Context) bool {
	f.restarts++
	return f.changed
}

func TestDispatch(t *testing.T) {
	f := &fakeTarget{changed: true}
	ctx := context.Background()

	require.True(t, Dispatch(ctx, f, Left))
	require.True(t, Dispatch(ctx, f, Up))
	require.True(t, Dispatch(ctx, f, Start))
	require.True(t, Dispatch(ctx, f, Restart))
	require.False(t, Dispatch(ctx, f, Quit))
	require.False(t, Dispatch(ctx, f, None))

	require.Equal(t, []board.Heading{board.Left, board.Up}, f.turns)
	require.Equal(t, 1, f.starts)
	require.Equal(t, 1, f.restarts)
}

func TestDispatchReportsUnchanged(t *testing.T) {
	f := &fakeTarget{}
	ctx := context.Background()

	for _, a := range []Action{Left, Start, Restart} {
		require.False(t, Dispatch(ctx, f, a), a.String())
	}
	require.Equal(t, []board.Heading{board.Left}, f.turns)
	require.Equal(t, 1, f.starts)
	require.Equal(t, 1, f.restarts)
}
