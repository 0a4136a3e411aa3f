package board

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCell_Add(t *testing.T) {
	tests := []struct {
		Heading  Heading
		Expected Cell
	}{
		{
			Heading:  Up,
			Expected: Cell{X: 5, Y: 4},
		},
		{
			Heading:  Down,
			Expected: Cell{X: 5, Y: 6},
		},
		{
			Heading:  Left,
			Expected: Cell{X: 4, Y: 5},
		},
		{
			Heading:  Right,
			Expected: Cell{X: 6, Y: 5},
		},
		{
			Heading:  None,
			Expected: Cell{X: 5, Y: 5},
		},
	}

	for _, test := range tests {
		c := Cell{X: 5, Y: 5}
		require.Equal(t, test.Expected, c.Add(test.Heading), "Heading: %s", test.Heading)
	}
}

func TestHeading_Reverses(t *testing.T) {
	require.True(t, Right.Reverses(Left))
	require.True(t, Up.Reverses(Down))
	require.False(t, Right.Reverses(Up))
	require.False(t, Right.Reverses(Down))
	require.False(t, Right.Reverses(Right))
	require.False(t, None.Reverses(Left), "nothing reverses a snake that is not moving")
}

func TestGrid_InBounds(t *testing.T) {
	g := Default()
	require.True(t, g.InBounds(Cell{X: 0, Y: 0}))
	require.True(t, g.InBounds(Cell{X: 19, Y: 19}))

	for _, c := range []Cell{
		{X: -1, Y: 1},
		{X: 20, Y: 1},
		{X: 1, Y: -1},
		{X: 1, Y: 20},
	} {
		require.False(t, g.InBounds(c), "cell %s", c)
	}
}

func TestGrid_Cells(t *testing.T) {
	g := Grid{N: 3}
	cells := g.Cells()
	require.Len(t, cells, 9)
	require.Equal(t, Cell{X: 0, Y: 0}, cells[0])
	require.Equal(t, Cell{X: 1, Y: 0}, cells[1])
	require.Equal(t, Cell{X: 2, Y: 2}, cells[8])
	require.Equal(t, Cell{X: 10, Y: 10}, Default().Center())
}

func TestSnake_Head(t *testing.T) {
	s := Snake{{X: 5, Y: 5}, {X: 4, Y: 5}}

	h, ok := s.Head()
	require.True(t, ok)
	require.Equal(t, Cell{X: 5, Y: 5}, h)

	_, ok = Snake{}.Head()
	require.False(t, ok)
}

func TestSnake_GrowAndDropTail(t *testing.T) {
	s := Snake{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 7, Y: 5}}

	grown := s.Grow(Cell{X: 4, Y: 5})
	require.Equal(t, Snake{{X: 4, Y: 5}, {X: 5, Y: 5}, {X: 6, Y: 5}, {X: 7, Y: 5}}, grown)
	require.Len(t, s, 3, "grow must not touch the original body")

	moved := grown.DropTail()
	require.Equal(t, Snake{{X: 4, Y: 5}, {X: 5, Y: 5}, {X: 6, Y: 5}}, moved)
	require.Empty(t, Snake{}.DropTail())
}

func TestSnake_ContainsAndDuplicates(t *testing.T) {
	s := Snake{{X: 4, Y: 4}, {X: 3, Y: 4}, {X: 3, Y: 3}}
	require.True(t, s.Contains(Cell{X: 3, Y: 3}))
	require.False(t, s.Contains(Cell{X: 4, Y: 3}))
	require.False(t, s.HasDuplicates())

	s = append(s, Cell{X: 4, Y: 4})
	require.True(t, s.HasDuplicates())
}

func TestSnake_Clone(t *testing.T) {
	s := Snake{{X: 1, Y: 1}}
	c := s.Clone()
	c[0] = Cell{X: 2, Y: 2}
	require.Equal(t, Cell{X: 1, Y: 1}, s[0])
	require.Nil(t, Snake(nil).Clone())
}
