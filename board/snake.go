package board

// Snake is the ordered list of cells the snake occupies, head first.
type Snake []Cell

// Head returns the first cell of the body. ok is false for an empty snake.
func (s Snake) Head() (Cell, bool) {
	if len(s) == 0 {
		return Cell{}, false
	}
	return s[0], true
}

// Contains checks whether c is any cell of the body, tail included.
func (s Snake) Contains(c Cell) bool {
	for _, b := range s {
		if b == c {
			return true
		}
	}
	return false
}

// Grow prepends head to the body without removing anything, the tail is
// dropped separately once it is known whether the snake ate.
func (s Snake) Grow(head Cell) Snake {
	next := make(Snake, 0, len(s)+1)
	next = append(next, head)
	return append(next, s...)
}

// DropTail removes the last cell of the body.
func (s Snake) DropTail() Snake {
	if len(s) == 0 {
		return s
	}
	return s[:len(s)-1]
}

// Clone returns a copy that shares no memory with s.
func (s Snake) Clone() Snake {
	if s == nil {
		return nil
	}
	out := make(Snake, len(s))
	copy(out, s)
	return out
}

// HasDuplicates reports whether any cell appears twice in the body.
func (s Snake) HasDuplicates() bool {
	seen := make(map[Cell]struct{}, len(s))
	for _, c := range s {
		if _, ok := seen[c]; ok {
			return true
		}
		seen[c] = struct{}{}
	}
	return false
}
