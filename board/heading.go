package board

// Heading is the direction the snake travels, as a unit vector. The zero
// value is None, the heading before the first start.
type Heading struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Headings the snake may travel in. Y grows downwards.
var (
	None  = Heading{}
	Up    = Heading{X: 0, Y: -1}
	Down  = Heading{X: 0, Y: 1}
	Left  = Heading{X: -1, Y: 0}
	Right = Heading{X: 1, Y: 0}
)

// IsNone reports whether h is the zero vector.
func (h Heading) IsNone() bool {
	return h == None
}

// Opposite returns the heading pointing the other way.
func (h Heading) Opposite() Heading {
	return Heading{X: -h.X, Y: -h.Y}
}

// Reverses reports whether turning from h to next would send the snake
// straight back into its own neck.
func (h Heading) Reverses(next Heading) bool {
	return !h.IsNone() && next == h.Opposite()
}

func (h Heading) String() string {
	switch h {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case None:
		return "none"
	}
	return "invalid"
}
