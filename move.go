package twisty

// Move is a single quarter-turn request: which face, and which way.
type Move struct {
	Face      Face
	Clockwise bool
}

// Inverse returns the move that undoes this one.
func (m Move) Inverse() Move {
	return Move{Face: m.Face, Clockwise: !m.Clockwise}
}

// String returns the move in standard notation: F for a clockwise front
// turn, F' for counter-clockwise.
func (m Move) String() string {
	if m.Clockwise {
		return m.Face.String()
	}
	return m.Face.String() + "'"
}
