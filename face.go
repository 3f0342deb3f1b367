package twisty

// Axis is one of the three rotation axes.
type Axis int

const (
	AxisX Axis = 0
	AxisY Axis = 1
	AxisZ Axis = 2
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "?"
	}
}

// Face identifies one of the six turnable layers of the puzzle. The
// enumeration is closed: every Face value is bound to one signed axis and
// one layer value, and no runtime validation is needed anywhere turns are
// requested.
type Face int

const (
	FaceFront  Face = 0 // +z
	FaceBack   Face = 1 // -z
	FaceLeft   Face = 2 // -x
	FaceRight  Face = 3 // +x
	FaceTop    Face = 4 // +y
	FaceBottom Face = 5 // -y
)

// Faces lists all six faces, for iteration and random draws.
var Faces = [6]Face{FaceFront, FaceBack, FaceLeft, FaceRight, FaceTop, FaceBottom}

// Axis returns the rotation axis the face turns about.
func (f Face) Axis() Axis {
	switch f {
	case FaceFront, FaceBack:
		return AxisZ
	case FaceLeft, FaceRight:
		return AxisX
	default:
		return AxisY
	}
}

// Layer returns the face's layer value (+1 or -1) on its axis.
func (f Face) Layer() int {
	switch f {
	case FaceFront, FaceRight, FaceTop:
		return 1
	default:
		return -1
	}
}

// String returns the face's single-letter name in standard notation.
func (f Face) String() string {
	switch f {
	case FaceFront:
		return "F"
	case FaceBack:
		return "B"
	case FaceLeft:
		return "L"
	case FaceRight:
		return "R"
	case FaceTop:
		return "U"
	case FaceBottom:
		return "D"
	default:
		return "?"
	}
}
