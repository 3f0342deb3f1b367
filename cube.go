package twisty

import "strings"

// Color represents a facelet color.
type Color byte

const (
	White  Color = 0 // Top face when solved (+y)
	Yellow Color = 1 // Bottom face when solved (-y)
	Green  Color = 2 // Front face when solved (+z)
	Blue   Color = 3 // Back face when solved (-z)
	Red    Color = 4 // Right face when solved (+x)
	Orange Color = 5 // Left face when solved (-x)
	Inner  Color = 6 // Inward-facing facelets
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	case Inner:
		return "."
	default:
		return "?"
	}
}

// Direction indexes the six outward directions of a cubelet. It is the
// index order of the Facelets array.
type Direction int

const (
	DirPosX Direction = 0 // +x
	DirNegX Direction = 1 // -x
	DirPosY Direction = 2 // +y
	DirNegY Direction = 3 // -y
	DirPosZ Direction = 4 // +z
	DirNegZ Direction = 5 // -z
)

// solvedColor returns the color facing a direction on a solved cube.
func solvedColor(d Direction) Color {
	switch d {
	case DirPosX:
		return Red
	case DirNegX:
		return Orange
	case DirPosY:
		return White
	case DirNegY:
		return Yellow
	case DirPosZ:
		return Green
	case DirNegZ:
		return Blue
	default:
		return Inner
	}
}

// Coord is an integer cube coordinate. At rest every component of a
// cubelet coordinate is in {-1, 0, 1}.
type Coord struct {
	X, Y, Z int
}

// Vec3 is a continuous 3D position, used while a turn is animating.
type Vec3 struct {
	X, Y, Z float64
}

// Vec returns the coordinate as a continuous vector.
func (p Coord) Vec() Vec3 {
	return Vec3{float64(p.X), float64(p.Y), float64(p.Z)}
}

// Round snaps a continuous position back to the integer grid.
func (v Vec3) Round() Coord {
	return Coord{roundUnit(v.X), roundUnit(v.Y), roundUnit(v.Z)}
}

// roundUnit rounds to the nearest integer, half away from zero.
// Mid-animation coordinates are non-integer, so layer membership must
// never compare floats exactly.
func roundUnit(f float64) int {
	if f < 0 {
		return -int(-f + 0.5)
	}
	return int(f + 0.5)
}

// Cubelet is one of the 27 unit sub-cubes composing the puzzle.
//
// ID is the cubelet's solved-state coordinate and never changes. Position
// is the current location: equal to a grid coordinate at rest, continuous
// while the cubelet's layer is animating. Facelets holds one color per
// outward direction, indexed by Direction. Rotation is the transient
// per-axis rotation angle in radians, zero whenever the cubelet is at rest.
type Cubelet struct {
	ID       Coord
	Position Vec3
	Facelets [6]Color
	Rotation Vec3
}

// RestCoord returns the cubelet's position snapped to the integer grid.
func (cl *Cubelet) RestCoord() Coord {
	return cl.Position.Round()
}

// ColorFacing returns the color currently facing the given direction.
func (cl *Cubelet) ColorFacing(d Direction) Color {
	return cl.Facelets[d]
}

// solvedFacelets returns the facelet colors of the cubelet at p on a
// solved cube: axis-aligned outward directions take the face color,
// everything else is Inner.
func solvedFacelets(p Coord) [6]Color {
	f := [6]Color{Inner, Inner, Inner, Inner, Inner, Inner}
	switch p.X {
	case 1:
		f[DirPosX] = solvedColor(DirPosX)
	case -1:
		f[DirNegX] = solvedColor(DirNegX)
	}
	switch p.Y {
	case 1:
		f[DirPosY] = solvedColor(DirPosY)
	case -1:
		f[DirNegY] = solvedColor(DirNegY)
	}
	switch p.Z {
	case 1:
		f[DirPosZ] = solvedColor(DirPosZ)
	case -1:
		f[DirNegZ] = solvedColor(DirNegZ)
	}
	return f
}

// Cube is the full 27-cubelet state model.
//
// Exactly one cubelet occupies each grid coordinate in {-1,0,1}^3 at rest.
// The center cubelet (0,0,0) is never selected by any face turn. Committed
// state is mutated only by completed turns; animation midpoints are
// transient and never treated as canonical.
type Cube struct {
	cubelets []*Cubelet
}

// NewCube creates a solved cube.
func NewCube() *Cube {
	c := &Cube{}
	c.Reset()
	return c
}

// Reset reinitializes every cubelet to the solved configuration. It
// replaces the cubelet set wholesale; pointers obtained before the reset
// are stale afterwards.
func (c *Cube) Reset() {
	c.cubelets = make([]*Cubelet, 0, 27)
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			for z := -1; z <= 1; z++ {
				p := Coord{x, y, z}
				c.cubelets = append(c.cubelets, &Cubelet{
					ID:       p,
					Position: p.Vec(),
					Facelets: solvedFacelets(p),
				})
			}
		}
	}
}

// Cubelets returns the cubelet read-model for renderers. The slice is
// shared with the engine; callers must not mutate it.
func (c *Cube) Cubelets() []*Cubelet {
	return c.cubelets
}

// At returns the cubelet currently resting at the given coordinate.
func (c *Cube) At(p Coord) *Cubelet {
	for _, cl := range c.cubelets {
		if cl.RestCoord() == p {
			return cl
		}
	}
	return nil
}

// Layer returns the cubelets on the given face's layer: those whose
// rounded coordinate on the face's axis equals the face's layer value.
func (c *Cube) Layer(f Face) []*Cubelet {
	axis, layer := f.Axis(), f.Layer()
	selected := make([]*Cubelet, 0, 9)
	for _, cl := range c.cubelets {
		if axisCoord(cl.RestCoord(), axis) == layer {
			selected = append(selected, cl)
		}
	}
	return selected
}

// axisCoord extracts one component of a coordinate.
func axisCoord(p Coord, a Axis) int {
	switch a {
	case AxisX:
		return p.X
	case AxisY:
		return p.Y
	default:
		return p.Z
	}
}

// IsSolved returns true if every outward-facing color matches the solved
// color of its direction.
func (c *Cube) IsSolved() bool {
	for _, cl := range c.cubelets {
		p := cl.RestCoord()
		for _, d := range outwardDirections(p) {
			if cl.Facelets[d] != solvedColor(d) {
				return false
			}
		}
	}
	return true
}

// outwardDirections returns the directions in which a cubelet at p faces
// the outside of the cube.
func outwardDirections(p Coord) []Direction {
	dirs := make([]Direction, 0, 3)
	switch p.X {
	case 1:
		dirs = append(dirs, DirPosX)
	case -1:
		dirs = append(dirs, DirNegX)
	}
	switch p.Y {
	case 1:
		dirs = append(dirs, DirPosY)
	case -1:
		dirs = append(dirs, DirNegY)
	}
	switch p.Z {
	case 1:
		dirs = append(dirs, DirPosZ)
	case -1:
		dirs = append(dirs, DirNegZ)
	}
	return dirs
}

// Sticker returns the color shown at one cell of a face's 3x3 grid, rows
// and columns in the standard net orientation (see String).
func (c *Cube) Sticker(f Face, row, col int) Color {
	p, d := stickerCell(f, row, col)
	cl := c.At(p)
	if cl == nil {
		return Inner
	}
	return cl.ColorFacing(d)
}

// stickerCell maps a face grid cell to the grid coordinate holding it and
// the outward direction of the sticker.
func stickerCell(f Face, row, col int) (Coord, Direction) {
	switch f {
	case FaceTop:
		return Coord{col - 1, 1, row - 1}, DirPosY
	case FaceBottom:
		return Coord{col - 1, -1, 1 - row}, DirNegY
	case FaceFront:
		return Coord{col - 1, 1 - row, 1}, DirPosZ
	case FaceBack:
		return Coord{1 - col, 1 - row, -1}, DirNegZ
	case FaceRight:
		return Coord{1, 1 - row, 1 - col}, DirPosX
	default: // FaceLeft
		return Coord{-1, 1 - row, col - 1}, DirNegX
	}
}

// String returns a flattened net of the cube:
//
//	      U
//	    L F R B
//	      D
func (c *Cube) String() string {
	var b strings.Builder

	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(c.Sticker(FaceTop, row, col).String() + " ")
		}
		b.WriteString("\n")
	}

	for row := 0; row < 3; row++ {
		for _, f := range []Face{FaceLeft, FaceFront, FaceRight, FaceBack} {
			for col := 0; col < 3; col++ {
				b.WriteString(c.Sticker(f, row, col).String() + " ")
			}
		}
		b.WriteString("\n")
	}

	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(c.Sticker(FaceBottom, row, col).String() + " ")
		}
		b.WriteString("\n")
	}

	return b.String()
}
