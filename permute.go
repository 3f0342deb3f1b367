package twisty

import "math"

// The permutation engine: the discrete quarter-turn transforms applied
// when a turn commits. Positions rotate by an exact integer rotation
// matrix; facelet colors follow a paired 4-cycle of the directions
// perpendicular to the axis. Four applications in the same direction are
// the identity, with no floating-point drift.

// rotateCoord rotates a grid coordinate 90 degrees about an axis.
// Clockwise corresponds to a positive rotation angle (see rotateVec).
func rotateCoord(p Coord, axis Axis, clockwise bool) Coord {
	switch axis {
	case AxisX:
		if clockwise {
			return Coord{p.X, -p.Z, p.Y}
		}
		return Coord{p.X, p.Z, -p.Y}
	case AxisY:
		if clockwise {
			return Coord{p.Z, p.Y, -p.X}
		}
		return Coord{-p.Z, p.Y, p.X}
	default: // AxisZ
		if clockwise {
			return Coord{-p.Y, p.X, p.Z}
		}
		return Coord{p.Y, -p.X, p.Z}
	}
}

// faceletCycles holds, per axis, the 4-cycle of directions a clockwise
// turn carries each facelet through. Each entry's color moves to the next
// entry; the two directions parallel to the axis are untouched.
//
// The y-axis cycle is tabulated in the top-view visual sense, which is
// opposite the rotation sign for that axis; faceletTurnDirection flips
// the flag for vertical faces to compensate.
var faceletCycles = [3][4]Direction{
	AxisX: {DirPosY, DirPosZ, DirNegY, DirNegZ},
	AxisY: {DirPosX, DirPosZ, DirNegX, DirNegZ},
	AxisZ: {DirPosX, DirPosY, DirNegX, DirNegY},
}

// rotateFacelets returns the facelet array after a quarter turn about an
// axis, cycling the four perpendicular directions.
func rotateFacelets(f [6]Color, axis Axis, clockwise bool) [6]Color {
	cyc := faceletCycles[axis]
	out := f
	for i, d := range cyc {
		if clockwise {
			out[cyc[(i+1)%4]] = f[d]
		} else {
			out[cyc[(i+3)%4]] = f[d]
		}
	}
	return out
}

// faceletTurnDirection maps a face turn's clockwise flag to the direction
// passed to rotateFacelets. Top and bottom invert: their cycle table is in
// the visual sense, so the flag flips to keep committed colors consistent
// with the rotation the animation shows.
func faceletTurnDirection(f Face, clockwise bool) bool {
	if f.Axis() == AxisY {
		return !clockwise
	}
	return clockwise
}

// rotateVec rotates a continuous position about an axis by angle radians.
// At +pi/2 this lands exactly on the clockwise rotateCoord result; the
// animator uses it for the interpolated midpoints.
func rotateVec(v Vec3, axis Axis, angle float64) Vec3 {
	s, c := math.Sin(angle), math.Cos(angle)
	switch axis {
	case AxisX:
		return Vec3{v.X, v.Y*c - v.Z*s, v.Y*s + v.Z*c}
	case AxisY:
		return Vec3{v.X*c + v.Z*s, v.Y, -v.X*s + v.Z*c}
	default: // AxisZ
		return Vec3{v.X*c - v.Y*s, v.X*s + v.Y*c, v.Z}
	}
}
