package twisty

import (
	"math"
	"time"
)

// DefaultTurnDuration is the wall-clock length of one animated quarter turn.
const DefaultTurnDuration = 500 * time.Millisecond

// quarterTurn is the total sweep of one turn in radians, signed by the
// clockwise flag when animating.
const quarterTurn = math.Pi / 2

// turnAnimator drives a single face turn from 0 to 90 degrees over
// wall-clock time.
//
// It is a two-state machine, Idle and Animating, advanced only by tick.
// While animating it interpolates the selected cubelets' positions with
// the continuous rotation matrix; when progress reaches 1 it commits the
// discrete position and facelet permutations, so repeated turns never
// accumulate floating-point drift. A start request while a turn is in
// flight is a silent no-op: at most one turn is in flight globally.
type turnAnimator struct {
	cube     *Cube
	duration time.Duration

	active    bool
	face      Face
	clockwise bool
	startedAt time.Time
	selected  []*Cubelet
	origins   []Coord

	// onCommit fires after a turn's permutation has been applied.
	onCommit func(Move)
}

func newTurnAnimator(cube *Cube, duration time.Duration) *turnAnimator {
	return &turnAnimator{cube: cube, duration: duration}
}

// start begins animating a turn. It reports false, changing nothing, if a
// turn is already in flight.
func (a *turnAnimator) start(face Face, clockwise bool, now time.Time) bool {
	if a.active {
		return false
	}

	a.selected = a.cube.Layer(face)
	a.origins = make([]Coord, len(a.selected))
	for i, cl := range a.selected {
		a.origins[i] = cl.RestCoord()
	}

	a.active = true
	a.face = face
	a.clockwise = clockwise
	a.startedAt = now
	return true
}

// tick advances the animation to the given timestamp.
func (a *turnAnimator) tick(now time.Time) {
	if !a.active {
		return
	}

	progress := float64(now.Sub(a.startedAt)) / float64(a.duration)
	if progress < 0 {
		progress = 0
	}
	if progress >= 1 {
		a.commit()
		return
	}

	sweep := quarterTurn
	if !a.clockwise {
		sweep = -quarterTurn
	}
	angle := sweep * easeOutCubic(progress)

	axis := a.face.Axis()
	for i, cl := range a.selected {
		cl.Position = rotateVec(a.origins[i].Vec(), axis, angle)
		cl.Rotation = axisAngle(axis, angle)
	}
}

// commit applies the exact quarter-turn permutation to the selected layer,
// clears transient rotation, and returns to idle.
func (a *turnAnimator) commit() {
	axis := a.face.Axis()
	colorwise := faceletTurnDirection(a.face, a.clockwise)
	for i, cl := range a.selected {
		cl.Position = rotateCoord(a.origins[i], axis, a.clockwise).Vec()
		cl.Facelets = rotateFacelets(cl.Facelets, axis, colorwise)
		cl.Rotation = Vec3{}
	}

	move := Move{Face: a.face, Clockwise: a.clockwise}
	a.reset()
	if a.onCommit != nil {
		a.onCommit(move)
	}
}

// cancel abandons an in-flight turn without committing it, restoring the
// selected cubelets to their pre-turn rest state.
func (a *turnAnimator) cancel() {
	if !a.active {
		return
	}
	for i, cl := range a.selected {
		cl.Position = a.origins[i].Vec()
		cl.Rotation = Vec3{}
	}
	a.reset()
}

func (a *turnAnimator) reset() {
	a.active = false
	a.selected = nil
	a.origins = nil
}

// animating reports whether a turn is in flight.
func (a *turnAnimator) animating() bool {
	return a.active
}

// easeOutCubic maps linear progress in [0,1] to eased progress: fast
// start, gentle settle.
func easeOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// axisAngle returns a rotation vector with a single non-zero component.
func axisAngle(a Axis, angle float64) Vec3 {
	switch a {
	case AxisX:
		return Vec3{X: angle}
	case AxisY:
		return Vec3{Y: angle}
	default:
		return Vec3{Z: angle}
	}
}
