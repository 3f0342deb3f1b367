package twisty

import (
	"math"
	"testing"
	"time"
)

func TestAnimatorStartSelectsLayer(t *testing.T) {
	cube := NewCube()
	a := newTurnAnimator(cube, DefaultTurnDuration)

	start := time.Unix(0, 0)
	if !a.start(FaceFront, true, start) {
		t.Fatal("start on an idle animator should be accepted")
	}
	if !a.animating() {
		t.Error("animator should be animating after start")
	}
	if len(a.selected) != 9 {
		t.Errorf("front turn should select 9 cubelets, got %d", len(a.selected))
	}
}

func TestAnimatorRejectsStartWhileAnimating(t *testing.T) {
	cube := NewCube()
	a := newTurnAnimator(cube, DefaultTurnDuration)

	start := time.Unix(0, 0)
	a.start(FaceFront, true, start)
	if a.start(FaceRight, true, start) {
		t.Error("start during an in-flight turn should be a silent no-op")
	}
	if a.face != FaceFront {
		t.Error("rejected start must not replace the in-flight turn")
	}
}

func TestAnimatorMidpointInterpolates(t *testing.T) {
	cube := NewCube()
	a := newTurnAnimator(cube, DefaultTurnDuration)

	start := time.Unix(0, 0)
	a.start(FaceFront, true, start)
	a.tick(start.Add(DefaultTurnDuration / 2))

	if !a.animating() {
		t.Fatal("turn should still be in flight at the midpoint")
	}

	cl := a.selected[0]
	eased := easeOutCubic(0.5)
	wantAngle := quarterTurn * eased
	if math.Abs(cl.Rotation.Z-wantAngle) > 1e-9 {
		t.Errorf("transient rotation on z: got %v, want %v", cl.Rotation.Z, wantAngle)
	}
	if cl.Rotation.X != 0 || cl.Rotation.Y != 0 {
		t.Error("transient rotation should only be set on the turn axis")
	}

	// Corner cubelets are off-grid mid-turn.
	moved := false
	for _, sel := range a.selected {
		frac := sel.Position.X - math.Trunc(sel.Position.X)
		if math.Abs(frac) > 1e-6 {
			moved = true
		}
	}
	if !moved {
		t.Error("midpoint positions should be continuously interpolated, not snapped")
	}
}

func TestAnimatorCommitSnapsToGrid(t *testing.T) {
	cube := NewCube()
	a := newTurnAnimator(cube, DefaultTurnDuration)

	start := time.Unix(0, 0)
	a.start(FaceFront, true, start)
	a.tick(start.Add(DefaultTurnDuration / 3))
	a.tick(start.Add(DefaultTurnDuration))

	if a.animating() {
		t.Error("animator should be idle after the turn commits")
	}
	for _, cl := range cube.Cubelets() {
		p := cl.Position
		if p.X != math.Trunc(p.X) || p.Y != math.Trunc(p.Y) || p.Z != math.Trunc(p.Z) {
			t.Errorf("cubelet %v position %v should be exactly integral after commit", cl.ID, p)
		}
		if cl.Rotation != (Vec3{}) {
			t.Errorf("cubelet %v should have zero transient rotation after commit", cl.ID)
		}
	}
}

func TestAnimatorCommitMatchesDiscreteTransform(t *testing.T) {
	cube := NewCube()
	a := newTurnAnimator(cube, DefaultTurnDuration)

	// Pick the front-top-right corner and follow it through a front turn.
	cl := cube.At(Coord{1, 1, 1})
	wantPos := rotateCoord(Coord{1, 1, 1}, AxisZ, true)
	wantFacelets := rotateFacelets(cl.Facelets, AxisZ, true)

	start := time.Unix(0, 0)
	a.start(FaceFront, true, start)
	a.tick(start.Add(DefaultTurnDuration))

	if got := cl.RestCoord(); got != wantPos {
		t.Errorf("corner moved to %v, want %v", got, wantPos)
	}
	if cl.Facelets != wantFacelets {
		t.Errorf("corner facelets %v, want %v", cl.Facelets, wantFacelets)
	}
}

func TestAnimatorCommitCallback(t *testing.T) {
	cube := NewCube()
	a := newTurnAnimator(cube, DefaultTurnDuration)

	var committed []Move
	a.onCommit = func(m Move) { committed = append(committed, m) }

	start := time.Unix(0, 0)
	a.start(FaceRight, false, start)
	a.tick(start.Add(DefaultTurnDuration / 2))
	if len(committed) != 0 {
		t.Error("callback must not fire before the turn commits")
	}
	a.tick(start.Add(DefaultTurnDuration))
	if len(committed) != 1 || committed[0] != (Move{Face: FaceRight, Clockwise: false}) {
		t.Errorf("expected one R' commit, got %v", committed)
	}
}

func TestAnimatorLateTickStillCommitsExactly(t *testing.T) {
	// A stalled host may deliver the next tick long after the turn's
	// deadline; the committed state must be the exact quarter turn.
	cube := NewCube()
	a := newTurnAnimator(cube, DefaultTurnDuration)

	start := time.Unix(0, 0)
	a.start(FaceTop, true, start)
	a.tick(start.Add(10 * time.Second))

	if a.animating() {
		t.Error("animator should be idle after a late tick")
	}
	for i := 0; i < 3; i++ {
		a.start(FaceTop, true, start)
		a.tick(start.Add(DefaultTurnDuration))
	}
	if !cube.IsSolved() {
		t.Error("four top turns should restore the solved state")
	}
}

func TestAnimatorCancelRestoresRestState(t *testing.T) {
	cube := NewCube()
	a := newTurnAnimator(cube, DefaultTurnDuration)

	start := time.Unix(0, 0)
	a.start(FaceFront, true, start)
	a.tick(start.Add(DefaultTurnDuration / 2))
	a.cancel()

	if a.animating() {
		t.Error("animator should be idle after cancel")
	}
	if !cube.IsSolved() {
		t.Error("cancel should restore the pre-turn state, not commit")
	}
	for _, cl := range cube.Cubelets() {
		if cl.Rotation != (Vec3{}) {
			t.Errorf("cubelet %v should have zero transient rotation after cancel", cl.ID)
		}
	}
}
