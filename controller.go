package twisty

import (
	"math/rand"
	"time"
)

// Controller is the engine's command/query boundary.
//
// Construct one Controller and pass it by reference to both the renderer
// and the input layer; the engine keeps no ambient global state. All
// methods must be called from a single control flow: the host drives the
// engine by calling Tick from its frame loop or timer, and every busy-state
// rejection is a silent no-op rather than an error.
type Controller struct {
	cube  *Cube
	anim  *turnAnimator
	scram *scrambler

	clock         func() time.Time
	shuffleLength int

	recordHistory bool
	history       []Move
	onTurn        func(Move)
}

// New creates a controller over a freshly solved cube.
func New(opts ...Option) *Controller {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	src := cfg.randSource
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}

	cube := NewCube()
	c := &Controller{
		cube:          cube,
		anim:          newTurnAnimator(cube, cfg.turnDuration),
		scram:         newScrambler(rand.New(src), cfg.shuffleInterval),
		clock:         cfg.clock,
		shuffleLength: cfg.shuffleLength,
		recordHistory: cfg.moveHistory,
	}
	c.anim.onCommit = c.committed
	return c
}

// Cube returns the read-model the renderer polls every frame.
func (c *Controller) Cube() *Cube {
	return c.cube
}

// RotateFace requests a single animated quarter turn. The request is
// silently ignored while another turn is animating.
func (c *Controller) RotateFace(face Face, clockwise bool) {
	c.anim.start(face, clockwise, c.clock())
}

// Shuffle scrambles the cube with count randomized moves, dispatched one
// per interval. A non-positive count uses the configured default. The
// request is silently ignored while a scramble or a turn is in progress.
func (c *Controller) Shuffle(count int) {
	if c.scram.shuffling() || c.anim.animating() {
		return
	}
	if count <= 0 {
		count = c.shuffleLength
	}
	c.scram.start(count, c.clock())
}

// Stop cancels an active scramble. Moves already dispatched are not rolled
// back; moves not yet dispatched never execute.
func (c *Controller) Stop() {
	c.scram.stop()
}

// Reset restores the solved configuration. It also cancels any in-flight
// turn and scramble, so the solved state cannot be clobbered by a pending
// commit.
func (c *Controller) Reset() {
	c.scram.stop()
	c.anim.cancel()
	c.cube.Reset()
}

// Tick advances the engine to the given timestamp. The host calls it from
// whatever scheduling primitive it has: a frame callback, a ticker, or a
// test loop with synthetic times.
func (c *Controller) Tick(now time.Time) {
	c.anim.tick(now)
	c.scram.tick(now, c.anim)
}

// IsAnimating reports whether a turn is in flight.
func (c *Controller) IsAnimating() bool {
	return c.anim.animating()
}

// IsShuffling reports whether a scramble is active.
func (c *Controller) IsShuffling() bool {
	return c.scram.shuffling()
}

// OnTurn sets a callback fired after each turn's permutation commits.
// Callers may use it to chain on turn completion instead of the
// scrambler's fixed-delay pacing, or to journal moves.
func (c *Controller) OnTurn(cb func(Move)) {
	c.onTurn = cb
}

// Moves returns the committed move history, oldest first. Empty when
// history tracking is disabled.
func (c *Controller) Moves() []Move {
	out := make([]Move, len(c.history))
	copy(out, c.history)
	return out
}

// committed records a finished turn and notifies the observer.
func (c *Controller) committed(m Move) {
	if c.recordHistory {
		c.history = append(c.history, m)
	}
	if c.onTurn != nil {
		c.onTurn(m)
	}
}
