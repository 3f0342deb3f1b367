package twisty

import (
	"math/rand"
	"time"
)

// Option configures a Controller.
type Option func(*config)

type config struct {
	turnDuration    time.Duration
	shuffleInterval time.Duration
	shuffleLength   int
	moveHistory     bool
	clock           func() time.Time
	randSource      rand.Source
}

func defaultConfig() *config {
	return &config{
		turnDuration:    DefaultTurnDuration,
		shuffleInterval: DefaultShuffleInterval,
		shuffleLength:   DefaultShuffleLength,
		moveHistory:     true,
		clock:           time.Now,
	}
}

// WithTurnDuration sets the wall-clock length of one animated quarter turn.
func WithTurnDuration(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.turnDuration = d
		}
	}
}

// WithShuffleInterval sets the pacing between scramble moves. Intervals
// shorter than the turn duration cause scramble moves to be dropped while
// the previous turn is still animating.
func WithShuffleInterval(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.shuffleInterval = d
		}
	}
}

// WithShuffleLength sets the default number of moves per scramble, used
// when Shuffle is called with a non-positive count.
func WithShuffleLength(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.shuffleLength = n
		}
	}
}

// WithMoveHistory enables or disables move history tracking.
// When enabled (default), committed moves are stored and accessible via
// Moves(). Disable this for long sessions to reduce memory usage.
func WithMoveHistory(enabled bool) Option {
	return func(c *config) {
		c.moveHistory = enabled
	}
}

// WithClock sets the time source used when a command starts a turn or
// scramble. Tests inject a synthetic clock; the default is time.Now.
func WithClock(clock func() time.Time) Option {
	return func(c *config) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithRandSource sets the randomness source for scramble generation.
// Seed it for reproducible scrambles.
func WithRandSource(src rand.Source) Option {
	return func(c *config) {
		c.randSource = src
	}
}
