package twisty

import (
	"math/rand"
	"time"
)

const (
	// DefaultShuffleLength is the number of moves in a scramble.
	DefaultShuffleLength = 20

	// DefaultShuffleInterval is the pacing between scramble moves. It
	// loosely covers the turn animation plus margin; dispatch is paced by
	// this fixed delay, not by the animator's completion signal.
	DefaultShuffleInterval = 600 * time.Millisecond
)

// scrambler generates a randomized move sequence and dispatches it one
// move per interval through the turn animator.
//
// Cancellation is cooperative: stop clears the active flag and the
// pending queue, and any step due after that observes the cleared flag
// and does nothing. Moves already dispatched are never rolled back.
type scrambler struct {
	rng      *rand.Rand
	interval time.Duration

	active bool
	queue  []Move
	next   int
	nextAt time.Time
}

func newScrambler(rng *rand.Rand, interval time.Duration) *scrambler {
	return &scrambler{rng: rng, interval: interval}
}

// start generates count random moves and schedules the first dispatch one
// interval from now. It reports false, changing nothing, if a scramble is
// already active.
func (s *scrambler) start(count int, now time.Time) bool {
	if s.active {
		return false
	}

	s.queue = s.generate(count)
	s.next = 0
	s.nextAt = now.Add(s.interval)
	s.active = true
	return true
}

// generate draws count uniformly random moves, redrawing whenever a face
// would repeat back-to-back. A move may still undo the previous one.
func (s *scrambler) generate(count int) []Move {
	moves := make([]Move, 0, count)
	prev := Face(-1)
	for len(moves) < count {
		face := Faces[s.rng.Intn(len(Faces))]
		if face == prev {
			continue
		}
		prev = face
		moves = append(moves, Move{Face: face, Clockwise: s.rng.Intn(2) == 0})
	}
	return moves
}

// tick dispatches at most one due step: the next queued move, or, after
// the last move, the trailing completion step that clears the busy state.
func (s *scrambler) tick(now time.Time, anim *turnAnimator) {
	if !s.active || now.Before(s.nextAt) {
		return
	}

	if s.next < len(s.queue) {
		m := s.queue[s.next]
		s.next++
		s.nextAt = s.nextAt.Add(s.interval)
		anim.start(m.Face, m.Clockwise, now)
		return
	}

	// Trailing step: the scramble is complete.
	s.stop()
}

// stop cancels the scramble: pending moves never execute, and the busy
// flag clears immediately.
func (s *scrambler) stop() {
	s.active = false
	s.queue = nil
	s.next = 0
}

// shuffling reports whether a scramble is active.
func (s *scrambler) shuffling() bool {
	return s.active
}

// remaining returns how many queued moves have not been dispatched yet.
func (s *scrambler) remaining() int {
	if !s.active {
		return 0
	}
	return len(s.queue) - s.next
}
