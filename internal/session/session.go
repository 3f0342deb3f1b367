// Package session records scramble runs into the journal database.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/twistylab/twisty"
	"github.com/twistylab/twisty/internal/storage"
)

// State represents the current state of a recording session.
type State int

const (
	StateIdle State = iota
	StateRecording
	StateEnded
)

// String returns the string representation of the session state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRecording:
		return "recording"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Recorder journals one scramble run: a session row plus every committed
// move with its timestamp relative to the session start. It never feeds
// state back into the engine; the journal is an audit trail only.
type Recorder struct {
	repo *storage.ScrambleRepository

	mu         sync.RWMutex
	state      State
	scrambleID string
	startTime  time.Time
	moveIndex  int
}

// NewRecorder creates a recorder over the given database.
func NewRecorder(db *storage.DB) *Recorder {
	return &Recorder{
		repo:  storage.NewScrambleRepository(db),
		state: StateIdle,
	}
}

// State returns the current session state.
func (r *Recorder) State() State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

// ScrambleID returns the current session ID.
func (r *Recorder) ScrambleID() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.scrambleID
}

// MoveCount returns how many moves have been recorded so far.
func (r *Recorder) MoveCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.moveIndex
}

// Start begins a new journal session and returns its ID.
func (r *Recorder) Start() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state == StateRecording {
		return "", fmt.Errorf("scramble session already in progress")
	}

	id := uuid.NewString()
	start := time.Now()
	if err := r.repo.Create(id, start.UnixMilli()); err != nil {
		return "", err
	}

	r.state = StateRecording
	r.scrambleID = id
	r.startTime = start
	r.moveIndex = 0
	return id, nil
}

// RecordMove journals one committed move. It is a no-op outside a session.
func (r *Recorder) RecordMove(m twisty.Move) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateRecording {
		return nil
	}

	tsMs := time.Since(r.startTime).Milliseconds()
	if err := r.repo.AddMove(r.scrambleID, r.moveIndex, tsMs, m); err != nil {
		return err
	}
	r.moveIndex++
	return nil
}

// End closes the session, recording whether it was stopped early.
func (r *Recorder) End(stopped bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateRecording {
		return nil
	}

	endMs := time.Now().UnixMilli()
	if err := r.repo.Finish(r.scrambleID, endMs, r.moveIndex, stopped); err != nil {
		return err
	}
	r.state = StateEnded
	return nil
}
