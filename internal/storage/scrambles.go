package storage

import (
	"database/sql"
	"fmt"

	"github.com/twistylab/twisty"
)

// Scramble represents a scramble session in the database.
type Scramble struct {
	ScrambleID  string
	StartedAtMs int64
	EndedAtMs   *int64
	MoveCount   int
	Stopped     bool
	CreatedAt   string
}

// MoveRecord represents one dispatched move of a scramble.
type MoveRecord struct {
	MoveID     int64
	ScrambleID string
	MoveIndex  int
	TsMs       int64
	Face       string
	Clockwise  bool
	Notation   string
}

// ScrambleRepository provides CRUD operations for scramble sessions.
type ScrambleRepository struct {
	db *DB
}

// NewScrambleRepository creates a new scramble repository.
func NewScrambleRepository(db *DB) *ScrambleRepository {
	return &ScrambleRepository{db: db}
}

// Create inserts a new scramble session.
func (r *ScrambleRepository) Create(scrambleID string, startedAtMs int64) error {
	_, err := r.db.Exec(`
		INSERT INTO scrambles (scramble_id, started_at_ms)
		VALUES (?, ?)
	`, scrambleID, startedAtMs)
	if err != nil {
		return fmt.Errorf("failed to create scramble: %w", err)
	}
	return nil
}

// Finish marks a scramble session ended, recording whether it was stopped
// early and how many moves were dispatched.
func (r *ScrambleRepository) Finish(scrambleID string, endedAtMs int64, moveCount int, stopped bool) error {
	_, err := r.db.Exec(`
		UPDATE scrambles
		SET ended_at_ms = ?, move_count = ?, stopped = ?
		WHERE scramble_id = ?
	`, endedAtMs, moveCount, boolToInt(stopped), scrambleID)
	if err != nil {
		return fmt.Errorf("failed to finish scramble: %w", err)
	}
	return nil
}

// AddMove records one dispatched move.
func (r *ScrambleRepository) AddMove(scrambleID string, moveIndex int, tsMs int64, move twisty.Move) error {
	_, err := r.db.Exec(`
		INSERT INTO scramble_moves (scramble_id, move_index, ts_ms, face, clockwise, notation)
		VALUES (?, ?, ?, ?, ?, ?)
	`, scrambleID, moveIndex, tsMs, move.Face.String(), boolToInt(move.Clockwise), move.String())
	if err != nil {
		return fmt.Errorf("failed to record move: %w", err)
	}
	return nil
}

// AddMoves records a batch of moves in a single transaction.
func (r *ScrambleRepository) AddMoves(scrambleID string, startIndex int, tsMs int64, moves []twisty.Move) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		for i, m := range moves {
			_, err := tx.Exec(`
				INSERT INTO scramble_moves (scramble_id, move_index, ts_ms, face, clockwise, notation)
				VALUES (?, ?, ?, ?, ?, ?)
			`, scrambleID, startIndex+i, tsMs, m.Face.String(), boolToInt(m.Clockwise), m.String())
			if err != nil {
				return fmt.Errorf("failed to record move %d: %w", startIndex+i, err)
			}
		}
		return nil
	})
}

// List returns the most recent scramble sessions, newest first.
func (r *ScrambleRepository) List(limit int) ([]Scramble, error) {
	rows, err := r.db.Query(`
		SELECT scramble_id, started_at_ms, ended_at_ms, move_count, stopped, created_at
		FROM scrambles
		ORDER BY started_at_ms DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list scrambles: %w", err)
	}
	defer rows.Close()

	var out []Scramble
	for rows.Next() {
		var s Scramble
		var stopped int
		if err := rows.Scan(&s.ScrambleID, &s.StartedAtMs, &s.EndedAtMs, &s.MoveCount, &stopped, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan scramble: %w", err)
		}
		s.Stopped = stopped != 0
		out = append(out, s)
	}
	return out, rows.Err()
}

// Moves returns all recorded moves of a scramble in dispatch order.
func (r *ScrambleRepository) Moves(scrambleID string) ([]MoveRecord, error) {
	rows, err := r.db.Query(`
		SELECT move_id, scramble_id, move_index, ts_ms, face, clockwise, notation
		FROM scramble_moves
		WHERE scramble_id = ?
		ORDER BY move_index
	`, scrambleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		var cw int
		if err := rows.Scan(&m.MoveID, &m.ScrambleID, &m.MoveIndex, &m.TsMs, &m.Face, &cw, &m.Notation); err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		m.Clockwise = cw != 0
		moves = append(moves, m)
	}
	return moves, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
