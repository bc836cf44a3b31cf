package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Solve is one recorded solve: the scramble that was applied and the
// solution the solver produced, both in standard notation.
type Solve struct {
	SolveID       string
	CreatedAt     time.Time
	Scramble      string
	Solution      string
	ScrambleCount int
	SolutionCount int
}

// SolveRepository provides access to recorded solves.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a new solve repository.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Create records a completed solve and returns its ID.
func (r *SolveRepository) Create(scramble, solution string, scrambleCount, solutionCount int) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO solves (solve_id, created_at, scramble, solution, scramble_count, solution_count)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, createdAt.Format(time.RFC3339), scramble, solution, scrambleCount, solutionCount)
	if err != nil {
		return "", fmt.Errorf("create solve: %w", err)
	}

	return id, nil
}

// Get retrieves a solve by ID. A missing solve returns nil, nil.
func (r *SolveRepository) Get(solveID string) (*Solve, error) {
	row := r.db.QueryRow(`
		SELECT solve_id, created_at, scramble, solution, scramble_count, solution_count
		FROM solves
		WHERE solve_id = ?
	`, solveID)

	s, err := scanSolve(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get solve: %w", err)
	}
	return s, nil
}

// List returns the most recent solves, newest first.
func (r *SolveRepository) List(limit int) ([]*Solve, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.Query(`
		SELECT solve_id, created_at, scramble, solution, scramble_count, solution_count
		FROM solves
		ORDER BY created_at DESC, solve_id
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list solves: %w", err)
	}
	defer rows.Close()

	var solves []*Solve
	for rows.Next() {
		s, err := scanSolve(rows)
		if err != nil {
			return nil, fmt.Errorf("scan solve: %w", err)
		}
		solves = append(solves, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list solves: %w", err)
	}

	return solves, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSolve(row rowScanner) (*Solve, error) {
	var s Solve
	var createdAt string
	if err := row.Scan(&s.SolveID, &createdAt, &s.Scramble, &s.Solution, &s.ScrambleCount, &s.SolutionCount); err != nil {
		return nil, err
	}

	ts, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	s.CreatedAt = ts
	return &s, nil
}
