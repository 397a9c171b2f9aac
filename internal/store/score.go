package store

import (
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// highScoreKey is the settings row holding the all-time best score.
const highScoreKey = "high_score"

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// GameRecord is one finished game.
type GameRecord struct {
	ID       string
	Score    int
	Length   int
	Wrap     bool
	Duration time.Duration
	PlayedAt time.Time
}

// ScoreRepository provides access to the high score and game history.
type ScoreRepository struct {
	db *sql.DB
}

// Scores returns the score repository for this store.
func (s *Store) Scores() *ScoreRepository {
	return &ScoreRepository{db: s.db}
}

// HighScore returns the persisted high score. A missing or malformed
// value reads as 0: persistence failures never break the game.
func (r *ScoreRepository) HighScore() int {
	var value string
	err := r.db.QueryRow(
		`SELECT value FROM settings WHERE key = ?`, highScoreKey,
	).Scan(&value)
	if err != nil {
		return 0
	}

	score, err := strconv.Atoi(value)
	if err != nil || score < 0 {
		return 0
	}
	return score
}

// SetHighScore persists the high score, overwriting any previous value.
func (r *ScoreRepository) SetHighScore(score int) error {
	_, err := r.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		highScoreKey, strconv.Itoa(score),
	)
	return err
}

// Record inserts a finished game into the history. A missing ID is
// filled with a fresh UUID.
func (r *ScoreRepository) Record(rec *GameRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.PlayedAt.IsZero() {
		rec.PlayedAt = time.Now()
	}

	_, err := r.db.Exec(
		`INSERT INTO scores (id, score, snake_length, wrap_mode, duration_ms, played_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Score, rec.Length, boolToInt(rec.Wrap),
		rec.Duration.Milliseconds(), rec.PlayedAt,
	)
	return err
}

// Recent returns the most recently played games, newest first.
func (r *ScoreRepository) Recent(limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := r.db.Query(
		`SELECT id, score, snake_length, wrap_mode, duration_ms, played_at
		 FROM scores ORDER BY played_at DESC, id LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []GameRecord
	for rows.Next() {
		var rec GameRecord
		var wrap int
		var durationMs int64
		if err := rows.Scan(&rec.ID, &rec.Score, &rec.Length, &wrap, &durationMs, &rec.PlayedAt); err != nil {
			return nil, err
		}
		rec.Wrap = wrap != 0
		rec.Duration = time.Duration(durationMs) * time.Millisecond
		records = append(records, rec)
	}

	return records, rows.Err()
}

// Best returns the highest recorded game, or ErrNotFound when the
// history is empty.
func (r *ScoreRepository) Best() (*GameRecord, error) {
	rec := &GameRecord{}
	var wrap int
	var durationMs int64

	err := r.db.QueryRow(
		`SELECT id, score, snake_length, wrap_mode, duration_ms, played_at
		 FROM scores ORDER BY score DESC LIMIT 1`,
	).Scan(&rec.ID, &rec.Score, &rec.Length, &wrap, &durationMs, &rec.PlayedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rec.Wrap = wrap != 0
	rec.Duration = time.Duration(durationMs) * time.Millisecond
	return rec, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
