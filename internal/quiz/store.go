package quiz

import (
	"database/sql"
	"fmt"

	"github.com/prompt-trainer/backend/internal/models"
)

// Store persists quiz attempts for authenticated users.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) RecordAttempt(userID int64, result models.QuizResult) error {
	_, err := s.db.Exec(
		`INSERT INTO quiz_attempts (user_id, score, total, correct)
		 VALUES ($1, $2, $3, $4)`,
		userID, result.Score, result.Total, result.Correct,
	)
	if err != nil {
		return fmt.Errorf("record quiz attempt: %w", err)
	}
	return nil
}
