package evaluation

import (
	"database/sql"
	"fmt"

	"github.com/prompt-trainer/backend/internal/models"
)

// Store persists evaluation results for later review.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Record(userID *int64, prompt string, resp models.EvaluationResponse, rubricVersion string) error {
	_, err := s.db.Exec(
		`INSERT INTO evaluation_logs (user_id, prompt, label, score, rubric_version)
		 VALUES ($1, $2, $3, $4, $5)`,
		userID, prompt, resp.Label, resp.Score, rubricVersion,
	)
	if err != nil {
		return fmt.Errorf("record evaluation: %w", err)
	}
	return nil
}

func (s *Store) ListByUser(userID int64, limit int) ([]models.EvaluationLog, error) {
	rows, err := s.db.Query(
		`SELECT id, user_id, prompt, label, score, rubric_version, created_at
		 FROM evaluation_logs
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list evaluations: %w", err)
	}
	defer rows.Close()

	var logs []models.EvaluationLog
	for rows.Next() {
		var entry models.EvaluationLog
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.Prompt, &entry.Label,
			&entry.Score, &entry.RubricVersion, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan evaluation: %w", err)
		}
		logs = append(logs, entry)
	}
	return logs, rows.Err()
}
