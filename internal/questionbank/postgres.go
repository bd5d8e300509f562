// internal/questionbank/postgres.go
package questionbank

import (
	"context"
	"fmt"
	"time"

	"renovation-core/internal/common/database"
	"renovation-core/internal/models"
)

// PostgresBank loads the question list once at construction and serves it
// from memory. Question metadata changes by deployment, not by request, so
// a load-once bank keeps lookups pure during analysis.
type PostgresBank struct {
	static *StaticBank
}

// NewPostgresBank reads the active questions from the questions table.
func NewPostgresBank(ctx context.Context, client *database.PostgresClient) (*PostgresBank, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	rows, err := client.Query(ctx,
		`SELECT id, text, category, multi_select FROM questions WHERE is_active = true ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	defer rows.Close()

	var questions []Question
	for rows.Next() {
		var q Question
		var id string
		if err := rows.Scan(&id, &q.Text, &q.Category, &q.MultiSelect); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		q.ID = models.QuestionID(id)
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("load questions: no active questions found")
	}

	return &PostgresBank{static: NewStaticBank(questions)}, nil
}

func (b *PostgresBank) Question(id models.QuestionID) (Question, bool) {
	return b.static.Question(id)
}

func (b *PostgresBank) Questions() []Question {
	return b.static.Questions()
}
