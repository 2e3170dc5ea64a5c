package repository

import (
	"context"
	"fmt"
	"time"

	"portfolio-chat/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// PostgresQuestionRepository appends unanswered questions to a Postgres table.
type PostgresQuestionRepository struct {
	db     *pgxpool.Pool
	table  string
	logger *zap.Logger
}

func NewPostgresQuestionRepository(db *pgxpool.Pool, table string, logger *zap.Logger) *PostgresQuestionRepository {
	return &PostgresQuestionRepository{
		db:     db,
		table:  table,
		logger: logger,
	}
}

// EnsureSchema creates the table if it is missing.
func (r *PostgresQuestionRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, createTableSQL(r.table, "UUID", "TIMESTAMPTZ"))
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", r.table, err)
	}
	return nil
}

func (r *PostgresQuestionRepository) Record(ctx context.Context, question string) error {
	sql, args, err := insertQuestion(r.table, uuid.New(), question, time.Now().UTC()).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("failed to insert unanswered question: %w", err)
	}
	return nil
}

// Recent returns the newest questions first.
func (r *PostgresQuestionRepository) Recent(ctx context.Context, limit int) ([]*models.UnansweredQuestion, error) {
	sql, args, err := selectRecent(r.table, limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []*models.UnansweredQuestion
	for rows.Next() {
		var q models.UnansweredQuestion
		if err := rows.Scan(&q.ID, &q.Question, &q.CreatedAt); err != nil {
			return nil, err
		}
		questions = append(questions, &q)
	}

	return questions, rows.Err()
}

func createTableSQL(table, idType, timeType string) string {
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	id %s PRIMARY KEY,
	question TEXT NOT NULL,
	created_at %s NOT NULL
)`, table, idType, timeType)
}

func insertQuestion(table string, id uuid.UUID, question string, at time.Time) squirrel.InsertBuilder {
	return squirrel.Insert(table).
		Columns("id", "question", "created_at").
		Values(id, question, at)
}

func selectRecent(table string, limit int) squirrel.SelectBuilder {
	if limit <= 0 {
		limit = 50
	}
	return squirrel.Select("id", "question", "created_at").
		From(table).
		OrderBy("created_at DESC").
		Limit(uint64(limit))
}
