package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"portfolio-chat/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// SQLiteQuestionRepository is a file-backed store for local development.
type SQLiteQuestionRepository struct {
	db     *sql.DB
	table  string
	logger *zap.Logger
}

// OpenSQLite opens (or creates) the database at path and ensures the table exists.
func OpenSQLite(ctx context.Context, path, table string, logger *zap.Logger) (*SQLiteQuestionRepository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// one writer avoids SQLITE_BUSY under concurrent requests
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, createTableSQL(table, "TEXT", "TIMESTAMP")); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create %s: %w", table, err)
	}

	logger.Info("SQLite store ready", zap.String("path", path), zap.String("table", table))

	return &SQLiteQuestionRepository{db: db, table: table, logger: logger}, nil
}

func (r *SQLiteQuestionRepository) Record(ctx context.Context, question string) error {
	query, args, err := insertQuestion(r.table, uuid.New(), question, time.Now().UTC()).
		PlaceholderFormat(squirrel.Question).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert unanswered question: %w", err)
	}
	return nil
}

func (r *SQLiteQuestionRepository) Recent(ctx context.Context, limit int) ([]*models.UnansweredQuestion, error) {
	query, args, err := selectRecent(r.table, limit).
		PlaceholderFormat(squirrel.Question).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []*models.UnansweredQuestion
	for rows.Next() {
		var (
			q  models.UnansweredQuestion
			id string
		)
		if err := rows.Scan(&id, &q.Question, &q.CreatedAt); err != nil {
			return nil, err
		}
		if q.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("invalid id %q: %w", id, err)
		}
		questions = append(questions, &q)
	}

	return questions, rows.Err()
}

func (r *SQLiteQuestionRepository) Close() error {
	return r.db.Close()
}
