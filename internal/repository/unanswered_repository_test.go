package repository

import (
	"testing"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertQuestion_PostgresPlaceholders(t *testing.T) {
	id := uuid.New()
	at := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	sql, args, err := insertQuestion("ai_learning_logs", id, "What's your favorite book?", at).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO ai_learning_logs (id,question,created_at) VALUES ($1,$2,$3)", sql)
	assert.Equal(t, []interface{}{id, "What's your favorite book?", at}, args)
}

func TestSelectRecent_DefaultLimit(t *testing.T) {
	sql, _, err := selectRecent("ai_learning_logs", 0).PlaceholderFormat(squirrel.Dollar).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, question, created_at FROM ai_learning_logs ORDER BY created_at DESC LIMIT 50", sql)
}

func TestCreateTableSQL(t *testing.T) {
	stmt := createTableSQL("ai_learning_logs", "UUID", "TIMESTAMPTZ")

	assert.Contains(t, stmt, "CREATE TABLE IF NOT EXISTS ai_learning_logs")
	assert.Contains(t, stmt, "id UUID PRIMARY KEY")
	assert.Contains(t, stmt, "created_at TIMESTAMPTZ NOT NULL")
}
