package repository

import (
	"context"
	"fmt"

	"github.com/supabase-community/supabase-go"
	"go.uber.org/zap"
)

type questionRow struct {
	Question string `json:"question"`
}

// SupabaseQuestionRepository inserts {question} rows through the Supabase REST API.
type SupabaseQuestionRepository struct {
	client *supabase.Client
	table  string
	logger *zap.Logger
}

func NewSupabaseQuestionRepository(url, key, table string, logger *zap.Logger) (*SupabaseQuestionRepository, error) {
	client, err := supabase.NewClient(url, key, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Supabase client: %w", err)
	}

	return &SupabaseQuestionRepository{client: client, table: table, logger: logger}, nil
}

// Record inserts one row. The postgrest client takes no context, so the insert
// runs in its own goroutine and Record gives up when ctx is done. An abandoned
// insert may still land later.
func (r *SupabaseQuestionRepository) Record(ctx context.Context, question string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() {
		_, _, err := r.client.From(r.table).
			Insert(questionRow{Question: question}, false, "", "minimal", "").
			Execute()
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("supabase insert into %s failed: %w", r.table, err)
		}
		return nil
	case <-ctx.Done():
		r.logger.Warn("Supabase insert did not finish in time", zap.String("table", r.table))
		return fmt.Errorf("supabase insert into %s abandoned: %w", r.table, ctx.Err())
	}
}
