package models

import (
	"time"

	"github.com/google/uuid"
)

// UnansweredQuestion is a question the knowledge base could not answer.
type UnansweredQuestion struct {
	ID        uuid.UUID `db:"id"`
	Question  string    `db:"question"`
	CreatedAt time.Time `db:"created_at"`
}
