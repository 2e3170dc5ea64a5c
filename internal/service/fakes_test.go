package service

import (
	"context"
	"sync"

	"portfolio-chat/internal/models"
)

type fakeModel struct {
	mu    sync.Mutex
	reply string
	err   error
	calls int
	turns []models.ConversationTurn
}

func (m *fakeModel) Generate(ctx context.Context, turns []models.ConversationTurn) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.turns = turns
	return m.reply, m.err
}

type fakeQuestionLogger struct {
	mu        sync.Mutex
	questions []string
}

func (l *fakeQuestionLogger) Log(ctx context.Context, question string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.questions = append(l.questions, question)
}

type fakeRecorder struct {
	mu        sync.Mutex
	err       error
	panicWith any
	questions []string
	ctxErr    error
}

func (r *fakeRecorder) Record(ctx context.Context, question string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.questions = append(r.questions, question)
	r.ctxErr = ctx.Err()
	if r.panicWith != nil {
		panic(r.panicWith)
	}
	return r.err
}

func testPortfolio() *models.Portfolio {
	return &models.Portfolio{
		Personal: models.Personal{
			Name:            "Test Owner",
			Title:           "Developer",
			Location:        "Antwerp",
			Email:           "owner@example.com",
			ProudestProject: "alpha",
		},
		Bio: "Builds things.",
		Facts: []models.KnowledgeEntry{
			{ID: "favorites", Keywords: []string{"color"}, Content: "Favorites:\n- **Color**: Deep Space Blue (#002642)"},
		},
		Projects: []models.Project{
			{Slug: "alpha", Title: "Alpha", Description: "First", Tags: []string{"Go", "Fiber"}},
			{Slug: "beta", Title: "Beta"},
		},
		Links: []models.ExternalLink{
			{Label: "ACME", URL: "https://acme.example/"},
		},
		Experience: []models.Experience{
			{Title: "School", Role: "Student", Period: "2020-2022", Skills: []string{"C++"}},
		},
	}
}
