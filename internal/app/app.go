// Package app wires configuration into a ready chat gateway. Both the HTTP
// server and the Lambda entrypoint build through here.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"portfolio-chat/internal/api"
	"portfolio-chat/internal/api/handlers"
	"portfolio-chat/internal/data"
	"portfolio-chat/internal/models"
	"portfolio-chat/internal/repository"
	"portfolio-chat/internal/service"
	"portfolio-chat/pkg/config"
	"portfolio-chat/pkg/metrics"
	"portfolio-chat/pkg/postgres"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

// Knowledge is the compiled, read-only grounding material.
type Knowledge struct {
	Portfolio *models.Portfolio
	Base      *models.KnowledgeBase
	Persona   string
}

// ErrPortfolioConflict means compiling the portfolio would drop or overwrite entries.
var ErrPortfolioConflict = errors.New("portfolio has conflicting entries")

// LoadKnowledge reads the portfolio (the bundled copy unless PORTFOLIO_FILE is set)
// and compiles it. Data that would lose entries during compilation is rejected.
func LoadKnowledge(cfg *config.PortfolioConfig) (*Knowledge, error) {
	var (
		p   *models.Portfolio
		err error
	)
	if cfg.File != "" {
		p, err = data.LoadFile(cfg.File)
	} else {
		p, err = data.Load()
	}
	if err != nil {
		return nil, err
	}

	if conflicts := service.CheckConflicts(p); len(conflicts) > 0 {
		msgs := make([]string, len(conflicts))
		for i, c := range conflicts {
			msgs[i] = c.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrPortfolioConflict, strings.Join(msgs, "; "))
	}

	return &Knowledge{
		Portfolio: p,
		Base:      service.CompileKnowledge(p),
		Persona:   service.BuildPersona(p),
	}, nil
}

// QuestionLister is implemented by stores that can read back what they recorded.
type QuestionLister interface {
	Recent(ctx context.Context, limit int) ([]*models.UnansweredQuestion, error)
}

type App struct {
	Config     *config.Config
	Knowledge  *Knowledge
	Chat       *service.ChatService
	Unanswered *service.UnansweredLogger
	Registry   *prometheus.Registry
	// Lister is nil when the configured store cannot be queried.
	Lister QuestionLister

	logger  *zap.Logger
	closers []func()
}

// Build assembles the gateway. A missing model credential is not an error: the
// gateway starts and answers chat requests with a configuration error instead.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	knowledge, err := LoadKnowledge(&cfg.Portfolio)
	if err != nil {
		return nil, err
	}
	for _, d := range service.CheckReferences(knowledge.Base, knowledge.Persona, knowledge.Portfolio.Projects) {
		logger.Warn("Dangling project link", zap.String("source", d.Source), zap.String("slug", d.Slug))
	}
	logger.Info("Knowledge base compiled", zap.Int("entries", knowledge.Base.Len()))

	a := &App{Config: cfg, Knowledge: knowledge, logger: logger}

	a.Registry = prometheus.NewRegistry()
	a.Registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(a.Registry)

	model, err := a.newModel(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	recorder, err := a.newRecorder(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.Unanswered = service.NewUnansweredLogger(recorder, cfg.Store.Timeout, m, logger)
	a.Chat = service.NewChatService(model, a.Unanswered, knowledge.Persona, knowledge.Base, m, logger)

	return a, nil
}

// Router returns the HTTP surface of the gateway.
func (a *App) Router() *fiber.App {
	return api.SetupRouter(
		handlers.NewChatHandler(a.Chat, a.logger),
		handlers.NewHealthHandler(a.Knowledge.Base, a.Chat, a.Unanswered),
		a.Registry,
		&a.Config.Server,
		a.logger,
	)
}

// Close releases provider clients and store connections in reverse order.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func (a *App) newModel(ctx context.Context) (service.ModelClient, error) {
	cfg := a.Config

	switch cfg.LLM.Provider {
	case config.ProviderGigaChat:
		giga, err := service.NewGigaChatService(ctx, &cfg.GigaChat, a.logger)
		if errors.Is(err, service.ErrModelNotConfigured) {
			a.logger.Warn("GIGACHAT_API_KEY is not set, chat requests will fail")
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() {
			if err := giga.Close(); err != nil {
				a.logger.Warn("Failed to close GigaChat client", zap.Error(err))
			}
		})
		return giga, nil

	case config.ProviderGemini:
		gemini, err := service.NewGeminiService(ctx, &cfg.Gemini, a.logger)
		if errors.Is(err, service.ErrModelNotConfigured) {
			a.logger.Warn("GEMINI_API_KEY is not set, chat requests will fail")
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return gemini, nil

	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", cfg.LLM.Provider)
	}
}

func (a *App) newRecorder(ctx context.Context) (service.QuestionRecorder, error) {
	cfg := a.Config
	if !cfg.StoreConfigured() {
		a.logger.Info("Unanswered question store is not configured, gaps will only be logged",
			zap.String("backend", cfg.Store.Backend))
		return service.NoopRecorder{}, nil
	}

	switch cfg.Store.Backend {
	case config.StoreSupabase:
		repo, err := repository.NewSupabaseQuestionRepository(cfg.Supabase.URL, cfg.Supabase.Key, cfg.Store.Table, a.logger)
		if err != nil {
			return nil, err
		}
		return repo, nil

	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, &cfg.Database, a.logger)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, pool.Close)

		repo := repository.NewPostgresQuestionRepository(pool, cfg.Store.Table, a.logger)
		if err := repo.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		a.Lister = repo
		return repo, nil

	case config.StoreSQLite:
		repo, err := repository.OpenSQLite(ctx, cfg.SQLite.Path, cfg.Store.Table, a.logger)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() {
			if err := repo.Close(); err != nil {
				a.logger.Warn("Failed to close SQLite store", zap.Error(err))
			}
		})
		a.Lister = repo
		return repo, nil

	default:
		return nil, fmt.Errorf("unknown LOG_STORE %q", cfg.Store.Backend)
	}
}
