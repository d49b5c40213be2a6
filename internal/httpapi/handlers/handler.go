package handlers

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"portfolio-backend/internal/ai"
	"portfolio-backend/internal/chatbot"
	"portfolio-backend/internal/config"
	"portfolio-backend/internal/email"
	"portfolio-backend/internal/portfolio"
	"portfolio-backend/internal/store/rabbitmq"
	"portfolio-backend/internal/store/redisstore"
)

type Handler struct {
	DB     *gorm.DB
	Cfg    config.Config
	Repo   *portfolio.Repo
	Redis  *redisstore.Store
	Rabbit *rabbitmq.Publisher
	Chat   *chatbot.Service
	SMTP   email.SMTPConfig

	stopSweep func()
}

// NewHandler wires the chat pipeline: provider registry, rate limiter with its
// background sweeper, context provider over the repo, and the LLM gateway.
// Rabbit may be nil; analytics publishing is then skipped.
func NewHandler(db *gorm.DB, cfg config.Config, rds *redisstore.Store, rabbit *rabbitmq.Publisher) *Handler {
	repo := portfolio.NewRepo(db)

	reg := ai.NewRegistry()
	reg.Register("gemini", func(ctx context.Context, model string) (ai.Provider, error) {
		m := model
		if m == "" {
			m = cfg.GeminiModel
		}
		return ai.NewGeminiProvider(cfg.GeminiBaseURL, cfg.GeminiAPIKey, m), nil
	})
	reg.Register("ollama", func(ctx context.Context, model string) (ai.Provider, error) {
		m := model
		if m == "" {
			m = cfg.OllamaModel
		}
		return ai.NewOllamaProvider(cfg.OllamaBaseURL, m), nil
	})

	provider, err := reg.Get(context.Background(), cfg.AIProvider, "")
	if err != nil {
		panic(fmt.Sprintf("unsupported AI_PROVIDER=%q", cfg.AIProvider))
	}

	limiter := chatbot.NewRateLimiter(cfg.ChatMaxRequests, cfg.ChatWindow)
	stopSweep := limiter.StartSweeper(cfg.ChatSweepInterval)

	chatSvc := chatbot.NewService(
		limiter,
		chatbot.NewContextProvider(portfolio.NewStoreSource(repo)),
		chatbot.NewGateway(provider, cfg.ChatLLMTimeout),
	)

	return &Handler{
		DB:     db,
		Cfg:    cfg,
		Repo:   repo,
		Redis:  rds,
		Rabbit: rabbit,
		Chat:   chatSvc,
		SMTP: email.SMTPConfig{
			Host: cfg.SMTPHost,
			Port: cfg.SMTPPort,
			User: cfg.SMTPUser,
			Pass: cfg.SMTPPass,
			From: cfg.SMTPFrom,
		},
		stopSweep: stopSweep,
	}
}

// Close stops the rate limiter sweeper.
func (h *Handler) Close() {
	if h.stopSweep != nil {
		h.stopSweep()
	}
}
