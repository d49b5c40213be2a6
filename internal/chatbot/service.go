package chatbot

import (
	"context"
	"log"
	"net/http"
)

// Service sequences the chat pipeline: rate limit, validate, classify, fetch
// context, try a direct answer, fall back to the LLM gateway.
type Service struct {
	limiter  *RateLimiter
	contexts *ContextProvider
	gateway  *Gateway
	prompt   PromptConfig
}

func NewService(limiter *RateLimiter, contexts *ContextProvider, gateway *Gateway) *Service {
	return &Service{
		limiter:  limiter,
		contexts: contexts,
		gateway:  gateway,
		prompt:   DefaultPromptConfig(),
	}
}

// Result is the outcome of one chat turn. Status carries the HTTP-equivalent
// code; Reply is set on 200, Error otherwise.
type Result struct {
	Status   int
	Reply    string
	Error    string
	Category Category
	Direct   bool
	Fallback bool
}

// Handle runs the full pipeline for one visitor message. Throttling and
// validation fail fast; LLM failures degrade to a fallback reply and still
// count as success. Anything unexpected becomes a generic internal error.
func (s *Service) Handle(ctx context.Context, clientKey, rawMessage string, history []Turn) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[chatbot] panic in pipeline: %v", r)
			res = Result{Status: http.StatusInternalServerError, Error: "internal error"}
		}
	}()

	if !s.limiter.Allow(clientKey) {
		return Result{Status: http.StatusTooManyRequests, Error: "Too many requests. Please try again later."}
	}

	message, err := ValidateMessage(rawMessage)
	if err != nil {
		return Result{Status: http.StatusBadRequest, Error: err.Error()}
	}

	turns := NormalizeHistory(history)

	category := Classify(message)

	chatCtx, err := s.contexts.Fetch(ctx, category)
	if err != nil {
		log.Printf("[chatbot] context fetch failed category=%s err=%v", category, err)
		return Result{Status: http.StatusInternalServerError, Error: "internal error"}
	}

	if reply, ok := TryDirect(message, chatCtx); ok {
		return Result{Status: http.StatusOK, Reply: reply, Category: category, Direct: true}
	}

	prompt := BuildPrompt(message, turns, chatCtx, s.prompt)
	reply, fellBack := s.gateway.Generate(ctx, prompt)
	return Result{Status: http.StatusOK, Reply: reply, Category: category, Fallback: fellBack}
}
