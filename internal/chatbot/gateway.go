package chatbot

import (
	"context"
	"log"
	"time"

	"portfolio-backend/internal/ai"
)

// DefaultFallbackReply is returned whenever the provider errors, times out, or
// is not configured. LLM failures never surface to the visitor as errors.
const DefaultFallbackReply = "I'm having trouble reaching my AI service right now. Please try again in a moment, or reach out to me directly."

// DefaultLLMTimeout bounds a single generation call.
const DefaultLLMTimeout = 10 * time.Second

// Gateway wraps the LLM provider with a timeout race and a graceful fallback.
// It never retries; a timeout or provider error is terminal for the request.
type Gateway struct {
	provider ai.Provider
	timeout  time.Duration
	fallback string
}

func NewGateway(provider ai.Provider, timeout time.Duration) *Gateway {
	if timeout <= 0 {
		timeout = DefaultLLMTimeout
	}
	return &Gateway{
		provider: provider,
		timeout:  timeout,
		fallback: DefaultFallbackReply,
	}
}

// Generate returns the model reply for prompt, or the fallback string if the
// provider is missing, errors, or does not answer within the timeout. The
// second return reports whether the fallback was used.
func (g *Gateway) Generate(ctx context.Context, prompt string) (string, bool) {
	if g.provider == nil {
		return g.fallback, true
	}

	cctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	type result struct {
		reply string
		err   error
	}
	ch := make(chan result, 1)
	go func() {
		reply, err := g.provider.Chat(cctx, []ai.Message{{Role: "user", Content: prompt}})
		ch <- result{reply: reply, err: err}
	}()

	// race the call against the deadline so a provider that ignores ctx
	// cannot stall the pipeline
	select {
	case r := <-ch:
		if r.err != nil {
			log.Printf("[chatbot] llm generate failed: %v", r.err)
			return g.fallback, true
		}
		if r.reply == "" {
			return g.fallback, true
		}
		return r.reply, false
	case <-cctx.Done():
		log.Printf("[chatbot] llm generate timed out after %s", g.timeout)
		return g.fallback, true
	}
}
