package chatbot

import (
	"context"
	"errors"
	"testing"
	"time"

	"portfolio-backend/internal/ai"
)

type stubProvider struct {
	reply string
	err   error
	delay time.Duration
	calls int
}

func (p *stubProvider) Chat(ctx context.Context, messages []ai.Message) (string, error) {
	p.calls++
	if p.delay > 0 {
		// deliberately ignores ctx to simulate a hanging provider
		time.Sleep(p.delay)
	}
	return p.reply, p.err
}

func TestGatewaySuccess(t *testing.T) {
	g := NewGateway(&stubProvider{reply: "hello"}, time.Second)
	reply, fellBack := g.Generate(context.Background(), "prompt")
	if fellBack {
		t.Fatalf("unexpected fallback")
	}
	if reply != "hello" {
		t.Fatalf("got %q", reply)
	}
}

func TestGatewayProviderError(t *testing.T) {
	g := NewGateway(&stubProvider{err: errors.New("boom")}, time.Second)
	reply, fellBack := g.Generate(context.Background(), "prompt")
	if !fellBack || reply != DefaultFallbackReply {
		t.Fatalf("expected fallback, got %q fellBack=%v", reply, fellBack)
	}
}

func TestGatewayTimeout(t *testing.T) {
	g := NewGateway(&stubProvider{reply: "late", delay: 500 * time.Millisecond}, 30*time.Millisecond)

	start := time.Now()
	reply, fellBack := g.Generate(context.Background(), "prompt")
	elapsed := time.Since(start)

	if !fellBack || reply != DefaultFallbackReply {
		t.Fatalf("expected fallback on timeout, got %q fellBack=%v", reply, fellBack)
	}
	if elapsed > 200*time.Millisecond {
		t.Fatalf("gateway did not honor the timeout race, took %s", elapsed)
	}
}

func TestGatewayNoProvider(t *testing.T) {
	g := NewGateway(nil, time.Second)
	reply, fellBack := g.Generate(context.Background(), "prompt")
	if !fellBack || reply != DefaultFallbackReply {
		t.Fatalf("expected fallback without a provider, got %q", reply)
	}
}
