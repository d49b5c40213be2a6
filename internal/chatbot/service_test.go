package chatbot

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"portfolio-backend/internal/ai"
)

type fakeSource struct {
	profile *ProfileContext
	skills  []SkillContext
	err     error

	profileCalls int
	skillCalls   int
	projectCalls int
	expCalls     int
	blogCalls    int
}

func (s *fakeSource) PublicProfile(ctx context.Context) (*ProfileContext, error) {
	s.profileCalls++
	return s.profile, s.err
}

func (s *fakeSource) VisibleSkills(ctx context.Context) ([]SkillContext, error) {
	s.skillCalls++
	if s.skills == nil {
		return []SkillContext{}, s.err
	}
	return s.skills, s.err
}

func (s *fakeSource) PublishedProjects(ctx context.Context) ([]ProjectContext, error) {
	s.projectCalls++
	return []ProjectContext{}, s.err
}

func (s *fakeSource) VisibleExperience(ctx context.Context) ([]ExperienceContext, error) {
	s.expCalls++
	return []ExperienceContext{}, s.err
}

func (s *fakeSource) PublishedBlogs(ctx context.Context, limit int) ([]BlogContext, error) {
	s.blogCalls++
	return []BlogContext{}, s.err
}

type countingProvider struct {
	reply      string
	delay      time.Duration
	calls      int
	lastPrompt string
}

func (p *countingProvider) Chat(ctx context.Context, messages []ai.Message) (string, error) {
	p.calls++
	if len(messages) > 0 {
		p.lastPrompt = messages[len(messages)-1].Content
	}
	if p.delay > 0 {
		time.Sleep(p.delay)
	}
	return p.reply, nil
}

func newTestService(src ContextSource, provider ai.Provider, timeout time.Duration) *Service {
	return NewService(
		NewRateLimiter(30, time.Minute),
		NewContextProvider(src),
		NewGateway(provider, timeout),
	)
}

func TestHandleDirectAnswerSkipsLLM(t *testing.T) {
	src := &fakeSource{profile: &ProfileContext{FirstName: "Ada", LastName: "Lovelace"}}
	prov := &countingProvider{reply: "should not be used"}
	svc := newTestService(src, prov, time.Second)

	res := svc.Handle(context.Background(), "1.1.1.1", "What is your name?", nil)

	if res.Status != http.StatusOK {
		t.Fatalf("status=%d error=%q", res.Status, res.Error)
	}
	if res.Reply != "Ada Lovelace" {
		t.Fatalf("reply=%q", res.Reply)
	}
	if !res.Direct {
		t.Fatalf("expected direct answer")
	}
	if prov.calls != 0 {
		t.Fatalf("LLM should not be called for direct answers, calls=%d", prov.calls)
	}
}

func TestHandleEmptyMessage(t *testing.T) {
	src := &fakeSource{}
	prov := &countingProvider{}
	svc := newTestService(src, prov, time.Second)

	res := svc.Handle(context.Background(), "1.1.1.1", "", nil)

	if res.Status != http.StatusBadRequest {
		t.Fatalf("status=%d", res.Status)
	}
	if res.Error == "" {
		t.Fatalf("expected a validation reason")
	}
	if src.profileCalls != 0 {
		t.Fatalf("no context fetch on validation failure")
	}
	if prov.calls != 0 {
		t.Fatalf("no LLM call on validation failure")
	}
}

func TestHandleThrottles31stRequest(t *testing.T) {
	src := &fakeSource{profile: &ProfileContext{FirstName: "Ada", LastName: "Lovelace"}}
	svc := newTestService(src, &countingProvider{reply: "ok"}, time.Second)

	for i := 0; i < 30; i++ {
		res := svc.Handle(context.Background(), "9.9.9.9", "What is your name?", nil)
		if res.Status != http.StatusOK {
			t.Fatalf("request %d status=%d", i+1, res.Status)
		}
	}

	res := svc.Handle(context.Background(), "9.9.9.9", "What is your name?", nil)
	if res.Status != http.StatusTooManyRequests {
		t.Fatalf("31st request status=%d", res.Status)
	}
}

func TestHandleFallsThroughToLLM(t *testing.T) {
	src := &fakeSource{profile: &ProfileContext{FirstName: "Ada", LastName: "Lovelace"}}
	prov := &countingProvider{reply: "here's a joke"}
	svc := newTestService(src, prov, time.Second)

	res := svc.Handle(context.Background(), "1.1.1.1", "Tell me a joke", nil)

	if res.Status != http.StatusOK || res.Reply != "here's a joke" {
		t.Fatalf("status=%d reply=%q", res.Status, res.Reply)
	}
	if res.Direct {
		t.Fatalf("should not be a direct answer")
	}
	if prov.calls != 1 {
		t.Fatalf("LLM should be called exactly once, calls=%d", prov.calls)
	}
	if !strings.Contains(prov.lastPrompt, "You are Ada") {
		t.Fatalf("prompt missing persona header:\n%s", prov.lastPrompt)
	}
	if !strings.Contains(prov.lastPrompt, "User: Tell me a joke") {
		t.Fatalf("prompt missing user line:\n%s", prov.lastPrompt)
	}
}

func TestHandleLLMTimeoutStillSucceeds(t *testing.T) {
	src := &fakeSource{profile: &ProfileContext{FirstName: "Ada", LastName: "Lovelace"}}
	prov := &countingProvider{reply: "too late", delay: 300 * time.Millisecond}
	svc := newTestService(src, prov, 20*time.Millisecond)

	res := svc.Handle(context.Background(), "1.1.1.1", "Tell me a joke", nil)

	if res.Status != http.StatusOK {
		t.Fatalf("LLM timeout must not surface as an error, status=%d", res.Status)
	}
	if res.Reply != DefaultFallbackReply {
		t.Fatalf("reply=%q", res.Reply)
	}
	if !res.Fallback {
		t.Fatalf("expected fallback flag")
	}
}

func TestHandleContextFetchErrorIsInternal(t *testing.T) {
	src := &fakeSource{err: errors.New("db down")}
	prov := &countingProvider{}
	svc := newTestService(src, prov, time.Second)

	res := svc.Handle(context.Background(), "1.1.1.1", "What is your name?", nil)

	if res.Status != http.StatusInternalServerError {
		t.Fatalf("status=%d", res.Status)
	}
	if res.Error != "internal error" {
		t.Fatalf("internal detail must not leak, got %q", res.Error)
	}
	if prov.calls != 0 {
		t.Fatalf("no LLM call after fetch failure")
	}
}

func TestHandleFetchesOnlyClassifiedCategory(t *testing.T) {
	src := &fakeSource{skills: []SkillContext{{Name: "Go", Level: "expert"}}}
	svc := newTestService(src, &countingProvider{reply: "ok"}, time.Second)

	res := svc.Handle(context.Background(), "1.1.1.1", "What skills do you have?", nil)
	if res.Status != http.StatusOK {
		t.Fatalf("status=%d", res.Status)
	}
	if res.Category != CategorySkills {
		t.Fatalf("category=%q", res.Category)
	}
	if src.skillCalls != 1 {
		t.Fatalf("skills should be fetched once, got %d", src.skillCalls)
	}
	if src.profileCalls+src.projectCalls+src.expCalls+src.blogCalls != 0 {
		t.Fatalf("unrequested categories must not be fetched")
	}
}
