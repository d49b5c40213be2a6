package chatbot

import "testing"

func fullProfile() *ProfileContext {
	return &ProfileContext{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Phone:     "+44 123 456",
		City:      "London",
		Country:   "UK",
	}
}

func TestDirectName(t *testing.T) {
	ctx := ChatContext{Profile: fullProfile()}

	reply, ok := TryDirect("What is your name?", ctx)
	if !ok || reply != "Ada Lovelace" {
		t.Fatalf("got %q ok=%v", reply, ok)
	}

	reply, ok = TryDirect("who are you", ctx)
	if !ok || reply != "Ada Lovelace" {
		t.Fatalf("got %q ok=%v", reply, ok)
	}
}

func TestDirectEmailAndPhone(t *testing.T) {
	ctx := ChatContext{Profile: fullProfile()}

	if reply, ok := TryDirect("how do I contact you", ctx); !ok || reply != "ada@example.com" {
		t.Fatalf("contact: got %q ok=%v", reply, ok)
	}
	if reply, ok := TryDirect("your phone?", ctx); !ok || reply != "+44 123 456" {
		t.Fatalf("phone: got %q ok=%v", reply, ok)
	}
}

func TestDirectLocation(t *testing.T) {
	ctx := ChatContext{Profile: fullProfile()}
	if reply, ok := TryDirect("what is your location", ctx); !ok || reply != "London, UK" {
		t.Fatalf("got %q ok=%v", reply, ok)
	}

	// either part may be absent; only present parts are joined
	cityOnly := ChatContext{Profile: &ProfileContext{City: "London"}}
	if reply, ok := TryDirect("where do you live", cityOnly); !ok || reply != "London" {
		t.Fatalf("got %q ok=%v", reply, ok)
	}
}

func TestDirectProjectList(t *testing.T) {
	ctx := ChatContext{Projects: []ProjectContext{
		{Title: "Alpha"}, {Title: "Beta"}, {Title: "Gamma"},
		{Title: "Delta"}, {Title: "Epsilon"}, {Title: "Zeta"},
	}}

	reply, ok := TryDirect("list your projects", ctx)
	if !ok {
		t.Fatalf("expected a hit")
	}
	want := "1. Alpha. 2. Beta. 3. Gamma. 4. Delta. 5. Epsilon"
	if reply != want {
		t.Fatalf("got %q want %q", reply, want)
	}

	if _, ok := TryDirect("projects", ctx); !ok {
		t.Fatalf("bare \"projects\" should hit")
	}
}

func TestDirectSkillsGroupedByLevel(t *testing.T) {
	ctx := ChatContext{Skills: []SkillContext{
		{Name: "Go", Level: "expert"},
		{Name: "Docker", Level: "expert"},
		{Name: "Rust", Level: "intermediate"},
	}}

	reply, ok := TryDirect("what skills do you have", ctx)
	if !ok {
		t.Fatalf("expected a hit")
	}
	want := "I'm expert in Go, Docker. I'm intermediate in Rust"
	if reply != want {
		t.Fatalf("got %q want %q", reply, want)
	}
}

func TestDirectNeverFabricates(t *testing.T) {
	empty := ChatContext{}
	questions := []string{
		"What is your name?",
		"your email?",
		"phone number?",
		"where do you live",
		"list your projects",
		"skills?",
	}
	for _, q := range questions {
		if reply, ok := TryDirect(q, empty); ok {
			t.Fatalf("q=%q fabricated %q from empty context", q, reply)
		}
	}

	// fetched-but-empty lists are also a miss, not an empty answer
	fetched := ChatContext{
		Projects: []ProjectContext{},
		Skills:   []SkillContext{},
	}
	if reply, ok := TryDirect("list your projects", fetched); ok {
		t.Fatalf("fabricated %q from empty project list", reply)
	}
	if reply, ok := TryDirect("skills?", fetched); ok {
		t.Fatalf("fabricated %q from empty skill list", reply)
	}

	// partial profile: name rule needs both parts
	partial := ChatContext{Profile: &ProfileContext{FirstName: "Ada"}}
	if reply, ok := TryDirect("What is your name?", partial); ok {
		t.Fatalf("fabricated %q without last name", reply)
	}
}

func TestDirectMissFallsThrough(t *testing.T) {
	ctx := ChatContext{Profile: fullProfile()}
	if reply, ok := TryDirect("Tell me a joke", ctx); ok {
		t.Fatalf("expected a miss, got %q", reply)
	}
}
