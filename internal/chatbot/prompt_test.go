package chatbot

import (
	"strings"
	"testing"
)

func TestBuildPromptPersonaHeader(t *testing.T) {
	ctx := ChatContext{Profile: &ProfileContext{FirstName: "Ada", LastName: "Lovelace"}}
	prompt := BuildPrompt("Tell me a joke", nil, ctx, DefaultPromptConfig())

	if !strings.Contains(prompt, "You are Ada") {
		t.Fatalf("missing persona header:\n%s", prompt)
	}
	if !strings.Contains(prompt, "first person") {
		t.Fatalf("missing behavioral instructions:\n%s", prompt)
	}
	if !strings.Contains(prompt, "User: Tell me a joke") {
		t.Fatalf("missing final user line:\n%s", prompt)
	}
}

func TestBuildPromptOmitsAbsentSections(t *testing.T) {
	ctx := ChatContext{Profile: &ProfileContext{FirstName: "Ada", LastName: "Lovelace"}}
	prompt := BuildPrompt("hi", nil, ctx, DefaultPromptConfig())

	for _, section := range []string{"SKILLS:", "PROJECTS:", "WORK EXPERIENCE:", "BLOGS:", "CONVERSATION HISTORY:"} {
		if strings.Contains(prompt, section) {
			t.Fatalf("section %s should be omitted when its data is absent", section)
		}
	}
	if !strings.Contains(prompt, "PROFILE:") {
		t.Fatalf("PROFILE section should be present")
	}
}

func TestBuildPromptEmptyFetchedSectionStillRenders(t *testing.T) {
	// fetched-but-empty is distinct from not fetched
	ctx := ChatContext{Skills: []SkillContext{}}
	prompt := BuildPrompt("hi", nil, ctx, DefaultPromptConfig())
	if !strings.Contains(prompt, "SKILLS:") {
		t.Fatalf("fetched empty skills should still render the section header")
	}
}

func TestBuildPromptTruncatesLists(t *testing.T) {
	ctx := ChatContext{
		Projects: []ProjectContext{
			{Title: "P1"}, {Title: "P2"}, {Title: "P3"},
			{Title: "P4"}, {Title: "P5"}, {Title: "P6"}, {Title: "P7"},
		},
		Experience: []ExperienceContext{
			{Company: "C1", Position: "Dev"}, {Company: "C2", Position: "Dev"},
			{Company: "C3", Position: "Dev"}, {Company: "C4", Position: "Dev"},
		},
		Blogs: []BlogContext{
			{Title: "B1", Slug: "b1"}, {Title: "B2", Slug: "b2"},
			{Title: "B3", Slug: "b3"}, {Title: "B4", Slug: "b4"},
		},
	}
	prompt := BuildPrompt("hi", nil, ctx, DefaultPromptConfig())

	if strings.Contains(prompt, "P6") || strings.Contains(prompt, "P7") {
		t.Fatalf("projects should be capped at 5:\n%s", prompt)
	}
	if strings.Contains(prompt, "C4") {
		t.Fatalf("experience should be capped at 3:\n%s", prompt)
	}
	if strings.Contains(prompt, "B4") {
		t.Fatalf("blogs should be capped at 3:\n%s", prompt)
	}
	if !strings.Contains(prompt, "/blog/b1") {
		t.Fatalf("blog entries should carry relative links:\n%s", prompt)
	}
}

func TestBuildPromptExperienceAndHistory(t *testing.T) {
	ctx := ChatContext{
		Experience: []ExperienceContext{
			{Company: "Acme", Position: "Engineer", Current: true, Technologies: []string{"Go"}},
		},
	}
	history := []Turn{
		{Text: "hi", IsUser: true},
		{Text: "hello there", IsUser: false},
	}
	prompt := BuildPrompt("next question", history, ctx, DefaultPromptConfig())

	if !strings.Contains(prompt, "Engineer at Acme (Current)") {
		t.Fatalf("missing current experience entry:\n%s", prompt)
	}
	if !strings.Contains(prompt, "User: hi\nAssistant: hello there\n") {
		t.Fatalf("history should render in original order:\n%s", prompt)
	}
}

func TestBuildPromptSkillsGroupedByCategory(t *testing.T) {
	ctx := ChatContext{Skills: []SkillContext{
		{Name: "Go", Category: "Backend", Level: "expert"},
		{Name: "MySQL", Category: "Backend", Level: "advanced"},
		{Name: "React", Category: "Frontend", Level: "intermediate"},
	}}
	prompt := BuildPrompt("hi", nil, ctx, DefaultPromptConfig())

	if !strings.Contains(prompt, "Backend: Go (expert), MySQL (advanced)") {
		t.Fatalf("skills should be grouped by category:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Frontend: React (intermediate)") {
		t.Fatalf("missing frontend group:\n%s", prompt)
	}
}
