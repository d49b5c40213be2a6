package chatbot

import (
	"fmt"
	"strings"
)

// PromptConfig bounds the prompt size.
type PromptConfig struct {
	MaxProjects   int
	MaxExperience int
	MaxBlogs      int
	MaxReplyWords int
	MaxExpDescLen int
}

func DefaultPromptConfig() PromptConfig {
	return PromptConfig{
		MaxProjects:   5,
		MaxExperience: 3,
		MaxBlogs:      3,
		MaxReplyWords: 150,
		MaxExpDescLen: 200,
	}
}

// BuildPrompt serializes the fetched context plus the retained conversation
// window into a single persona instruction block. Sections backed by absent
// (nil) context fields are omitted entirely.
func BuildPrompt(message string, history []Turn, chatCtx ChatContext, cfg PromptConfig) string {
	var b strings.Builder

	name := "the site owner"
	if chatCtx.Profile != nil && chatCtx.Profile.FirstName != "" {
		name = chatCtx.Profile.FirstName
	}

	fmt.Fprintf(&b, "You are %s, a professional full-stack developer, answering visitors on your portfolio website.\n", name)
	b.WriteString("Instructions:\n")
	b.WriteString("- Respond in first person, as yourself.\n")
	fmt.Fprintf(&b, "- Be concise: keep replies under about %d words.\n", cfg.MaxReplyWords)
	b.WriteString("- Include concrete details when the information below has them.\n")
	b.WriteString("- Share project and blog links when present.\n")
	b.WriteString("- If the information below does not cover a question, say so gracefully instead of guessing.\n")

	if p := chatCtx.Profile; p != nil {
		b.WriteString("\nPROFILE:\n")
		fmt.Fprintf(&b, "Name: %s %s\n", p.FirstName, p.LastName)
		if p.Email != "" {
			fmt.Fprintf(&b, "Email: %s\n", p.Email)
		}
		if p.City != "" || p.Country != "" {
			parts := make([]string, 0, 2)
			if p.City != "" {
				parts = append(parts, p.City)
			}
			if p.Country != "" {
				parts = append(parts, p.Country)
			}
			fmt.Fprintf(&b, "Location: %s\n", strings.Join(parts, ", "))
		}
		if p.Bio != "" {
			fmt.Fprintf(&b, "Bio: %s\n", p.Bio)
		}
		if p.GitHubURL != "" {
			fmt.Fprintf(&b, "GitHub: %s\n", p.GitHubURL)
		}
		if p.LinkedInURL != "" {
			fmt.Fprintf(&b, "LinkedIn: %s\n", p.LinkedInURL)
		}
		if p.WebsiteURL != "" {
			fmt.Fprintf(&b, "Website: %s\n", p.WebsiteURL)
		}
	}

	if chatCtx.Skills != nil {
		b.WriteString("\nSKILLS:\n")
		for _, line := range skillsByCategory(chatCtx.Skills) {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}

	if chatCtx.Projects != nil {
		b.WriteString("\nPROJECTS:\n")
		for i, p := range chatCtx.Projects {
			if i >= cfg.MaxProjects {
				break
			}
			fmt.Fprintf(&b, "- %s: %s", p.Title, p.Description)
			if len(p.Technologies) > 0 {
				fmt.Fprintf(&b, " (Technologies: %s)", strings.Join(p.Technologies, ", "))
			}
			if p.GitHubURL != "" {
				fmt.Fprintf(&b, " GitHub: %s", p.GitHubURL)
			}
			if p.LiveURL != "" {
				fmt.Fprintf(&b, " Live: %s", p.LiveURL)
			}
			b.WriteByte('\n')
		}
	}

	if chatCtx.Experience != nil {
		b.WriteString("\nWORK EXPERIENCE:\n")
		for i, e := range chatCtx.Experience {
			if i >= cfg.MaxExperience {
				break
			}
			fmt.Fprintf(&b, "- %s at %s", e.Position, e.Company)
			if e.Current {
				b.WriteString(" (Current)")
			}
			if e.Description != "" {
				fmt.Fprintf(&b, ": %s", truncate(e.Description, cfg.MaxExpDescLen))
			}
			if len(e.Technologies) > 0 {
				fmt.Fprintf(&b, " Technologies: %s", strings.Join(e.Technologies, ", "))
			}
			b.WriteByte('\n')
		}
	}

	if chatCtx.Blogs != nil {
		b.WriteString("\nBLOGS:\n")
		for i, blog := range chatCtx.Blogs {
			if i >= cfg.MaxBlogs {
				break
			}
			fmt.Fprintf(&b, "- %s: %s (/blog/%s)", blog.Title, blog.Description, blog.Slug)
			if len(blog.Tags) > 0 {
				fmt.Fprintf(&b, " Tags: %s", strings.Join(blog.Tags, ", "))
			}
			b.WriteByte('\n')
		}
	}

	if len(history) > 0 {
		b.WriteString("\nCONVERSATION HISTORY:\n")
		for _, t := range history {
			if t.IsUser {
				fmt.Fprintf(&b, "User: %s\n", t.Text)
			} else {
				fmt.Fprintf(&b, "Assistant: %s\n", t.Text)
			}
		}
	}

	fmt.Fprintf(&b, "\nUser: %s\n", message)
	fmt.Fprintf(&b, "Respond as %s, in first person:", name)

	return b.String()
}

func skillsByCategory(skills []SkillContext) []string {
	cats := make([]string, 0, 4)
	entries := make(map[string][]string)
	for _, s := range skills {
		if _, ok := entries[s.Category]; !ok {
			cats = append(cats, s.Category)
		}
		entries[s.Category] = append(entries[s.Category],
			fmt.Sprintf("%s (%s)", s.Name, s.Level))
	}

	lines := make([]string, 0, len(cats))
	for _, cat := range cats {
		lines = append(lines, fmt.Sprintf("%s: %s", cat, strings.Join(entries[cat], ", ")))
	}
	return lines
}

func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}
