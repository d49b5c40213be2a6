package chatbot

import (
	"fmt"
	"strings"
)

const maxDirectProjects = 5

// TryDirect answers common factual questions straight from the fetched
// context, skipping the LLM entirely. Rules are checked in precedence order
// and every rule hard-guards on its backing field: an absent field is a miss,
// never an empty answer.
func TryDirect(message string, chatCtx ChatContext) (string, bool) {
	msg := strings.ToLower(strings.TrimSpace(message))
	prof := chatCtx.Profile

	if strings.Contains(msg, "name") || strings.Contains(msg, "who are you") {
		if prof != nil && prof.FirstName != "" && prof.LastName != "" {
			return prof.FirstName + " " + prof.LastName, true
		}
	}

	if strings.Contains(msg, "email") || strings.Contains(msg, "contact") {
		if prof != nil && prof.Email != "" {
			return prof.Email, true
		}
	}

	if strings.Contains(msg, "phone") || strings.Contains(msg, "number") {
		if prof != nil && prof.Phone != "" {
			return prof.Phone, true
		}
	}

	if strings.Contains(msg, "location") ||
		(strings.Contains(msg, "where") && strings.Contains(msg, "live")) {
		if prof != nil && (prof.City != "" || prof.Country != "") {
			parts := make([]string, 0, 2)
			if prof.City != "" {
				parts = append(parts, prof.City)
			}
			if prof.Country != "" {
				parts = append(parts, prof.Country)
			}
			return strings.Join(parts, ", "), true
		}
	}

	if (strings.Contains(msg, "projects") && strings.Contains(msg, "list")) || msg == "projects" {
		if len(chatCtx.Projects) > 0 {
			items := make([]string, 0, maxDirectProjects)
			for i, p := range chatCtx.Projects {
				if i >= maxDirectProjects {
					break
				}
				items = append(items, fmt.Sprintf("%d. %s", i+1, p.Title))
			}
			return strings.Join(items, ". "), true
		}
	}

	if strings.Contains(msg, "skills") || strings.Contains(msg, "technologies") ||
		strings.Contains(msg, "tech stack") {
		if len(chatCtx.Skills) > 0 {
			return skillsByLevel(chatCtx.Skills), true
		}
	}

	return "", false
}

// skillsByLevel groups skill names by level, preserving the order levels first
// appear, and renders one sentence per level.
func skillsByLevel(skills []SkillContext) string {
	levels := make([]string, 0, 4)
	names := make(map[string][]string)
	for _, s := range skills {
		if _, ok := names[s.Level]; !ok {
			levels = append(levels, s.Level)
		}
		names[s.Level] = append(names[s.Level], s.Name)
	}

	sentences := make([]string, 0, len(levels))
	for _, lvl := range levels {
		sentences = append(sentences,
			fmt.Sprintf("I'm %s in %s", lvl, strings.Join(names[lvl], ", ")))
	}
	return strings.Join(sentences, ". ")
}
