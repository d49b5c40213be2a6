package chatbot

import "strings"

// classifyRule maps a message predicate to exactly one category. Rules are
// evaluated top to bottom; the first match wins.
type classifyRule struct {
	match    func(msg string) bool
	category Category
}

func containsAny(keywords ...string) func(string) bool {
	return func(msg string) bool {
		for _, kw := range keywords {
			if strings.Contains(msg, kw) {
				return true
			}
		}
		return false
	}
}

func containsAll(keywords ...string) func(string) bool {
	return func(msg string) bool {
		for _, kw := range keywords {
			if !strings.Contains(msg, kw) {
				return false
			}
		}
		return true
	}
}

var classifyRules = []classifyRule{
	{containsAny("name", "who are you"), CategoryProfile},
	{containsAny("email", "contact"), CategoryProfile},
	{containsAny("phone", "number"), CategoryProfile},
	{containsAny("location"), CategoryProfile},
	{containsAll("where", "live"), CategoryProfile},
	{containsAny("skill", "technolog", "tech stack"), CategorySkills},
	{containsAny("project", "portfolio"), CategoryProjects},
	{containsAny("experience", "work", "company", "job"), CategoryExperience},
	{containsAny("blog", "article", "post"), CategoryBlogs},
}

// Classify routes a sanitized message to a single topic category. Messages
// matching no rule default to profile so the pipeline always has basic
// identity data to work with.
func Classify(message string) Category {
	msg := strings.ToLower(message)
	for _, r := range classifyRules {
		if r.match(msg) {
			return r.category
		}
	}
	return CategoryProfile
}
