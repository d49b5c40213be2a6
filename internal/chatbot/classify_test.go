package chatbot

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		message string
		want    Category
	}{
		{"What is your name?", CategoryProfile},
		{"who are you", CategoryProfile},
		{"How can I contact you?", CategoryProfile},
		{"what's your phone number", CategoryProfile},
		{"where do you live", CategoryProfile},
		{"your location?", CategoryProfile},
		{"What skills do you have?", CategorySkills},
		{"tell me about your tech stack", CategorySkills},
		{"which technologies do you use", CategorySkills},
		{"show me your projects", CategoryProjects},
		{"what's in your portfolio", CategoryProjects},
		{"where do you work", CategoryExperience},
		{"what company are you at", CategoryExperience},
		{"your last job?", CategoryExperience},
		{"any recent blog articles?", CategoryBlogs},
		{"latest post?", CategoryBlogs},
		{"Tell me a joke", CategoryProfile}, // default
		{"xyzzy", CategoryProfile},          // default
	}

	for _, tc := range cases {
		if got := Classify(tc.message); got != tc.want {
			t.Fatalf("Classify(%q) = %q, want %q", tc.message, got, tc.want)
		}
	}
}

func TestClassifyPrecedence(t *testing.T) {
	// mixed-topic messages resolve to the first matching rule, not a set
	if got := Classify("what skills did you use in your projects?"); got != CategorySkills {
		t.Fatalf("expected first-match skills, got %q", got)
	}
	// "email" outranks the later experience keywords
	if got := Classify("what is your work email"); got != CategoryProfile {
		t.Fatalf("expected profile, got %q", got)
	}
}
