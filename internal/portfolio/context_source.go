package portfolio

import (
	"context"
	"strings"

	"portfolio-backend/internal/chatbot"
)

// StoreSource adapts the repo to the chatbot's read-only context projection.
// All methods return non-nil slices so the pipeline can tell "fetched but
// empty" apart from "not fetched".
type StoreSource struct {
	repo *Repo
}

func NewStoreSource(repo *Repo) *StoreSource {
	return &StoreSource{repo: repo}
}

func (s *StoreSource) PublicProfile(ctx context.Context) (*chatbot.ProfileContext, error) {
	p, err := s.repo.GetProfile(ctx)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return &chatbot.ProfileContext{
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Email:       p.Email,
		Phone:       p.Phone,
		City:        p.City,
		Country:     p.Country,
		Bio:         p.Bio,
		GitHubURL:   p.GitHubURL,
		LinkedInURL: p.LinkedInURL,
		WebsiteURL:  p.WebsiteURL,
	}, nil
}

func (s *StoreSource) VisibleSkills(ctx context.Context) ([]chatbot.SkillContext, error) {
	skills, err := s.repo.ListSkills(ctx, true)
	if err != nil {
		return nil, err
	}
	out := make([]chatbot.SkillContext, 0, len(skills))
	for _, sk := range skills {
		out = append(out, chatbot.SkillContext{
			Name:     sk.Name,
			Category: sk.Category,
			Level:    sk.Level,
		})
	}
	return out, nil
}

func (s *StoreSource) PublishedProjects(ctx context.Context) ([]chatbot.ProjectContext, error) {
	projects, err := s.repo.ListProjects(ctx, true)
	if err != nil {
		return nil, err
	}
	out := make([]chatbot.ProjectContext, 0, len(projects))
	for _, p := range projects {
		out = append(out, chatbot.ProjectContext{
			Title:        p.Title,
			Description:  p.Description,
			Technologies: splitList(p.Technologies),
			GitHubURL:    p.GitHubURL,
			LiveURL:      p.LiveURL,
		})
	}
	return out, nil
}

func (s *StoreSource) VisibleExperience(ctx context.Context) ([]chatbot.ExperienceContext, error) {
	exp, err := s.repo.ListExperience(ctx, true)
	if err != nil {
		return nil, err
	}
	out := make([]chatbot.ExperienceContext, 0, len(exp))
	for _, e := range exp {
		out = append(out, chatbot.ExperienceContext{
			Company:      e.Company,
			Position:     e.Position,
			Current:      e.Current,
			Description:  e.Description,
			Technologies: splitList(e.Technologies),
		})
	}
	return out, nil
}

func (s *StoreSource) PublishedBlogs(ctx context.Context, limit int) ([]chatbot.BlogContext, error) {
	blogs, err := s.repo.ListBlogs(ctx, true, limit)
	if err != nil {
		return nil, err
	}
	out := make([]chatbot.BlogContext, 0, len(blogs))
	for _, b := range blogs {
		out = append(out, chatbot.BlogContext{
			Title:       b.Title,
			Description: b.Description,
			Slug:        b.Slug,
			Tags:        splitList(b.Tags),
		})
	}
	return out, nil
}

// splitList parses the comma-separated technology/tag columns.
func splitList(s string) []string {
	out := make([]string, 0, 4)
	for _, part := range strings.Split(s, ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}
