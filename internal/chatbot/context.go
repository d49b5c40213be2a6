package chatbot

import "context"

type Category string

const (
	CategoryProfile    Category = "profile"
	CategorySkills     Category = "skills"
	CategoryProjects   Category = "projects"
	CategoryExperience Category = "workExperience"
	CategoryBlogs      Category = "blogs"
)

type ProfileContext struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	City        string
	Country     string
	Bio         string
	GitHubURL   string
	LinkedInURL string
	WebsiteURL  string
}

type SkillContext struct {
	Name     string
	Category string
	Level    string
}

type ProjectContext struct {
	Title        string
	Description  string
	Technologies []string
	GitHubURL    string
	LiveURL      string
}

type ExperienceContext struct {
	Company      string
	Position     string
	Current      bool
	Description  string
	Technologies []string
}

type BlogContext struct {
	Title       string
	Description string
	Slug        string
	Tags        []string
}

// ChatContext carries the structured facts fetched for one chat turn. A nil
// field means the category was not fetched; a non-nil empty slice means it was
// fetched and holds no records. Downstream code must keep the two apart.
type ChatContext struct {
	Profile    *ProfileContext
	Skills     []SkillContext
	Projects   []ProjectContext
	Experience []ExperienceContext
	Blogs      []BlogContext
}

// ContextSource is the read-only storage projection the pipeline consumes.
// Implementations must return non-nil (possibly empty) slices.
type ContextSource interface {
	PublicProfile(ctx context.Context) (*ProfileContext, error)
	VisibleSkills(ctx context.Context) ([]SkillContext, error)
	PublishedProjects(ctx context.Context) ([]ProjectContext, error)
	VisibleExperience(ctx context.Context) ([]ExperienceContext, error)
	PublishedBlogs(ctx context.Context, limit int) ([]BlogContext, error)
}

type ContextProvider struct {
	src ContextSource
}

func NewContextProvider(src ContextSource) *ContextProvider {
	return &ContextProvider{src: src}
}

// Fetch loads only the requested categories; everything else stays nil. The
// classifier emits a single category today, so fetches run sequentially.
func (p *ContextProvider) Fetch(ctx context.Context, categories ...Category) (ChatContext, error) {
	var out ChatContext
	for _, cat := range categories {
		switch cat {
		case CategoryProfile:
			prof, err := p.src.PublicProfile(ctx)
			if err != nil {
				return ChatContext{}, err
			}
			out.Profile = prof
		case CategorySkills:
			skills, err := p.src.VisibleSkills(ctx)
			if err != nil {
				return ChatContext{}, err
			}
			out.Skills = skills
		case CategoryProjects:
			projects, err := p.src.PublishedProjects(ctx)
			if err != nil {
				return ChatContext{}, err
			}
			out.Projects = projects
		case CategoryExperience:
			exp, err := p.src.VisibleExperience(ctx)
			if err != nil {
				return ChatContext{}, err
			}
			out.Experience = exp
		case CategoryBlogs:
			blogs, err := p.src.PublishedBlogs(ctx, DefaultPromptConfig().MaxBlogs)
			if err != nil {
				return ChatContext{}, err
			}
			out.Blogs = blogs
		}
	}
	return out, nil
}
