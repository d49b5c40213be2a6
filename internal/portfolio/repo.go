package portfolio

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"portfolio-backend/internal/models"
)

type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

// GetProfile returns the single owner profile, or nil when none exists yet.
func (r *Repo) GetProfile(ctx context.Context) (*models.Profile, error) {
	var p models.Profile
	if err := r.db.WithContext(ctx).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// UpsertProfile creates the profile row on first save and updates it after.
func (r *Repo) UpsertProfile(ctx context.Context, p *models.Profile) error {
	existing, err := r.GetProfile(ctx)
	if err != nil {
		return err
	}
	if existing != nil {
		p.ID = existing.ID
		p.CreatedAt = existing.CreatedAt
	}
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *Repo) ListSkills(ctx context.Context, onlyVisible bool) ([]models.Skill, error) {
	q := r.db.WithContext(ctx).Order("display_order ASC, name ASC")
	if onlyVisible {
		q = q.Where("visible = ?", true)
	}
	skills := make([]models.Skill, 0)
	if err := q.Find(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}

func (r *Repo) CreateSkill(ctx context.Context, s *models.Skill) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *Repo) UpdateSkill(ctx context.Context, s *models.Skill) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *Repo) GetSkill(ctx context.Context, id uint64) (*models.Skill, error) {
	var s models.Skill
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repo) DeleteSkill(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&models.Skill{}, id).Error
}

func (r *Repo) ListProjects(ctx context.Context, onlyPublished bool) ([]models.Project, error) {
	q := r.db.WithContext(ctx).Order("display_order ASC")
	if onlyPublished {
		q = q.Where("published = ?", true)
	}
	projects := make([]models.Project, 0)
	if err := q.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *Repo) CreateProject(ctx context.Context, p *models.Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *Repo) UpdateProject(ctx context.Context, p *models.Project) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *Repo) GetProject(ctx context.Context, id uint64) (*models.Project, error) {
	var p models.Project
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repo) DeleteProject(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&models.Project{}, id).Error
}

func (r *Repo) ListExperience(ctx context.Context, onlyVisible bool) ([]models.WorkExperience, error) {
	q := r.db.WithContext(ctx).Order("display_order ASC")
	if onlyVisible {
		q = q.Where("visible = ?", true)
	}
	exp := make([]models.WorkExperience, 0)
	if err := q.Find(&exp).Error; err != nil {
		return nil, err
	}
	return exp, nil
}

func (r *Repo) CreateExperience(ctx context.Context, e *models.WorkExperience) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *Repo) UpdateExperience(ctx context.Context, e *models.WorkExperience) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *Repo) GetExperience(ctx context.Context, id uint64) (*models.WorkExperience, error) {
	var e models.WorkExperience
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *Repo) DeleteExperience(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&models.WorkExperience{}, id).Error
}

// ListBlogs returns posts newest-published first. limit <= 0 means no limit.
func (r *Repo) ListBlogs(ctx context.Context, onlyPublished bool, limit int) ([]models.BlogPost, error) {
	q := r.db.WithContext(ctx).Order("published_at DESC")
	if onlyPublished {
		q = q.Where("published = ?", true)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	blogs := make([]models.BlogPost, 0)
	if err := q.Find(&blogs).Error; err != nil {
		return nil, err
	}
	return blogs, nil
}

func (r *Repo) GetBlogBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	var b models.BlogPost
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *Repo) CreateBlog(ctx context.Context, b *models.BlogPost) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *Repo) UpdateBlog(ctx context.Context, b *models.BlogPost) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *Repo) GetBlog(ctx context.Context, id uint64) (*models.BlogPost, error) {
	var b models.BlogPost
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *Repo) DeleteBlog(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&models.BlogPost{}, id).Error
}

func (r *Repo) GetAdminByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	var u models.AdminUser
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repo) CreateAdmin(ctx context.Context, u *models.AdminUser) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *Repo) InsertInteraction(ctx context.Context, it *models.ChatInteraction) error {
	return r.db.WithContext(ctx).Create(it).Error
}

func (r *Repo) RecentInteractions(ctx context.Context, limit int) ([]models.ChatInteraction, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	out := make([]models.ChatInteraction, 0)
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
