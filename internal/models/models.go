package models

import "time"

// Profile is the single owner profile shown on the public site and fed to the
// chatbot. There is at most one row.
type Profile struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName   string `gorm:"type:varchar(64);not null" json:"first_name"`
	LastName    string `gorm:"type:varchar(64);not null" json:"last_name"`
	Email       string `gorm:"type:varchar(128)" json:"email"`
	Phone       string `gorm:"type:varchar(32)" json:"phone"`
	City        string `gorm:"type:varchar(64)" json:"city"`
	Country     string `gorm:"type:varchar(64)" json:"country"`
	Bio         string `gorm:"type:text" json:"bio"`
	GitHubURL   string `gorm:"type:varchar(255)" json:"github_url"`
	LinkedInURL string `gorm:"type:varchar(255)" json:"linkedin_url"`
	WebsiteURL  string `gorm:"type:varchar(255)" json:"website_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Profile) TableName() string { return "profiles" }

type Skill struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string `gorm:"type:varchar(64);not null" json:"name"`
	Category     string `gorm:"type:varchar(64);not null" json:"category"`
	Level        string `gorm:"type:varchar(32);not null" json:"level"`
	DisplayOrder int    `gorm:"index;not null;default:0" json:"display_order"`
	Visible      bool   `gorm:"index" json:"visible"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Skill) TableName() string { return "skills" }

// Technologies columns hold a comma-separated list; the repo splits them on read.
type Project struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Title        string `gorm:"type:varchar(128);not null" json:"title"`
	Description  string `gorm:"type:text" json:"description"`
	Technologies string `gorm:"type:varchar(512)" json:"technologies"`
	GitHubURL    string `gorm:"type:varchar(255)" json:"github_url"`
	LiveURL      string `gorm:"type:varchar(255)" json:"live_url"`
	DisplayOrder int    `gorm:"index;not null;default:0" json:"display_order"`
	Published    bool   `gorm:"index;not null;default:false" json:"published"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Project) TableName() string { return "projects" }

type WorkExperience struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Company      string `gorm:"type:varchar(128);not null" json:"company"`
	Position     string `gorm:"type:varchar(128);not null" json:"position"`
	Description  string `gorm:"type:text" json:"description"`
	Technologies string `gorm:"type:varchar(512)" json:"technologies"`
	Current      bool   `gorm:"not null;default:false" json:"current"`
	DisplayOrder int    `gorm:"index;not null;default:0" json:"display_order"`
	Visible      bool   `gorm:"index" json:"visible"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (WorkExperience) TableName() string { return "work_experiences" }

type BlogPost struct {
	ID          uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string     `gorm:"type:varchar(160);not null" json:"title"`
	Slug        string     `gorm:"type:varchar(160);uniqueIndex;not null" json:"slug"`
	Description string     `gorm:"type:varchar(512)" json:"description"`
	Content     string     `gorm:"type:text" json:"content"`
	Tags        string     `gorm:"type:varchar(255)" json:"tags"`
	Published   bool       `gorm:"index;not null;default:false" json:"published"`
	PublishedAt *time.Time `gorm:"index" json:"published_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (BlogPost) TableName() string { return "blog_posts" }

type AdminUser struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"type:varchar(128);not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

func (AdminUser) TableName() string { return "admin_users" }

// ChatInteraction is one served chatbot reply, persisted by the analytics
// worker. The question text itself is never stored.
type ChatInteraction struct {
	ID         string    `gorm:"primaryKey;size:26" json:"id"` // ULID length
	Category   string    `gorm:"type:varchar(32);index;not null" json:"category"`
	Direct     bool      `gorm:"not null" json:"direct"`
	Fallback   bool      `gorm:"not null" json:"fallback"`
	DurationMs int64     `gorm:"not null" json:"duration_ms"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}

func (ChatInteraction) TableName() string { return "chat_interactions" }
