package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"portfolio-backend/internal/auth"
	"portfolio-backend/internal/common"
	"portfolio-backend/internal/httpapi/middleware"
	"portfolio-backend/internal/models"
)

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, 10001, "username and password required")
		return
	}

	u, err := h.Repo.GetAdminByUsername(c.Request.Context(), req.Username)
	if err != nil {
		// same response for unknown user and bad password
		common.Fail(c, http.StatusUnauthorized, 40102, "invalid credentials")
		return
	}
	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		common.Fail(c, http.StatusUnauthorized, 40102, "invalid credentials")
		return
	}

	token, err := auth.SignJWT(u.ID, h.Cfg.JWTSecret, 24*time.Hour)
	if err != nil {
		common.Fail(c, http.StatusInternalServerError, 50003, "failed to sign token")
		return
	}

	common.OK(c, gin.H{"token": token, "username": u.Username})
}

func (h *Handler) Me(c *gin.Context) {
	v, ok := c.Get(middleware.UserIDKey)
	if !ok {
		common.Fail(c, http.StatusUnauthorized, 40101, "unauthorized")
		return
	}
	common.OK(c, gin.H{"user_id": v})
}

func pathID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		common.Fail(c, http.StatusBadRequest, 10004, "invalid id")
		return 0, false
	}
	return id, true
}

func (h *Handler) UpsertProfile(c *gin.Context) {
	var p models.Profile
	if err := c.ShouldBindJSON(&p); err != nil {
		common.Fail(c, http.StatusBadRequest, 10001, "invalid json")
		return
	}
	if p.FirstName == "" || p.LastName == "" {
		common.Fail(c, http.StatusBadRequest, 10002, "first_name and last_name required")
		return
	}
	if err := h.Repo.UpsertProfile(c.Request.Context(), &p); err != nil {
		common.Fail(c, http.StatusInternalServerError, 50001, "failed to save profile")
		return
	}
	common.OK(c, p)
}

func (h *Handler) CreateSkill(c *gin.Context) {
	var s models.Skill
	if err := c.ShouldBindJSON(&s); err != nil {
		common.Fail(c, http.StatusBadRequest, 10001, "invalid json")
		return
	}
	if s.Name == "" || s.Category == "" || s.Level == "" {
		common.Fail(c, http.StatusBadRequest, 10002, "name, category and level required")
		return
	}
	s.ID = 0
	if err := h.Repo.CreateSkill(c.Request.Context(), &s); err != nil {
		common.Fail(c, http.StatusInternalServerError, 50001, "failed to create skill")
		return
	}
	common.OK(c, s)
}

func (h *Handler) UpdateSkill(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	existing, err := h.Repo.GetSkill(c.Request.Context(), id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			common.Fail(c, http.StatusNotFound, 40403, "skill not found")
			return
		}
		common.Fail(c, http.StatusInternalServerError, 50001, "db error")
		return
	}

	var s models.Skill
	if err := c.ShouldBindJSON(&s); err != nil {
		common.Fail(c, http.StatusBadRequest, 10001, "invalid json")
		return
	}
	s.ID = existing.ID
	s.CreatedAt = existing.CreatedAt
	if err := h.Repo.UpdateSkill(c.Request.Context(), &s); err != nil {
		common.Fail(c, http.StatusInternalServerError, 50001, "failed to update skill")
		return
	}
	common.OK(c, s)
}

func (h *Handler) DeleteSkill(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Repo.DeleteSkill(c.Request.Context(), id); err != nil {
		common.Fail(c, http.StatusInternalServerError, 50001, "failed to delete skill")
		return
	}
	common.OK(c, gin.H{"deleted": id})
}

func (h *Handler) AdminListSkills(c *gin.Context) {
	skills, err := h.Repo.ListSkills(c.Request.Context(), false)
	if err != nil {
		common.Fail(c, http.StatusInternalServerError, 50001, "db error")
		return
	}
	common.OK(c, gin.H{"skills": skills})
}

func (h *Handler) CreateProject(c *gin.Context) {
	var p models.Project
	if err := c.ShouldBindJSON(&p); err != nil {
		common.Fail(c, http.StatusBadRequest, 10001, "invalid json")
		return
	}
	if p.Title == "" {
		common.Fail(c, http.StatusBadRequest, 10002, "title required")
		return
	}
	p.ID = 0
	if err := h.Repo.CreateProject(c.Request.Context(), &p); err != nil {
		common.Fail(c, http.StatusInternalServerError, 50001, "failed to create project")
		return
	}
	common.OK(c, p)
}

func (h *Handler) UpdateProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	existing, err := h.Repo.GetProject(c.Request.Context(), id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			common.Fail(c, http.StatusNotFound, 40404, "project not found")
			return
		}
		common.Fail(c, http.StatusInternalServerError, 50001, "db error")
		return
	}

	var p models.Project
	if err := c.ShouldBindJSON(&p); err != nil {
		common.Fail(c, http.StatusBadRequest, 10001, "invalid json")
		return
	}
	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt
	if err := h.Repo.UpdateProject(c.Request.Context(), &p); err != nil {
		common.Fail(c, http.StatusInternalServerError, 50001, "failed to update project")
		return
	}
	common.OK(c, p)
}

func (h *Handler) DeleteProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Repo.DeleteProject(c.Request.Context(), id); err != nil {
		common.Fail(c, http.StatusInternalServerError, 50001, "failed to delete project")
		return
	}
	common.OK(c, gin.H{"deleted": id})
}

func (h *Handler) AdminListProjects(c *gin.Context) {
	projects, err := h.Repo.ListProjects(c.Request.Context(), false)
	if err != nil {
		common.Fail(c, http.StatusInternalServerError, 50001, "db error")
		return
	}
	common.OK(c, gin.H{"projects": projects})
}

func (h *Handler) CreateExperience(c *gin.Context) {
	var e models.WorkExperience
	if err := c.ShouldBindJSON(&e); err != nil {
		common.Fail(c, http.StatusBadRequest, 10001, "invalid json")
		return
	}
	if e.Company == "" || e.Position == "" {
		common.Fail(c, http.StatusBadRequest, 10002, "company and position required")
		return
	}
	e.ID = 0
	if err := h.Repo.CreateExperience(c.Request.Context(), &e); err != nil {
		common.Fail(c, http.StatusInternalServerError, 50001, "failed to create experience")
		return
	}
	common.OK(c, e)
}

func (h *Handler) UpdateExperience(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	existing, err := h.Repo.GetExperience(c.Request.Context(), id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			common.Fail(c, http.StatusNotFound, 40405, "experience not found")
			return
		}
		common.Fail(c, http.StatusInternalServerError, 50001, "db error")
		return
	}

	var e models.WorkExperience
	if err := c.ShouldBindJSON(&e); err != nil {
		common.Fail(c, http.StatusBadRequest, 10001, "invalid json")
		return
	}
	e.ID = existing.ID
	e.CreatedAt = existing.CreatedAt
	if err := h.Repo.UpdateExperience(c.Request.Context(), &e); err != nil {
		common.Fail(c, http.StatusInternalServerError, 50001, "failed to update experience")
		return
	}
	common.OK(c, e)
}

func (h *Handler) DeleteExperience(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Repo.DeleteExperience(c.Request.Context(), id); err != nil {
		common.Fail(c, http.StatusInternalServerError, 50001, "failed to delete experience")
		return
	}
	common.OK(c, gin.H{"deleted": id})
}

func (h *Handler) AdminListExperience(c *gin.Context) {
	exp, err := h.Repo.ListExperience(c.Request.Context(), false)
	if err != nil {
		common.Fail(c, http.StatusInternalServerError, 50001, "db error")
		return
	}
	common.OK(c, gin.H{"experience": exp})
}

func (h *Handler) CreateBlog(c *gin.Context) {
	var b models.BlogPost
	if err := c.ShouldBindJSON(&b); err != nil {
		common.Fail(c, http.StatusBadRequest, 10001, "invalid json")
		return
	}
	if b.Title == "" || b.Slug == "" {
		common.Fail(c, http.StatusBadRequest, 10002, "title and slug required")
		return
	}
	b.ID = 0
	if b.Published && b.PublishedAt == nil {
		now := time.Now()
		b.PublishedAt = &now
	}
	if err := h.Repo.CreateBlog(c.Request.Context(), &b); err != nil {
		common.Fail(c, http.StatusBadRequest, 10003, "failed to create blog (maybe slug already exists)")
		return
	}
	common.OK(c, b)
}

func (h *Handler) UpdateBlog(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	existing, err := h.Repo.GetBlog(c.Request.Context(), id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			common.Fail(c, http.StatusNotFound, 40406, "blog not found")
			return
		}
		common.Fail(c, http.StatusInternalServerError, 50001, "db error")
		return
	}

	var b models.BlogPost
	if err := c.ShouldBindJSON(&b); err != nil {
		common.Fail(c, http.StatusBadRequest, 10001, "invalid json")
		return
	}
	b.ID = existing.ID
	b.CreatedAt = existing.CreatedAt
	// first transition to published stamps the publish time
	if b.Published && b.PublishedAt == nil {
		if existing.PublishedAt != nil {
			b.PublishedAt = existing.PublishedAt
		} else {
			now := time.Now()
			b.PublishedAt = &now
		}
	}
	if err := h.Repo.UpdateBlog(c.Request.Context(), &b); err != nil {
		common.Fail(c, http.StatusInternalServerError, 50001, "failed to update blog")
		return
	}
	common.OK(c, b)
}

func (h *Handler) DeleteBlog(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Repo.DeleteBlog(c.Request.Context(), id); err != nil {
		common.Fail(c, http.StatusInternalServerError, 50001, "failed to delete blog")
		return
	}
	common.OK(c, gin.H{"deleted": id})
}

func (h *Handler) AdminListBlogs(c *gin.Context) {
	blogs, err := h.Repo.ListBlogs(c.Request.Context(), false, 0)
	if err != nil {
		common.Fail(c, http.StatusInternalServerError, 50001, "db error")
		return
	}
	common.OK(c, gin.H{"blogs": blogs})
}

// ChatAnalytics summarizes recent chat interactions recorded by the worker.
func (h *Handler) ChatAnalytics(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	interactions, err := h.Repo.RecentInteractions(c.Request.Context(), limit)
	if err != nil {
		common.Fail(c, http.StatusInternalServerError, 50001, "db error")
		return
	}

	byCategory := make(map[string]int)
	direct := 0
	fallback := 0
	for _, it := range interactions {
		byCategory[it.Category]++
		if it.Direct {
			direct++
		}
		if it.Fallback {
			fallback++
		}
	}

	common.OK(c, gin.H{
		"interactions": interactions,
		"total":        len(interactions),
		"by_category":  byCategory,
		"direct":       direct,
		"fallback":     fallback,
	})
}
