package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"portfolio-backend/internal/common"
	"portfolio-backend/internal/email"
)

func (h *Handler) Ping(c *gin.Context) {
	common.OK(c, gin.H{"pong": true})
}

func (h *Handler) GetProfile(c *gin.Context) {
	p, err := h.Repo.GetProfile(c.Request.Context())
	if err != nil {
		common.Fail(c, http.StatusInternalServerError, 50001, "db error")
		return
	}
	if p == nil {
		common.Fail(c, http.StatusNotFound, 40401, "profile not found")
		return
	}
	common.OK(c, p)
}

func (h *Handler) ListSkills(c *gin.Context) {
	skills, err := h.Repo.ListSkills(c.Request.Context(), true)
	if err != nil {
		common.Fail(c, http.StatusInternalServerError, 50001, "db error")
		return
	}
	common.OK(c, gin.H{"skills": skills})
}

func (h *Handler) ListProjects(c *gin.Context) {
	projects, err := h.Repo.ListProjects(c.Request.Context(), true)
	if err != nil {
		common.Fail(c, http.StatusInternalServerError, 50001, "db error")
		return
	}
	common.OK(c, gin.H{"projects": projects})
}

func (h *Handler) ListExperience(c *gin.Context) {
	exp, err := h.Repo.ListExperience(c.Request.Context(), true)
	if err != nil {
		common.Fail(c, http.StatusInternalServerError, 50001, "db error")
		return
	}
	common.OK(c, gin.H{"experience": exp})
}

func (h *Handler) ListBlogs(c *gin.Context) {
	blogs, err := h.Repo.ListBlogs(c.Request.Context(), true, 0)
	if err != nil {
		common.Fail(c, http.StatusInternalServerError, 50001, "db error")
		return
	}
	common.OK(c, gin.H{"blogs": blogs})
}

// GetBlogBySlug serves one published post and bumps its Redis view counter.
// Counter failures are logged, never surfaced.
func (h *Handler) GetBlogBySlug(c *gin.Context) {
	slug := c.Param("slug")

	b, err := h.Repo.GetBlogBySlug(c.Request.Context(), slug)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			common.Fail(c, http.StatusNotFound, 40402, "blog not found")
			return
		}
		common.Fail(c, http.StatusInternalServerError, 50001, "db error")
		return
	}
	if !b.Published {
		common.Fail(c, http.StatusNotFound, 40402, "blog not found")
		return
	}

	var views int64
	if h.Redis != nil {
		views, err = h.Redis.IncrBlogView(c.Request.Context(), slug)
		if err != nil {
			log.Printf("[blogs] view counter slug=%s err=%v", slug, err)
		}
	}

	common.OK(c, gin.H{"blog": b, "views": views})
}

type contactReq struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// Contact forwards a visitor message to the site owner by mail.
func (h *Handler) Contact(c *gin.Context) {
	var req contactReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, 10001, "name, email and message required")
		return
	}
	if len(req.Message) > 2000 {
		common.Fail(c, http.StatusBadRequest, 10002, "message too long")
		return
	}

	subject := "Portfolio contact from " + req.Name
	body := strings.Join([]string{
		"From: " + req.Name + " <" + req.Email + ">",
		"",
		req.Message,
	}, "\n")

	go func() {
		if err := email.SendText(h.SMTP, h.Cfg.ContactTo, subject, body); err != nil {
			log.Printf("[contact] send failed from=%s err=%v", req.Email, err)
		}
	}()

	common.OK(c, gin.H{"sent": true})
}
