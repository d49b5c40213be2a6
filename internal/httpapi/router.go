package httpapi

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"portfolio-backend/internal/common"
	"portfolio-backend/internal/config"
	"portfolio-backend/internal/httpapi/handlers"
	"portfolio-backend/internal/httpapi/middleware"
	"portfolio-backend/internal/store/rabbitmq"
	"portfolio-backend/internal/store/redisstore"
)

func NewRouter(db *gorm.DB, cfg config.Config, rds *redisstore.Store, rabbit *rabbitmq.Publisher) (*gin.Engine, *handlers.Handler) {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(cors.Default())

	r.NoRoute(func(c *gin.Context) {
		common.Fail(c, http.StatusNotFound, 40400, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		common.Fail(c, http.StatusMethodNotAllowed, 40500, "method not allowed")
	})

	h := handlers.NewHandler(db, cfg, rds, rabbit)

	r.GET("/ping", h.Ping)

	// public portfolio
	r.GET("/profile", h.GetProfile)
	r.GET("/skills", h.ListSkills)
	r.GET("/projects", h.ListProjects)
	r.GET("/experience", h.ListExperience)
	r.GET("/blogs", h.ListBlogs)
	r.GET("/blogs/:slug", h.GetBlogBySlug)
	r.POST("/contact", h.Contact)

	// visitor chatbot (rate limited inside the pipeline, no auth)
	r.POST("/chat", h.HandleChat)

	// admin (JWT required)
	r.POST("/admin/login", h.Login)
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.AuthRequired(cfg.JWTSecret))
	adminGroup.GET("/me", h.Me)

	adminGroup.PUT("/profile", h.UpsertProfile)

	adminGroup.GET("/skills", h.AdminListSkills)
	adminGroup.POST("/skills", h.CreateSkill)
	adminGroup.PUT("/skills/:id", h.UpdateSkill)
	adminGroup.DELETE("/skills/:id", h.DeleteSkill)

	adminGroup.GET("/projects", h.AdminListProjects)
	adminGroup.POST("/projects", h.CreateProject)
	adminGroup.PUT("/projects/:id", h.UpdateProject)
	adminGroup.DELETE("/projects/:id", h.DeleteProject)

	adminGroup.GET("/experience", h.AdminListExperience)
	adminGroup.POST("/experience", h.CreateExperience)
	adminGroup.PUT("/experience/:id", h.UpdateExperience)
	adminGroup.DELETE("/experience/:id", h.DeleteExperience)

	adminGroup.GET("/blogs", h.AdminListBlogs)
	adminGroup.POST("/blogs", h.CreateBlog)
	adminGroup.PUT("/blogs/:id", h.UpdateBlog)
	adminGroup.DELETE("/blogs/:id", h.DeleteBlog)

	adminGroup.GET("/analytics/chat", h.ChatAnalytics)

	return r, h
}
