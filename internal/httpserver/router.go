package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"taskhub/internal/handler"
	"taskhub/internal/session"
)

type Handlers struct {
	Auth        *handler.AuthHandler
	User        *handler.UserHandler
	Project     *handler.ProjectHandler
	Task        *handler.TaskHandler
	Report      *handler.ReportHandler
	Dashboard   *handler.DashboardHandler
	Stats       *handler.StatsHandler
	WorkRequest *handler.WorkRequestHandler
	Notion      *handler.NotionHandler
	Admin       *handler.AdminHandler
}

type Router struct {
	Engine *gin.Engine
}

func NewRouter(h Handlers, sessions *session.Store, jwtSecret string, pool *pgxpool.Pool, rdb *redis.Client) *Router {
	r := gin.Default()
	r.Use(MetricsMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/readyz", func(c *gin.Context) {
		ctx := c.Request.Context()
		if err := pool.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "component": "db"})
			return
		}
		if err := rdb.Ping(ctx).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "component": "redis"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	// Public
	api.POST("/auth/signup", h.Auth.Signup)
	api.POST("/auth/login", h.Auth.Login)
	api.GET("/users/search", h.User.Search)
	api.POST("/users/batch", h.User.Batch)

	api.GET("/projects", h.Project.List)
	api.POST("/projects", h.Project.Create)
	api.GET("/projects/:id", h.Project.Get)
	api.GET("/projects/:id/members", h.Project.Members)
	api.GET("/projects/:id/member-tasks", h.Project.MemberTasks)

	api.GET("/tasks", h.Task.List)
	api.POST("/tasks", h.Task.Create)
	api.GET("/stats", h.Stats.Get)

	api.GET("/work-requests", h.WorkRequest.List)
	api.POST("/work-requests", h.WorkRequest.Create)
	api.GET("/work-requests/:id", h.WorkRequest.Get)
	api.PUT("/work-requests/:id", h.WorkRequest.Update)
	api.DELETE("/work-requests/:id", h.WorkRequest.Delete)

	api.POST("/admin/init-db", h.Admin.InitDB)
	api.POST("/admin/migrate", h.Admin.Migrate)

	// Protected
	authed := api.Group("/")
	authed.Use(AuthMiddleware(jwtSecret, sessions))
	{
		authed.GET("/users/me", h.User.Me)
		authed.POST("/auth/logout", h.Auth.Logout)

		authed.PUT("/tasks/:id/status", h.Task.UpdateStatus)
		authed.POST("/tasks/:id/pm-confirm", h.Task.PMConfirm)

		authed.POST("/projects/:id/weekly-report", h.Report.ProjectReport)
		authed.POST("/weekly-report", h.Report.CombinedReport)

		authed.GET("/dashboard/personal", h.Dashboard.Personal)
		authed.GET("/calendar", h.Dashboard.Calendar)

		authed.POST("/notion/pages", h.Notion.CreatePage)
	}

	return &Router{Engine: r}
}

func (r *Router) Run(port string) error {
	return r.Engine.Run(port)
}
