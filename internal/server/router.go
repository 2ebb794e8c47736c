package server

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/yungbote/discussions-backend/internal/access"
	"github.com/yungbote/discussions-backend/internal/domain"
	"github.com/yungbote/discussions-backend/internal/http/handlers"
	"github.com/yungbote/discussions-backend/internal/http/middleware"
	"github.com/yungbote/discussions-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log                     *logger.Logger
	IdentityMiddleware      *middleware.IdentityMiddleware
	ListPolicy              access.ListPolicy
	HealthHandler           *handlers.HealthHandler
	DiscussionHandler       *handlers.DiscussionHandler
	CommentHandler          *handlers.CommentHandler
	CourseDiscussionHandler *handlers.CourseDiscussionHandler
	CourseCommentHandler    *handlers.CourseCommentHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(otelgin.Middleware("discussions-backend"))
	router.Use(middleware.AttachTraceContext())
	router.Use(middleware.RequestLogger(cfg.Log))
	router.Use(cfg.IdentityMiddleware.Resolve())

	router.GET("/healthcheck", cfg.HealthHandler.HealthCheck)

	studentGate := middleware.RequireRole(domain.RoleStudent, domain.RoleStaff, domain.RoleAdmin)

	// The general list/create routes are public by default; deployments that
	// want the course-style gate select it via LIST_POLICY.
	listGate := gin.HandlerFunc(func(c *gin.Context) { c.Next() })
	if cfg.ListPolicy == access.ListRoleGate {
		listGate = studentGate
	}

	dh := cfg.DiscussionHandler
	router.GET("/discussions", listGate, dh.List)
	router.POST("/discussions", listGate, dh.Create)
	router.GET("/discussions/:id", dh.Get)
	router.PUT("/discussions/:id", dh.Update)
	router.DELETE("/discussions/:id", dh.Delete)

	ch := cfg.CommentHandler
	router.GET("/comments", listGate, ch.List)
	router.POST("/comments", listGate, ch.Create)
	router.GET("/comments/:id", ch.Get)
	router.PUT("/comments/:id", ch.Update)
	router.DELETE("/comments/:id", ch.Delete)

	// The :key segment doubles as numeric id (detail routes) and course
	// subject (natural-key routes); gin requires one wildcard name per
	// position.
	cdh := cfg.CourseDiscussionHandler
	router.GET("/course-discussions", studentGate, cdh.List)
	router.POST("/course-discussions", studentGate, cdh.Create)
	router.GET("/course-discussions/:key", cdh.Get)
	router.PUT("/course-discussions/:key", cdh.Update)
	router.DELETE("/course-discussions/:key", cdh.Delete)
	router.GET("/course-discussions/:key/:course_id", cdh.GetByCourse)
	router.DELETE("/course-discussions/:key/:course_id", cdh.DeleteByCourse)

	cch := cfg.CourseCommentHandler
	router.GET("/course-comments", studentGate, cch.List)
	router.POST("/course-comments", studentGate, cch.Create)
	router.GET("/course-comments/:id", cch.Get)
	router.PUT("/course-comments/:id", cch.Update)
	router.DELETE("/course-comments/:id", cch.Delete)

	return router
}
