package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/yungbote/discussions-backend/internal/access"
	"github.com/yungbote/discussions-backend/internal/data/db"
	"github.com/yungbote/discussions-backend/internal/data/repos"
	"github.com/yungbote/discussions-backend/internal/http/handlers"
	"github.com/yungbote/discussions-backend/internal/http/middleware"
	"github.com/yungbote/discussions-backend/internal/observability"
	"github.com/yungbote/discussions-backend/internal/platform/envutil"
	"github.com/yungbote/discussions-backend/internal/platform/logger"
	"github.com/yungbote/discussions-backend/internal/server"
	"github.com/yungbote/discussions-backend/internal/services"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	log.Info("Loading environment variables from main...")
	jwtSecretKey := envutil.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	timeZone := envutil.GetEnv("TIME_ZONE", "UTC", log)
	listPolicy := access.ParseListPolicy(envutil.GetEnv("LIST_POLICY", string(access.ListPublic), log))
	writePolicy := access.ParseWritePolicy(envutil.GetEnv("WRITE_POLICY", string(access.WriteOwnerOrAdmin), log))

	displayLoc, err := time.LoadLocation(timeZone)
	if err != nil {
		log.Warn("Could not load display time zone, falling back to raw timestamps", "time_zone", timeZone, "error", err)
		displayLoc = nil
	}

	// Tracing
	shutdownOTel := observability.InitOTel(context.Background(), log, observability.OtelConfig{
		ServiceName: "discussions-backend",
		Environment: envutil.GetEnv("DEPLOY_ENV", "development", log),
	})
	if shutdownOTel != nil {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdownOTel(ctx)
		}()
	}

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Error("Postgres auto migration failed", "error", err)
		os.Exit(1)
	}
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up Repos from main...")
	discussionRepo := repos.NewDiscussionRepo(thePG, log)
	commentRepo := repos.NewCommentRepo(thePG, log)
	courseDiscussionRepo := repos.NewCourseDiscussionRepo(thePG, log)
	courseCommentRepo := repos.NewCourseCommentRepo(thePG, log)

	// Services
	log.Info("Setting up Services from main...")
	identityService := services.NewIdentityService(log, jwtSecretKey)
	discussionService := services.NewDiscussionService(thePG, log, writePolicy, discussionRepo, commentRepo)
	commentService := services.NewCommentService(thePG, log, writePolicy, discussionRepo, commentRepo)
	courseDiscussionService := services.NewCourseDiscussionService(thePG, log, courseDiscussionRepo, courseCommentRepo)
	courseCommentService := services.NewCourseCommentService(thePG, log, courseDiscussionRepo, courseCommentRepo)

	// Handlers
	log.Info("Setting up handlers from main...")
	healthHandler := handlers.NewHealthHandler()
	discussionHandler := handlers.NewDiscussionHandler(log, discussionService, displayLoc)
	commentHandler := handlers.NewCommentHandler(log, commentService, displayLoc)
	courseDiscussionHandler := handlers.NewCourseDiscussionHandler(log, courseDiscussionService, displayLoc)
	courseCommentHandler := handlers.NewCourseCommentHandler(log, courseCommentService, displayLoc)

	// Middleware
	log.Info("Setting up middleware from main...")
	identityMiddleware := middleware.NewIdentityMiddleware(log, identityService)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		Log:                     log,
		IdentityMiddleware:      identityMiddleware,
		ListPolicy:              listPolicy,
		HealthHandler:           healthHandler,
		DiscussionHandler:       discussionHandler,
		CommentHandler:          commentHandler,
		CourseDiscussionHandler: courseDiscussionHandler,
		CourseCommentHandler:    courseCommentHandler,
	})

	port := envutil.GetEnv("PORT", "8080", log)
	log.Info("Server listening", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Server exited", "error", err)
	}
}
