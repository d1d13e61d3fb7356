package app

import (
	"academy_backend/internal/config"
	"academy_backend/internal/controller"
	"academy_backend/internal/repository"
	"academy_backend/internal/service"
	"academy_backend/pkg/database"
	"academy_backend/pkg/logger"
	"academy_backend/pkg/monitoring"
	"academy_backend/pkg/security"
	"academy_backend/pkg/tracing"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	configCallbacks []func(*config.Config)
	tracerShutdown  func(context.Context) error
}

type repositories struct {
	user          *repository.UserRepository
	course        *repository.CourseRepository
	exam          *repository.ExamRepository
	submission    *repository.SubmissionRepository
	participation *repository.ParticipationRepository
	comment       *repository.CommentRepository
	video         *repository.VideoRepository
}

type services struct {
	auth       *service.AuthService
	user       *service.UserService
	storage    *service.StorageService
	course     *service.CourseService
	exam       *service.ExamService
	grading    *service.GradingService
	submission *service.SubmissionService
	enrollment *service.EnrollmentService
	comment    *service.CommentService
	video      *service.VideoService
	content    *service.ContentService
}

type controllers struct {
	auth       *controller.AuthController
	user       *controller.UserController
	course     *controller.CourseController
	exam       *controller.ExamController
	submission *controller.SubmissionController
	enrollment *controller.EnrollmentController
	comment    *controller.CommentController
	video      *controller.VideoController
	content    *controller.ContentController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig swaps the live config and notifies registered listeners.
// Server port and database settings still require a restart.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
	logger.Log.Info("Configuration reloaded")
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:          repository.NewUserRepository(db),
		course:        repository.NewCourseRepository(db),
		exam:          repository.NewExamRepository(db),
		submission:    repository.NewSubmissionRepository(db),
		participation: repository.NewParticipationRepository(db),
		comment:       repository.NewCommentRepository(db),
		video:         repository.NewVideoRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user)
	s.course = service.NewCourseService(repos.course)
	s.exam = service.NewExamService(repos.exam, repos.course)
	s.grading = service.NewGradingService(repos.submission, repos.exam, repos.course, repos.participation)
	s.submission = service.NewSubmissionService(repos.submission, repos.exam, s.grading)
	s.enrollment = service.NewEnrollmentService(repos.participation, repos.course, rdb)
	s.comment = service.NewCommentService(repos.comment, repos.course, db)
	s.video = service.NewVideoService(repos.video, s.storage, rdb, cfg)
	s.content = service.NewContentService(repos.course, s.storage, cfg)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth),
		user:       controller.NewUserController(s.user),
		course:     controller.NewCourseController(s.course),
		exam:       controller.NewExamController(s.exam),
		submission: controller.NewSubmissionController(s.submission),
		enrollment: controller.NewEnrollmentController(s.enrollment),
		comment:    controller.NewCommentController(s.comment),
		video:      controller.NewVideoController(s.video),
		content:    controller.NewContentController(s.content),
		health:     controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	cors := security.NewCORSPolicy(cfg.CORS.AllowedOrigins)
	limiter := security.NewIPRateLimiter(rateLimit(cfg))

	router.Use(cors.Middleware())
	router.Use(security.Secure())
	router.Use(limiter.Middleware())

	// Config reloads reach the live middleware through these.
	a.RegisterConfigCallback(func(newCfg *config.Config) {
		cors.SetOrigins(newCfg.CORS.AllowedOrigins)
		limiter.SetLimit(rateLimit(newCfg))
	})

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func rateLimit(cfg *config.Config) (int, time.Duration) {
	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 100000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	return maxRequests, window
}

// startBackgroundTasks runs the grading worker and a sweep that requeues
// submissions stuck in pending, so a crash between submit and grade never
// strands a result.
func (a *App) startBackgroundTasks(s *services) {
	go s.grading.Run()

	go func() {
		ticker := time.NewTicker(time.Minute)
		for range ticker.C {
			if err := s.grading.SweepPending(); err != nil {
				logger.Log.Error("pending submission sweep error", zap.Error(err))
			}
		}
	}()
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode, cfg.ForceMigrate)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, db, rdb)
	app.services = services
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("academy-platform", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerShutdown = tp.Shutdown
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.startBackgroundTasks(services)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Drain in-flight gradings before the HTTP server goes away.
	if a.services != nil && a.services.grading != nil {
		a.services.grading.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracerShutdown != nil {
		if err := a.tracerShutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
