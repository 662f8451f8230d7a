package app

import (
	"ai_interviewer_backend/internal/config"
	"ai_interviewer_backend/internal/controller"
	"ai_interviewer_backend/internal/repository"
	"ai_interviewer_backend/internal/service"
	"ai_interviewer_backend/pkg/database"
	"ai_interviewer_backend/pkg/logger"
	"ai_interviewer_backend/pkg/monitoring"
	"ai_interviewer_backend/pkg/security"
	"ai_interviewer_backend/pkg/tracing"
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
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	Redis    *redis.Client
	services *services
}

type repositories struct {
	question *repository.QuestionRepository
	session  *repository.SessionRepository
	report   *repository.ReportRepository
	role     *repository.RoleRepository
}

type services struct {
	storage  *service.StorageService
	question *service.QuestionService
	session  *service.SessionService
	report   *service.ReportService
	role     *service.RoleService
	speech   *service.SpeechService
	stream   *service.StreamService
}

type controllers struct {
	question *controller.QuestionController
	session  *controller.SessionController
	report   *controller.ReportController
	role     *controller.RoleController
	speech   *controller.SpeechController
	stream   *controller.StreamController
	health   *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		question: repository.NewQuestionRepository(db),
		session:  repository.NewSessionRepository(db),
		report:   repository.NewReportRepository(db),
		role:     repository.NewRoleRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	llm := service.NewLLMClient(cfg.LLM)

	s.storage = service.NewStorageService(cfg)
	s.question = service.NewQuestionService(repos.question, llm)
	s.session = service.NewSessionService(repos.session, repos.report, repos.role, s.question, llm)
	s.report = service.NewReportService(repos.report, s.storage)
	s.role = service.NewRoleService(repos.role)
	s.speech = service.NewSpeechService(cfg.Speech, rdb)
	s.stream = service.NewStreamService(cfg.DID)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, cfg *config.Config) *controllers {
	return &controllers{
		question: controller.NewQuestionController(s.question),
		session:  controller.NewSessionController(s.session),
		report:   controller.NewReportController(s.report),
		role:     controller.NewRoleController(s.role),
		speech:   controller.NewSpeechController(s.speech),
		stream:   controller.NewStreamController(s.stream),
		health:   controller.NewHealthController(db, cfg.LLM.Provider),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 6000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// ReloadLLM 配置热更新入口，只换 LLM 后端，不动其余组件
func (a *App) ReloadLLM(cfg *config.Config) {
	if cfg.Server.Mode == "release" && cfg.LLM.Provider == "mock" {
		logger.Log.Warn("Ignoring config reload: mock provider not allowed in release mode")
		return
	}

	llm := service.NewLLMClient(cfg.LLM)
	a.services.question.SetLLMClient(llm)
	a.services.session.SetLLMClient(llm)

	logger.Log.Info("LLM client reloaded",
		zap.String("provider", cfg.LLM.Provider), zap.String("model", cfg.LLM.Model))
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
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
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db, cfg)

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("ai-interviewer", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers)

	if cfg.Storage.Type == "local" {
		router.Static("/exports", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
