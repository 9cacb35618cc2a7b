package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"study_buddy_backend/internal/config"
	"study_buddy_backend/internal/controller"
	"study_buddy_backend/internal/repository"
	"study_buddy_backend/internal/service"
	"study_buddy_backend/pkg/database"
	"study_buddy_backend/pkg/logger"
	"study_buddy_backend/pkg/monitoring"
	"study_buddy_backend/pkg/security"
	"study_buddy_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	services *services
}

type services struct {
	progression *service.ProgressionService
	study       *service.StudyService
	quiz        *service.QuizService
	planner     *service.PlannerService
	chat        *service.ChatService
	library     *service.LibraryService
	pomodoro    *service.PomodoroService
	motivation  *service.MotivationService
}

type controllers struct {
	study       *controller.StudyController
	quiz        *controller.QuizController
	planner     *controller.PlannerController
	chat        *controller.ChatController
	progression *controller.ProgressionController
	library     *controller.LibraryController
	pomodoro    *controller.PomodoroController
	motivation  *controller.MotivationController
	health      *controller.HealthController
}

// initStateRepository 按配置挑选状态存储后端。
// redis / database 连不上直接失败，memory 零依赖
func (a *App) initStateRepository(cfg *config.Config) (repository.StateRepository, error) {
	switch cfg.State.Backend {
	case "redis":
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		return repository.NewRedisStateRepository(rdb), nil
	case "database":
		db, err := database.InitDB(&cfg.Database)
		if err != nil {
			return nil, err
		}
		return repository.NewDBStateRepository(db), nil
	default:
		logger.Log.Info("using in-memory state store, progress resets on restart")
		return repository.NewMemoryStateRepository(), nil
	}
}

func (a *App) initServices(states repository.StateRepository, cfg *config.Config) *services {
	s := &services{}

	// 生成策略在这里一次性定型：有凭证走 gemini，没有走 demo
	gen := service.NewContentGenerator(cfg.AI)

	s.progression = service.NewProgressionService(states)
	s.study = service.NewStudyService(gen, s.progression)
	s.quiz = service.NewQuizService(gen, s.progression)
	s.planner = service.NewPlannerService(gen, s.progression)
	s.chat = service.NewChatService(gen)
	s.library = service.NewLibraryService(states, s.progression)
	s.pomodoro = service.NewPomodoroService(cfg.Pomodoro, s.progression)
	s.motivation = service.NewMotivationService()

	return s
}

func (a *App) initControllers(s *services, cfg *config.Config) *controllers {
	return &controllers{
		study:       controller.NewStudyController(s.study),
		quiz:        controller.NewQuizController(s.quiz),
		planner:     controller.NewPlannerController(s.planner),
		chat:        controller.NewChatController(s.chat),
		progression: controller.NewProgressionController(s.progression),
		library:     controller.NewLibraryController(s.library),
		pomodoro:    controller.NewPomodoroController(s.pomodoro),
		motivation:  controller.NewMotivationController(s.motivation),
		health:      controller.NewHealthController(cfg.State.Backend, !cfg.AI.CredentialsPresent()),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 300
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	gin.SetMode(func() string {
		if cfg.Server.Mode == "release" {
			return gin.ReleaseMode
		}
		return gin.DebugMode
	}())

	app := &App{Config: cfg}

	states, err := app.initStateRepository(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize state store", zap.Error(err))
	}

	services := app.initServices(states, cfg)
	app.services = services
	controllers := app.initControllers(services, cfg)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("study-buddy", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

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

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// 停掉所有番茄钟 tick 协程
	if a.services != nil && a.services.pomodoro != nil {
		a.services.pomodoro.Shutdown()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
