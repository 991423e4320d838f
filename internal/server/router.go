package server

import (
	"time"

	"task-query-service/internal/config"
	"task-query-service/internal/handlers"
	"task-query-service/internal/middleware"
	"task-query-service/internal/monitoring"
	"task-query-service/internal/services"
	"task-query-service/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter assembles the full HTTP surface around an injected storage
// resolver: middleware chain, open CORS for the mobile client, and the
// route table.
func NewRouter(cfg *config.Config, resolver *storage.Resolver) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RecoveryWithLog())
	router.Use(middleware.RequestID())
	router.Use(monitoring.MetricsMiddleware())

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(
			cfg.RateLimit.RequestsPerMin,
			cfg.RateLimit.BurstSize,
			cfg.RateLimit.CleanupInterval,
		)
		router.Use(limiter.Middleware())
	}

	// The API is consumed from app webviews and local dev tools alike, so
	// CORS stays fully open.
	router.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	taskHandler := handlers.NewTaskHandler(services.NewTaskQueryService(resolver))
	authHandler := handlers.NewAuthHandler(services.NewAuthService(nil))
	systemHandler := handlers.NewSystemHandler(resolver)

	router.GET("/", systemHandler.Root)
	router.POST("/login", authHandler.Login)
	router.GET("/get-time", systemHandler.GetTime)
	router.GET("/health", systemHandler.Health)
	router.GET("/metrics", monitoring.MetricsHandler())

	api := router.Group("/api")
	{
		api.GET("/tasks/:user_id", taskHandler.GetTasks)
		api.GET("/tasks/:user_id/today", taskHandler.GetTodayTasks)
		api.GET("/tasks/:user_id/todo", taskHandler.GetTodoTasks)
		api.GET("/tasks/:user_id/done", taskHandler.GetDoneTasks)
		api.GET("/tasks/:user_id/date/:task_date", taskHandler.GetTasksByDate)
	}

	return router
}

// NewSourceBuilder maps the configured backend to a source constructor for
// the resolver. Mock mode returns nil: the resolver then reports unavailable
// and every request serves fallback data.
func NewSourceBuilder(cfg *config.Config) func() (storage.TaskSource, error) {
	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		return func() (storage.TaskSource, error) {
			return storage.NewGormSource(postgresDialector(cfg)), nil
		}
	case config.BackendRedis:
		return func() (storage.TaskSource, error) {
			return storage.NewRedisSource(&storage.RedisSourceConfig{
				Addr:         cfg.GetRedisAddr(),
				Password:     cfg.Redis.Password,
				DB:           cfg.Redis.DB,
				PoolSize:     cfg.Redis.PoolSize,
				MinIdleConns: cfg.Redis.MinIdleConns,
				MaxRetries:   cfg.Redis.MaxRetries,
				DialTimeout:  cfg.Redis.DialTimeout,
				ReadTimeout:  cfg.Redis.ReadTimeout,
				WriteTimeout: cfg.Redis.WriteTimeout,
			}), nil
		}
	default:
		return nil
	}
}
