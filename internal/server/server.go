package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apihttp "github.com/caremixer/backend/internal/api/http"
	"github.com/caremixer/backend/internal/api/middleware"
	"github.com/caremixer/backend/internal/api/ws"
	"github.com/caremixer/backend/internal/catalog"
	"github.com/caremixer/backend/internal/chat"
	"github.com/caremixer/backend/internal/infrastructure/config"
	"github.com/caremixer/backend/internal/infrastructure/monitoring"
	"github.com/caremixer/backend/internal/logging"
	"github.com/caremixer/backend/internal/timeline"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	router  *gin.Engine
	httpSrv *http.Server
	logger  *logging.Logger
	config  *config.Config
}

// New creates a fully wired server from configuration.
func New(cfg *config.Config) (*Server, error) {
	var logger *logging.Logger
	if cfg.Logging.Development {
		logger = logging.NewDevelopment()
	} else {
		logger = logging.NewDefault()
	}

	logger.Info("Initializing CareMixer server",
		zap.String("port", cfg.Server.Port),
		zap.String("catalog_url", cfg.Catalog.BaseURL),
	)

	metrics := monitoring.NewMetrics()

	catalogSvc := catalog.NewService(catalog.Options{
		BaseURL:  cfg.Catalog.BaseURL,
		Timeout:  cfg.Catalog.Timeout,
		MaxNames: cfg.Catalog.MaxNames,
		Logger:   logger.Logger,
		Metrics:  metrics,
	})

	events := timeline.DefaultEvents()
	if cfg.Timeline.SeedFile != "" {
		seeded, err := timeline.LoadSeed(cfg.Timeline.SeedFile)
		if err != nil {
			logger.Warn("falling back to built-in timeline events", zap.Error(err))
		} else {
			events = seeded
		}
	}
	timelineStore := timeline.NewStore(events)

	chatStore := chat.NewStore()
	responder := chat.NewResponder()
	if cfg.Chat.RepliesFile != "" {
		if err := responder.LoadRules(cfg.Chat.RepliesFile); err != nil {
			logger.Warn("falling back to built-in chat replies", zap.Error(err))
		}
	}

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	handlers := apihttp.NewHandlers(
		catalogSvc,
		timelineStore,
		chatStore,
		responder,
		cfg.Chat.ReplyDelay,
		metrics,
		logger.Logger,
	)
	wsHandler := ws.NewHandler(chatStore, responder, cfg.Chat.ReplyDelay, metrics, logger.Logger)

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// External catalog
	router.GET("/external_data", handlers.ListCatalog)
	router.GET("/external_data/:name", handlers.GetCatalogEntry)

	// Timeline
	router.GET("/timeline", handlers.ListTimeline)
	router.GET("/timeline/:id", handlers.GetTimelineEvent)

	// Chat
	router.GET("/chat", handlers.ListChat)
	router.POST("/chat", handlers.PostChat)
	router.GET("/chat/stream", wsHandler.HandleConnection)

	return &Server{
		router: router,
		httpSrv: &http.Server{
			Addr:         net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
			Handler:      router,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 60 * time.Second,
		},
		logger: logger,
		config: cfg,
	}, nil
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the server and blocks until it stops.
func (s *Server) Run() error {
	s.logger.Info("Starting server", zap.String("addr", s.httpSrv.Addr))
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server")
	defer s.logger.Sync() //nolint:errcheck
	return s.httpSrv.Shutdown(ctx)
}
